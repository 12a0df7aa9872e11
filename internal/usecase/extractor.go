package usecase

import (
	"math"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/catalogwatch/backend/internal/domain"
)

// Selectors for the fields of one catalog card.
const (
	selectorName       = "h3"
	selectorVariant    = ".goods-desc"
	selectorSalePrice  = "span.price-num"
	selectorOldPrice   = "span.old"
	selectorDiscount   = "span.off"
	selectorOutOfStock = "img.sold-out"
)

// ExtractItem parses one fragment into a candidate record. Fragments without
// an extractable name are discarded (ok=false). All signals, including the
// out-of-stock marker, are read from this fragment only — never from
// neighboring cards or page-wide context.
func ExtractItem(f Fragment) (domain.CandidateRecord, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(f.Body))
	if err != nil {
		return domain.CandidateRecord{}, false
	}

	name := strings.TrimSpace(doc.Find(selectorName).First().Text())
	if name == "" {
		return domain.CandidateRecord{}, false
	}

	sale := parsePrice(doc.Find(selectorSalePrice).First().Text())
	orig := parsePrice(doc.Find(selectorOldPrice).First().Text())
	explicit := parseInt(doc.Find(selectorDiscount).First().Text())

	// Absence of the sold-out badge inside the fragment is proof of
	// availability, not "unknown".
	available := doc.Find(selectorOutOfStock).Length() == 0

	return domain.CandidateRecord{
		Name:            name,
		Variant:         strings.TrimSpace(doc.Find(selectorVariant).First().Text()),
		SalePrice:       sale,
		OriginalPrice:   orig,
		DiscountPercent: discountPercent(explicit, sale, orig),
		StockAvailable:  available,
	}, true
}

// discountPercent resolves the discount for a record: an explicit percentage
// token wins; otherwise it is derived from the two prices when both are
// known, rounding half up; otherwise zero.
func discountPercent(explicit int, sale, orig *int64) int {
	if explicit > 0 {
		return explicit
	}
	if sale != nil && orig != nil && *orig > *sale {
		return int(math.Round(float64(*orig-*sale) / float64(*orig) * 100))
	}
	return 0
}

// parsePrice normalizes a price token like "Rp 6.000.000" to an integer by
// stripping everything that is not a digit. No token means nil, which is
// distinct from a real zero.
func parsePrice(text string) *int64 {
	digits := digitsOnly(text)
	if digits == "" {
		return nil
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseInt reads the digits of a token like "-17%" as a small integer.
func parseInt(text string) int {
	digits := digitsOnly(text)
	if digits == "" {
		return 0
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return v
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
