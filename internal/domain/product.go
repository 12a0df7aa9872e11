package domain

import "strings"

// Stock labels persisted in the baseline store. The shop is an Indonesian
// storefront, so the labels match what it renders to users.
const (
	StockAvailable = "Tersedia"
	StockOut       = "Habis"
)

// CandidateRecord is one product as parsed from a single listing fragment.
// SalePrice and OriginalPrice are nil when the fragment carried no price
// token; nil is not the same as 0.
type CandidateRecord struct {
	Name            string
	Variant         string
	SalePrice       *int64
	OriginalPrice   *int64
	DiscountPercent int
	StockAvailable  bool
}

// CanonicalKey returns the dedup/baseline identity for this record.
func (r CandidateRecord) CanonicalKey() string {
	return CanonicalKey(r.Name, r.Variant)
}

// StockLabel converts the fragment-local availability flag to the stored label.
func (r CandidateRecord) StockLabel() string {
	if r.StockAvailable {
		return StockAvailable
	}
	return StockOut
}

// ProductRecord is a CandidateRecord after price reconciliation: price gaps
// filled from the search API where possible, plus a canonical product URL.
type ProductRecord struct {
	Name            string `json:"name"`
	Variant         string `json:"variant,omitempty"`
	SalePrice       *int64 `json:"salePrice"`
	OriginalPrice   *int64 `json:"originalPrice"`
	DiscountPercent int    `json:"discount"`
	StockLabel      string `json:"stockLabel"`
	SpuID           int64  `json:"spuId,omitempty"`
	URL             string `json:"url"`
}

// CanonicalKey returns the dedup/baseline identity for this record.
func (p ProductRecord) CanonicalKey() string {
	return CanonicalKey(p.Name, p.Variant)
}

// InStock reports whether the record carries the available label.
func (p ProductRecord) InStock() bool {
	return p.StockLabel == StockAvailable
}

// CanonicalKey builds the identity used for deduplication and baseline
// lookups: a lowercase slug of the name, extended with the variant when one
// exists. Two listings of the same variant always map to the same key no
// matter which page template they came from.
func CanonicalKey(name, variant string) string {
	key := slug(name)
	if v := slug(variant); v != "" {
		key += "-" + v
	}
	return key
}

// slug lowercases s and collapses every run of non-alphanumeric characters
// into a single hyphen.
func slug(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}
