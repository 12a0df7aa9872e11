package usecase

import (
	"fmt"
	"strings"

	"github.com/catalogwatch/backend/internal/domain"
)

// FormatEventMessage renders the notification text for one change event,
// matching the storefront's locale.
func FormatEventMessage(event domain.ChangeEvent) string {
	var title string
	switch event.Kind {
	case domain.EventNew:
		title = "🆕 Baru!"
	case domain.EventPriceDrop:
		title = "🔥 Harga Turun!"
	case domain.EventRestock:
		title = "✅ Restock!"
	}
	p := event.Product
	return fmt.Sprintf("%s\n%s\n💰 %s\n📦 %s\n🔗 %s",
		title, p.Name, formatRupiah(p.SalePrice), p.StockLabel, p.URL)
}

// formatRupiah renders an amount with id-ID thousands grouping, e.g.
// "Rp5.000.000". A nil price renders as a dash rather than a fake zero.
func formatRupiah(v *int64) string {
	if v == nil {
		return "-"
	}
	digits := fmt.Sprintf("%d", *v)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return "Rp" + strings.Join(groups, ".")
}
