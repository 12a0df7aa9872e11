package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/catalogwatch/backend/internal/domain"
)

// PriceReconciler fills price gaps from the shop's search API. Listing
// markup is the primary source: a value parsed from the fragment is never
// overwritten by a search result, only nil fields are adopted.
type PriceReconciler struct {
	search           domain.SearchClient
	listingURL       string
	productURLFormat string
}

// NewPriceReconciler creates a reconciler. productURLFormat must contain one
// %d verb for the external product id.
func NewPriceReconciler(search domain.SearchClient, listingURL, productURLFormat string) *PriceReconciler {
	return &PriceReconciler{
		search:           search,
		listingURL:       listingURL,
		productURLFormat: productURLFormat,
	}
}

// Reconcile produces the final record for one deduplicated candidate.
// Records with both prices already known skip the search call entirely.
// Search failures or empty results leave the nil fields nil; they are never
// coerced to zero at this stage.
func (r *PriceReconciler) Reconcile(ctx context.Context, rec domain.CandidateRecord) domain.ProductRecord {
	p := domain.ProductRecord{
		Name:            rec.Name,
		Variant:         rec.Variant,
		SalePrice:       rec.SalePrice,
		OriginalPrice:   rec.OriginalPrice,
		DiscountPercent: rec.DiscountPercent,
		StockLabel:      rec.StockLabel(),
		URL:             r.listingURL,
	}
	if p.SalePrice != nil && p.OriginalPrice != nil {
		return p
	}

	resp, err := r.search.Search(ctx, rec.Name)
	if err != nil {
		log.Printf("[reconcile] search lookup failed for %q: %v", rec.Name, err)
		return p
	}
	if resp == nil || len(resp.Data.List) == 0 {
		return p
	}

	best := resp.Data.List[0]
	if p.SalePrice == nil {
		p.SalePrice = domain.PriceValue(best.SalePrice)
	}
	if p.OriginalPrice == nil {
		p.OriginalPrice = domain.PriceValue(best.OriginalPrice)
	}
	p.DiscountPercent = discountPercent(p.DiscountPercent, p.SalePrice, p.OriginalPrice)

	if best.SpuID != 0 {
		p.SpuID = best.SpuID
		p.URL = fmt.Sprintf(r.productURLFormat, best.SpuID)
	}
	return p
}
