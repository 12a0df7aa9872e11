package usecase

import (
	"context"
	"fmt"

	"github.com/catalogwatch/backend/internal/domain"
)

// ChangeClassifier compares each reconciled record against the persisted
// baseline and emits at most one typed event per record per run.
type ChangeClassifier struct {
	store domain.BaselineStore
}

// NewChangeClassifier creates a classifier over the given baseline store.
func NewChangeClassifier(store domain.BaselineStore) *ChangeClassifier {
	return &ChangeClassifier{store: store}
}

// Classify evaluates the transition rules in precedence order (NEW, then
// PRICE_DROP, then RESTOCK; first match wins) and then unconditionally
// overwrites the baseline for this key, whether or not an event fired. The
// unconditional write makes a run against an unchanged catalog produce zero
// events and leave the baseline value unchanged.
func (c *ChangeClassifier) Classify(ctx context.Context, p domain.ProductRecord) (*domain.ChangeEvent, error) {
	key := p.CanonicalKey()

	priorPrice, hasPrice, err := c.store.GetPrice(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("baseline price lookup for %q: %w", key, err)
	}
	priorStock, hasStock, err := c.store.GetStock(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("baseline stock lookup for %q: %w", key, err)
	}

	var event *domain.ChangeEvent
	switch {
	case !hasPrice && !hasStock:
		event = &domain.ChangeEvent{Kind: domain.EventNew, Product: p}
	// A stored price of 0 is the sentinel for "sale price was unknown last
	// run"; it never participates in drop detection.
	case hasPrice && priorPrice > 0 && p.SalePrice != nil && *p.SalePrice < priorPrice:
		event = &domain.ChangeEvent{Kind: domain.EventPriceDrop, Product: p}
	case hasStock && priorStock != domain.StockAvailable && p.StockLabel == domain.StockAvailable:
		event = &domain.ChangeEvent{Kind: domain.EventRestock, Product: p}
	}

	var price int64
	if p.SalePrice != nil {
		price = *p.SalePrice
	}
	if err := c.store.PutPrice(ctx, key, price); err != nil {
		return event, fmt.Errorf("baseline price write for %q: %w", key, err)
	}
	if err := c.store.PutStock(ctx, key, p.StockLabel); err != nil {
		return event, fmt.Errorf("baseline stock write for %q: %w", key, err)
	}
	return event, nil
}
