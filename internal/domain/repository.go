package domain

import "context"

// BaselineStore persists the last observed price and stock label per
// canonical key. The boolean result of the getters distinguishes "never
// seen" from a stored zero value; absence of both price and stock is the
// sole signal that a product is new.
type BaselineStore interface {
	Ping(ctx context.Context) error
	GetPrice(ctx context.Context, key string) (int64, bool, error)
	GetStock(ctx context.Context, key string) (string, bool, error)
	PutPrice(ctx context.Context, key string, price int64) error
	PutStock(ctx context.Context, key string, label string) error
}

// PageFetcher retrieves one listing page. Any transport failure degrades to
// an empty string; callers treat that as "page absent" and move on.
type PageFetcher interface {
	FetchText(ctx context.Context, url string) string
}

// SearchClient queries the shop's product search API, the secondary source
// used to fill price gaps left by listing markup.
type SearchClient interface {
	Search(ctx context.Context, keyword string) (*ShopSearchResponse, error)
}

// Notifier delivers a plain text message to the configured destination.
// Delivery is best-effort; the pipeline logs and discards failures.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}
