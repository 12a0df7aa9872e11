package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/catalogwatch/backend/internal/domain"
)

// WatchServiceConfig holds configuration for the watch pipeline.
type WatchServiceConfig struct {
	CategoryID       int
	ListingURL       string
	MaxPages         int
	MissThreshold    int
	ProductURLFormat string
}

// WatchService is the one public entry point of the catalog-diffing
// pipeline: crawl, deduplicate, reconcile, classify, notify, persist.
type WatchService struct {
	crawler    *Crawler
	reconciler *PriceReconciler
	classifier *ChangeClassifier
	store      domain.BaselineStore
	notifier   domain.Notifier
	categoryID int
}

// NewWatchService wires the pipeline stages over the injected collaborators.
// notifier may be nil, in which case events are detected but not delivered.
func NewWatchService(
	fetcher domain.PageFetcher,
	search domain.SearchClient,
	store domain.BaselineStore,
	notifier domain.Notifier,
	cfg WatchServiceConfig,
) *WatchService {
	return &WatchService{
		crawler: NewCrawler(fetcher, CrawlerConfig{
			BaseURL:       cfg.ListingURL,
			MaxPages:      cfg.MaxPages,
			MissThreshold: cfg.MissThreshold,
		}),
		reconciler: NewPriceReconciler(search, cfg.ListingURL, cfg.ProductURLFormat),
		classifier: NewChangeClassifier(store),
		store:      store,
		notifier:   notifier,
		categoryID: cfg.CategoryID,
	}
}

// Run executes the full pipeline and returns the run summary. An unreachable
// baseline store is a fatal precondition checked before any fetch, reported
// distinctly from an empty crawl. Notification failures are logged and
// discarded so they can never block baseline persistence for the remaining
// records.
func (s *WatchService) Run(ctx context.Context) (*domain.RunSummary, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	if err := s.store.Ping(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	products, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var events []domain.ChangeEvent
	for _, p := range products {
		event, err := s.classifier.Classify(ctx, p)
		if err != nil {
			log.Printf("[watch] %v", err)
		}
		if event == nil {
			continue
		}
		events = append(events, *event)
		if s.notifier == nil {
			continue
		}
		if err := s.notifier.Notify(ctx, FormatEventMessage(*event)); err != nil {
			log.Printf("[watch] notification for %q dropped: %v", event.Product.Name, err)
		}
	}

	return &domain.RunSummary{
		OK:            true,
		Category:      s.categoryID,
		Scraped:       len(products),
		Notif:         len(events),
		Notifications: events,
	}, nil
}

// Snapshot returns the current reconciled catalog state without running the
// diff/notify/persist phase. With availableOnly set, only in-stock records
// are returned.
func (s *WatchService) Snapshot(ctx context.Context, availableOnly bool) ([]domain.ProductRecord, error) {
	products, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if !availableOnly {
		return products, nil
	}
	available := make([]domain.ProductRecord, 0, len(products))
	for _, p := range products {
		if p.InStock() {
			available = append(available, p)
		}
	}
	return available, nil
}

// snapshot runs the stateless front half of the pipeline: crawl,
// deduplicate, reconcile.
func (s *WatchService) snapshot(ctx context.Context) ([]domain.ProductRecord, error) {
	candidates := s.crawler.Collect(ctx)
	if len(candidates) == 0 {
		return nil, domain.ErrNoProducts
	}

	deduped := DeduplicateRecords(candidates)
	products := make([]domain.ProductRecord, 0, len(deduped))
	for _, rec := range deduped {
		products = append(products, s.reconciler.Reconcile(ctx, rec))
	}
	return products, nil
}
