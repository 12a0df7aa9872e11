package usecase

import (
	"context"
	"fmt"
	"hash/fnv"
	"log"

	"github.com/catalogwatch/backend/internal/domain"
)

// pageTemplates are the pagination query conventions tried in order for each
// page index. The listing has been observed under several of them; the first
// variant that fetches and segments into at least one fragment decides the
// page.
var pageTemplates = []string{
	"%s&page=%d",
	"%s&p=%d",
	"%s&pageNo=%d",
}

// CrawlerConfig bounds pagination discovery.
type CrawlerConfig struct {
	BaseURL string
	// MaxPages caps the page index range tried after the base listing.
	MaxPages int
	// MissThreshold stops pagination after this many consecutive page
	// indexes that produced nothing new.
	MissThreshold int
}

// Crawler assembles candidate records from every distinct listing page,
// discovering pagination without a total-count signal from the source.
type Crawler struct {
	fetcher domain.PageFetcher
	cfg     CrawlerConfig
}

// NewCrawler creates a crawler over the given fetcher.
func NewCrawler(fetcher domain.PageFetcher, cfg CrawlerConfig) *Crawler {
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 10
	}
	if cfg.MissThreshold <= 0 {
		cfg.MissThreshold = 2
	}
	return &Crawler{fetcher: fetcher, cfg: cfg}
}

// Collect fetches the base listing and then pages 1..MaxPages, returning all
// extracted records in page-then-fragment order. Pages whose body fingerprint
// was already seen contribute nothing; a run of MissThreshold consecutive
// empty page indexes ends pagination.
func (c *Crawler) Collect(ctx context.Context) []domain.CandidateRecord {
	seen := make(map[uint64]struct{})
	var records []domain.CandidateRecord

	// The unparameterized base listing is always tried first: page 1 may
	// have a different canonical form than page=1.
	records = append(records, c.collectPage(ctx, c.cfg.BaseURL, seen)...)

	misses := 0
	for page := 1; page <= c.cfg.MaxPages; page++ {
		added := c.collectIndex(ctx, page, seen)
		if len(added) > 0 {
			records = append(records, added...)
			misses = 0
			continue
		}
		misses++
		if misses >= c.cfg.MissThreshold {
			break
		}
	}

	log.Printf("[crawler] collected %d raw records from %d distinct pages", len(records), len(seen))
	return records
}

// collectIndex tries each URL template for one page index. The first variant
// that fetches successfully and segments into at least one fragment decides
// the page; the fingerprint check then drops it if an earlier template
// already resolved to identical content.
func (c *Crawler) collectIndex(ctx context.Context, page int, seen map[uint64]struct{}) []domain.CandidateRecord {
	for _, tmpl := range pageTemplates {
		url := fmt.Sprintf(tmpl, c.cfg.BaseURL, page)
		body := c.fetcher.FetchText(ctx, url)
		if body == "" {
			continue
		}
		fragments := SegmentListing(body)
		if len(fragments) == 0 {
			continue
		}
		return c.extractNew(body, fragments, seen)
	}
	return nil
}

func (c *Crawler) collectPage(ctx context.Context, url string, seen map[uint64]struct{}) []domain.CandidateRecord {
	body := c.fetcher.FetchText(ctx, url)
	if body == "" {
		return nil
	}
	fragments := SegmentListing(body)
	if len(fragments) == 0 {
		return nil
	}
	return c.extractNew(body, fragments, seen)
}

func (c *Crawler) extractNew(body string, fragments []Fragment, seen map[uint64]struct{}) []domain.CandidateRecord {
	fp := fingerprint(body)
	if _, dup := seen[fp]; dup {
		return nil
	}
	seen[fp] = struct{}{}

	records := make([]domain.CandidateRecord, 0, len(fragments))
	for _, f := range fragments {
		if rec, ok := ExtractItem(f); ok {
			records = append(records, rec)
		}
	}
	return records
}

// fingerprint hashes a page body so that two URL variants resolving to
// identical content are recognized. FNV-1a is enough here; this is a
// same-run identity check, not a security boundary.
func fingerprint(body string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(body))
	return h.Sum64()
}
