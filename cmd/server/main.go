package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/catalogwatch/backend/config"
	httpDelivery "github.com/catalogwatch/backend/internal/delivery/http"
	"github.com/catalogwatch/backend/internal/domain"
	"github.com/catalogwatch/backend/internal/infrastructure/store"
	"github.com/catalogwatch/backend/internal/infrastructure/telegram"
	"github.com/catalogwatch/backend/internal/infrastructure/vivoshop"
	"github.com/catalogwatch/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting CatalogWatch Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog: %s (category %d)", cfg.Catalog.BaseURL, cfg.Catalog.CategoryID)
	log.Printf("Store Type: %s", cfg.Store.Type)

	// Initialize infrastructure dependencies
	var baselineStore domain.BaselineStore
	switch cfg.Store.Type {
	case "mongo":
		mongoStore, err := store.NewMongoStore(cfg.Store.MongoURI, cfg.Store.MongoDatabase)
		if err != nil {
			log.Fatalf("Failed to connect baseline store: %v", err)
		}
		defer mongoStore.Close()
		baselineStore = mongoStore
	default:
		baselineStore = store.NewMemoryStore()
		log.Printf("WARNING: in-memory baseline store - every product reports NEW after a restart")
	}

	shopClient := vivoshop.NewClient(
		cfg.Search.BaseURL,
		cfg.Search.PageSize,
		cfg.RateLimit.RequestsPerSecond,
		cfg.RateLimit.Burst,
	)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		shopClient.SetDebug(true)
		log.Printf("Shop client debug mode enabled")
	}

	var notifier domain.Notifier
	if cfg.Telegram.BotToken != "" {
		notifier = telegram.New(cfg.Telegram.APIBaseURL, cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		log.Printf("Telegram notifications enabled for chat %s", cfg.Telegram.ChatID)
	} else {
		log.Printf("WARNING: Telegram bot token not configured - notifications disabled")
	}

	// Initialize usecase layer
	watchService := usecase.NewWatchService(
		shopClient,
		shopClient,
		baselineStore,
		notifier,
		usecase.WatchServiceConfig{
			CategoryID:       cfg.Catalog.CategoryID,
			ListingURL:       cfg.Catalog.BaseURL,
			MaxPages:         cfg.Catalog.MaxPages,
			MissThreshold:    cfg.Catalog.MissThreshold,
			ProductURLFormat: cfg.Search.ProductURLFormat,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(watchService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Scheduled runs share the same pipeline entry point as the HTTP trigger
	if cfg.Scheduler.Interval > 0 {
		log.Printf("Scheduler enabled: running every %s", cfg.Scheduler.Interval)
		go runScheduler(cfg.Scheduler.Interval, watchService)
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// runScheduler invokes the pipeline on a fixed interval. There is no mutual
// exclusion with request-triggered runs; an overlap can race on baseline
// writes, which is an accepted gap.
func runScheduler(interval time.Duration, svc *usecase.WatchService) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		summary, err := svc.Run(context.Background())
		if err != nil {
			log.Printf("[scheduler] run failed: %v", err)
			continue
		}
		log.Printf("[scheduler] run complete: %d products, %d events", summary.Scraped, summary.Notif)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
