package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Search    SearchConfig
	Store     StoreConfig
	Telegram  TelegramConfig
	Scheduler SchedulerConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig describes the watched category listing
type CatalogConfig struct {
	BaseURL       string `mapstructure:"base_url"`
	CategoryID    int    `mapstructure:"category_id"`
	MaxPages      int    `mapstructure:"max_pages"`
	MissThreshold int    `mapstructure:"miss_threshold"`
}

// SearchConfig holds the shop search API configuration
type SearchConfig struct {
	BaseURL          string `mapstructure:"base_url"`
	PageSize         int    `mapstructure:"page_size"`
	ProductURLFormat string `mapstructure:"product_url_format"`
}

// StoreConfig holds baseline store configuration
type StoreConfig struct {
	Type          string `mapstructure:"type"` // "memory" or "mongo"
	MongoURI      string `mapstructure:"mongo_uri"`
	MongoDatabase string `mapstructure:"mongo_database"`
}

// TelegramConfig holds notification channel configuration. An empty bot
// token disables notifications.
type TelegramConfig struct {
	APIBaseURL string `mapstructure:"api_base_url"`
	BotToken   string `mapstructure:"bot_token"`
	ChatID     string `mapstructure:"chat_id"`
}

// SchedulerConfig holds the periodic trigger configuration. A zero interval
// disables scheduled runs.
type SchedulerConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// RateLimitConfig bounds outbound requests to the shop
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/catalogwatch/")

	// Environment variable settings
	v.SetEnvPrefix("CATALOGWATCH")
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Catalog defaults: the refurbished phone category on the Indonesian
	// storefront
	v.SetDefault("catalog.base_url", "https://shop.vivo.com/id/products/phone?categoryId=53")
	v.SetDefault("catalog.category_id", 53)
	v.SetDefault("catalog.max_pages", 10)
	v.SetDefault("catalog.miss_threshold", 2)

	// Search API defaults
	v.SetDefault("search.base_url", "https://shop.vivo.com")
	v.SetDefault("search.page_size", 6)
	v.SetDefault("search.product_url_format", "https://shop.vivo.com/id/product/%d")

	// Store defaults
	v.SetDefault("store.type", "memory")
	v.SetDefault("store.mongo_database", "catalogwatch")

	// Telegram defaults
	v.SetDefault("telegram.api_base_url", "https://api.telegram.org")

	// Scheduler defaults (disabled unless configured)
	v.SetDefault("scheduler.interval", "0")

	// Rate limit defaults
	v.SetDefault("ratelimit.requests_per_second", 2.0)
	v.SetDefault("ratelimit.burst", 4)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog base URL is required (set CATALOGWATCH_CATALOG_BASE_URL)")
	}

	if config.Catalog.MaxPages < 1 {
		return fmt.Errorf("catalog max pages must be at least 1, got: %d", config.Catalog.MaxPages)
	}

	if config.Store.Type != "memory" && config.Store.Type != "mongo" {
		return fmt.Errorf("store type must be 'memory' or 'mongo', got: %s", config.Store.Type)
	}

	if config.Store.Type == "mongo" && config.Store.MongoURI == "" {
		return fmt.Errorf("Mongo URI is required when store type is 'mongo'")
	}

	if config.Telegram.BotToken != "" && config.Telegram.ChatID == "" {
		return fmt.Errorf("Telegram chat ID is required when a bot token is set")
	}

	return nil
}
