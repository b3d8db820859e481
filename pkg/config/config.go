// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines server, cache, fetch, extractor, rate limit and logging settings

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Fetch controls outbound page retrieval
	Fetch FetchConfig

	// Content controls the content service
	Content ContentConfig

	// Extractor tunes the article extraction heuristics
	Extractor ExtractorConfig

	// RateLimit controls per-client request limiting
	RateLimit RateLimitConfig

	// Log controls log level, format and file output
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration

	// CORSOrigins lists allowed origins; "*" allows any
	CORSOrigins []string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int

	// KeyPrefix namespaces every key written by this service
	KeyPrefix string
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the database file
	Path string

	// CleanupInterval is how often expired rows are removed
	CleanupInterval time.Duration
}

// FetchConfig holds outbound HTTP settings for article pages
type FetchConfig struct {
	Timeout   time.Duration
	UserAgent string

	// InsecureSkipVerify disables TLS certificate verification on every
	// outbound fetch. SECURITY: defaults to true so that sites with broken
	// certificate chains can still be read.
	InsecureSkipVerify bool

	MaxBodyBytes int64
	MaxRedirects int
}

// ContentConfig holds content service settings
type ContentConfig struct {
	// CacheTTL is how long extraction results are cached; zero disables caching
	CacheTTL time.Duration

	// BatchConcurrency bounds concurrent fetches for batch requests
	BatchConcurrency int

	// MaxBatchSize caps the number of URLs in one batch request
	MaxBatchSize int
}

// ExtractorConfig holds overrides for the extraction heuristics
type ExtractorConfig struct {
	// ShortTextThreshold is the rune length under which boilerplate blocks are dropped
	ShortTextThreshold int

	// MinParagraphs is the paragraph count the density strategy must exceed
	MinParagraphs int

	// RulesFile is an optional YAML file extending the default rules
	RulesFile string

	// ProtectDocumentRoot keeps <html> and <body> out of class/id noise removal
	ProtectDocumentRoot bool

	// InnermostSocialBar removes only the deepest social sharing block
	InnermostSocialBar bool
}

// RateLimitConfig holds request rate limiting settings
type RateLimitConfig struct {
	// Limit is the number of requests allowed per window for each client
	Limit int

	// Window is the rate limit window
	Window time.Duration
}

// LogConfig holds logging settings
type LogConfig struct {
	Level      string
	Format     string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Load reads an optional .env file and then the environment, and validates
// the result. Variables already set in the environment win over .env values.
func Load(dotenvPaths ...string) (*Config, error) {
	if len(dotenvPaths) == 0 {
		dotenvPaths = []string{".env"}
	}
	for _, path := range dotenvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	cfg, err := LoadFromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnvOrDefault("PORT", "8000"),
			ShutdownTimeout: getEnvAsSecondsOrDefault("SHUTDOWN_TIMEOUT_SECONDS", 30),
			CORSOrigins:     getEnvAsListOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Cache: CacheConfig{
			Type: strings.ToLower(getEnvOrDefault("CACHE_TYPE", "memory")),
			Redis: RedisConfig{
				Address:   getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password:  getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:        getEnvAsIntOrDefault("REDIS_DB", 0),
				KeyPrefix: getEnvOrDefault("REDIS_KEY_PREFIX", "newsfeed:"),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
			SQLite: SQLiteConfig{
				Path:            getEnvOrDefault("SQLITE_PATH", "cache.db"),
				CleanupInterval: getEnvAsSecondsOrDefault("SQLITE_CLEANUP_INTERVAL_SECONDS", 300),
			},
		},
		Fetch: FetchConfig{
			Timeout:            getEnvAsSecondsOrDefault("FETCH_TIMEOUT_SECONDS", 10),
			UserAgent:          getEnvOrDefault("FETCH_USER_AGENT", ""),
			InsecureSkipVerify: getEnvAsBoolOrDefault("FETCH_INSECURE_SKIP_VERIFY", true),
			MaxBodyBytes:       int64(getEnvAsIntOrDefault("FETCH_MAX_BODY_BYTES", 5<<20)),
			MaxRedirects:       getEnvAsIntOrDefault("FETCH_MAX_REDIRECTS", 10),
		},
		Content: ContentConfig{
			CacheTTL:         getEnvAsSecondsOrDefault("CONTENT_CACHE_TTL_SECONDS", 1800),
			BatchConcurrency: getEnvAsIntOrDefault("CONTENT_BATCH_CONCURRENCY", 5),
			MaxBatchSize:     getEnvAsIntOrDefault("CONTENT_MAX_BATCH_SIZE", 20),
		},
		Extractor: ExtractorConfig{
			ShortTextThreshold:  getEnvAsIntOrDefault("EXTRACTOR_SHORT_TEXT_THRESHOLD", 150),
			MinParagraphs:       getEnvAsIntOrDefault("EXTRACTOR_MIN_PARAGRAPHS", 5),
			RulesFile:           getEnvOrDefault("EXTRACTOR_RULES_FILE", ""),
			ProtectDocumentRoot: getEnvAsBoolOrDefault("EXTRACTOR_PROTECT_DOCUMENT_ROOT", false),
			InnermostSocialBar:  getEnvAsBoolOrDefault("EXTRACTOR_INNERMOST_SOCIAL_BAR", false),
		},
		RateLimit: RateLimitConfig{
			Limit:  getEnvAsIntOrDefault("RATE_LIMIT", 100),
			Window: getEnvAsSecondsOrDefault("RATE_WINDOW_SECONDS", 60),
		},
		Log: LogConfig{
			Level:      getEnvOrDefault("LOG_LEVEL", "info"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
			File:       getEnvOrDefault("LOG_FILE", ""),
			MaxSizeMB:  getEnvAsIntOrDefault("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvAsIntOrDefault("LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getEnvAsIntOrDefault("LOG_MAX_AGE_DAYS", 28),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsSecondsOrDefault reads a whole number of seconds as a duration
func getEnvAsSecondsOrDefault(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvAsIntOrDefault(key, defaultSeconds)) * time.Second
}

// getEnvAsListOrDefault splits a comma separated variable
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Fetch.Timeout <= 0 {
		return errors.New("fetch timeout must be at least 1 second")
	}

	if c.Fetch.MaxBodyBytes <= 0 {
		return errors.New("fetch max body bytes must be positive")
	}

	if c.Content.CacheTTL < 0 {
		return errors.New("content cache TTL cannot be negative")
	}

	if c.Content.BatchConcurrency < 1 {
		return errors.New("content batch concurrency must be at least 1")
	}

	if c.Content.MaxBatchSize < 1 {
		return errors.New("content max batch size must be at least 1")
	}

	if c.Extractor.ShortTextThreshold < 0 {
		return errors.New("extractor short text threshold cannot be negative")
	}

	if c.Extractor.MinParagraphs < 0 {
		return errors.New("extractor minimum paragraphs cannot be negative")
	}

	if c.RateLimit.Limit < 1 {
		return errors.New("rate limit must be at least 1")
	}

	if c.RateLimit.Window <= 0 {
		return errors.New("rate window must be at least 1 second")
	}

	return nil
}
