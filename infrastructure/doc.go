// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache on patrickmn/go-cache
// - cache/redis: Redis cache on go-redis with key prefixing
// - cache/sqlite: SQLite cache on go-sqlite3 with periodic expiry cleanup
// - http/standard: net/http page fetcher with charset decoding and size limits
// - logger/logrus: logrus logger with optional rotated file output
//
// # Cache Implementations
//
// Every cache returns interfaces.ErrCacheMiss for absent or expired keys.
//
//	cache := memory.NewMemoryCache(time.Hour, memory.DefaultCleanupInterval)
//	err := cache.Set(ctx, "content:https://example.com", data, 30*time.Minute)
//	value, err := cache.Get(ctx, "content:https://example.com")
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address:   "localhost:6379",
//	    KeyPrefix: "newsfeed:",
//	})
//
// # HTTP Client
//
// TLS certificate verification is disabled by default for page fetches.
// Set FETCH_INSECURE_SKIP_VERIFY=false to enforce it.
//
//	client := standard.NewStandardHTTPClient(standard.DefaultOptions())
//	page, err := client.Fetch(ctx, "https://example.com/news/story")
//
// # Logger
//
//	logger, err := logrus.NewLogger(logrus.Options{Level: "info", Format: "json"})
//	logger.Info("Processing request", map[string]interface{}{
//	    "url": "https://example.com/news/story",
//	})
package infrastructure
