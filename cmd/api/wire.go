// ABOUTME: Component construction helpers for the API server
// ABOUTME: Selects the cache backend and assembles extractor rules from configuration

package main

import (
	"context"
	"time"

	"newsfeed-api/core/extractor"
	"newsfeed-api/core/interfaces"
	"newsfeed-api/infrastructure/cache/memory"
	"newsfeed-api/infrastructure/cache/redis"
	"newsfeed-api/infrastructure/cache/sqlite"
	"newsfeed-api/pkg/config"
	"newsfeed-api/pkg/featureflags"
)

// buildCache returns the configured cache and a function releasing it.
// Redis and SQLite failures fall back to memory; a disabled cache flag returns nil.
func buildCache(ctx context.Context, cfg config.CacheConfig, flags featureflags.Manager, logger interfaces.Logger) (interfaces.Cache, func()) {
	noop := func() {}

	if !flags.IsEnabled(ctx, featureflags.CacheEnabled) {
		logger.Info("Caching disabled", nil)
		return nil, noop
	}

	newMemory := func() interfaces.Cache {
		return memory.NewMemoryCache(time.Duration(cfg.Memory.DefaultExpiration)*time.Second, memory.DefaultCleanupInterval)
	}

	switch cfg.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return newMemory(), noop
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Redis.Address,
		})
		return redisCache, func() { _ = redisCache.Close() }

	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.SQLite.Path, cfg.SQLite.CleanupInterval, logger)
		if err != nil {
			logger.Error("Failed to open SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
				"path":  cfg.SQLite.Path,
			})
			return newMemory(), noop
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.SQLite.Path,
		})
		return sqliteCache, func() { _ = sqliteCache.Close() }
	}

	logger.Info("Using memory cache", nil)
	return newMemory(), noop
}

// buildExtractor applies threshold overrides and the optional rules file to the defaults
func buildExtractor(cfg config.ExtractorConfig) (*extractor.Extractor, error) {
	rules := extractor.DefaultRules()
	if cfg.ShortTextThreshold > 0 {
		rules.ShortTextThreshold = cfg.ShortTextThreshold
	}
	if cfg.MinParagraphs > 0 {
		rules.MinParagraphs = cfg.MinParagraphs
	}
	rules.ProtectDocumentRoot = cfg.ProtectDocumentRoot
	rules.InnermostSocialBar = cfg.InnermostSocialBar

	if cfg.RulesFile != "" {
		loaded, err := extractor.LoadRulesFile(cfg.RulesFile, rules)
		if err != nil {
			return nil, err
		}
		rules = loaded
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return extractor.New(rules), nil
}
