package cache

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/infrastructure/config"
)

// StockItemCacheFactory creates stock item caches based on configuration
type StockItemCacheFactory struct {
	cacheConfig           config.CacheConfig
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// StockItemCacheFactoryOption is a functional option for configuring the factory
type StockItemCacheFactoryOption func(*StockItemCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) StockItemCacheFactoryOption {
	return func(f *StockItemCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to the in-memory cache
// when Redis is unavailable. Default is true (allow fallback).
func WithInMemoryFallback(allow bool) StockItemCacheFactoryOption {
	return func(f *StockItemCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewStockItemCacheFactory creates a new factory
func NewStockItemCacheFactory(cacheCfg config.CacheConfig, redisCfg config.RedisConfig, opts ...StockItemCacheFactoryOption) *StockItemCacheFactory {
	f := &StockItemCacheFactory{
		cacheConfig:           cacheCfg,
		redisConfig:           redisCfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateRedisCache creates a Redis-backed stock item cache
func (f *StockItemCacheFactory) CreateRedisCache() (StockItemCache, error) {
	redisCfg := RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	}

	cache, err := NewRedisStockItemCache(redisCfg, f.cacheConfig.TTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis stock item cache: %w", err)
	}

	return cache, nil
}

// CreateInMemoryCache creates an in-memory stock item cache
func (f *StockItemCacheFactory) CreateInMemoryCache() StockItemCache {
	return NewInMemoryStockItemCache(
		WithInMemoryTTL(f.cacheConfig.TTL),
		WithInMemoryLogger(f.logger),
	)
}

// CreateCache creates a stock item cache for the configured backend.
// When the backend is Redis but Redis is unreachable, it falls back to the
// in-memory cache unless fallback has been disabled.
func (f *StockItemCacheFactory) CreateCache() (StockItemCache, error) {
	switch f.cacheConfig.Backend {
	case "memory", "":
		f.logger.Info("using in-memory stock item cache")
		return f.CreateInMemoryCache(), nil
	case "redis":
		cache, err := f.CreateRedisCache()
		if err == nil {
			f.logger.Info("using Redis stock item cache")
			return cache, nil
		}
		if !f.allowInMemoryFallback {
			return nil, fmt.Errorf("Redis required for stock item cache but unavailable: %w", err)
		}
		f.logger.Warn("Redis unavailable, falling back to in-memory stock item cache. "+
			"Invalidations will not be visible across instances.",
			zap.Error(err),
		)
		return f.CreateInMemoryCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", f.cacheConfig.Backend)
	}
}
