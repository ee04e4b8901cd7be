package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/factors"
	"github.com/aretw0/factors/internal/adapters/redis"
	"github.com/aretw0/factors/internal/config"
	"github.com/aretw0/factors/pkg/adapters/memory"
	"github.com/aretw0/factors/pkg/domain"
	"github.com/aretw0/factors/pkg/ports"
)

// redisPingTimeout bounds the connectivity check done before a run starts.
const redisPingTimeout = 2 * time.Second

// createCache builds the configured result cache. A nil cache means caching is off.
// The returned close function is never nil.
func createCache(ctx context.Context, cfg config.CacheConfig) (ports.ResultCache, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case "", config.CacheNone:
		return nil, noop, nil
	case config.CacheMemory:
		return memory.NewCache(), noop, nil
	case config.CacheRedis:
		opts := []redis.Option{redis.WithTTL(cfg.Redis.TTL)}
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Redis.Prefix))
		}
		cache := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)

		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := cache.Ping(pingCtx); err != nil {
			_ = cache.Close()
			return nil, noop, fmt.Errorf("redis cache at %s unavailable: %w", cfg.Redis.Addr, err)
		}
		return cache, cache.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// createEngine initializes an engine with standard CLI conventions.
func createEngine(ctx context.Context, cfg config.Config, logger *slog.Logger, hooks ...domain.Hooks) (*factors.Engine, func() error, error) {
	cache, closeCache, err := createCache(ctx, cfg.Cache)
	if err != nil {
		return nil, closeCache, err
	}

	engineOpts := []factors.Option{factors.WithLogger(logger)}
	if cache != nil {
		engineOpts = append(engineOpts, factors.WithCache(cache))
		logger.Debug("result cache enabled", "backend", cfg.Cache.Backend)
	}
	if len(hooks) > 0 {
		engineOpts = append(engineOpts, factors.WithHooks(chainHooks(hooks)))
	}

	return factors.New(engineOpts...), closeCache, nil
}
