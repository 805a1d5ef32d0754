// Package cache provides a Redis-backed response cache for deterministic
// completion calls. Only zero-temperature requests are cached; sampled calls
// always reach the provider. Redis failures degrade to pass-through.
package cache

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ahrav/go-quorum/internal/llm/configuration"
	"github.com/ahrav/go-quorum/internal/llm/transport"
)

const (
	defaultPoolSize   = 10
	connectionTimeout = 5 * time.Second
)

// Middleware caches zero-temperature completions in Redis.
// All methods are safe for concurrent use.
type Middleware struct {
	client  *redis.Client
	ttl     time.Duration
	enabled bool

	logger *slog.Logger

	hits   atomic.Int64
	misses atomic.Int64
	errors atomic.Int64
}

// New creates the cache middleware. When client is nil and caching is
// enabled, a client is created from cfg and pinged; a failed ping disables
// caching instead of failing startup.
func New(ctx context.Context, cfg configuration.CacheConfig, client *redis.Client, logger *slog.Logger) *Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "cache")

	if client == nil && cfg.Enabled {
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
			PoolSize: defaultPoolSize,
		})

		pingCtx, cancel := context.WithTimeout(ctx, connectionTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			logger.Warn("Redis connection failed, cache disabled", "addr", cfg.Addr, "error", err)
			_ = client.Close()
			client = nil
			cfg.Enabled = false
		}
	}

	return &Middleware{
		client:  client,
		ttl:     cfg.TTL,
		enabled: cfg.Enabled && client != nil,
		logger:  logger,
	}
}

// Enabled reports whether lookups reach Redis.
func (m *Middleware) Enabled() bool { return m.enabled }

// Close releases the Redis client.
func (m *Middleware) Close() error {
	if m.client == nil {
		return nil
	}
	return m.client.Close()
}

// Cacheable reports whether req may be served from cache.
func Cacheable(req *transport.Request) bool {
	return req.Temperature == 0
}

// Wrap returns the transport.Middleware that consults the cache before
// calling next.
func (m *Middleware) Wrap() transport.Middleware {
	return func(next transport.Handler) transport.Handler {
		return transport.HandlerFunc(func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			if !m.enabled || !Cacheable(req) {
				return next.Handle(ctx, req)
			}

			key, err := Key(req)
			if err != nil {
				m.errors.Add(1)
				m.logger.Warn("cache key build failed", "error", err)
				return next.Handle(ctx, req)
			}

			cached, err := m.get(ctx, key)
			switch {
			case err == nil:
				m.hits.Add(1)
				m.logger.Debug("cache hit", "key", key, "model", req.Model)
				return cached, nil
			case isMiss(err):
				m.misses.Add(1)
			default:
				m.errors.Add(1)
				m.logger.Warn("cache read failed", "error", err, "key", key)
			}

			resp, err := next.Handle(ctx, req)
			if err != nil {
				return nil, err
			}

			if setErr := m.set(ctx, key, resp); setErr != nil {
				m.errors.Add(1)
				m.logger.Warn("cache write failed", "error", setErr, "key", key)
			}
			return resp, nil
		})
	}
}
