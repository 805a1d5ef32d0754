package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	llmerrors "github.com/ahrav/go-quorum/internal/llm/errors"
	"github.com/ahrav/go-quorum/internal/llm/transport"
)

// entry is the JSON document stored per key.
type entry struct {
	Content      string `json:"content"`
	FinishReason string `json:"finish_reason"`
	StoredAtMs   int64  `json:"stored_at_ms"`
}

func isMiss(err error) bool {
	return errors.Is(err, llmerrors.ErrCacheMiss)
}

// get loads a cached response. A missing key returns ErrCacheMiss; an
// undecodable entry is deleted and reported as a miss.
func (m *Middleware) get(ctx context.Context, key string) (*transport.Response, error) {
	raw, err := m.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, llmerrors.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		m.logger.Warn("dropping corrupt cache entry", "key", key, "error", err)
		_ = m.client.Del(ctx, key).Err()
		return nil, llmerrors.ErrCacheMiss
	}

	return &transport.Response{
		Content:      e.Content,
		FinishReason: e.FinishReason,
		StatusCode:   200,
		Cached:       true,
	}, nil
}

func (m *Middleware) set(ctx context.Context, key string, resp *transport.Response) error {
	raw, err := json.Marshal(entry{
		Content:      resp.Content,
		FinishReason: resp.FinishReason,
		StoredAtMs:   time.Now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}
	if err := m.client.Set(ctx, key, raw, m.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
