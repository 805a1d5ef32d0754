// Package llm provides the completion client used by the answering
// pipeline: an OpenAI-compatible HTTP adapter behind a middleware chain
// of structured logging and an optional Redis response cache.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ahrav/go-quorum/internal/llm/cache"
	"github.com/ahrav/go-quorum/internal/llm/configuration"
	"github.com/ahrav/go-quorum/internal/llm/providers"
	"github.com/ahrav/go-quorum/internal/llm/transport"
)

// HTTP connection pool settings.
const (
	maxIdleConns        = 100
	idleConnTimeout     = 90 * time.Second
	tlsHandshakeTimeout = 10 * time.Second
)

// Client sends one system and one user message to the configured model and
// returns the reply text. It is safe for concurrent use.
type Client struct {
	config  *configuration.Config
	handler transport.Handler
	cache   *cache.Middleware
}

// NewClient builds the handler chain: logging, then cache, then HTTP.
// A nil cfg uses configuration.DefaultConfig.
func NewClient(ctx context.Context, cfg *configuration.Config, logger *slog.Logger) (*Client, error) {
	if cfg == nil {
		cfg = configuration.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				MaxIdleConns:          maxIdleConns,
				IdleConnTimeout:       idleConnTimeout,
				TLSHandshakeTimeout:   tlsHandshakeTimeout,
				ExpectContinueTimeout: time.Second,
			},
		}
	}

	adapter := providers.NewOpenAIAdapter(cfg.BaseURL, cfg.APIKey)
	core := transport.NewHTTPHandler(httpClient, adapter)

	respCache := cache.New(ctx, cfg.Cache, nil, logger)

	handler := transport.Chain(core,
		NewLoggingMiddleware(logger.With("component", "llm"), cfg.Observability.RedactPrompts),
		respCache.Wrap(),
	)

	return &Client{config: cfg, handler: handler, cache: respCache}, nil
}

// Complete sends system and prompt at the given temperature and returns the
// content of the first choice. Non-200 replies return *errors.ProviderError;
// transport failures return a wrapped error.
func (c *Client) Complete(ctx context.Context, system, prompt string, temperature float64) (string, error) {
	resp, err := c.handler.Handle(ctx, &transport.Request{
		Model:        c.config.Model,
		SystemPrompt: system,
		Prompt:       prompt,
		MaxTokens:    c.config.MaxTokens,
		Temperature:  temperature,
		Timeout:      c.config.Timeout,
	})
	if err != nil {
		return "", fmt.Errorf("completion: %w", err)
	}
	return resp.Content, nil
}

// CacheStats reports response cache counters.
func (c *Client) CacheStats() cache.Stats {
	return c.cache.Stats()
}

// Close releases the cache connection.
func (c *Client) Close() error {
	return c.cache.Close()
}
