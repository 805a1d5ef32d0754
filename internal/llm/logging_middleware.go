package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	llmerrors "github.com/ahrav/go-quorum/internal/llm/errors"
	"github.com/ahrav/go-quorum/internal/llm/transport"
)

const previewLimit = 200

// LoggingMiddleware records the lifecycle of every completion call with
// structured fields. Prompt and response text can be redacted to lengths.
type LoggingMiddleware struct {
	logger        *slog.Logger
	redactPrompts bool
}

// NewLoggingMiddleware creates logging middleware. A nil logger uses slog.Default.
func NewLoggingMiddleware(logger *slog.Logger, redactPrompts bool) transport.Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	lm := &LoggingMiddleware{logger: logger, redactPrompts: redactPrompts}
	return lm.Middleware
}

// Middleware assigns a request id when missing and logs start, completion
// or failure with duration.
func (m *LoggingMiddleware) Middleware(next transport.Handler) transport.Handler {
	return transport.HandlerFunc(func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
		if req.RequestID == "" {
			req.RequestID = uuid.New().String()
		}

		m.logRequest(ctx, req)

		start := time.Now()
		resp, err := next.Handle(ctx, req)
		duration := time.Since(start)

		if err != nil {
			m.handleError(ctx, req, err, duration)
		} else if resp != nil {
			m.handleSuccess(ctx, req, resp, duration)
		}
		return resp, err
	})
}

func (m *LoggingMiddleware) logRequest(ctx context.Context, req *transport.Request) {
	fields := []any{
		"request_id", req.RequestID,
		"model", req.Model,
		"max_tokens", req.MaxTokens,
		"temperature", req.Temperature,
		"timeout_seconds", req.Timeout.Seconds(),
	}
	if m.redactPrompts {
		fields = append(fields,
			"prompt_length", len(req.Prompt),
			"system_prompt_length", len(req.SystemPrompt))
	} else {
		fields = append(fields, "prompt", req.Prompt)
	}

	m.logger.DebugContext(ctx, "LLM request started", fields...)
}

func (m *LoggingMiddleware) handleError(ctx context.Context, req *transport.Request, err error, duration time.Duration) {
	m.logger.ErrorContext(ctx, "LLM request failed",
		"request_id", req.RequestID,
		"model", req.Model,
		"duration_ms", duration.Milliseconds(),
		"status_code", llmerrors.StatusCode(err),
		"error_type", string(llmerrors.Classify(err)),
		"error", err.Error(),
	)
}

func (m *LoggingMiddleware) handleSuccess(
	ctx context.Context,
	req *transport.Request,
	resp *transport.Response,
	duration time.Duration,
) {
	fields := []any{
		"request_id", req.RequestID,
		"model", req.Model,
		"duration_ms", duration.Milliseconds(),
		"status_code", resp.StatusCode,
		"finish_reason", resp.FinishReason,
		"total_tokens", resp.Usage.TotalTokens,
		"cached", resp.Cached,
	}
	if resp.ProviderRequestID != "" {
		fields = append(fields, "provider_request_id", resp.ProviderRequestID)
	}

	if m.redactPrompts {
		fields = append(fields, "response_length", len(resp.Content))
	} else {
		fields = append(fields, "response_preview", preview(resp.Content))
	}

	m.logger.InfoContext(ctx, "LLM request completed", fields...)
}

// preview truncates s to previewLimit runes.
func preview(s string) string {
	runes := []rune(s)
	if len(runes) <= previewLimit {
		return s
	}
	return string(runes[:previewLimit]) + "..."
}
