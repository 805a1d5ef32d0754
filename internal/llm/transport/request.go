package transport

import (
	"net/http"
	"time"
)

// Request is a provider-neutral chat completion request: one system
// instruction and one user message.
type Request struct {
	// Model is the remote model identifier.
	Model string `json:"model"`

	// SystemPrompt instructs the model; it is sent as the system message.
	SystemPrompt string `json:"system_prompt"`

	// Prompt is the user message.
	Prompt string `json:"prompt"`

	// Generation parameters.
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`

	// Timeout bounds a single HTTP round trip. Zero means no per-request timeout.
	Timeout time.Duration `json:"-"`

	// RequestID correlates log lines for one logical call.
	RequestID string `json:"-"`
}

// Response is the normalized result of a successful completion.
type Response struct {
	// Content is the generated text. Missing fields in the provider payload
	// leave it empty.
	Content string `json:"content"`

	// FinishReason is the provider's stop reason, passed through verbatim.
	FinishReason string `json:"finish_reason"`

	// StatusCode is the HTTP status of the provider response.
	StatusCode int `json:"status_code"`

	// ProviderRequestID is the provider's request identifier when it sends one.
	ProviderRequestID string `json:"provider_request_id,omitempty"`

	Usage Usage `json:"usage"`

	// Cached is set when the response was served from the response cache.
	Cached bool `json:"-"`

	Headers http.Header `json:"-"`
}

// Usage reports token consumption and latency for one call.
type Usage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
	LatencyMs        int64 `json:"latency_ms"`
}
