// Package errors defines the error taxonomy shared by the completion client
// and its callers.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType categorizes completion failures. The pipeline never retries,
// so types serve logging and exit reporting rather than backoff policy.
type ErrorType string

const (
	// ErrorTypeTimeout indicates request timeout or deadline exceeded.
	ErrorTypeTimeout ErrorType = "timeout"

	// ErrorTypeRateLimit indicates the provider rejected the call for rate.
	ErrorTypeRateLimit ErrorType = "rate_limit"

	// ErrorTypeNetwork indicates a connection failure before any HTTP status.
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeProvider indicates a provider-side failure (5xx).
	ErrorTypeProvider ErrorType = "provider_unavailable"

	// ErrorTypeValidation indicates the provider rejected the request body.
	ErrorTypeValidation ErrorType = "validation_failed"

	// ErrorTypeAuth indicates authentication failed.
	ErrorTypeAuth ErrorType = "authentication"

	// ErrorTypePermission indicates insufficient permissions.
	ErrorTypePermission ErrorType = "permission_denied"

	// ErrorTypeQuota indicates account quota exceeded.
	ErrorTypeQuota ErrorType = "quota_exceeded"

	// ErrorTypeInvalidResponse indicates a 200 response whose body was not JSON.
	ErrorTypeInvalidResponse ErrorType = "invalid_response"

	// ErrorTypeUnknown indicates an unclassified error.
	ErrorTypeUnknown ErrorType = "unknown"
)

// Sentinel errors for completion calls.
var (
	// ErrInvalidResponse indicates the provider returned a body that could not be decoded.
	ErrInvalidResponse = errors.New("invalid provider response")

	// ErrCacheMiss indicates the requested item was not found in cache.
	ErrCacheMiss = errors.New("cache miss")
)

// ProviderError captures a non-200 response from the completion endpoint.
type ProviderError struct {
	Provider   string    `json:"provider"`    // Provider name
	StatusCode int       `json:"status_code"` // HTTP status code
	Message    string    `json:"message"`     // Error message
	Code       string    `json:"code"`        // Provider error code
	Type       ErrorType `json:"type"`        // Classified error type
}

// Error returns formatted provider error with status code context.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s error (status %d): %s", e.Provider, e.StatusCode, e.Message)
}
