package errors

import (
	"context"
	"errors"
	"net"
)

// StatusCodeTransport is reported by StatusCode for failures that never
// produced an HTTP status.
const StatusCodeTransport = -1

// Classify maps any completion error to an ErrorType.
// Typed provider errors win, then sentinels, then context and network errors.
func Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Type
	}

	switch {
	case errors.Is(err, ErrInvalidResponse):
		return ErrorTypeInvalidResponse
	case errors.Is(err, context.DeadlineExceeded):
		return ErrorTypeTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ErrorTypeTimeout
		}
		return ErrorTypeNetwork
	}

	return ErrorTypeUnknown
}

// StatusCode returns the HTTP status carried by err, or StatusCodeTransport
// when the failure happened before a response arrived.
func StatusCode(err error) int {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.StatusCode
	}
	return StatusCodeTransport
}
