package providers

import (
	"net/http"
	"strings"

	llmerrors "github.com/ahrav/go-quorum/internal/llm/errors"
)

// codeKeywords maps substrings of an OpenAI error code or type to a
// category. Order matters: "rate_limit" must win over a later "limit" match.
var codeKeywords = []struct {
	keyword string
	typ     llmerrors.ErrorType
}{
	{"rate", llmerrors.ErrorTypeRateLimit},
	{"limit", llmerrors.ErrorTypeRateLimit},
	{"timeout", llmerrors.ErrorTypeTimeout},
	{"auth", llmerrors.ErrorTypeAuth},
	{"api_key", llmerrors.ErrorTypeAuth},
	{"permission", llmerrors.ErrorTypePermission},
	{"forbidden", llmerrors.ErrorTypePermission},
	{"quota", llmerrors.ErrorTypeQuota},
	{"model_not_found", llmerrors.ErrorTypeValidation},
}

// statusTypes covers the statuses an OpenAI-compatible server returns for
// client mistakes. 404 is what those servers send for an unknown model.
var statusTypes = map[int]llmerrors.ErrorType{
	http.StatusBadRequest:          llmerrors.ErrorTypeValidation,
	http.StatusUnauthorized:        llmerrors.ErrorTypeAuth,
	http.StatusForbidden:           llmerrors.ErrorTypePermission,
	http.StatusNotFound:            llmerrors.ErrorTypeValidation,
	http.StatusRequestTimeout:      llmerrors.ErrorTypeTimeout,
	http.StatusUnprocessableEntity: llmerrors.ErrorTypeValidation,
	http.StatusTooManyRequests:     llmerrors.ErrorTypeRateLimit,
	http.StatusGatewayTimeout:      llmerrors.ErrorTypeTimeout,
}

// classifyErrorType picks the log category of a non-200 reply. A known
// keyword in the provider's code wins over the status.
func classifyErrorType(statusCode int, errorCode string) llmerrors.ErrorType {
	code := strings.ToLower(errorCode)
	for _, kw := range codeKeywords {
		if strings.Contains(code, kw.keyword) {
			return kw.typ
		}
	}

	if typ, ok := statusTypes[statusCode]; ok {
		return typ
	}
	if statusCode >= http.StatusInternalServerError {
		return llmerrors.ErrorTypeProvider
	}
	return llmerrors.ErrorTypeUnknown
}
