// Package provider implements the interchangeable LLM backends. Every
// provider exposes the same contract: send one instruction, get back one
// opaque string believed to contain JSON. Transport, auth and response-path
// extraction are the only things that differ between providers.
package provider

import (
	"context"
)

// Provider is a single LLM backend.
type Provider interface {
	// Generate sends the instruction and returns the model's text payload.
	// Failures are reported as *Error. No retries happen at this layer; a
	// transient failure surfaces to the caller, who decides whether to retry
	// the whole operation.
	Generate(ctx context.Context, instruction string) (string, error)

	// Name returns the provider name, e.g. "qwen" or "gemini".
	Name() string
}

// Error codes.
const (
	ErrorCodeInvalidRequest = "invalid_request"
	ErrorCodeAuthentication = "authentication_error"
	ErrorCodeRateLimit      = "rate_limit_exceeded"
	ErrorCodeServerError    = "server_error"
	ErrorCodeTimeout        = "timeout"
	ErrorCodeModelNotFound  = "model_not_found"
	ErrorCodeEmptyResponse  = "empty_response"
	ErrorCodeUnknown        = "unknown_error"
)

// Error is a provider-specific failure: transport, auth, non-2xx status, or
// an empty/unusable response envelope.
type Error struct {
	Provider      string `json:"provider"`
	Code          string `json:"code"`
	Message       string `json:"message"`
	StatusCode    int    `json:"status_code,omitempty"`
	OriginalError error  `json:"-"`
}

func (e *Error) Error() string {
	return e.Provider + " error: " + e.Message
}

func (e *Error) Unwrap() error { return e.OriginalError }

// NewError creates a provider error.
func NewError(provider, code, message string, original error) *Error {
	return &Error{
		Provider:      provider,
		Code:          code,
		Message:       message,
		OriginalError: original,
	}
}

// codeForStatus maps an HTTP status to an error code.
func codeForStatus(status int) string {
	switch status {
	case 400:
		return ErrorCodeInvalidRequest
	case 401, 403:
		return ErrorCodeAuthentication
	case 404:
		return ErrorCodeModelNotFound
	case 429:
		return ErrorCodeRateLimit
	default:
		if status >= 500 {
			return ErrorCodeServerError
		}
		return ErrorCodeUnknown
	}
}
