// Package circleerr defines the typed errors shared by the client packages.
package circleerr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ConfigError is returned when a configuration value is missing or invalid.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// DecodeError is returned when hex or base58/base64 input is malformed.
type DecodeError struct {
	What string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.What, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ParseAttempt records one failed public key parsing strategy.
type ParseAttempt struct {
	Scheme string
	Err    error
}

// KeyParseError is returned when a public key could not be parsed by any
// supported encoding. Every attempt is kept, in the order it was tried.
type KeyParseError struct {
	Attempts []ParseAttempt
}

func (e *KeyParseError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.Scheme, a.Err))
	}
	return "failed to parse public key (" + strings.Join(parts, "; ") + ")"
}

func (e *KeyParseError) Unwrap() []error {
	errs := make([]error, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		errs = append(errs, a.Err)
	}
	return errs
}

// EncryptionError is returned when a cryptographic operation fails.
type EncryptionError struct {
	Err error
}

func (e *EncryptionError) Error() string {
	return fmt.Sprintf("encryption failed: %v", e.Err)
}

func (e *EncryptionError) Unwrap() error { return e.Err }

// TransportError wraps network-level failures: the request never produced
// an HTTP response.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: transport failure: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeResponseError is returned when a response body does not match the
// expected JSON shape. Body holds the raw response text for diagnostics.
type DecodeResponseError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *DecodeResponseError) Error() string {
	return fmt.Sprintf("failed to decode response (status %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeResponseError) Unwrap() error { return e.Err }

// APIError is a failure reported by the API itself. StatusCode is the
// HTTP status; Code is the platform error code when the body carried one.
type APIError struct {
	StatusCode int
	Code       *int
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != nil {
		return fmt.Sprintf("api error: status %d, code %d: %s", e.StatusCode, *e.Code, e.Message)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// IsClientError reports whether the server rejected the request itself.
func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsServerError reports a failure on the server side.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// Temporary reports whether the same logical request may succeed later.
func (e *APIError) Temporary() bool {
	switch e.StatusCode {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	}
	return e.IsServerError()
}

// IdentifierError is returned for malformed idempotency keys or UUIDs.
type IdentifierError struct {
	Value string
	Err   error
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier %q: %v", e.Value, e.Err)
}

func (e *IdentifierError) Unwrap() error { return e.Err }

// IsRetryable reports whether err is worth retrying by re-running the
// operation with freshly built request material.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return true
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Temporary()
	}

	return false
}

// StatusCode extracts the HTTP status of an APIError in err's chain, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
