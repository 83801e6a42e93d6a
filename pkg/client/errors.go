package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a closed classification of API failures, derived from the HTTP
// status code. Message wording is left to the caller; the kind is what
// call sites branch on.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidInput
	KindUnauthorized
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

func kindFromStatus(code int) Kind {
	switch code {
	case http.StatusBadRequest:
		return KindInvalidInput
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindUnauthorized
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	default:
		return KindUnknown
	}
}

// APIError represents a non-2xx HTTP response from the API.
type APIError struct {
	StatusCode int
	Kind       Kind
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsStatus returns true if err (or any wrapped error) is an APIError with
// the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}
	return false
}

// IsKind returns true if err (or any wrapped error) is an APIError of the
// given kind.
func IsKind(err error, k Kind) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind == k
	}
	return false
}

// Message extracts the server-supplied message from err, or "" when err
// is not an APIError.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
