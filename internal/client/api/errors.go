package api

import (
	"errors"
	"fmt"

	"github.com/alumnihub/portal-cli/internal/common"
)

var (
	// ErrUnavailable covers timeouts and connection failures. Requests are
	// never retried automatically.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is returned for 401 responses, after the session has
	// been invalidated.
	ErrUnauthorized = common.ErrorUnauthorized

	// ErrNotFound is returned when a fetched entity does not exist.
	ErrNotFound = common.ErrorNotFound
)

// Error is the normalized failure envelope returned by the wrapper. Message
// carries the server's explanation when one was parseable; Errors carries
// per-field server-side validation messages, verbatim.
type Error struct {
	// Status is the HTTP status code, or 0 for network-level failures.
	Status int

	// Message explains the failure. May be empty when the server returned
	// no parseable body; use Fallback to substitute a caller default.
	Message string

	// Errors holds field-level validation errors passed through from the
	// server, if any.
	Errors map[string]string

	// Category is one of the sentinel errors above, or nil for a plain
	// server error.
	Category error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Category != nil {
		return e.Category.Error()
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

func (e *Error) Unwrap() error {
	return e.Category
}

// Fallback substitutes msg for the error's message when the server supplied
// none. Non-API errors are wrapped into a plain *Error so callers always
// see the normalized shape.
func Fallback(err error, msg string) error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return &Error{Message: msg, Category: err}
	}
	if apiErr.Message == "" {
		apiErr.Message = msg
	}
	return apiErr
}
