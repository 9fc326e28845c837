// Package apperror classifies failures into the kinds the HTTP layer reports.
package apperror

import (
	"errors"
	"net/http"
)

// Kind is the category of a failure. Each kind maps to one HTTP status.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindMisconfigured
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindMisconfigured:
		return "misconfigured"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// Error carries a kind, a client-facing message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func newError(k Kind, msg string) *Error { return &Error{Kind: k, Message: msg} }

func BadRequest(msg string) *Error    { return newError(KindBadRequest, msg) }
func Unauthorized(msg string) *Error  { return newError(KindUnauthorized, msg) }
func Forbidden(msg string) *Error     { return newError(KindForbidden, msg) }
func NotFound(msg string) *Error      { return newError(KindNotFound, msg) }
func Conflict(msg string) *Error      { return newError(KindConflict, msg) }
func Misconfigured(msg string) *Error { return newError(KindMisconfigured, msg) }
func Unavailable(msg string) *Error   { return newError(KindUnavailable, msg) }

// Internal wraps an unexpected failure. The cause's message is what the client sees.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Err: err}
}

// KindOf reports the kind of err. Errors that were never classified are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err was classified as kind k.
func Is(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}

// StatusOf maps a kind to its HTTP status code.
func StatusOf(k Kind) int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
