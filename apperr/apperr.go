// Package apperr defines the error taxonomy surfaced by the Lunarly API.
// Every failure leaving a service carries a Kind; the HTTP layer maps the
// kind to a status code and a stable error string, so internal details
// never leak to the caller.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	Unauthenticated      Kind = "unauthenticated"
	InvalidArgument      Kind = "invalid_argument"
	PermissionDenied     Kind = "permission_denied"
	NotFound             Kind = "not_found"
	AlreadyExists        Kind = "already_exists"
	ResourceExhausted    Kind = "resource_exhausted"
	ServiceNotConfigured Kind = "service_not_configured"
	ModelUnavailable     Kind = "model_unavailable"
	Internal             Kind = "internal"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind carried by err, or Internal when err is not
// classified. An already-classified error keeps its kind even when
// wrapped further up the stack.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// MessageOf returns the caller-safe message for err. Unclassified errors
// get a generic message so internals are not exposed.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "unexpected error"
}

// HTTPStatus maps an error kind to its HTTP status code.
func HTTPStatus(kind Kind) int {
	switch kind {
	case Unauthenticated:
		return http.StatusUnauthorized
	case InvalidArgument:
		return http.StatusBadRequest
	case PermissionDenied:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case AlreadyExists:
		return http.StatusConflict
	case ResourceExhausted:
		return http.StatusTooManyRequests
	case ServiceNotConfigured, ModelUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
