// Package apperr normalizes backend HTTP failures into a small error
// taxonomy. Every non-2xx response is mapped exactly once, at the innermost
// interceptor stage, and the normalized error is the single source of truth
// for everything downstream (refresh handling, notifications, callers).
package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a normalized backend failure.
type Kind string

const (
	KindValidation   Kind = "Validation"
	KindBusiness     Kind = "Business"
	KindUnauthorized Kind = "Unauthorized"
	KindForbidden    Kind = "Forbidden"
	KindNotFound     Kind = "NotFound"
	KindRateLimit    Kind = "RateLimit"
	KindNetwork      Kind = "Network"
	KindUnexpected   Kind = "Unexpected"
)

// Error is a normalized backend failure. Status is the original HTTP status
// (0 for connectivity failures). TraceID, when present, identifies the
// backend-issued trace used to deduplicate user-facing notifications.
type Error struct {
	Kind    Kind
	Message string
	Status  int
	TraceID string
	Details map[string][]string

	cause error
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// IsKind reports whether err is a normalized error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}

// problem mirrors the RFC 7807-style body the backend emits:
// detail, title, a field-error map for validation failures, and a traceId.
type problem struct {
	Detail  string              `json:"detail"`
	Title   string              `json:"title"`
	Errors  map[string][]string `json:"errors"`
	TraceID string              `json:"traceId"`
}

// FromTransport wraps a connectivity-level failure (DNS, refused connection,
// canceled dial) as a Network error. Mirrors the browser's "status 0" case.
func FromTransport(err error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Message: "No connection to the server. Check your network.",
		Status:  0,
		cause:   err,
	}
}

// FromResponse maps an HTTP status and (possibly empty or non-JSON) response
// body into a normalized Error.
//
// Mapping rules, in order:
//   - 401 → Unauthorized, 403 → Forbidden, 404 → NotFound, 429 → RateLimit
//   - 400/422 with a field-error map → Validation, message = first field message
//   - 409, or 422 without a map → Business
//   - anything else → Unexpected
//
// The message prefers the server's detail, then title, then a generic fallback.
func FromResponse(status int, body []byte) *Error {
	var p problem
	if len(body) > 0 {
		// A non-JSON body falls through to the generic message.
		_ = json.Unmarshal(body, &p)
	}

	e := &Error{
		Status:  status,
		TraceID: p.TraceID,
		Message: firstNonEmpty(p.Detail, p.Title, "An unexpected error occurred."),
	}

	switch {
	case status == http.StatusUnauthorized:
		e.Kind = KindUnauthorized
		e.Message = firstNonEmpty(p.Detail, "Not authorized. You must sign in.")
	case status == http.StatusForbidden:
		e.Kind = KindForbidden
		e.Message = firstNonEmpty(p.Detail, "You do not have permission for this action.")
	case status == http.StatusNotFound:
		e.Kind = KindNotFound
		e.Message = firstNonEmpty(p.Detail, "Resource not found.")
	case (status == http.StatusBadRequest || status == http.StatusUnprocessableEntity) && len(p.Errors) > 0:
		e.Kind = KindValidation
		e.Message = firstValidationMessage(p.Errors)
		e.Details = p.Errors
	case status == http.StatusConflict || status == http.StatusUnprocessableEntity:
		e.Kind = KindBusiness
		e.Message = firstNonEmpty(p.Detail, p.Title, "Operation not valid.")
	case status == http.StatusTooManyRequests:
		e.Kind = KindRateLimit
		e.Message = firstNonEmpty(p.Detail, "Too many requests. Try again later.")
	default:
		e.Kind = KindUnexpected
	}

	return e
}

func firstValidationMessage(errs map[string][]string) string {
	for _, msgs := range errs {
		if len(msgs) > 0 && msgs[0] != "" {
			return msgs[0]
		}
	}
	return "Validation error."
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
