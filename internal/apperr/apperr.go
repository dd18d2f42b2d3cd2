// Package apperr defines the error kinds surfaced by the delivery pipeline
// and their HTTP status mapping.
package apperr

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindGone            Kind = "gone"
	KindPaymentRequired Kind = "payment_required"
	KindValidation      Kind = "validation_error"
	KindUpstream        Kind = "upstream_failure"
)

// Error carries a machine-readable kind alongside the human message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Gone(message string) *Error {
	return &Error{Kind: KindGone, Message: message}
}

func PaymentRequired(message string) *Error {
	return &Error{Kind: KindPaymentRequired, Message: message}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Upstream(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

// KindOf extracts the kind from err, or KindUpstream if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUpstream
}

// Status maps an error kind to its HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindGone:
		return http.StatusGone
	case KindPaymentRequired:
		return http.StatusPaymentRequired
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
