package httperr

import (
	"errors"
	"net/http"
)

// Kind classifies a business error and decides the HTTP status it maps to.
type Kind string

const (
	KindValidation      Kind = "VALIDATION_ERROR"
	KindBadRequest      Kind = "BAD_REQUEST"
	KindUnauthorized    Kind = "UNAUTHORIZED"
	KindForbidden       Kind = "FORBIDDEN"
	KindNotFound        Kind = "NOT_FOUND"
	KindConflict        Kind = "CONFLICT"
	KindTooManyRequests Kind = "TOO_MANY_REQUESTS"
	KindInternal        Kind = "INTERNAL_ERROR"
)

func (k Kind) Status() int {
	switch k {
	case KindValidation, KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	Details any
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

// WithDetails returns a copy of e carrying extra machine-readable context.
func (e BusinessError) WithDetails(details any) BusinessError {
	e.Details = details
	return e
}

// ErrBusiness is a generic business-rule violation identified only by its code.
func ErrBusiness(code string) error {
	return BusinessError{Kind: KindBadRequest, Code: code, Message: code}
}

func New(kind Kind, code, message string) BusinessError {
	return BusinessError{Kind: kind, Code: code, Message: message}
}

func ErrValidation(code, message string) BusinessError {
	return New(KindValidation, code, message)
}

func ErrBadRequest(code, message string) BusinessError {
	return New(KindBadRequest, code, message)
}

func ErrUnauthorized(code, message string) BusinessError {
	return New(KindUnauthorized, code, message)
}

func ErrForbidden(code, message string) BusinessError {
	return New(KindForbidden, code, message)
}

func ErrNotFound(code, message string) BusinessError {
	return New(KindNotFound, code, message)
}

func ErrConflict(code, message string) BusinessError {
	return New(KindConflict, code, message)
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// KindOf returns the kind of a business error, or KindInternal for anything else.
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindInternal
}
