package core

import (
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeBadRequest          ErrorCode = "BAD_REQUEST"
	ErrorCodeInvalidCredentials  ErrorCode = "INVALID_CREDENTIALS"
	ErrorCodeMethodNotAllowed    ErrorCode = "METHOD_NOT_ALLOWED"
	ErrorCodeNotFound            ErrorCode = "NOT_FOUND"
	ErrorCodeStoreError          ErrorCode = "STORE_ERROR"
	ErrorCodeStoreUnavailable    ErrorCode = "STORE_UNAVAILABLE"
	ErrorCodeValidationFailed    ErrorCode = "VALIDATION_FAILED"
	ErrorCodeInternalServerError ErrorCode = "INTERNAL_SERVER_ERROR"
)

func (code ErrorCode) StatusCode() int {
	switch code {
	case ErrorCodeBadRequest, ErrorCodeInvalidCredentials, ErrorCodeValidationFailed:
		return http.StatusBadRequest
	case ErrorCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeStoreUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Code       ErrorCode `json:"code"`
	Msg        string    `json:"message"`
	StatusCode int       `json:"-"`

	cause error
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.cause != nil {
		if msg != "" {
			msg += ": "
		}
		msg += e.cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

func NewError(code ErrorCode, msg string) *Error {
	return &Error{
		Code:       code,
		Msg:        msg,
		StatusCode: code.StatusCode(),
	}
}

// AsError coerces any error into *Error, wrapping unknown ones as
// INTERNAL_SERVER_ERROR.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return NewError(ErrorCodeInternalServerError, "unexpected error").WithCause(err)
}
