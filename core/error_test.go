package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodeStatusCode(t *testing.T) {
	for code, status := range map[ErrorCode]int{
		ErrorCodeBadRequest:          400,
		ErrorCodeInvalidCredentials:  400,
		ErrorCodeValidationFailed:    400,
		ErrorCodeMethodNotAllowed:    405,
		ErrorCodeNotFound:            404,
		ErrorCodeStoreError:          500,
		ErrorCodeStoreUnavailable:    502,
		ErrorCodeInternalServerError: 500,
	} {
		assert.Equal(t, status, code.StatusCode(), "code: %s", code)
	}
}

func TestErrorCause(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := NewError(ErrorCodeStoreUnavailable, "cluster unreachable").WithCause(cause)

	assert.Equal(t, "cluster unreachable: dial tcp: timeout", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestAsError(t *testing.T) {
	assert.Nil(t, AsError(nil))

	err := NewError(ErrorCodeNotFound, "missing")
	assert.Same(t, err, AsError(err))

	wrapped := AsError(errors.New("boom"))
	assert.Equal(t, ErrorCodeInternalServerError, wrapped.Code)
	assert.Equal(t, 500, wrapped.StatusCode)
}
