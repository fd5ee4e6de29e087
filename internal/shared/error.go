package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MunifTanjim/streamsave/core"
	"github.com/MunifTanjim/streamsave/internal/server"
)

// CoreError aliases core.Error so it can be embedded without the field name
// shadowing the promoted Error method.
type CoreError = core.Error

type APIError struct {
	*CoreError
	RequestId string `json:"request_id,omitempty"`
}

type errorResponse struct {
	Error *APIError `json:"error"`
}

func (e *APIError) Send(w http.ResponseWriter, r *http.Request) {
	reqCtx := server.GetReqCtx(r)
	reqCtx.Error = e
	e.RequestId = reqCtx.RequestId

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: e}); err != nil {
		reqCtx.Log.Error("failed to write error response", "error", err)
	}
}

func newAPIError(code core.ErrorCode, msg string) *APIError {
	return &APIError{CoreError: core.NewError(code, msg)}
}

func ErrorBadRequest(r *http.Request, msg string) *APIError {
	if msg == "" {
		msg = "bad request"
	}
	return newAPIError(core.ErrorCodeBadRequest, msg)
}

func ErrorNotFound(r *http.Request, msg string) *APIError {
	if msg == "" {
		msg = "not found"
	}
	return newAPIError(core.ErrorCodeNotFound, msg)
}

func ErrorMethodNotAllowed(r *http.Request) *APIError {
	return newAPIError(core.ErrorCodeMethodNotAllowed, "method not allowed")
}

func ErrorInternalServerError(r *http.Request, msg string) *APIError {
	if msg == "" {
		msg = "internal server error"
	}
	return newAPIError(core.ErrorCodeInternalServerError, msg)
}

// AsAPIError preserves the taxonomy of core errors and hides everything else
// behind a generic server error.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	var coreErr *core.Error
	if errors.As(err, &coreErr) {
		return &APIError{CoreError: coreErr}
	}
	return &APIError{CoreError: core.AsError(err)}
}
