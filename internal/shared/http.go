package shared

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MunifTanjim/streamsave/core"
	"github.com/MunifTanjim/streamsave/internal/server"
)

func IsMethod(r *http.Request, method string) bool {
	return r.Method == method
}

type MiddlewareFunc func(http.HandlerFunc) http.HandlerFunc

func Middleware(mws ...MiddlewareFunc) MiddlewareFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		for i := len(mws) - 1; i >= 0; i-- {
			next = mws[i](next)
		}
		return next
	}
}

func EnableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		if IsMethod(r, http.MethodOptions) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, r)
	}
}

func SendError(w http.ResponseWriter, r *http.Request, err error) {
	AsAPIError(err).Send(w, r)
}

func SendResponse(w http.ResponseWriter, r *http.Request, statusCode int, data any, err error) {
	if err != nil {
		SendError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		server.GetReqCtx(r).Log.Error("failed to write response", "error", err)
	}
}

func SendText(w http.ResponseWriter, r *http.Request, statusCode int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, err := w.Write([]byte(body)); err != nil {
		server.GetReqCtx(r).Log.Error("failed to write response", "error", err)
	}
}

func ReadRequestBodyJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return core.NewError(core.ErrorCodeBadRequest, "malformed request body").WithCause(err)
	}
	return nil
}

// GetPathValue strips the trailing `.json` Stremio appends to resource path
// segments.
func GetPathValue(r *http.Request, name string) string {
	return strings.TrimSuffix(r.PathValue(name), ".json")
}
