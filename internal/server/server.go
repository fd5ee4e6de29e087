package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/MunifTanjim/streamsave/core"
	"github.com/MunifTanjim/streamsave/internal/logger"
	"github.com/rs/xid"
)

var log = logger.Scoped("http")

type ReqCtx struct {
	RequestId string
	StartTime time.Time
	Log       *slog.Logger
	Error     error
}

type reqCtxKey struct{}

func GetReqCtx(r *http.Request) *ReqCtx {
	if ctx, ok := r.Context().Value(reqCtxKey{}).(*ReqCtx); ok {
		return ctx
	}
	// handlers invoked outside the middleware, e.g. in tests
	return &ReqCtx{
		RequestId: xid.New().String(),
		StartTime: time.Now(),
		Log:       log,
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// WithRequestContext attaches a per-request id and scoped logger, and logs
// every request on the way out.
func WithRequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqCtx := &ReqCtx{
			RequestId: xid.New().String(),
			StartTime: time.Now(),
		}
		reqCtx.Log = log.With("req.id", reqCtx.RequestId)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), reqCtxKey{}, reqCtx)))

		attrs := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(reqCtx.StartTime).String(),
		}
		if ip := core.GetRequestIP(r); ip != "" {
			attrs = append(attrs, "ip", ip)
		}
		if reqCtx.Error != nil {
			attrs = append(attrs, "error", reqCtx.Error)
		}
		if rec.status >= 500 {
			reqCtx.Log.Error("request", attrs...)
		} else {
			reqCtx.Log.Info("request", attrs...)
		}
	})
}
