package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	internal_errors "github.com/forum-api/forum/shared/errors"
	"github.com/forum-api/forum/shared/logger"
	"github.com/forum-api/forum/shared/utils"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger puts a request scoped slog logger into the context and logs one line per request.
// Expects chi's RequestID middleware to run first.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		l := logger.Log.With(
			"request_id", chimw.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
		)
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(logger.Into(r.Context(), l)))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		attrs := []any{"status", status, "duration", time.Since(start), "bytes", ww.BytesWritten()}
		if status >= http.StatusInternalServerError {
			l.Error("request failed", attrs...)
			return
		}
		l.Info("request", attrs...)
	})
}

// Recover turns a panic into a 500 envelope.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.From(r.Context()).Error("panic recovered", "panic", rec, "stack", string(debug.Stack()))
				utils.WriteErrorAndStatusCode(w, &internal_errors.ErrorWithStatusCode{Message: "unexpected server error", StatusCode: http.StatusInternalServerError})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
