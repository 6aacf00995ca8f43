package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Log is a middleware to log the requests.
type Log struct {
	logger log.Logger
}

// Handler process and log requests.
func (l Log) Handler(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		t1 := time.Now()
		reqID := middleware.GetReqID(r.Context())
		l.logger.Log(
			"requestId", reqID,
			"method", r.Method,
			"endpoint", r.RequestURI,
			"protocol", r.Proto,
			"message", "request started",
		)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		l.logger.Log(
			"requestId", reqID,
			"duration", time.Since(t1),
			"contentLength", ww.BytesWritten(),
			"status", ww.Status(),
			"message", "request finished",
		)
	}

	return http.HandlerFunc(fn)
}

// NewLog return a configured middleware to log the requests.
func NewLog(logger log.Logger) Log {
	logger = log.With(logger, "package", "infra/http/middleware")
	logger = level.Debug(logger)
	return Log{logger}
}
