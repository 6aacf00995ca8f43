package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	infraHTTP "github.com/diegobernardes/strata/internal/application/api/infra/http"
)

// Recover is used to recover from unhandled panics.
type Recover struct {
	logger log.Logger
	writer *infraHTTP.Writer
}

// Handler process the requests and recover from any panic.
func (rec *Recover) Handler(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if errRaw := recover(); errRaw != nil {
				if errRaw == http.ErrAbortHandler {
					panic(errRaw)
				}

				err := fmt.Errorf("%v", errRaw)
				level.Error(rec.logger).Log(
					"message", "unhandled error", "error", err.Error(), "stacktrace", string(debug.Stack()),
				)

				rec.writer.Error(w, "unhandled error", err, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

// NewRecover return a configured middleware to catch panics.
func NewRecover(logger log.Logger, writer *infraHTTP.Writer) (*Recover, error) {
	if logger == nil {
		return nil, errors.New("logger not found")
	}

	if writer == nil {
		return nil, errors.New("writer not found")
	}

	return &Recover{log.With(logger, "package", "infra/http/middleware"), writer}, nil
}
