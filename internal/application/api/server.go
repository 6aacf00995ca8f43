package api

import (
	"context"
	coreHTTP "net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"

	infraHTTP "github.com/diegobernardes/strata/internal/application/api/infra/http"
	infraMiddleware "github.com/diegobernardes/strata/internal/application/api/infra/http/middleware"
	"github.com/diegobernardes/strata/internal/application/api/service/document"
	documentHTTP "github.com/diegobernardes/strata/internal/application/api/service/document/http"
)

const readinessTimeout = 2 * time.Second

func (c *Client) router() (coreHTTP.Handler, error) {
	writer, err := infraHTTP.NewWriter(c.logger)
	if err != nil {
		return nil, errors.Wrap(err, "error during writer initialization")
	}

	recoverMiddleware, err := infraMiddleware.NewRecover(c.logger, writer)
	if err != nil {
		return nil, errors.Wrap(err, "error during recover middleware initialization")
	}

	timeout, err := c.config.GetDuration("http.timeout")
	if err != nil {
		return nil, err
	}

	handler, err := c.documentHandler(writer)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(infraMiddleware.NewLog(c.logger).Handler)
	r.Use(recoverMiddleware.Handler)
	if timeout > 0 {
		r.Use(middleware.Timeout(timeout))
	}

	r.MethodNotAllowed(func(w coreHTTP.ResponseWriter, r *coreHTTP.Request) {
		writer.Error(w, "method not allowed", nil, coreHTTP.StatusMethodNotAllowed)
	})

	r.NotFound(func(w coreHTTP.ResponseWriter, r *coreHTTP.Request) {
		writer.Error(w, "not found", nil, coreHTTP.StatusNotFound)
	})

	r.Get(c.config.GetString("http.health.liveness"), func(w coreHTTP.ResponseWriter, r *coreHTTP.Request) {
		writer.Response(w, nil, coreHTTP.StatusOK, nil)
	})

	r.Get(c.config.GetString("http.health.readiness"), func(w coreHTTP.ResponseWriter, r *coreHTTP.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if err := c.backend.ping(ctx); err != nil {
			writer.Error(w, "repository unavailable", err, coreHTTP.StatusServiceUnavailable)
			return
		}
		writer.Response(w, nil, coreHTTP.StatusOK, nil)
	})

	r.Route(c.config.GetString("http.base-uri"), func(r chi.Router) {
		r.Get("/*", handler.Show)
		r.Post("/*", handler.Create)
		r.Put("/*", handler.Update)
		r.Delete("/*", handler.Delete)
	})
	return r, nil
}

func (c *Client) documentHandler(writer *infraHTTP.Writer) (*documentHTTP.Handler, error) {
	repository := document.Repository{Persistence: c.backend.persistence}
	if err := repository.Init(); err != nil {
		return nil, errors.Wrap(err, "error during document repository initialization")
	}

	service := document.Service{Repository: repository}
	if err := service.Init(); err != nil {
		return nil, errors.Wrap(err, "error during document service initialization")
	}

	baseURI := strings.TrimSuffix(c.config.GetString("http.base-uri"), "/")
	handler := &documentHTTP.Handler{
		Writer:          writer,
		Service:         service,
		ExtractID:       func(r *coreHTTP.Request) string { return chi.URLParam(r, "*") },
		GenURI:          func(id string) string { return baseURI + "/" + id },
		RequireRevision: c.config.GetBool("store.require-revision"),
		Logger:          c.logger,
	}
	if err := handler.Init(); err != nil {
		return nil, errors.Wrap(err, "error during document handler initialization")
	}
	return handler, nil
}
