package api

import (
	"context"
	coreHTTP "net/http"
	"runtime"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/diegobernardes/strata/internal/infra/config"
	infraLog "github.com/diegobernardes/strata/internal/infra/log"
)

// Variables set with ldflags during compilation.
var (
	Version   = ""
	BuildTime = ""
	Commit    = ""
	GoVersion = runtime.Version()
)

const shutdownTimeout = 10 * time.Second

// Client is the entrypoint to start the document store.
type Client struct {
	Config string

	config  *config.Client
	logger  log.Logger
	backend *backend
}

// Init parse the configuration and prepare the dependencies. Nothing is connected yet.
func (c *Client) Init() error {
	c.config = &config.Client{Content: c.Config}
	if err := c.config.Init(); err != nil {
		return errors.Wrap(err, "error during config initialization")
	}
	if err := c.configValidateAndSetDefaultValues(); err != nil {
		return err
	}

	logClient := infraLog.Client{Config: c.config}
	if err := logClient.Init(); err != nil {
		return errors.Wrap(err, "error during log initialization")
	}
	c.logger = logClient.Logger()

	backend, err := newBackend(c.config)
	if err != nil {
		return errors.Wrap(err, "error during repository initialization")
	}
	c.backend = backend

	return nil
}

// Setup create the structures needed by the configured repository engine.
func (c *Client) Setup(ctx context.Context) error {
	level.Info(c.logger).Log("message", "setup started", "engine", c.backend.engine)
	if err := c.backend.setup(ctx); err != nil {
		return errors.Wrap(err, "error during repository setup")
	}
	level.Info(c.logger).Log("message", "setup finished")
	return nil
}

// Start the service and block until the context is done or the server fails.
func (c *Client) Start(ctx context.Context) error {
	level.Info(c.logger).Log("message", "starting strata", "engine", c.backend.engine)

	if err := c.backend.start(ctx); err != nil {
		return errors.Wrap(err, "error during repository start")
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := c.backend.stop(stopCtx); err != nil {
			level.Error(c.logger).Log("message", "error during repository stop", "error", err.Error())
		}
	}()

	router, err := c.router()
	if err != nil {
		return errors.Wrap(err, "error during router initialization")
	}

	server := &coreHTTP.Server{Addr: c.config.GetString("http.addr"), Handler: router}
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		level.Info(c.logger).Log("message", "strata started", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != coreHTTP.ErrServerClosed {
			return errors.Wrap(err, "error during server listen")
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		level.Info(c.logger).Log("message", "stopping strata")
		return errors.Wrap(server.Shutdown(shutdownCtx), "error during server shutdown")
	})

	return g.Wait()
}
