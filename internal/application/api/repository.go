package api

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/diegobernardes/strata/internal"
	"github.com/diegobernardes/strata/internal/application/api/repository/cassandra"
	"github.com/diegobernardes/strata/internal/application/api/repository/etcd"
	"github.com/diegobernardes/strata/internal/application/api/repository/memory"
	"github.com/diegobernardes/strata/internal/application/api/repository/mongodb"
	"github.com/diegobernardes/strata/internal/application/api/repository/sqlite"
	"github.com/diegobernardes/strata/internal/infra/config"
)

const (
	engineMemory    = "memory"
	engineMongoDB   = "mongodb"
	engineSQLite    = "sqlite"
	engineCassandra = "cassandra"
	engineEtcd      = "etcd"
)

type persistence interface {
	Insert(ctx context.Context, doc internal.Document) (int64, error)
	FindByID(ctx context.Context, id string) (*internal.Document, error)
	Replace(
		ctx context.Context, id string, expected internal.Revision, doc internal.Document,
	) (int64, error)
	Delete(ctx context.Context, id string, expected internal.Revision) (int64, error)
}

// backend hold the storage engine lifecycle. The persistence is only available after start.
type backend struct {
	engine      string
	persistence persistence

	start func(ctx context.Context) error
	stop  func(ctx context.Context) error
	ping  func(ctx context.Context) error
	setup func(ctx context.Context) error
}

func newBackend(cfg *config.Client) (*backend, error) {
	engine := cfg.GetString("repository.engine")
	switch engine {
	case engineMemory:
		return newMemoryBackend(), nil
	case engineMongoDB:
		return newMongoDBBackend(cfg)
	case engineSQLite:
		return newSQLiteBackend(cfg)
	case engineCassandra:
		return newCassandraBackend(cfg)
	case engineEtcd:
		return newEtcdBackend(cfg)
	default:
		return nil, fmt.Errorf("invalid repository.engine config '%s'", engine)
	}
}

func noop(context.Context) error { return nil }

func newMemoryBackend() *backend {
	b := &backend{engine: engineMemory, stop: noop, setup: noop}
	b.start = func(context.Context) error {
		document := memory.NewDocument()
		b.persistence = document
		b.ping = document.Ping
		return nil
	}
	return b
}

func newMongoDBBackend(cfg *config.Client) (*backend, error) {
	timeout, err := cfg.GetDuration("repository.mongodb.timeout")
	if err != nil {
		return nil, err
	}

	client := &mongodb.Client{URI: cfg.GetString("repository.mongodb.uri"), Timeout: timeout}
	if err := client.Init(); err != nil {
		return nil, errors.Wrap(err, "error during mongodb client initialization")
	}

	newDocument := func() (*mongodb.Document, error) {
		document := &mongodb.Document{
			Database:   client.Database(cfg.GetString("repository.mongodb.database")),
			Collection: cfg.GetString("repository.mongodb.collection"),
			Timeout:    timeout,
		}
		return document, errors.Wrap(document.Init(), "error during mongodb document initialization")
	}

	b := &backend{engine: engineMongoDB, stop: client.Stop, ping: client.Ping}
	b.start = func(ctx context.Context) error {
		if err := client.Start(ctx); err != nil {
			return err
		}

		document, err := newDocument()
		if err != nil {
			return err
		}
		b.persistence = document
		return nil
	}
	b.setup = func(ctx context.Context) error {
		if err := client.Start(ctx); err != nil {
			return err
		}
		defer client.Stop(ctx) // nolint

		document, err := newDocument()
		if err != nil {
			return err
		}
		return document.EnsureCollection(ctx)
	}
	return b, nil
}

func newSQLiteBackend(cfg *config.Client) (*backend, error) {
	client := &sqlite.Client{Path: cfg.GetString("repository.sqlite.path")}
	if err := client.Init(); err != nil {
		return nil, errors.Wrap(err, "error during sqlite client initialization")
	}

	b := &backend{
		engine: engineSQLite,
		stop:   func(context.Context) error { return client.Stop() },
		ping:   client.Ping,
	}
	b.start = func(ctx context.Context) error {
		if err := client.Start(ctx); err != nil {
			return err
		}

		document := &sqlite.Document{DB: client.DB}
		if err := document.Init(); err != nil {
			return errors.Wrap(err, "error during sqlite document initialization")
		}
		b.persistence = document
		return nil
	}
	b.setup = func(ctx context.Context) error {
		if err := client.Start(ctx); err != nil {
			return err
		}
		defer client.Stop() // nolint

		return client.Setup(ctx)
	}
	return b, nil
}

func newCassandraBackend(cfg *config.Client) (*backend, error) {
	timeout, err := cfg.GetDuration("repository.cassandra.timeout")
	if err != nil {
		return nil, err
	}

	newClient := func(avoidKeyspace bool) (*cassandra.Client, error) {
		client := &cassandra.Client{
			Hosts:         cfg.GetStringSlice("repository.cassandra.hosts"),
			Port:          cfg.GetInt("repository.cassandra.port"),
			Keyspace:      cfg.GetString("repository.cassandra.keyspace"),
			AvoidKeyspace: avoidKeyspace,
			Timeout:       timeout,
		}
		return client, errors.Wrap(client.Init(), "error during cassandra client initialization")
	}

	client, err := newClient(false)
	if err != nil {
		return nil, err
	}

	b := &backend{engine: engineCassandra}
	b.start = func(context.Context) error {
		if err := client.Start(); err != nil {
			return err
		}

		document := &cassandra.Document{Session: client.Session}
		if err := document.Init(); err != nil {
			return errors.Wrap(err, "error during cassandra document initialization")
		}
		b.persistence = document
		b.ping = document.Ping
		return nil
	}
	b.stop = func(context.Context) error {
		client.Stop()
		return nil
	}
	b.setup = func(context.Context) error {
		setupClient, err := newClient(true)
		if err != nil {
			return err
		}

		if err := setupClient.Start(); err != nil {
			return err
		}
		defer setupClient.Stop()

		return setupClient.Setup()
	}
	return b, nil
}

func newEtcdBackend(cfg *config.Client) (*backend, error) {
	dialTimeout, err := cfg.GetDuration("repository.etcd.dial-timeout")
	if err != nil {
		return nil, err
	}

	client := &etcd.Client{
		Endpoints:   cfg.GetStringSlice("repository.etcd.endpoints"),
		DialTimeout: dialTimeout,
		Username:    cfg.GetString("repository.etcd.username"),
		Password:    cfg.GetString("repository.etcd.password"),
	}
	if err := client.Init(); err != nil {
		return nil, errors.Wrap(err, "error during etcd client initialization")
	}

	document := &etcd.Document{Client: client, Prefix: cfg.GetString("repository.etcd.prefix")}
	if err := document.Init(); err != nil {
		return nil, errors.Wrap(err, "error during etcd document initialization")
	}

	b := &backend{
		engine:      engineEtcd,
		persistence: document,
		start:       func(context.Context) error { return client.Start() },
		stop:        func(context.Context) error { return client.Stop() },
		ping:        document.Ping,
		setup:       noop,
	}
	return b, nil
}
