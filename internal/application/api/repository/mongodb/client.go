package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client used to access MongoDB.
type Client struct {
	URI     string
	Timeout time.Duration

	base *mongo.Client
}

// Init check the parameters to initialize the connection.
func (c *Client) Init() error {
	if c.URI == "" {
		return errors.New("missing URI")
	}

	if c.Timeout < 0 {
		return errors.New("invalid Timeout")
	}
	return nil
}

// Start initialize the connection.
func (c *Client) Start(ctx context.Context) error {
	opts := options.Client().ApplyURI(c.URI)
	if c.Timeout > 0 {
		opts = opts.SetConnectTimeout(c.Timeout).SetServerSelectionTimeout(c.Timeout)
	}

	base, err := mongo.Connect(ctx, opts)
	if err != nil {
		return errors.Wrap(err, "error during connection")
	}
	c.base = base
	return nil
}

// Stop the connection.
func (c *Client) Stop(ctx context.Context) error {
	return errors.Wrap(c.base.Disconnect(ctx), "error during disconnect")
}

// Ping the primary.
func (c *Client) Ping(ctx context.Context) error {
	return errors.Wrap(c.base.Ping(ctx, readpref.Primary()), "error during ping")
}

// Database return a handle to the database.
func (c *Client) Database(name string) *mongo.Database {
	return c.base.Database(name)
}
