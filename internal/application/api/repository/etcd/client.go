package etcd

import (
	"context"
	"time"

	"github.com/pkg/errors"
	clientv3 "go.etcd.io/etcd/client/v3"
)

// Client used to access etcd.
type Client struct {
	Username    string
	Password    string
	Endpoints   []string
	DialTimeout time.Duration

	base *clientv3.Client
}

// Init check the parameters to initialize the connection.
func (c *Client) Init() error {
	if len(c.Endpoints) == 0 {
		return errors.New("missing Endpoints")
	}

	if c.DialTimeout < 0 {
		return errors.New("invalid DialTimeout")
	}

	return nil
}

// Start initialize the connection.
func (c *Client) Start() error {
	base, err := clientv3.New(clientv3.Config{
		Endpoints:   c.Endpoints,
		DialTimeout: c.DialTimeout,
		Username:    c.Username,
		Password:    c.Password,
	})
	if err != nil {
		return errors.Wrap(err, "error during etcd connection")
	}
	c.base = base

	return nil
}

// Stop the connection.
func (c *Client) Stop() error {
	return c.base.Close()
}

// Ping fetch the status of the first endpoint.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.base.Status(ctx, c.Endpoints[0])
	return errors.Wrap(err, "error during ping")
}
