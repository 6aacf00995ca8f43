package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite" // sqlite driver
)

const schema = `CREATE TABLE IF NOT EXISTS documents (
	id         TEXT PRIMARY KEY,
	revision   TEXT NOT NULL,
	payload    TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// Client used to access a SQLite database file.
type Client struct {
	Path string

	DB *sql.DB
}

// Init check the parameters to initialize the connection.
func (c *Client) Init() error {
	if strings.TrimSpace(c.Path) == "" {
		return errors.New("missing Path")
	}
	return nil
}

// Start open the database. The pool is limited to one connection as SQLite allow a single writer.
func (c *Client) Start(ctx context.Context) error {
	dsn := filepath.Clean(c.Path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return errors.Wrap(err, "error during sqlite open")
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return errors.Wrap(err, "error during sqlite ping")
	}

	c.DB = db
	return nil
}

// Stop close the database.
func (c *Client) Stop() error {
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}

// Ping the database.
func (c *Client) Ping(ctx context.Context) error {
	return errors.Wrap(c.DB.PingContext(ctx), "error during ping")
}

// Setup create the tables.
func (c *Client) Setup(ctx context.Context) error {
	_, err := c.DB.ExecContext(ctx, schema)
	return errors.Wrap(err, "error during setup")
}
