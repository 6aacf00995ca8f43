package cassandra

import (
	"fmt"
	"time"

	"github.com/gocql/gocql"
	"github.com/pkg/errors"
)

// Client used to access Cassandra database.
type Client struct {
	Hosts         []string
	Port          int
	Keyspace      string
	AvoidKeyspace bool
	Timeout       time.Duration

	Session *gocql.Session
}

// Init check the parameters to initialize the connection.
func (c *Client) Init() error {
	if len(c.Hosts) == 0 {
		return errors.New("missing Hosts")
	}

	if c.Port < 0 || c.Port > 65535 {
		return errors.New("invalid Port")
	}

	if c.Keyspace == "" {
		return errors.New("missing Keyspace")
	}

	if c.Timeout < 0 {
		return errors.New("invalid Timeout")
	}

	return nil
}

// Start initialize the connection.
func (c *Client) Start() error {
	cluster := gocql.NewCluster(c.Hosts...)
	if c.Port > 0 {
		cluster.Port = c.Port
	}

	if !c.AvoidKeyspace {
		cluster.Keyspace = c.Keyspace
	}

	if c.Timeout > 0 {
		cluster.Timeout = c.Timeout
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return errors.Wrap(err, "error during session creation")
	}

	c.Session = session
	return nil
}

// Stop the connection.
func (c *Client) Stop() { c.Session.Close() }

// Setup the database. The session must be started with AvoidKeyspace when the keyspace does not
// exist yet.
func (c *Client) Setup() error {
	for _, statement := range setupStatements(c.Keyspace) {
		if err := c.Session.Query(statement).Exec(); err != nil {
			return errors.Wrap(err, "error during setup")
		}
	}
	return nil
}

func setupStatements(keyspace string) []string {
	statements := []string{
		`CREATE KEYSPACE IF NOT EXISTS %s
		 WITH REPLICATION = {
		   'class' : 'SimpleStrategy',
		   'replication_factor' : 1
		 }`,

		`CREATE TABLE IF NOT EXISTS %s.documents (
			id         varchar PRIMARY KEY,
			revision   varchar,
			payload    text,
			updated_at timestamp
		)`,
	}

	for i, statement := range statements {
		statements[i] = fmt.Sprintf(statement, keyspace)
	}
	return statements
}
