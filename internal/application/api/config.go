package api

import (
	"fmt"
	"strings"
)

func (c *Client) configValidateAndSetDefaultValues() error {
	var keys []string

	fn := func(key string, value interface{}) {
		keys = append(keys, key)
		if c.config.IsSet(key) {
			return
		}
		c.config.Set(key, value)
	}

	fn("log.level", "debug")
	fn("log.output", "stdout")
	fn("log.format", "human")

	fn("http.addr", ":8080")
	fn("http.timeout", "5s")
	fn("http.base-uri", "/store")
	fn("http.health.liveness", "/health/live")
	fn("http.health.readiness", "/health/ready")

	fn("store.require-revision", false)

	fn("repository.engine", engineMemory)

	fn("repository.mongodb.uri", "mongodb://localhost:27017")
	fn("repository.mongodb.database", "strata")
	fn("repository.mongodb.collection", "documents")
	fn("repository.mongodb.timeout", "1s")

	fn("repository.sqlite.path", "strata.db")

	fn("repository.cassandra.hosts", []string{"127.0.0.1"})
	fn("repository.cassandra.port", 9042)
	fn("repository.cassandra.keyspace", "strata")
	fn("repository.cassandra.timeout", "600ms")

	fn("repository.etcd.endpoints", []string{"localhost:2379"})
	fn("repository.etcd.dial-timeout", "5s")
	fn("repository.etcd.username", "")
	fn("repository.etcd.password", "")
	fn("repository.etcd.prefix", "/strata")

	entries := c.config.UnknowEntries(keys)
	if len(entries) > 0 {
		return fmt.Errorf("invalid config entries '%s'", strings.Join(entries, "', '"))
	}

	if !strings.HasPrefix(c.config.GetString("http.base-uri"), "/") {
		return fmt.Errorf("invalid http.base-uri config, expected to start with '/'")
	}
	return nil
}
