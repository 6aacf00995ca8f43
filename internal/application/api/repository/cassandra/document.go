package cassandra

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gocql/gocql"
	"github.com/pkg/errors"

	"github.com/diegobernardes/strata/internal"
)

// Document has the logic to persist the documents. Every write is a lightweight transaction, the
// condition is evaluated by Paxos at the partition that owns the id.
type Document struct {
	Session *gocql.Session
}

// Init check if the struct has everything needed to execute.
func (d *Document) Init() error {
	if d.Session == nil {
		return errors.New("missing Session")
	}
	return nil
}

// Ping execute a trivial query.
func (d Document) Ping(ctx context.Context) error {
	err := d.Session.Query(`SELECT now() FROM system.local`).WithContext(ctx).Exec()
	return errors.Wrap(err, "error during ping")
}

// Insert a document if there is none with the same id.
func (d Document) Insert(ctx context.Context, doc internal.Document) (int64, error) {
	query := d.Session.Query(
		`INSERT INTO documents (id, revision, payload, updated_at) VALUES (?, ?, ?, ?) IF NOT EXISTS`,
		doc.ID, doc.Revision.String(), string(doc.Payload), time.Now().UTC(),
	)
	return d.apply(ctx, query, "error during insert")
}

// FindByID fetch a document by id.
func (d Document) FindByID(ctx context.Context, id string) (*internal.Document, error) {
	var revision, payload string
	err := d.Session.
		Query(`SELECT revision, payload FROM documents WHERE id = ?`, id).
		WithContext(ctx).
		Scan(&revision, &payload)
	if err == gocql.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "error during find")
	}

	return &internal.Document{
		ID:       id,
		Revision: internal.Revision(revision),
		Payload:  json.RawMessage(payload),
	}, nil
}

// Replace a document if the stored revision matches the expected one.
func (d Document) Replace(
	ctx context.Context, id string, expected internal.Revision, doc internal.Document,
) (int64, error) {
	statement, args := replaceStatement(id, expected, doc, time.Now().UTC())
	return d.apply(ctx, d.Session.Query(statement, args...), "error during replace")
}

// Delete a document if the stored revision matches the expected one.
func (d Document) Delete(ctx context.Context, id string, expected internal.Revision) (int64, error) {
	statement, args := deleteStatement(id, expected)
	return d.apply(ctx, d.Session.Query(statement, args...), "error during delete")
}

func (Document) apply(ctx context.Context, query *gocql.Query, message string) (int64, error) {
	applied, err := query.WithContext(ctx).MapScanCAS(make(map[string]interface{}))
	if err != nil {
		return 0, errors.Wrap(err, message)
	}

	if !applied {
		return 0, nil
	}
	return 1, nil
}

func replaceStatement(
	id string, expected internal.Revision, doc internal.Document, updatedAt time.Time,
) (string, []interface{}) {
	statement := `UPDATE documents SET revision = ?, payload = ?, updated_at = ? WHERE id = ?`
	args := []interface{}{doc.Revision.String(), string(doc.Payload), updatedAt, id}
	return condition(statement, args, expected)
}

func deleteStatement(id string, expected internal.Revision) (string, []interface{}) {
	return condition(`DELETE FROM documents WHERE id = ?`, []interface{}{id}, expected)
}

func condition(
	statement string, args []interface{}, expected internal.Revision,
) (string, []interface{}) {
	if expected.Empty() {
		return statement + " IF EXISTS", args
	}
	return statement + " IF revision = ?", append(args, expected.String())
}
