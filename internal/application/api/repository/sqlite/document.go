package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/diegobernardes/strata/internal"
)

// Document has the logic to persist the documents.
type Document struct {
	DB *sql.DB
}

// Init check if the struct has everything needed to execute.
func (d *Document) Init() error {
	if d.DB == nil {
		return errors.New("missing DB")
	}
	return nil
}

// Insert a document. The primary key refuses a second document with the same id.
func (d Document) Insert(ctx context.Context, doc internal.Document) (int64, error) {
	result, err := d.DB.ExecContext(
		ctx,
		`INSERT INTO documents (id, revision, payload, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		doc.ID, doc.Revision.String(), string(doc.Payload), now(),
	)
	if err != nil {
		return 0, errors.Wrap(err, "error during insert")
	}
	return affected(result)
}

// FindByID fetch a document by id.
func (d Document) FindByID(ctx context.Context, id string) (*internal.Document, error) {
	var revision, payload string
	err := d.DB.QueryRowContext(
		ctx, `SELECT revision, payload FROM documents WHERE id = ?`, id,
	).Scan(&revision, &payload)
	if err == sql.ErrNoRows {
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
	query := `UPDATE documents SET revision = ?, payload = ?, updated_at = ? WHERE id = ?`
	args := []interface{}{doc.Revision.String(), string(doc.Payload), now(), id}
	query, args = withRevision(query, args, expected)

	result, err := d.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "error during replace")
	}
	return affected(result)
}

// Delete a document if the stored revision matches the expected one.
func (d Document) Delete(ctx context.Context, id string, expected internal.Revision) (int64, error) {
	query, args := withRevision(`DELETE FROM documents WHERE id = ?`, []interface{}{id}, expected)

	result, err := d.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "error during delete")
	}
	return affected(result)
}

func withRevision(
	query string, args []interface{}, expected internal.Revision,
) (string, []interface{}) {
	if expected.Empty() {
		return query, args
	}
	return query + " AND revision = ?", append(args, expected.String())
}

func affected(result sql.Result) (int64, error) {
	n, err := result.RowsAffected()
	return n, errors.Wrap(err, "error during rows affected")
}

func now() int64 { return time.Now().UTC().UnixMilli() }
