package mongodb

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/diegobernardes/strata/internal"
)

const codeNamespaceExists = 48

// Document has the logic to persist the documents.
type Document struct {
	Database   *mongo.Database
	Collection string
	Timeout    time.Duration

	collection *mongo.Collection
}

// Init check if the struct has everything needed to execute.
func (d *Document) Init() error {
	if d.Database == nil {
		return errors.New("missing Database")
	}

	if d.Collection == "" {
		return errors.New("missing Collection")
	}

	if d.Timeout < 0 {
		return errors.New("invalid Timeout, expected to be bigger or equal then zero")
	}

	d.collection = d.Database.Collection(d.Collection)
	return nil
}

// EnsureCollection create the collection if it does not exist.
func (d Document) EnsureCollection(ctx context.Context) error {
	err := d.Database.CreateCollection(ctx, d.Collection)
	if err == nil {
		return nil
	}

	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) && serverErr.HasErrorCode(codeNamespaceExists) {
		return nil
	}
	return errors.Wrap(err, "error during collection creation")
}

// Insert a document. The unique index on _id refuses a second document with the same id.
func (d Document) Insert(ctx context.Context, doc internal.Document) (int64, error) {
	ctx, cancel := withTimeout(ctx, d.Timeout)
	defer cancel()

	_, err := d.collection.InsertOne(ctx, d.marshal(doc))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "error during insert")
	}
	return 1, nil
}

// FindByID fetch a document by id.
func (d Document) FindByID(ctx context.Context, id string) (*internal.Document, error) {
	ctx, cancel := withTimeout(ctx, d.Timeout)
	defer cancel()

	result := d.collection.FindOne(ctx, filter(id, ""))
	doc, err := d.unmarshal(result)
	return doc, errors.Wrap(err, "error during parse result")
}

// Replace a document if the stored revision matches the expected one.
func (d Document) Replace(
	ctx context.Context, id string, expected internal.Revision, doc internal.Document,
) (int64, error) {
	ctx, cancel := withTimeout(ctx, d.Timeout)
	defer cancel()

	doc.ID = id
	result, err := d.collection.ReplaceOne(ctx, filter(id, expected), d.marshal(doc))
	if err != nil {
		return 0, errors.Wrap(err, "error during replace")
	}
	return result.MatchedCount, nil
}

// Delete a document if the stored revision matches the expected one.
func (d Document) Delete(ctx context.Context, id string, expected internal.Revision) (int64, error) {
	ctx, cancel := withTimeout(ctx, d.Timeout)
	defer cancel()

	result, err := d.collection.DeleteOne(ctx, filter(id, expected))
	if err != nil {
		return 0, errors.Wrap(err, "error during delete")
	}
	return result.DeletedCount, nil
}

// filter match the id and, when present, the revision.
func filter(id string, expected internal.Revision) bson.D {
	f := bson.D{{Key: "_id", Value: id}}
	if !expected.Empty() {
		f = append(f, bson.E{Key: "revision", Value: expected.String()})
	}
	return f
}

func (Document) marshal(doc internal.Document) documentView {
	return documentView{
		ID:        doc.ID,
		Revision:  doc.Revision.String(),
		Payload:   string(doc.Payload),
		UpdatedAt: time.Now().UTC(),
	}
}

func (Document) unmarshal(d decoder) (*internal.Document, error) {
	var dv documentView
	if err := d.Decode(&dv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "error during response decode")
	}

	return &internal.Document{
		ID:       dv.ID,
		Revision: internal.Revision(dv.Revision),
		Payload:  json.RawMessage(dv.Payload),
	}, nil
}

type documentView struct {
	ID        string    `bson:"_id"`
	Revision  string    `bson:"revision"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updatedAt"`
}
