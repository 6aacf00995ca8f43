package document

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/diegobernardes/strata/internal"
)

// persistence is implemented by the storage backends. Every write returns the quantity of
// affected records and must be atomic at the storage: a replace or delete with a expected
// revision only happens if the stored revision still matches it.
type persistence interface {
	Insert(ctx context.Context, doc internal.Document) (int64, error)
	FindByID(ctx context.Context, id string) (*internal.Document, error)
	Replace(
		ctx context.Context, id string, expected internal.Revision, doc internal.Document,
	) (int64, error)
	Delete(ctx context.Context, id string, expected internal.Revision) (int64, error)
}

// Repository translate the document operations into storage operations, gating the updates and
// deletes by the revision the caller expects.
type Repository struct {
	Persistence persistence
	GenRevision func() internal.Revision
}

// Init check if the struct has everything needed to execute.
func (r *Repository) Init() error {
	if r.Persistence == nil {
		return errors.New("missing persistence")
	}

	if r.GenRevision == nil {
		r.GenRevision = internal.NewRevision
	}
	return nil
}

// Create a document. It fails if there is already a document with the same id.
func (r Repository) Create(
	ctx context.Context, rc internal.RevisionContext, doc internal.Document,
) (internal.RevisionContext, error) {
	doc.Revision = r.GenRevision()

	affected, err := r.Persistence.Insert(ctx, doc)
	if err != nil {
		return rc, Error{Cause: err, Message: "error during document insert", kind: KindServer}
	}

	if affected == 0 {
		return rc, Error{
			Message: fmt.Sprintf("document '%s' already exists", doc.ID), kind: KindAlreadyExists,
		}
	}
	return rc.WithResponse(doc.Revision), nil
}

// Read a document by id.
func (r Repository) Read(
	ctx context.Context, rc internal.RevisionContext, id string,
) (*internal.Document, internal.RevisionContext, error) {
	doc, err := r.Persistence.FindByID(ctx, id)
	if err != nil {
		return nil, rc, Error{Cause: err, Message: "error during document find", kind: KindServer}
	}

	if doc == nil {
		return nil, rc, Error{
			Message: fmt.Sprintf("document '%s' not found", id), kind: KindNotFound,
		}
	}
	return doc, rc.WithResponse(doc.Revision), nil
}

// Update replace the document. If the context has a request revision, the document is only
// replaced if the stored revision matches it. A missing document and a revision mismatch are both
// reported as not modified.
func (r Repository) Update(
	ctx context.Context, rc internal.RevisionContext, doc internal.Document,
) (internal.RevisionContext, error) {
	doc.Revision = r.GenRevision()

	affected, err := r.Persistence.Replace(ctx, doc.ID, rc.Request, doc)
	if err != nil {
		return rc, Error{Cause: err, Message: "error during document replace", kind: KindServer}
	}

	if affected == 0 {
		return rc, errNotModified(doc.ID)
	}
	return rc.WithResponse(doc.Revision), nil
}

// Delete the document following the same revision rules as Update.
func (r Repository) Delete(
	ctx context.Context, rc internal.RevisionContext, id string,
) (internal.RevisionContext, error) {
	affected, err := r.Persistence.Delete(ctx, id, rc.Request)
	if err != nil {
		return rc, Error{Cause: err, Message: "error during document delete", kind: KindServer}
	}

	if affected == 0 {
		return rc, errNotModified(id)
	}
	return rc, nil
}

func errNotModified(id string) Error {
	return Error{Message: fmt.Sprintf("document '%s' not modified", id), kind: KindNotModified}
}
