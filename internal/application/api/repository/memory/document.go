package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/diegobernardes/strata/internal"
)

// Document implements the data layer for the document service. All the conditional writes happen
// while the mutex is held.
type Document struct {
	mutex     sync.RWMutex
	documents map[string]internal.Document
}

// Init the repository.
func (d *Document) Init() {
	d.documents = make(map[string]internal.Document)
}

// Ping is always successful.
func (d *Document) Ping(context.Context) error { return nil }

// Insert a document if the id is not used.
func (d *Document) Insert(ctx context.Context, doc internal.Document) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	if _, ok := d.documents[doc.ID]; ok {
		return 0, nil
	}
	d.documents[doc.ID] = clone(doc)
	return 1, nil
}

// FindByID return the document that match the id or nil if there is none.
func (d *Document) FindByID(ctx context.Context, id string) (*internal.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mutex.RLock()
	defer d.mutex.RUnlock()

	doc, ok := d.documents[id]
	if !ok {
		return nil, nil
	}

	result := clone(doc)
	return &result, nil
}

// Replace a document. A empty expected revision match any stored revision.
func (d *Document) Replace(
	ctx context.Context, id string, expected internal.Revision, doc internal.Document,
) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	if !d.match(id, expected) {
		return 0, nil
	}

	doc.ID = id
	d.documents[id] = clone(doc)
	return 1, nil
}

// Delete a document. A empty expected revision match any stored revision.
func (d *Document) Delete(ctx context.Context, id string, expected internal.Revision) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	if !d.match(id, expected) {
		return 0, nil
	}

	delete(d.documents, id)
	return 1, nil
}

func (d *Document) match(id string, expected internal.Revision) bool {
	doc, ok := d.documents[id]
	if !ok {
		return false
	}
	return expected.Empty() || doc.Revision == expected
}

func clone(doc internal.Document) internal.Document {
	payload := make(json.RawMessage, len(doc.Payload))
	copy(payload, doc.Payload)
	doc.Payload = payload
	return doc
}

// NewDocument returns a configured document repository.
func NewDocument() *Document {
	d := &Document{}
	d.Init()
	return d
}
