package etcd

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/diegobernardes/strata/internal"
)

// Document has the logic to persist the documents. Each document is kept at two keys, one with the
// revision and one with the payload, and every write is a transaction guarded by the revision key.
type Document struct {
	Client *Client
	Prefix string
}

// Init check if the struct has everything needed to execute.
func (d *Document) Init() error {
	if d.Client == nil {
		return errors.New("missing Client")
	}

	if d.Prefix == "" {
		return errors.New("missing Prefix")
	}
	return nil
}

// Ping the cluster.
func (d Document) Ping(ctx context.Context) error { return d.Client.Ping(ctx) }

// Insert a document if the revision key was never created.
func (d Document) Insert(ctx context.Context, doc internal.Document) (int64, error) {
	revKey, docKey := d.keys(doc.ID)
	resp, err := d.Client.base.Txn(ctx).
		If(clientv3.Compare(clientv3.CreateRevision(revKey), "=", 0)).
		Then(clientv3.OpPut(revKey, doc.Revision.String()), clientv3.OpPut(docKey, string(doc.Payload))).
		Commit()
	if err != nil {
		return 0, errors.Wrap(err, "error during insert")
	}
	return succeeded(resp), nil
}

// FindByID fetch both keys at the same store revision.
func (d Document) FindByID(ctx context.Context, id string) (*internal.Document, error) {
	revKey, docKey := d.keys(id)
	resp, err := d.Client.base.Txn(ctx).Then(clientv3.OpGet(revKey), clientv3.OpGet(docKey)).Commit()
	if err != nil {
		return nil, errors.Wrap(err, "error during find")
	}

	revision := resp.Responses[0].GetResponseRange().GetKvs()
	payload := resp.Responses[1].GetResponseRange().GetKvs()
	if len(revision) == 0 || len(payload) == 0 {
		return nil, nil
	}

	return &internal.Document{
		ID:       id,
		Revision: internal.Revision(revision[0].Value),
		Payload:  json.RawMessage(payload[0].Value),
	}, nil
}

// Replace a document if the stored revision matches the expected one.
func (d Document) Replace(
	ctx context.Context, id string, expected internal.Revision, doc internal.Document,
) (int64, error) {
	revKey, docKey := d.keys(id)
	resp, err := d.Client.base.Txn(ctx).
		If(compare(revKey, expected)).
		Then(clientv3.OpPut(revKey, doc.Revision.String()), clientv3.OpPut(docKey, string(doc.Payload))).
		Commit()
	if err != nil {
		return 0, errors.Wrap(err, "error during replace")
	}
	return succeeded(resp), nil
}

// Delete a document if the stored revision matches the expected one.
func (d Document) Delete(ctx context.Context, id string, expected internal.Revision) (int64, error) {
	revKey, docKey := d.keys(id)
	resp, err := d.Client.base.Txn(ctx).
		If(compare(revKey, expected)).
		Then(clientv3.OpDelete(revKey), clientv3.OpDelete(docKey)).
		Commit()
	if err != nil {
		return 0, errors.Wrap(err, "error during delete")
	}
	return succeeded(resp), nil
}

func (d Document) keys(id string) (revKey, docKey string) {
	return d.Prefix + "/rev/" + id, d.Prefix + "/doc/" + id
}

// compare check the stored revision, or only the existence of the document when there is no
// expected revision.
func compare(revKey string, expected internal.Revision) clientv3.Cmp {
	if expected.Empty() {
		return clientv3.Compare(clientv3.CreateRevision(revKey), ">", 0)
	}
	return clientv3.Compare(clientv3.Value(revKey), "=", expected.String())
}

func succeeded(resp *clientv3.TxnResponse) int64 {
	if resp.Succeeded {
		return 1
	}
	return 0
}
