package internal

import (
	"encoding/json"

	uuid "github.com/satori/go.uuid"
)

// Document is the stored unit. The ID is chosen by the caller and the revision is generated by the
// server on every successful write.
type Document struct {
	ID       string
	Revision Revision
	Payload  json.RawMessage
}

// Revision is an opaque token that changes on every successful write of a document. The zero value
// means there is no revision.
type Revision string

// Empty indicates if the revision is absent.
func (r Revision) Empty() bool { return r == "" }

func (r Revision) String() string { return string(r) }

// NewRevision generates a fresh revision.
func NewRevision() Revision { return Revision(uuid.NewV4().String()) }

// ParseRevision parse a revision sent by a client. Only well formed UUIDs are accepted, anything
// else is reported as a error.
func ParseRevision(raw string) (Revision, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return "", err
	}
	return Revision(id.String()), nil
}
