package http

import (
	"context"

	"github.com/diegobernardes/strata/internal"
)

type service interface {
	Create(
		ctx context.Context, rc internal.RevisionContext, doc internal.Document,
	) (internal.RevisionContext, error)
	Read(
		ctx context.Context, rc internal.RevisionContext, id string,
	) (*internal.Document, internal.RevisionContext, error)
	Update(
		ctx context.Context, rc internal.RevisionContext, doc internal.Document,
	) (internal.RevisionContext, error)
	Delete(
		ctx context.Context, rc internal.RevisionContext, id string,
	) (internal.RevisionContext, error)
}

type serviceError interface {
	error
	NotFound() bool
	AlreadyExists() bool
	NotModified() bool
	ValidationFailed() bool
	PreconditionInvalid() bool
}

type createResponse struct {
	URI string `json:"uri"`
}
