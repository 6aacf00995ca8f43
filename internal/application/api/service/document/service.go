package document

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/diegobernardes/strata/internal"
	"github.com/diegobernardes/strata/internal/validation"
)

const tracerName = "github.com/diegobernardes/strata/internal/application/api/service/document"

type serviceRepository interface {
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

// Service sequence the validation and the persistence of documents.
type Service struct {
	Repository serviceRepository
	Tracer     trace.Tracer
}

// Init check if the struct has everything needed to execute.
func (s *Service) Init() error {
	if s.Repository == nil {
		return errors.New("missing repository")
	}

	if s.Tracer == nil {
		s.Tracer = otel.Tracer(tracerName)
	}
	return nil
}

// Create a document.
func (s Service) Create(
	ctx context.Context, rc internal.RevisionContext, doc internal.Document,
) (internal.RevisionContext, error) {
	ctx, span := s.start(ctx, "document.Create", doc.ID)
	defer span.End()

	rc, err := s.Repository.Create(ctx, rc, doc)
	return rc, s.finish(span, err)
}

// Read a document.
func (s Service) Read(
	ctx context.Context, rc internal.RevisionContext, id string,
) (*internal.Document, internal.RevisionContext, error) {
	ctx, span := s.start(ctx, "document.Read", id)
	defer span.End()

	doc, rc, err := s.Repository.Read(ctx, rc, id)
	return doc, rc, s.finish(span, err)
}

// Update a document. The new payload must keep the structure of the stored one, otherwise the
// update is refused before reaching the repository. The read done here is not gated by the
// revision, it's only used to get the stored structure; the revision check happens at the write.
func (s Service) Update(
	ctx context.Context, rc internal.RevisionContext, doc internal.Document,
) (internal.RevisionContext, error) {
	ctx, span := s.start(ctx, "document.Update", doc.ID)
	defer span.End()

	stored, _, err := s.Repository.Read(ctx, internal.RevisionContext{}, doc.ID)
	if err != nil {
		return rc, s.finish(span, err)
	}

	if outcome := validation.Validate(doc.Payload, stored.Payload); !outcome.Valid() {
		return rc, s.finish(span, Error{Message: outcome.Message(), kind: KindValidationFailed})
	}

	rc, err = s.Repository.Update(ctx, rc, doc)
	return rc, s.finish(span, err)
}

// Delete a document.
func (s Service) Delete(
	ctx context.Context, rc internal.RevisionContext, id string,
) (internal.RevisionContext, error) {
	ctx, span := s.start(ctx, "document.Delete", id)
	defer span.End()

	rc, err := s.Repository.Delete(ctx, rc, id)
	return rc, s.finish(span, err)
}

func (s Service) start(ctx context.Context, name, id string) (context.Context, trace.Span) {
	return s.Tracer.Start(ctx, name, trace.WithAttributes(attribute.String("document.id", id)))
}

func (s Service) finish(span trace.Span, err error) error {
	if err == nil {
		return nil
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, string(KindOf(err)))
	return err
}
