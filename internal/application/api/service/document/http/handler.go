package http

import (
	"io"
	coreHTTP "net/http"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/diegobernardes/strata/internal"
	infraHTTP "github.com/diegobernardes/strata/internal/application/api/infra/http"
	"github.com/diegobernardes/strata/internal/application/api/service/document"
	"github.com/diegobernardes/strata/internal/validation"
)

// Handler expose the document service over HTTP.
type Handler struct {
	Writer          *infraHTTP.Writer
	Service         service
	ExtractID       func(req *coreHTTP.Request) string
	GenURI          func(id string) string
	RequireRevision bool
	Logger          log.Logger
}

// Init check if the struct has everything needed to execute.
func (h *Handler) Init() error {
	if h.Writer == nil {
		return errors.New("missing writer")
	}

	if h.Service == nil {
		return errors.New("missing service")
	}

	if h.ExtractID == nil {
		return errors.New("missing extract id")
	}

	if h.GenURI == nil {
		return errors.New("missing gen uri")
	}

	if h.Logger == nil {
		return errors.New("missing logger")
	}
	h.Logger = log.With(h.Logger, "package", "service/document/http")

	return nil
}

// Show return the stored payload.
func (h Handler) Show(w coreHTTP.ResponseWriter, r *coreHTTP.Request) {
	if err := infraHTTP.CheckQuery(r.URL.Query()); err != nil {
		h.error(w, "invalid request", err)
		return
	}

	doc, rc, err := h.Service.Read(r.Context(), infraHTTP.RevisionContext(r), h.ExtractID(r))
	if err != nil {
		h.error(w, "error during document read", err)
		return
	}

	h.Writer.Response(w, doc.Payload, coreHTTP.StatusOK, infraHTTP.RevisionHeader(rc, nil))
}

// Create a document at the request path.
func (h Handler) Create(w coreHTTP.ResponseWriter, r *coreHTTP.Request) {
	doc, ok := h.parse(w, r)
	if !ok {
		return
	}

	rc, err := h.Service.Create(r.Context(), infraHTTP.RevisionContext(r), doc)
	if err != nil {
		h.error(w, "error during document create", err)
		return
	}

	uri := h.GenURI(doc.ID)
	header := make(coreHTTP.Header)
	header.Set("Location", uri)
	h.Writer.Response(
		w, &createResponse{URI: uri}, coreHTTP.StatusCreated, infraHTTP.RevisionHeader(rc, header),
	)
}

// Update replace the document at the request path.
func (h Handler) Update(w coreHTTP.ResponseWriter, r *coreHTTP.Request) {
	rc := infraHTTP.RevisionContext(r)
	if !h.checkPrecondition(w, rc) {
		return
	}

	doc, ok := h.parse(w, r)
	if !ok {
		return
	}

	rc, err := h.Service.Update(r.Context(), rc, doc)
	if err != nil {
		h.error(w, "error during document update", err)
		return
	}

	h.Writer.Response(w, nil, coreHTTP.StatusOK, infraHTTP.RevisionHeader(rc, nil))
}

// Delete the document at the request path.
func (h Handler) Delete(w coreHTTP.ResponseWriter, r *coreHTTP.Request) {
	rc := infraHTTP.RevisionContext(r)
	if !h.checkPrecondition(w, rc) {
		return
	}

	if err := infraHTTP.CheckQuery(r.URL.Query()); err != nil {
		h.error(w, "invalid request", err)
		return
	}

	_, err := h.Service.Delete(r.Context(), rc, h.ExtractID(r))
	if err != nil {
		h.error(w, "error during document delete", err)
		return
	}

	h.Writer.Response(w, nil, coreHTTP.StatusOK, nil)
}

// checkPrecondition refuses the request when the revision is required and the If-Match header is
// missing or does not hold a valid revision.
func (h Handler) checkPrecondition(w coreHTTP.ResponseWriter, rc internal.RevisionContext) bool {
	if !h.RequireRevision || rc.HasRequest() {
		return true
	}

	err := document.NewError(
		document.KindPreconditionInvalid, "the If-Match header is required", nil,
	)
	h.error(w, "missing revision", err)
	return false
}

// parse the request into a document. Only JSON objects and arrays are accepted as payload.
func (h Handler) parse(w coreHTTP.ResponseWriter, r *coreHTTP.Request) (internal.Document, bool) {
	if err := infraHTTP.CheckQuery(r.URL.Query()); err != nil {
		h.error(w, "invalid request", err)
		return internal.Document{}, false
	}

	id := h.ExtractID(r)
	if id == "" {
		h.Writer.Error(w, "invalid request", errors.New("missing document id"), coreHTTP.StatusBadRequest)
		return internal.Document{}, false
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		h.Writer.Error(w, "error during body read", err, coreHTTP.StatusBadRequest)
		return internal.Document{}, false
	}

	switch kind := validation.Parse(payload).Kind(); kind {
	case validation.Object, validation.Array:
	default:
		err := errors.Errorf("expected a JSON object or array, got '%s'", kind)
		h.Writer.Error(w, "invalid body", err, coreHTTP.StatusBadRequest)
		return internal.Document{}, false
	}

	return internal.Document{ID: id, Payload: payload}, true
}

func (h Handler) error(w coreHTTP.ResponseWriter, title string, err error) {
	status := coreHTTP.StatusInternalServerError
	var qerr infraHTTP.QueryError
	if errors.As(err, &qerr) {
		status = coreHTTP.StatusBadRequest
	} else if serr, ok := errors.Cause(err).(serviceError); ok {
		switch {
		case serr.ValidationFailed():
			status = coreHTTP.StatusBadRequest
		case serr.NotFound():
			status = coreHTTP.StatusNotFound
		case serr.NotModified():
			status = coreHTTP.StatusConflict
		case serr.AlreadyExists():
			status = coreHTTP.StatusForbidden
		case serr.PreconditionInvalid():
			status = coreHTTP.StatusPreconditionRequired
		}
	}

	if status == coreHTTP.StatusInternalServerError {
		level.Error(h.Logger).Log("message", title, "error", err.Error())
	}
	h.Writer.Error(w, title, err, status)
}
