package http

import (
	"net/http"
	"strings"

	"github.com/diegobernardes/strata/internal"
)

// RevisionContext build the context from the If-Match header. The quotes are removed and a value
// that is not a valid revision leaves the request revision empty, same as a missing header.
func RevisionContext(r *http.Request) internal.RevisionContext {
	raw := strings.Trim(strings.TrimSpace(r.Header.Get("If-Match")), `"`)
	if raw == "" {
		return internal.RevisionContext{}
	}

	revision, err := internal.ParseRevision(raw)
	if err != nil {
		return internal.RevisionContext{}
	}
	return internal.RevisionContext{Request: revision}
}

// RevisionHeader return the headers with the ETag set to the response revision, if any.
func RevisionHeader(rc internal.RevisionContext, header http.Header) http.Header {
	if !rc.HasResponse() {
		return header
	}

	if header == nil {
		header = make(http.Header)
	}
	header.Set("ETag", `"`+rc.Response.String()+`"`)
	return header
}
