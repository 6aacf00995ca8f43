package internal

// RevisionContext carries the revision the caller expects to find at the store and the revision
// produced by a operation. A new value is created for every operation and the updated copy is
// returned by it, so it's never shared between concurrent calls.
type RevisionContext struct {
	// Request is the revision the caller last observed. When present, updates and deletes only
	// happen if the stored revision still matches.
	Request Revision

	// Response is the revision produced or read by the operation.
	Response Revision
}

// HasRequest indicates if the caller supplied a expected revision.
func (rc RevisionContext) HasRequest() bool { return !rc.Request.Empty() }

// HasResponse indicates if the operation produced a revision.
func (rc RevisionContext) HasResponse() bool { return !rc.Response.Empty() }

// WithResponse return a copy of the context with the response revision set.
func (rc RevisionContext) WithResponse(revision Revision) RevisionContext {
	rc.Response = revision
	return rc
}
