package document

import "github.com/pkg/errors"

// Kind classifies the errors returned by the document service.
type Kind string

// The error kinds. Server is used for any failure that could not be classified.
const (
	KindServer              Kind = "server"
	KindNotFound            Kind = "notFound"
	KindAlreadyExists       Kind = "alreadyExists"
	KindNotModified         Kind = "notModified"
	KindValidationFailed    Kind = "validationFailed"
	KindPreconditionInvalid Kind = "preconditionInvalid"
)

// Error is returned by every operation of the repository and the service.
type Error struct {
	Cause   error
	Message string

	kind Kind
}

// NewError returns a error of a given kind.
func NewError(kind Kind, message string, cause error) Error {
	return Error{Cause: cause, Message: message, kind: kind}
}

func (e Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return errors.Wrap(e.Cause, e.Message).Error()
}

// Unwrap return the underlying error, if any.
func (e Error) Unwrap() error { return e.Cause }

// Kind return the error kind.
func (e Error) Kind() Kind { return e.kind }

func (e Error) Server() bool { return e.kind == KindServer }

func (e Error) NotFound() bool { return e.kind == KindNotFound }

func (e Error) AlreadyExists() bool { return e.kind == KindAlreadyExists }

func (e Error) NotModified() bool { return e.kind == KindNotModified }

func (e Error) ValidationFailed() bool { return e.kind == KindValidationFailed }

func (e Error) PreconditionInvalid() bool { return e.kind == KindPreconditionInvalid }

// KindOf extract the kind of a error. Errors not generated by this package are classified as
// server errors.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	if derr, ok := errors.Cause(err).(Error); ok {
		return derr.kind
	}
	return KindServer
}
