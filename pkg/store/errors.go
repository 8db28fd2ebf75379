package store

import (
	"fmt"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
)

// ErrorKind classifies why a mutation was rejected
type ErrorKind string

const (
	// ErrorKindValidation means a required field was missing or out of range
	ErrorKindValidation ErrorKind = "validation"
	// ErrorKindUnknownReference means a customerId did not resolve to a loaded customer
	ErrorKindUnknownReference ErrorKind = "unknown_reference"
	// ErrorKindNotReady means the store has not been hydrated yet
	ErrorKindNotReady ErrorKind = "not_ready"
	// ErrorKindNotFound means the record being edited does not exist
	ErrorKindNotFound ErrorKind = "not_found"
)

// DomainError is a rejected mutation. The store state is guaranteed
// unchanged when one is returned.
type DomainError struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("field '%s': %s", e.Field, e.Message)
	}
	return e.Message
}

// ToHTTPError maps the domain error onto an API error response
func (e *DomainError) ToHTTPError() *httperror.HTTPError {
	code := http.StatusBadRequest
	switch e.Kind {
	case ErrorKindNotFound:
		code = http.StatusNotFound
	case ErrorKindNotReady:
		code = http.StatusServiceUnavailable
	}
	return httperror.NewHTTPError(code, e.Error()).
		AddMetaValue("kind", string(e.Kind)).
		AddMetaValue("field", e.Field)
}

// IsDomainError reports whether err is a DomainError
func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

func validationError(field, msg string) *DomainError {
	return &DomainError{Kind: ErrorKindValidation, Field: field, Message: msg}
}

func unknownReferenceError(field string, id int) *DomainError {
	return &DomainError{Kind: ErrorKindUnknownReference, Field: field, Message: fmt.Sprintf("customer %d does not exist", id)}
}
