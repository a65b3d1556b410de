package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error by which collaborator produced it.
type Kind int

const (
	Validation Kind = iota + 1 // bad client input
	NotFound
	Extraction // OCR provider failure
	Model      // LLM provider failure
	Store      // persistence failure
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	case Extraction:
		return "extraction"
	case Model:
		return "model"
	case Store:
		return "store"
	default:
		return "unknown"
	}
}

// Error carries a kind, a human-readable message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an error with no underlying cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain, or 0 if untyped.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return 0
}

func IsNotFound(err error) bool { return KindOf(err) == NotFound }

// HTTPStatus maps an error to the status code of its failure class.
// Untyped errors are treated as internal.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case Validation:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Extraction, Model:
		return http.StatusBadGateway
	case Store:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the outer typed message, falling back to err.Error().
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		if ae.Err != nil {
			return fmt.Sprintf("%s: %v", ae.Message, ae.Err)
		}
		return ae.Message
	}
	return err.Error()
}
