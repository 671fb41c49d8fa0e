// Package apperrors holds the error taxonomy shared by the domains and the
// HTTP layer.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// Kind categorizes an AppError.
type Kind string

const (
	// KindValidation is a missing or malformed request field.
	KindValidation Kind = "VALIDATION"
	// KindReference is a foreign key or lookup that points at nothing.
	KindReference Kind = "REFERENCE"
	// KindTransport is a failed call to the chat-completion endpoint.
	KindTransport Kind = "CLASSIFICATION_TRANSPORT"
	// KindParse is an LLM reply that could not be decoded. Always recovered
	// locally.
	KindParse Kind = "PARSE"
	// KindUnavailable is an optional integration that is switched off or not
	// connected.
	KindUnavailable Kind = "UNAVAILABLE"
	// KindInternal covers storage and anything unexpected.
	KindInternal Kind = "INTERNAL"
)

type AppError struct {
	Kind    Kind
	Message string
	Cause   error
	Context map[string]any
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext attaches a key/value pair that is logged but never returned
// to the client.
func (e *AppError) WithContext(key string, value any) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Wrap(err error, kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message, Cause: err}
}

func Validation(field, message string) *AppError {
	return New(KindValidation, fmt.Sprintf("%s: %s", field, message)).
		WithContext("field", field)
}

func Reference(entity string, id any) *AppError {
	return New(KindReference, fmt.Sprintf("%s %v not found", entity, id)).
		WithContext("entity", entity).
		WithContext("id", id)
}

func Transport(err error) *AppError {
	return Wrap(err, KindTransport, "chat completion request failed")
}

func Parse(err error) *AppError {
	return Wrap(err, KindParse, "could not decode model reply")
}

func Unavailable(message string) *AppError {
	return New(KindUnavailable, message)
}

func Internal(err error, operation string) *AppError {
	return Wrap(err, KindInternal, operation+" failed").
		WithContext("operation", operation)
}

// FromStore converts a gorm error: record-not-found becomes a reference
// error for entity/id, anything else is internal.
func FromStore(err error, operation, entity string, id any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return Reference(entity, id)
	}
	return Internal(err, operation)
}

// KindOf returns the kind of the first AppError in err's chain, or
// KindInternal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindReference:
		return http.StatusNotFound
	case KindTransport:
		return http.StatusBadGateway
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is what the client sees. Internal errors never leak their
// cause.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return "something went wrong"
}
