// Package apperr defines the error taxonomy shared by all services.
// Every business failure carries a Kind that the HTTP layer maps to a
// fixed status code; anything else is treated as internal.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindInvalidInput
	KindUnauthorized
	KindNotFound
	KindFileUpload
)

type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidInput(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func FileUpload(format string, args ...any) *Error {
	return &Error{Kind: KindFileUpload, Message: fmt.Sprintf(format, args...)}
}

// FileUploadWrap keeps the underlying I/O failure available via
// errors.Unwrap while still surfacing as a FileUpload error.
func FileUploadWrap(err error, message string) *Error {
	return &Error{Kind: KindFileUpload, Message: message, Err: err}
}

// Validation reports field-level input errors.
func Validation(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: "Validation failed", Fields: fields}
}

// KindOf extracts the taxonomy kind from err, walking wrapped errors.
// Errors outside the taxonomy are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// FieldsOf returns the field error map when err carries one.
func FieldsOf(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}
