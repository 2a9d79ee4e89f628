// Package apperror defines the error shapes the HTTP layer knows how to map
// to status codes. Anything that is not one of these types is treated as an
// unhandled error.
package apperror

import (
	"errors"
	"net/http"
	"strings"
)

// ValidationError is a bad request detected before any side effect happens.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError means the identifier was well formed but nothing matched it.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// UploadError is raised by the upload middleware (size or type rejected, or
// the asset host refused the file).
type UploadError struct {
	Message string
	Err     error
}

func (e *UploadError) Error() string { return e.Message }

func (e *UploadError) Unwrap() error { return e.Err }

// PersistenceError is a schema or uniqueness violation reported by the
// record store. Messages are aggregated into a single response message.
type PersistenceError struct {
	Messages []string
	Err      error
}

func (e *PersistenceError) Error() string {
	return "Validation error: " + strings.Join(e.Messages, ", ")
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func NewNotFound(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func NewUpload(message string, err error) *UploadError {
	return &UploadError{Message: message, Err: err}
}

func NewPersistence(err error, messages ...string) *PersistenceError {
	return &PersistenceError{Messages: messages, Err: err}
}

// StatusOf maps an error to the HTTP status the API answers with.
func StatusOf(err error) int {
	var (
		validationErr  *ValidationError
		notFoundErr    *NotFoundError
		uploadErr      *UploadError
		persistenceErr *PersistenceError
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validationErr),
		errors.As(err, &uploadErr),
		errors.As(err, &persistenceErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// IsHandled reports whether err is one of the known shapes.
func IsHandled(err error) bool {
	return StatusOf(err) != http.StatusInternalServerError
}
