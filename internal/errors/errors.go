package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this text"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// StorageError represents a database engine failure during a write operation.
// The in-flight transaction has already been rolled back by the time it is
// surfaced.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("database error while trying to %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// APIError is an error carrying the HTTP status it should be rendered with.
// It is the single kind every handler-level failure is expressed through;
// the status defaults to 400 when unspecified.
type APIError struct {
	Message string
	Status  int
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates an APIError; a zero status falls back to 400.
func NewAPIError(message string, status int) *APIError {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return &APIError{Message: message, Status: status}
}

// Sentinel errors for the opinion domain
var (
	ErrOpinionNotFound   = &NotFoundError{Entity: "opinion"}
	ErrOpinionTextExists = &AlreadyExistsError{Entity: "opinion", Context: "with this text"}
	ErrNoOpinions        = &APIError{Message: "there are no opinions in the database", Status: http.StatusNotFound}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsStorage checks if an error is a StorageError
func IsStorage(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewStorageError wraps a database engine failure with the operation that hit it
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// HTTPStatus translates an error to the status code it should be rendered
// with: validation errors map to 400, conflicts to 409, missing entities to
// 404 and storage failures to 500. Anything else falls back to the 400
// default of APIError.
func HTTPStatus(err error) int {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Status
	case IsNotFound(err):
		return http.StatusNotFound
	case IsAlreadyExists(err):
		return http.StatusConflict
	case IsStorage(err):
		return http.StatusInternalServerError
	case IsValidation(err):
		return http.StatusBadRequest
	}
	return http.StatusBadRequest
}
