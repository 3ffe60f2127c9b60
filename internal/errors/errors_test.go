package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("opinion")

	assert.Equal(t, "opinion not found", err.Error())
	assert.True(t, IsNotFound(err))
	assert.True(t, errors.Is(err, ErrOpinionNotFound))
	assert.False(t, IsAlreadyExists(err))
}

func TestAlreadyExistsError(t *testing.T) {
	assert.Equal(t, "opinion already exists with this text", ErrOpinionTextExists.Error())
	assert.True(t, IsAlreadyExists(ErrOpinionTextExists))
	assert.False(t, IsNotFound(ErrOpinionTextExists))

	bare := &AlreadyExistsError{Entity: "opinion"}
	assert.Equal(t, "opinion already exists", bare.Error())
	assert.True(t, errors.Is(bare, ErrOpinionTextExists))
}

func TestValidationError(t *testing.T) {
	withField := NewValidationError("title", "is required")
	assert.Equal(t, "validation error: title - is required", withField.Error())
	assert.True(t, IsValidation(withField))

	bare := NewValidationError("", "insufficient data")
	assert.Equal(t, "validation error: insufficient data", bare.Error())
}

func TestStorageErrorWrapsCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := NewStorageError("add the opinion", cause)

	assert.True(t, IsStorage(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "add the opinion")
	assert.Contains(t, err.Error(), "disk full")
}

func TestWrappedErrorsStillMatch(t *testing.T) {
	wrapped := fmt.Errorf("while handling request: %w", ErrOpinionNotFound)

	assert.True(t, IsNotFound(wrapped))
	assert.True(t, errors.Is(wrapped, ErrOpinionNotFound))
}

func TestAPIErrorDefaultsTo400(t *testing.T) {
	err := NewAPIError("insufficient data to create an opinion", 0)
	assert.Equal(t, http.StatusBadRequest, err.Status)

	explicit := NewAPIError("there are no opinions in the database", http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, explicit.Status)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", ErrOpinionNotFound, http.StatusNotFound},
		{"conflict", ErrOpinionTextExists, http.StatusConflict},
		{"validation", NewValidationError("title", "too long"), http.StatusBadRequest},
		{"storage", NewStorageError("update the opinion", fmt.Errorf("boom")), http.StatusInternalServerError},
		{"api error status", ErrNoOpinions, http.StatusNotFound},
		{"unknown defaults to 400", fmt.Errorf("something odd"), http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("ctx: %w", ErrOpinionNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
