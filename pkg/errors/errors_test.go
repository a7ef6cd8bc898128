package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := NewNotFoundError("medicine not found")
	assert.Equal(t, "NOT_FOUND: medicine not found", err.Error())

	wrapped := NewInternalError("query failed", errors.New("connection reset"))
	assert.Equal(t, "INTERNAL: query failed: connection reset", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewExternalError("scoring service failed", cause)
	assert.True(t, errors.Is(err, cause))
}

func TestIsType(t *testing.T) {
	err := NewValidationError("latitude is required")
	assert.True(t, IsType(err, ErrorTypeValidation))
	assert.False(t, IsType(err, ErrorTypeNotFound))

	// Still detected through wrapping.
	wrapped := fmt.Errorf("handling request: %w", err)
	assert.True(t, IsType(wrapped, ErrorTypeValidation))

	assert.False(t, IsType(errors.New("plain"), ErrorTypeInternal))
	assert.False(t, IsType(nil, ErrorTypeInternal))
}
