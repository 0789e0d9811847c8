package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	plain := NewNotFoundError("clinic not found")
	assert.Equal(t, "NOT_FOUND: clinic not found", plain.Error())

	wrapped := NewUnavailableError("facet scan failed", context.DeadlineExceeded)
	assert.Contains(t, wrapped.Error(), "UNAVAILABLE")
	assert.Contains(t, wrapped.Error(), "context deadline exceeded")
}

func TestAppError_Unwrap(t *testing.T) {
	err := NewInternalError("query failed", context.DeadlineExceeded)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Nil(t, errors.Unwrap(NewValidationError("bad input")))
}

func TestIsType(t *testing.T) {
	unavailable := NewUnavailableError("store timed out", nil)

	assert.True(t, IsType(unavailable, ErrorTypeUnavailable))
	assert.False(t, IsType(unavailable, ErrorTypeInternal))
	assert.False(t, IsType(errors.New("plain"), ErrorTypeInternal))
	assert.False(t, IsType(nil, ErrorTypeInternal))

	// Matches through wrapping.
	wrapped := fmt.Errorf("request failed: %w", unavailable)
	assert.True(t, IsType(wrapped, ErrorTypeUnavailable))
}
