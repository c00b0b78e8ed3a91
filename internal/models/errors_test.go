package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodePredicates(t *testing.T) {
	t.Parallel()

	notFound := NewNotFoundError("post", "hello-world")
	redirect := NewRedirectToIndex("author", 42)
	internal := NewInternalError(errors.New("boom"))

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(redirect))
	assert.False(t, IsNotFound(internal))

	assert.True(t, IsRedirectToIndex(redirect))
	assert.False(t, IsRedirectToIndex(notFound))

	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestErrorCodePredicates_Wrapped(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("while rendering: %w", NewNotFoundError("page", "about"))
	assert.True(t, IsNotFound(wrapped))
}

func TestAppError_Error(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "post hello not found", NewNotFoundError("post", "hello").Error())

	cause := errors.New("boom")
	internal := NewInternalError(cause)
	assert.Contains(t, internal.Error(), "boom")
	assert.ErrorIs(t, internal, cause)
}
