package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Run("WrapsErrorWithContext", func(t *testing.T) {
		wrapped := Wrap(ErrNotFound, "scene record lookup")

		assert.Error(t, wrapped)
		assert.Equal(t, "scene record lookup: not found", wrapped.Error())
		assert.True(t, Is(wrapped, ErrNotFound))
	})

	t.Run("NilErrorReturnsNil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "context"))
	})

	t.Run("PreservesChainAcrossMultipleWraps", func(t *testing.T) {
		inner := Wrap(ErrUnavailable, "backend write")
		outer := Wrap(inner, "save scenes")

		assert.True(t, Is(outer, ErrUnavailable))
		assert.Equal(t, "save scenes: backend write: unavailable", outer.Error())
	})
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("handler: %w", ErrPayloadTooLarge)

	assert.True(t, Is(err, ErrPayloadTooLarge))
	assert.False(t, Is(err, ErrInvalidInput))
}

func TestNew(t *testing.T) {
	err := New("something failed")

	assert.Error(t, err)
	assert.Equal(t, "something failed", err.Error())
}
