package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	err := E(Conflict, "team already exists")
	assert.Equal(t, Conflict, KindOf(err))
	assert.True(t, IsKind(err, Conflict))
	assert.False(t, IsKind(err, NotFound))

	wrapped := fmt.Errorf("create team: %w", err)
	assert.Equal(t, Conflict, KindOf(wrapped))

	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(0), KindOf(nil))
}

func TestWrap(t *testing.T) {
	require.Nil(t, Wrap(Upstream, "query users", nil))

	cause := errors.New("connection refused")
	err := Wrap(Upstream, "query users", cause)
	require.Error(t, err)
	assert.Equal(t, Upstream, KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "dni is required", Message(E(Validation, "dni is required")))
	// upstream and unclassified errors must not leak internals
	assert.Equal(t, "internal server error", Message(Wrap(Upstream, "pg down", errors.New("dial tcp"))))
	assert.Equal(t, "internal server error", Message(errors.New("dial tcp")))
}
