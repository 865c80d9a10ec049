package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryConsumeOnce(t *testing.T) {
	reg := NewRegistry()
	rec := PendingCall{Server: "github", Function: "search", Arguments: "{}"}

	require.NoError(t, reg.Register("call-1", rec))
	assert.Equal(t, 1, reg.Pending())

	got, err := reg.Consume("call-1")
	require.NoError(t, err)
	assert.Equal(t, rec, got)
	assert.Equal(t, 0, reg.Pending())

	_, err = reg.Consume("call-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCallID))
}

func TestRegistryResolveKeepsRecord(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("a", PendingCall{Server: "fetch"}))

	_, err := reg.Resolve("a")
	require.NoError(t, err)
	_, err = reg.Resolve("a")
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Pending())

	_, err = reg.Resolve("missing")
	assert.ErrorIs(t, err, ErrUnknownCallID)
}

func TestRegistryRejectsDuplicateID(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("a", PendingCall{Server: "one"}))

	err := reg.Register("a", PendingCall{Server: "two"})
	assert.ErrorIs(t, err, ErrDuplicateCallID)

	got, err := reg.Resolve("a")
	require.NoError(t, err)
	assert.Equal(t, "one", got.Server)
}
