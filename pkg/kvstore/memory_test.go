package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSetDelete(t *testing.T) {
	store := NewMemory()

	_, ok := store.Get("missing")
	assert.False(t, ok)

	require.NoError(t, store.Set("announcements", `[]`))
	v, ok := store.Get("announcements")
	require.True(t, ok)
	assert.Equal(t, `[]`, v)

	store.Delete("announcements")
	_, ok = store.Get("announcements")
	assert.False(t, ok)
}

func TestMemoryCapacityRejectsWrite(t *testing.T) {
	store := NewMemoryWithCapacity(20)

	require.NoError(t, store.Set("a", "0123456789"))

	err := store.Set("b", "0123456789")
	require.ErrorIs(t, err, ErrQuotaExceeded)

	// The rejected write must not clobber existing state.
	v, ok := store.Get("a")
	require.True(t, ok)
	assert.Equal(t, "0123456789", v)
	_, ok = store.Get("b")
	assert.False(t, ok)
}

func TestMemoryCapacityAllowsOverwrite(t *testing.T) {
	store := NewMemoryWithCapacity(11)

	require.NoError(t, store.Set("a", "0123456789"))
	// Replacing the same key is measured against the new value, not the sum.
	require.NoError(t, store.Set("a", "9876543210"))
}
