package kvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	store, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("teachers", `[{"id":"t1"}]`))

	reopened, err := NewFile(path)
	require.NoError(t, err)
	v, ok := reopened.Get("teachers")
	require.True(t, ok)
	assert.Equal(t, `[{"id":"t1"}]`, v)
}

func TestFileCorruptContentDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store, err := NewFile(path)
	require.NoError(t, err)
	_, ok := store.Get("teachers")
	assert.False(t, ok)
}

func TestFileDeleteRestoresKeyOnWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	store, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("principal", `{"name":"x"}`))

	// Point the store at a path whose directory does not exist so the
	// next flush fails.
	store.path = filepath.Join(path, "missing", "store.json")
	store.Delete("principal")

	v, ok := store.Get("principal")
	require.True(t, ok)
	assert.Equal(t, `{"name":"x"}`, v)
}

func TestFileDeleteRemovesKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	store, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("principal", `{"name":"x"}`))

	store.Delete("principal")

	reopened, err := NewFile(path)
	require.NoError(t, err)
	_, ok := reopened.Get("principal")
	assert.False(t, ok)
}
