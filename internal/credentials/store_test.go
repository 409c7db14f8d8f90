package credentials

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_GetMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "authToken.json"))

	token, ok, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestFileStore_SetGetRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authToken.json")
	store := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tok1"))

	token, ok, err := store.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok1", token)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_SurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authToken.json")
	ctx := context.Background()

	require.NoError(t, NewFileStore(path).Set(ctx, "tok1"))

	// a fresh store instance models a process restart
	token, ok, err := NewFileStore(path).Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok1", token)
}

func TestFileStore_ClearIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authToken.json")
	store := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tok1"))
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	_, ok, err := store.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "authToken.json")
	ctx := context.Background()

	require.NoError(t, NewFileStore(path).Set(ctx, "tok1"))

	_, ok, err := NewFileStore(path).Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}
