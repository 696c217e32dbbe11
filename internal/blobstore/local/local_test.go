package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vbonduro/unitregistry/internal/blobstore"
)

func TestFileBlobStoreSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.cbor")
	store, err := NewFileBlobStore(path)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, []byte("first")))

	data, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), data)
	assert.Equal(t, path, store.Location())
}

func TestFileBlobStoreSaveOverwrites(t *testing.T) {
	store, err := NewFileBlobStore(filepath.Join(t.TempDir(), "units.cbor"))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, []byte("a much longer first payload")))
	require.NoError(t, store.Save(ctx, []byte("short")))

	data, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("short"), data)
}

func TestFileBlobStoreMissingFile(t *testing.T) {
	store, err := NewFileBlobStore(filepath.Join(t.TempDir(), "absent.cbor"))
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, blobstore.ErrNotExist)
}

func TestFileBlobStoreCreatesParentDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")
	_, err := NewFileBlobStore(filepath.Join(dir, "units.cbor"))
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileBlobStoreUnreadablePath(t *testing.T) {
	// A directory at the blob path cannot be read as a file.
	path := t.TempDir()
	store, err := NewFileBlobStore(path)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, blobstore.ErrNotExist)

	assert.Error(t, store.Save(context.Background(), []byte("x")))
}

func TestNewFileBlobStoreEmptyPath(t *testing.T) {
	_, err := NewFileBlobStore("")
	assert.Error(t, err)
}
