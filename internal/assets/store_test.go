// AngelaMos | 2026
// store_test.go

package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrovia-exports/go-backend/internal/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestStore_SaveAndDelete(t *testing.T) {
	store := newTestStore(t)

	path, err := store.Save("photo.PNG", strings.NewReader("fake image bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, PublicPrefix))
	assert.True(t, strings.HasSuffix(path, ".png"), "extension is lowercased")

	onDisk := filepath.Join(store.dir, strings.TrimPrefix(path, PublicPrefix))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))

	removed, err := store.Delete(path)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = os.Stat(onDisk)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestStore_DeleteMissingFileIsSuccess(t *testing.T) {
	store := newTestStore(t)

	removed, err := store.Delete("/uploads/never-existed.jpg")
	require.NoError(t, err)
	assert.False(t, removed)

	// And again, still no error.
	removed, err = store.Delete("/uploads/never-existed.jpg")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestStore_SaveRejectsUnsupportedType(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save("payload.exe", strings.NewReader("nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidInput))

	_, err = store.Save("no-extension", strings.NewReader("nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidInput))
}

func TestStore_DeleteRejectsPathsOutsideNamespace(t *testing.T) {
	store := newTestStore(t)

	for _, path := range []string{
		"/etc/passwd",
		"uploads/a.png",
		"/uploadsevil/a.png",
		"",
	} {
		_, err := store.Delete(path)
		require.Error(t, err, "path %q must be rejected", path)
		assert.True(t, errors.Is(err, core.ErrInvalidInput), "path %q", path)
	}
}

func TestStore_DeleteRejectsTraversal(t *testing.T) {
	store := newTestStore(t)

	// A real file just outside the store directory.
	outside := filepath.Join(filepath.Dir(store.dir), "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep out"), 0o600))

	for _, path := range []string{
		"/uploads/../secret.txt",
		"/uploads/../../etc/passwd",
		"/uploads/./../secret.txt",
	} {
		_, err := store.Delete(path)
		require.Error(t, err, "path %q must be rejected", path)
		assert.True(t, errors.Is(err, core.ErrInvalidInput), "path %q", path)
	}

	data, err := os.ReadFile(outside)
	require.NoError(t, err)
	assert.Equal(t, "keep out", string(data), "file outside store untouched")
}

func TestStore_DeleteRejectsBarePrefix(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Delete("/uploads/")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidInput))
}
