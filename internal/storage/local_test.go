package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(dir, "http://localhost:5000/uploads/images/")
	require.NoError(t, err)

	url, err := store.Save("cover.jpg", strings.NewReader("image bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:5000/uploads/images/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"), "extension must be preserved")

	name := filepath.Base(url)
	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(content))

	require.NoError(t, store.Remove(url))
	_, err = os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveIgnoresUnknownFiles(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "http://localhost:5000/uploads/images")
	require.NoError(t, err)

	// Foreign URLs and already removed files are not errors.
	assert.NoError(t, store.Remove("http://elsewhere.example.com/file.jpg"))
	assert.NoError(t, store.Remove("http://localhost:5000/uploads/images/ghost.jpg"))
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocal(dir, "http://localhost:5000/uploads/images")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
