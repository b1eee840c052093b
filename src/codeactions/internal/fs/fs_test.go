package fs

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMkdirAll(t *testing.T) {
	dir := t.TempDir()
	fs := New()
	err := fs.MkdirAll(path.Join(dir, "foo/bar"))
	assert.NoError(t, err)

	exists, err := fs.DirExists(path.Join(dir, "foo/bar"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestDirExists(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		dir := t.TempDir()
		result, err := New().DirExists(dir)
		assert.NoError(t, err)
		assert.True(t, result)
	})

	t.Run("does not exist", func(t *testing.T) {
		dir := t.TempDir()
		result, err := New().DirExists(dir + "foo")
		assert.NoError(t, err)
		assert.False(t, result)
	})

	t.Run("file", func(t *testing.T) {
		file := path.Join(t.TempDir(), "a")
		require.NoError(t, os.WriteFile(file, []byte("a"), 0666))
		result, err := New().DirExists(file)
		assert.NoError(t, err)
		assert.False(t, result)
	})
}

func TestFileExists(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		file := path.Join(t.TempDir(), "a")
		require.NoError(t, os.WriteFile(file, []byte("a"), 0666))
		result, err := New().FileExists(file)
		assert.NoError(t, err)
		assert.True(t, result)
	})

	t.Run("does not exist", func(t *testing.T) {
		result, err := New().FileExists(path.Join(t.TempDir(), "missing"))
		assert.NoError(t, err)
		assert.False(t, result)
	})

	t.Run("directory", func(t *testing.T) {
		result, err := New().FileExists(t.TempDir())
		assert.NoError(t, err)
		assert.False(t, result)
	})
}

func TestReadWriteFile(t *testing.T) {
	file := path.Join(t.TempDir(), "a")
	fs := New()
	require.NoError(t, fs.WriteFile(file, []byte("contents")))

	result, err := fs.ReadFile(file)
	assert.NoError(t, err)
	assert.Equal(t, "contents", string(result))

	_, err = fs.ReadFile(file + "missing")
	assert.Error(t, err)
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	file := path.Join(dir, "a")
	require.NoError(t, os.WriteFile(file, []byte("contents"), 0666))

	fs := New()
	assert.NoError(t, fs.Remove(file))
	assert.NoError(t, fs.Remove(file), "removing a missing file is not an error")
}
