package fsutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, EnsureDir(fs, "/root/extract/BunnyMesh"))
	assert.True(t, IsDir(fs, "/root/extract/BunnyMesh"))

	require.NoError(t, EnsureFileDir(fs, "/root/download/BunnyMesh/BunnyMesh.ply"))
	assert.True(t, IsDir(fs, "/root/download/BunnyMesh"))
	assert.False(t, Exists(fs, "/root/download/BunnyMesh/BunnyMesh.ply"))
}

func TestExistsAndIsDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/file.txt", []byte("x"), FileModeDefault))

	tests := []struct {
		name   string
		path   string
		exists bool
		isDir  bool
	}{
		{name: "file", path: "/data/file.txt", exists: true, isDir: false},
		{name: "directory", path: "/data", exists: true, isDir: true},
		{name: "missing", path: "/nope", exists: false, isDir: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.exists, Exists(fs, tt.path))
			assert.Equal(t, tt.isDir, IsDir(fs, tt.path))
		})
	}
}

func TestDirSize(t *testing.T) {
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/root/extract/A/a.txt":     "12345",
		"/root/extract/A/sub/b.txt": "123",
		"/root/extract/B/c.txt":     "1",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), FileModeDefault))
	}

	size, count, err := DirSize(fs, "/root/extract")
	require.NoError(t, err)
	assert.Equal(t, int64(9), size)
	assert.Equal(t, 3, count)

	size, count, err = DirSize(fs, "/root/missing")
	require.NoError(t, err)
	assert.Zero(t, size)
	assert.Zero(t, count)
}

func TestSubdirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, EnsureDir(fs, filepath.Join("/root", "extract", "KnotMesh")))
	require.NoError(t, EnsureDir(fs, filepath.Join("/root", "extract", "BunnyMesh")))
	require.NoError(t, afero.WriteFile(fs, "/root/extract/stray.txt", nil, FileModeDefault))

	names, err := Subdirectories(fs, "/root/extract")
	require.NoError(t, err)
	assert.Equal(t, []string{"BunnyMesh", "KnotMesh"}, names)

	names, err = Subdirectories(fs, "/root/none")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestRemoveAll(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/root/download/X/x.zip", []byte("zip"), FileModeDefault))

	require.NoError(t, RemoveAll(fs, "/root/download/X"))
	assert.False(t, Exists(fs, "/root/download/X"))
	require.NoError(t, RemoveAll(fs, "/root/download/X"), "removing a missing path is not an error")
}
