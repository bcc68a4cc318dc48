package fsutil

import (
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateDataRoot(t *testing.T) {
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name     string
		env      string
		expected string
	}{
		{
			name:     "home default",
			env:      "",
			expected: filepath.Join(home, "open3d_data"),
		},
		{
			name:     "environment override",
			env:      "/srv/open3d",
			expected: "/srv/open3d",
		},
		{
			name:     "environment override is cleaned",
			env:      "/srv/open3d/",
			expected: "/srv/open3d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvDataRoot, tt.env)
			root, err := LocateDataRoot()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, root)
		})
	}
}

func TestResolveDataRoot_Precedence(t *testing.T) {
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvDataRoot, "/from/env")

	root, err := ResolveDataRoot("/my/custom/data_root")
	require.NoError(t, err)
	assert.Equal(t, "/my/custom/data_root", root, "explicit argument wins over the environment")

	root, err = ResolveDataRoot("")
	require.NoError(t, err)
	assert.Equal(t, "/from/env", root)

	root, err = ResolveDataRoot("~/datasets")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "datasets"), root)
}

func TestDownloadAndExtractDir(t *testing.T) {
	assert.Equal(t, "/my/custom/data_root/download/some_prefix", DownloadDir("/my/custom/data_root", "some_prefix"))
	assert.Equal(t, "/my/custom/data_root/extract/some_prefix", ExtractDir("/my/custom/data_root", "some_prefix"))
}
