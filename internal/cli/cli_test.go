package cli

import (
	"path/filepath"
	"testing"

	"github.com/glorpus-work/o3data/pkg/config"
	"github.com/glorpus-work/o3data/pkg/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		n        int
		expected string
	}{
		{name: "short", in: "Bunny", n: 10, expected: "Bunny"},
		{name: "exact", in: "0123456789", n: 10, expected: "0123456789"},
		{name: "long", in: "Stanford Bunny mesh", n: 10, expected: "Stanfor..."},
		{name: "multibyte", in: "ääääääääääää", n: 6, expected: "äää..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncate(tt.in, tt.n))
		})
	}
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "/etc/o3data.yaml")
	ConfigPath = nil
	assert.Equal(t, "/etc/o3data.yaml", getConfigPath())

	explicit := "/tmp/custom.yaml"
	ConfigPath = &explicit
	t.Cleanup(func() { ConfigPath = nil })
	assert.Equal(t, explicit, getConfigPath())
}

func TestNewSession(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	cfg := config.DefaultConfig()
	cfg.Settings.LogLevel = "error"
	cfg.Mirrors = map[string][]string{
		"BunnyMesh": {"https://mirror.example.com/bunny"},
		"*":         {"https://mirror.example.com/all"},
	}
	cfg.AddDataset(&config.DatasetConfig{Prefix: "Scans", URLs: []string{"https://example.com/scans.zip"}})
	require.NoError(t, cfg.SaveConfig(configPath))

	root := filepath.Join(dir, "root")
	verbose := false
	ConfigPath, DataRoot, Verbose = &configPath, &root, &verbose
	t.Cleanup(func() { ConfigPath, DataRoot, Verbose = nil, nil, nil })

	s, err := newSession()
	require.NoError(t, err)
	assert.Equal(t, root, s.dataRoot)
	assert.Contains(t, s.registry.Names(), "Scans")
	assert.NoError(t, s.checkNames([]string{"Scans", "BunnyMesh"}))
	assert.Error(t, s.checkNames([]string{"Nope"}))

	r, err := s.open(t.Context(), "BunnyMesh", dataset.WithoutFetch())
	require.NoError(t, err)
	assert.Contains(t, r.Help(), "https://mirror.example.com/bunny/BunnyMesh.ply")
	assert.Contains(t, r.Help(), "https://mirror.example.com/all/BunnyMesh.ply")
	assert.False(t, r.IsFetched())
}

func TestFetchCmd_Args(t *testing.T) {
	cmd := NewFetchCmd()
	assert.Error(t, cmd.Args(cmd, nil))
	assert.NoError(t, cmd.Args(cmd, []string{"BunnyMesh"}))

	require.NoError(t, cmd.Flags().Set("all", "true"))
	assert.NoError(t, cmd.Args(cmd, nil))
	assert.Error(t, cmd.Args(cmd, []string{"BunnyMesh"}))
}

func TestSortPathKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want []string
	}{
		{
			name: "numeric index order",
			keys: []string{"paths[10]", "paths[2]", "paths[0]", "paths[1]"},
			want: []string{"paths[0]", "paths[1]", "paths[2]", "paths[10]"},
		},
		{
			name: "base names first",
			keys: []string{"texture_path", "paths[11]", "path", "paths[3]"},
			want: []string{"path", "paths[3]", "paths[11]", "texture_path"},
		},
		{
			name: "malformed index sorts as plain key",
			keys: []string{"paths[x]", "paths[1]", "paths"},
			want: []string{"paths", "paths[1]", "paths[x]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := append([]string(nil), tt.keys...)
			sortPathKeys(keys)
			assert.Equal(t, tt.want, keys)
		})
	}
}
