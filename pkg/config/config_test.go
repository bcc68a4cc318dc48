package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/glorpus-work/o3data/pkg/auth"
	"github.com/glorpus-work/o3data/pkg/dataset"
	"github.com/glorpus-work/o3data/pkg/errors"
	"github.com/glorpus-work/o3data/pkg/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, "info", cfg.Settings.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.Settings.HTTPTimeout)
	assert.Equal(t, 4, cfg.Settings.MaxConcurrent)
	assert.True(t, cfg.Settings.ColorOutput)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	configContent := `version: 1
settings:
  data_root: /srv/open3d_data
  http_timeout: 90s
  log_level: debug
mirrors:
  "*":
    - https://cache.example.com/open3d
  BunnyMesh:
    - gs://bucket/datasets
datasets:
  - prefix: LabScans
    urls:
      - https://example.com/scans/lab.zip
    checksum: md5:568f871d1a221ba6627569f1e6f9a3f2
    description: Lab scans
hooks:
  post_fetch: |
    err := extractDir == "" ? "no extract dir" : undefined
`

	require.NoError(t, os.WriteFile(configPath, []byte(configContent), fsutil.FileModeDefault))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, "/srv/open3d_data", cfg.Settings.DataRoot)
	assert.Equal(t, 90*time.Second, cfg.Settings.HTTPTimeout)
	assert.Equal(t, "debug", cfg.Settings.LogLevel)
	// Keys absent from the file keep their defaults.
	assert.True(t, cfg.Settings.ColorOutput)
	assert.Equal(t, DefaultMaxConcurrent, cfg.Settings.MaxConcurrent)

	assert.Equal(t, []string{"gs://bucket/datasets", "https://cache.example.com/open3d"}, cfg.MirrorsFor("BunnyMesh"))
	assert.Equal(t, []string{"https://cache.example.com/open3d"}, cfg.MirrorsFor("KnotMesh"))

	require.Len(t, cfg.Datasets, 1)
	assert.Equal(t, []dataset.Descriptor{{
		Prefix: "LabScans",
		Sources: []dataset.Source{{
			Checksum: "md5:568f871d1a221ba6627569f1e6f9a3f2",
			Mirrors:  []string{"https://example.com/scans/lab.zip"},
		}},
		Description: "Lab scans",
	}}, cfg.Descriptors())

	scripts := cfg.HookScripts()
	assert.Contains(t, scripts["post-fetch"], "no extract dir")
	assert.Empty(t, scripts["post-delete"])
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = LoadConfig("")
	assert.ErrorIs(t, err, errors.ErrEmptyConfigPath)
}

func TestLoadConfigFromReader_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr error
	}{
		{name: "malformed", content: "settings: [", expectedErr: errors.ErrConfigParse},
		{name: "future version", content: "version: 2\n", expectedErr: errors.ErrConfigVersion},
		{name: "garbage version", content: "version: banana\n", expectedErr: errors.ErrConfigVersion},
		{name: "negative timeout", content: "settings:\n  http_timeout: -1s\n", expectedErr: errors.ErrHTTPTimeoutNegative},
		{name: "bad log level", content: "settings:\n  log_level: chatty\n", expectedErr: errors.ErrConfigValidation},
		{name: "bad mirror", content: "mirrors:\n  \"*\": [\"no-scheme\"]\n", expectedErr: errors.ErrUnsupportedURL},
		{name: "unknown auth type", content: "auth:\n  example.com:\n    type: kerberos\n", expectedErr: errors.ErrConfigValidation},
		{name: "bearer without token", content: "auth:\n  example.com:\n    type: bearer\n", expectedErr: errors.ErrConfigValidation},
		{
			name:        "dataset without urls",
			content:     "datasets:\n  - prefix: Empty\n",
			expectedErr: errors.ErrNoMirrors,
		},
		{
			name:        "dataset without prefix",
			content:     "datasets:\n  - urls: [\"https://example.com/a.zip\"]\n",
			expectedErr: errors.ErrEmptyPrefix,
		},
		{
			name:        "duplicate dataset",
			content:     "datasets:\n  - prefix: A\n    urls: [\"https://example.com/a.zip\"]\n  - prefix: A\n    urls: [\"https://example.com/b.zip\"]\n",
			expectedErr: errors.ErrConfigValidation,
		},
		{
			name:        "bad checksum",
			content:     "datasets:\n  - prefix: A\n    urls: [\"https://example.com/a.zip\"]\n    checksum: sha256:xyz\n",
			expectedErr: errors.ErrInvalidChecksum,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfigFromReader(strings.NewReader(tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestSaveConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Settings.LogLevel = "debug"
	cfg.Settings.DataRoot = "/data"
	cfg.Mirrors = map[string][]string{WildcardMirror: {"file:///mnt/mirror"}}
	cfg.AddDataset(&DatasetConfig{Prefix: "Mine", URLs: []string{"https://example.com/mine.ply"}, NoExtract: true})

	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, cfg.SaveConfig(configPath))

	_, err := os.Stat(configPath + ".tmp")
	assert.True(t, os.IsNotExist(err))

	loaded, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDatasetManagement(t *testing.T) {
	cfg := DefaultConfig()

	cfg.AddDataset(&DatasetConfig{Prefix: "A", URLs: []string{"https://example.com/a.zip"}})
	cfg.AddDataset(&DatasetConfig{Prefix: "A", URLs: []string{"https://example.com/a2.zip"}})
	require.Len(t, cfg.Datasets, 1)
	assert.Equal(t, []string{"https://example.com/a2.zip"}, cfg.Datasets[0].URLs)

	assert.True(t, cfg.RemoveDataset("A"))
	assert.False(t, cfg.RemoveDataset("A"))
	assert.Empty(t, cfg.Datasets)
}

func TestSetGetValue(t *testing.T) {
	tests := []struct {
		key      string
		value    string
		expected string
		wantErr  bool
	}{
		{key: "data_root", value: "/tmp/data", expected: "/tmp/data"},
		{key: "http_timeout", value: "90s", expected: "1m30s"},
		{key: "http_timeout", value: "soon", wantErr: true},
		{key: "user_agent", value: "lab-bot/2", expected: "lab-bot/2"},
		{key: "max_concurrent", value: "8", expected: "8"},
		{key: "max_concurrent", value: "0", wantErr: true},
		{key: "color_output", value: "false", expected: "false"},
		{key: "color_output", value: "maybe", wantErr: true},
		{key: "log_level", value: "warn", expected: "warn"},
		{key: "log_level", value: "loud", wantErr: true},
		{key: "output_format", value: "json", expected: "json"},
		{key: "nope", value: "x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.SetValue(tt.key, tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, errors.ErrConfigValidation)
				return
			}
			require.NoError(t, err)
			got, err := cfg.GetValue(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestToMap(t *testing.T) {
	m := DefaultConfig().ToMap()
	assert.Equal(t, "5m0s", m["http_timeout"])
	assert.Equal(t, "4", m["max_concurrent"])
	assert.Equal(t, "true", m["color_output"])
	assert.Equal(t, "1", m["version"])
	assert.Contains(t, m, "data_root")
}

func TestGetDefaultConfigPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/o3data.yaml")
	p, err := GetDefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/o3data.yaml", p)

	t.Setenv(EnvConfigPath, "")
	p, err = GetDefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("o3data", "config.yaml"), filepath.Join(filepath.Base(filepath.Dir(p)), filepath.Base(p)))
}

func TestAuthenticators(t *testing.T) {
	t.Setenv("O3DATA_TEST_TOKEN", "s3cret")
	cfg, err := LoadConfigFromReader(strings.NewReader(`auth:
  Mirror.Example.com:
    type: bearer
    token: ${O3DATA_TEST_TOKEN}
  cache.internal:8443:
    type: basic
    username: ci
    password: $O3DATA_TEST_TOKEN
  api.example.com:
    type: header
    headers:
      X-API-Key: key-$O3DATA_TEST_TOKEN
`))
	require.NoError(t, err)

	expected := auth.Hosts{
		"mirror.example.com":  auth.BearerAuth{Token: "s3cret"},
		"cache.internal:8443": auth.BasicAuth{Username: "ci", Password: "s3cret"},
		"api.example.com":     auth.HeaderAuth{Headers: map[string]string{"X-API-Key": "key-s3cret"}},
	}
	assert.Equal(t, expected, cfg.Authenticators())
	assert.Nil(t, DefaultConfig().Authenticators())
}
