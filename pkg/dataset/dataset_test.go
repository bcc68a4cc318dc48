package dataset_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/glorpus-work/o3data/pkg/dataset"
	pkgerrors "github.com/glorpus-work/o3data/pkg/errors"
	"github.com/glorpus-work/o3data/pkg/fsutil"
	"github.com/glorpus-work/o3data/pkg/hooks"
	hookmocks "github.com/glorpus-work/o3data/pkg/hooks/mocks"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func TestNew_Bookkeeping(t *testing.T) {
	ds, err := dataset.New("some_prefix", "/my/custom/data_root", dataset.WithFs(afero.NewMemMapFs()))
	require.NoError(t, err)

	assert.Equal(t, "some_prefix", ds.Prefix())
	assert.Equal(t, filepath.FromSlash("/my/custom/data_root"), ds.DataRoot())
	assert.Equal(t, filepath.FromSlash("/my/custom/data_root/download/some_prefix"), ds.DownloadDir())
	assert.Equal(t, filepath.FromSlash("/my/custom/data_root/extract/some_prefix"), ds.ExtractDir())
	assert.False(t, ds.IsFetched())
}

func TestNew_EmptyPrefix(t *testing.T) {
	_, err := dataset.New("", "/data")
	assert.ErrorIs(t, err, pkgerrors.ErrEmptyPrefix)
}

func TestNew_DataRootPrecedence(t *testing.T) {
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	home := t.TempDir()
	envRoot := t.TempDir()
	t.Setenv("HOME", home)

	t.Run("explicit wins", func(t *testing.T) {
		t.Setenv(fsutil.EnvDataRoot, envRoot)
		ds, err := dataset.New("p", "/explicit")
		require.NoError(t, err)
		assert.Equal(t, filepath.FromSlash("/explicit"), ds.DataRoot())
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(fsutil.EnvDataRoot, envRoot)
		ds, err := dataset.New("p", "")
		require.NoError(t, err)
		assert.Equal(t, envRoot, ds.DataRoot())
	})

	t.Run("home default", func(t *testing.T) {
		t.Setenv(fsutil.EnvDataRoot, "")
		ds, err := dataset.New("p", "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "open3d_data"), ds.DataRoot())
	})
}

func TestDataset_Help(t *testing.T) {
	ds, err := dataset.New("some_prefix", "/root_dir")
	require.NoError(t, err)
	help := ds.Help()
	assert.Contains(t, help, "Dataset: some_prefix")
	assert.Contains(t, help, ds.DownloadDir())
	assert.Contains(t, help, ds.ExtractDir())
}

func TestDataset_DisplayDataTree(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	fs := afero.NewMemMapFs()
	ds, err := dataset.New("Fountain", "/data", dataset.WithFs(fs))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.Error(t, ds.DisplayDataTree(&buf, 0), "tree of a missing dataset")

	for _, name := range []string{"scene/key.log", "scene/integrated.ply", "image/a.jpg", "readme.txt"} {
		writeFile(t, fs, filepath.Join(ds.ExtractDir(), filepath.FromSlash(name)), "x")
	}

	tests := []struct {
		name     string
		depth    int
		expected string
	}{
		{
			name:  "unlimited",
			depth: 0,
			expected: ds.ExtractDir() + "\n" +
				"├── image/\n" +
				"│   └── a.jpg\n" +
				"├── readme.txt\n" +
				"└── scene/\n" +
				"    ├── integrated.ply\n" +
				"    └── key.log\n",
		},
		{
			name:  "top level only",
			depth: 1,
			expected: ds.ExtractDir() + "\n" +
				"├── image/\n" +
				"├── readme.txt\n" +
				"└── scene/\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, ds.DisplayDataTree(&out, tt.depth))
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestDataset_DeleteFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	executor := hooks.NewTengoExecutor()
	require.NoError(t, executor.AddHook(hooks.Hook{
		Type:    hooks.PostDelete,
		Content: `err := prefix == "Doomed" ? "" : "wrong prefix"`,
	}))

	ds, err := dataset.New("Doomed", "/data", dataset.WithFs(fs), dataset.WithHooks(executor))
	require.NoError(t, err)
	writeFile(t, fs, filepath.Join(ds.DownloadDir(), "a.zip"), "zip")
	writeFile(t, fs, filepath.Join(ds.ExtractDir(), "a.txt"), "txt")

	require.NoError(t, ds.DeleteExtractFiles())
	assert.False(t, fsutil.Exists(fs, ds.ExtractDir()))
	assert.True(t, fsutil.Exists(fs, ds.DownloadDir()))

	require.NoError(t, ds.DeleteDownloadFiles())
	assert.False(t, fsutil.Exists(fs, ds.DownloadDir()))

	// Deleting twice is fine and the object keeps its paths.
	require.NoError(t, ds.DeleteDownloadFiles())
	assert.True(t, strings.HasSuffix(ds.DownloadDir(), "Doomed"))
}

type deleteCtxKey struct{}

func TestDataset_Delete(t *testing.T) {
	tests := []struct {
		name           string
		download       bool
		extract        bool
		hookRuns       int
		downloadRemain bool
		extractRemain  bool
	}{
		{name: "both", download: true, extract: true, hookRuns: 1},
		{name: "download only", download: true, hookRuns: 1, extractRemain: true},
		{name: "extract only", extract: true, hookRuns: 1, downloadRemain: true},
		{name: "nothing selected", downloadRemain: true, extractRemain: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			ctrl := gomock.NewController(t)
			hm := hookmocks.NewMockHookManager(ctrl)
			ctx := context.WithValue(context.Background(), deleteCtxKey{}, tt.name)

			var got []hooks.HookContext
			hm.EXPECT().HasHook(hooks.PostDelete).Return(true).Times(tt.hookRuns)
			hm.EXPECT().Execute(gomock.Any(), hooks.PostDelete, gomock.Any()).
				DoAndReturn(func(hctx context.Context, _ hooks.HookType, hc hooks.HookContext) error {
					assert.Equal(t, tt.name, hctx.Value(deleteCtxKey{}))
					got = append(got, hc)
					return nil
				}).Times(tt.hookRuns)

			ds, err := dataset.New("Doomed", "/data", dataset.WithFs(fs), dataset.WithHooks(hm))
			require.NoError(t, err)
			writeFile(t, fs, filepath.Join(ds.DownloadDir(), "a.zip"), "zip")
			writeFile(t, fs, filepath.Join(ds.ExtractDir(), "a.txt"), "txt")

			require.NoError(t, ds.Delete(ctx, tt.download, tt.extract))
			assert.Equal(t, tt.downloadRemain, fsutil.Exists(fs, ds.DownloadDir()))
			assert.Equal(t, tt.extractRemain, fsutil.Exists(fs, ds.ExtractDir()))

			require.Len(t, got, tt.hookRuns)
			if tt.hookRuns > 0 {
				assert.Equal(t, "Doomed", got[0].Prefix)
				assert.Equal(t, tt.download, got[0].Vars["deletedDownload"])
				assert.Equal(t, tt.extract, got[0].Vars["deletedExtract"])
			}
		})
	}
}

func TestDataset_Delete_HookError(t *testing.T) {
	executor := hooks.NewTengoExecutor()
	require.NoError(t, executor.AddHook(hooks.Hook{
		Type:    hooks.PostDelete,
		Content: `err := deletedDownload && deletedExtract ? "refusing full delete" : ""`,
	}))
	ds, err := dataset.New("Doomed", "/data", dataset.WithFs(afero.NewMemMapFs()), dataset.WithHooks(executor))
	require.NoError(t, err)

	require.NoError(t, ds.Delete(context.Background(), false, true))
	err = ds.Delete(context.Background(), true, true)
	assert.ErrorIs(t, err, pkgerrors.ErrHookScript)
}
