package orchestrator

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glorpus-work/o3data/pkg/data"
	"github.com/glorpus-work/o3data/pkg/dataset"
	"github.com/glorpus-work/o3data/pkg/hooks"
	hookmocks "github.com/glorpus-work/o3data/pkg/hooks/mocks"
	ocmocks "github.com/glorpus-work/o3data/pkg/orchestrator/mocks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const root = "/data_root"

// bookkeeping opens the real dataset without touching the network.
func bookkeeping(fs afero.Fs) func(context.Context, string, string, ...dataset.Option) (data.Resource, error) {
	reg := data.NewRegistry()
	return func(ctx context.Context, name, dataRoot string, _ ...dataset.Option) (data.Resource, error) {
		return reg.Open(ctx, name, dataRoot, dataset.WithFs(fs), dataset.WithoutFetch())
	}
}

func TestFetchAll_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	opener := ocmocks.NewMockOpener(ctrl)
	fs := afero.NewMemMapFs()

	var optCalls int32
	opener.EXPECT().Open(gomock.Any(), "BunnyMesh", root, gomock.Any()).DoAndReturn(bookkeeping(fs)).Times(1)
	opener.EXPECT().Open(gomock.Any(), "KnotMesh", root, gomock.Any()).DoAndReturn(bookkeeping(fs)).Times(1)

	var mu sync.Mutex
	var phases []string
	orch := New(opener, Hooks{OnEvent: func(e Event) {
		mu.Lock()
		defer mu.Unlock()
		phases = append(phases, e.Phase+":"+e.ID)
	}})

	fetched, err := orch.FetchAll(context.Background(), []string{"BunnyMesh", "KnotMesh"}, Options{
		DataRoot:    root,
		Concurrency: 2,
		DatasetOptions: func(name string) []dataset.Option {
			atomic.AddInt32(&optCalls, 1)
			return []dataset.Option{dataset.WithExtraMirrors("https://cache.example.com/" + name)}
		},
	})
	require.NoError(t, err)
	require.Len(t, fetched, 2)
	assert.Equal(t, filepath.Join(root, "extract", "KnotMesh"), fetched["KnotMesh"].ExtractDir())
	assert.Equal(t, int32(2), optCalls)
	assert.ElementsMatch(t, []string{"fetching:BunnyMesh", "done:BunnyMesh", "fetching:KnotMesh", "done:KnotMesh"}, phases)
}

func TestFetchAll_RespectsConcurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	opener := ocmocks.NewMockOpener(ctrl)
	fs := afero.NewMemMapFs()
	open := bookkeeping(fs)

	var inFlight, peak int32
	opener.EXPECT().Open(gomock.Any(), gomock.Any(), root, gomock.Any()).DoAndReturn(
		func(ctx context.Context, name, dataRoot string, opts ...dataset.Option) (data.Resource, error) {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
			return open(ctx, name, dataRoot, opts...)
		}).Times(6)

	names := []string{"BunnyMesh", "KnotMesh", "ArmadilloMesh", "JuneauImage", "EaglePointCloud", "StanfordBunny"}
	fetched, err := New(opener, Hooks{}).FetchAll(context.Background(), names, Options{DataRoot: root, Concurrency: 2})
	require.NoError(t, err)
	assert.Len(t, fetched, 6)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestFetchAll_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	opener := ocmocks.NewMockOpener(ctrl)
	boom := errors.New("mirror down")

	opener.EXPECT().Open(gomock.Any(), "BunnyMesh", root, gomock.Any()).Return(nil, boom)

	var failed []Event
	orch := New(opener, Hooks{OnEvent: func(e Event) {
		if e.Phase == "error" {
			failed = append(failed, e)
		}
	}})
	_, err := orch.FetchAll(context.Background(), []string{"BunnyMesh"}, Options{DataRoot: root, Concurrency: 1})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "BunnyMesh")
	require.Len(t, failed, 1)
	assert.Equal(t, "mirror down", failed[0].Msg)
}

func TestFetchAll_NoRegistry(t *testing.T) {
	_, err := (&Orchestrator{}).FetchAll(context.Background(), []string{"BunnyMesh"}, Options{})
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name           string
		opts           DeleteOptions
		downloadRemain bool
		extractRemain  bool
	}{
		{name: "both by default", opts: DeleteOptions{DataRoot: root}},
		{name: "download only", opts: DeleteOptions{DataRoot: root, Download: true}, extractRemain: true},
		{name: "extract only", opts: DeleteOptions{DataRoot: root, Extract: true}, downloadRemain: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			downloadFile := filepath.Join(root, "download", "KnotMesh", "KnotMesh.ply")
			extractFile := filepath.Join(root, "extract", "KnotMesh", "KnotMesh.ply")
			require.NoError(t, afero.WriteFile(fs, downloadFile, []byte("ply"), 0o644))
			require.NoError(t, afero.WriteFile(fs, extractFile, []byte("ply"), 0o644))

			ctrl := gomock.NewController(t)
			opener := ocmocks.NewMockOpener(ctrl)
			opener.EXPECT().Open(gomock.Any(), "KnotMesh", root, gomock.Any()).DoAndReturn(bookkeeping(fs))

			require.NoError(t, New(opener, Hooks{}).Delete(context.Background(), "KnotMesh", tt.opts))

			_, err := fs.Stat(downloadFile)
			assert.Equal(t, tt.downloadRemain, err == nil)
			_, err = fs.Stat(extractFile)
			assert.Equal(t, tt.extractRemain, err == nil)
		})
	}
}

func TestDelete_PostDeleteHookRunsOnce(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, filepath.Join(root, "download", "KnotMesh", "KnotMesh.ply"), []byte("ply"), 0o644))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(root, "extract", "KnotMesh", "KnotMesh.ply"), []byte("ply"), 0o644))

	ctrl := gomock.NewController(t)
	hm := hookmocks.NewMockHookManager(ctrl)
	hm.EXPECT().HasHook(hooks.PostDelete).Return(true).Times(1)
	hm.EXPECT().Execute(gomock.Any(), hooks.PostDelete, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ hooks.HookType, hc hooks.HookContext) error {
			assert.Equal(t, true, hc.Vars["deletedDownload"])
			assert.Equal(t, true, hc.Vars["deletedExtract"])
			return nil
		}).Times(1)

	reg := data.NewRegistry()
	opener := ocmocks.NewMockOpener(ctrl)
	opener.EXPECT().Open(gomock.Any(), "KnotMesh", root, gomock.Any()).
		DoAndReturn(func(ctx context.Context, name, dataRoot string, opts ...dataset.Option) (data.Resource, error) {
			return reg.Open(ctx, name, dataRoot, append(opts, dataset.WithFs(fs))...)
		})

	var phases []string
	o := New(opener, Hooks{OnEvent: func(e Event) { phases = append(phases, e.Phase) }})
	require.NoError(t, o.Delete(context.Background(), "KnotMesh", DeleteOptions{DataRoot: root}, dataset.WithHooks(hm)))
	assert.Equal(t, []string{"deleting", "deleted"}, phases)
}
