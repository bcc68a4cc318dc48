package hooks_test

import (
	"context"
	"testing"
	"time"

	pkgerrors "github.com/glorpus-work/o3data/pkg/errors"
	"github.com/glorpus-work/o3data/pkg/hooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTengoExecutor(t *testing.T) {
	executor := hooks.NewTengoExecutor()
	hc := hooks.HookContext{
		Prefix:      "BunnyMesh",
		DataRoot:    "/data",
		DownloadDir: "/data/download/BunnyMesh",
		ExtractDir:  "/data/extract/BunnyMesh",
		Vars: map[string]interface{}{
			"customVar": "customValue",
		},
	}
	ctx := context.Background()

	t.Run("Execute script with return value", func(t *testing.T) {
		require.NoError(t, executor.AddHook(hooks.Hook{Type: hooks.PostFetch, Content: `// This is a valid script that does nothing`}))

		err := executor.Execute(ctx, hooks.PostFetch, hc)
		assert.NoError(t, err, "Execute should not return an error for valid script")
	})

	t.Run("Execute script with error", func(t *testing.T) {
		require.NoError(t, executor.AddHook(hooks.Hook{Type: hooks.PostDelete, Content: `non_existent_function()`}))

		err := executor.Execute(ctx, hooks.PostDelete, hc)
		require.Error(t, err)
		assert.ErrorIs(t, err, pkgerrors.ErrHookExecution)
	})

	t.Run("Execute non-existent script", func(t *testing.T) {
		err := hooks.NewTengoExecutor().Execute(ctx, hooks.PostFetch, hc)
		assert.NoError(t, err, "Execute should not return an error for non-existent hooks")
	})

	t.Run("Context variables are accessible", func(t *testing.T) {
		script := `
			if prefix != "BunnyMesh" || extractDir != "/data/extract/BunnyMesh" || customVar != "customValue" {
				err := "unexpected context " + prefix
			}
		`
		require.NoError(t, executor.AddHook(hooks.Hook{Type: hooks.PostFetch, Content: script}))
		assert.NoError(t, executor.Execute(ctx, hooks.PostFetch, hc))
	})

	t.Run("Script reports failure through err", func(t *testing.T) {
		script := `err := "missing file in " + downloadDir`
		require.NoError(t, executor.AddHook(hooks.Hook{Type: hooks.PostFetch, Content: script}))

		err := executor.Execute(ctx, hooks.PostFetch, hc)
		require.Error(t, err)
		assert.ErrorIs(t, err, pkgerrors.ErrHookScript)
		assert.Contains(t, err.Error(), "/data/download/BunnyMesh")
	})

	t.Run("Script can use stdlib modules", func(t *testing.T) {
		script := `
			strings := import("strings")
			if !strings.has_prefix(extractDir, dataRoot) {
				err := "extract dir outside data root"
			}
		`
		require.NoError(t, executor.AddHook(hooks.Hook{Type: hooks.PostFetch, Content: script}))
		assert.NoError(t, executor.Execute(ctx, hooks.PostFetch, hc))
	})

	t.Run("Canceled context stops script", func(t *testing.T) {
		exec := hooks.NewTengoExecutor()
		require.NoError(t, exec.AddHook(hooks.Hook{Type: hooks.PostFetch, Content: `for true {}`}))

		runCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()
		err := exec.Execute(runCtx, hooks.PostFetch, hc)
		assert.ErrorIs(t, err, pkgerrors.ErrHookExecution)
	})
}

func TestTengoExecutor_HookRegistry(t *testing.T) {
	executor := hooks.NewTengoExecutor()

	tests := []struct {
		name        string
		hook        hooks.Hook
		expectedErr error
	}{
		{name: "valid hooks", hook: hooks.Hook{Type: hooks.PostFetch, Content: "// ok"}},
		{name: "empty hooks type", hook: hooks.Hook{Content: "// ok"}, expectedErr: hooks.ErrHookTypeEmpty},
		{name: "unknown hooks type", hook: hooks.Hook{Type: "pre-install", Content: "// ok"}, expectedErr: pkgerrors.ErrHookExecution},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := executor.AddHook(tt.hook)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, executor.HasHook(tt.hook.Type))
		})
	}

	require.NoError(t, executor.RemoveHook(hooks.PostFetch))
	assert.False(t, executor.HasHook(hooks.PostFetch))
	assert.Error(t, executor.RemoveHook(hooks.PostFetch))
}
