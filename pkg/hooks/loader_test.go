package hooks_test

import (
	"testing"

	"github.com/glorpus-work/o3data/pkg/hooks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadHooksFromDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg/hooks/post-fetch.tengo", []byte("// fetch"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/cfg/hooks/pre-install.tengo", []byte("// ignored"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/cfg/hooks/post-delete.txt", []byte("// ignored"), 0o644))

	executor := hooks.NewTengoExecutor()
	require.NoError(t, hooks.LoadHooksFromDir(fs, executor, "/cfg/hooks"))

	assert.True(t, executor.HasHook(hooks.PostFetch))
	assert.False(t, executor.HasHook(hooks.PostDelete))
}

func TestLoadHooksFromDir_Missing(t *testing.T) {
	executor := hooks.NewTengoExecutor()
	assert.NoError(t, hooks.LoadHooksFromDir(afero.NewMemMapFs(), executor, "/nowhere"))
}

func TestLoadHooksFromMap(t *testing.T) {
	executor := hooks.NewTengoExecutor()
	require.NoError(t, hooks.LoadHooksFromMap(executor, map[string]string{
		"post_fetch":  "// fetch",
		"post-delete": "  ",
	}))
	assert.True(t, executor.HasHook(hooks.PostFetch))
	assert.False(t, executor.HasHook(hooks.PostDelete))

	assert.Error(t, hooks.LoadHooksFromMap(executor, map[string]string{"pre_install": "// x"}))
}

func TestHookTemplate(t *testing.T) {
	for _, hookType := range hooks.Types {
		assert.Contains(t, hooks.HookTemplate(hookType), "prefix")
	}
	assert.Contains(t, hooks.HookTemplate("bogus"), "Unknown")
}
