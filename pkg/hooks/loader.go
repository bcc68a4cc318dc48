package hooks

import (
	"path/filepath"
	"strings"

	pkgerrors "github.com/glorpus-work/o3data/pkg/errors"
	"github.com/glorpus-work/o3data/pkg/fsutil"
	"github.com/spf13/afero"
)

// HookFileExtension is the extension of hook scripts on disk.
const HookFileExtension = ".tengo"

// LoadHooksFromDir loads <dir>/<hook-type>.tengo scripts into manager.
// Files with other names are ignored; a missing directory is not an error.
func LoadHooksFromDir(fs afero.Fs, manager HookManager, dir string) error {
	if !fsutil.IsDir(fs, dir) {
		return nil
	}
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to read hooks directory %s", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != HookFileExtension {
			continue
		}
		hookType := HookType(strings.TrimSuffix(entry.Name(), HookFileExtension))
		if !hookType.IsValid() {
			continue
		}

		hookPath := filepath.Join(dir, entry.Name())
		content, err := afero.ReadFile(fs, hookPath)
		if err != nil {
			return pkgerrors.Wrapf(err, "error reading hooks file %s", hookPath)
		}
		if err := manager.AddHook(Hook{Type: hookType, Content: string(content)}); err != nil {
			return pkgerrors.Wrapf(err, "error adding hooks %s", hookType)
		}
	}
	return nil
}

// LoadHooksFromMap registers inline scripts keyed by hook type.
// Keys may use either dashes or underscores (post_fetch, post-fetch).
func LoadHooksFromMap(manager HookManager, scripts map[string]string) error {
	for name, content := range scripts {
		if strings.TrimSpace(content) == "" {
			continue
		}
		hookType := HookType(strings.ReplaceAll(name, "_", "-"))
		if err := manager.AddHook(Hook{Type: hookType, Content: content}); err != nil {
			return err
		}
	}
	return nil
}

// HookTemplate generates a template for a hooks script.
func HookTemplate(hookType HookType) string {
	switch hookType {
	case PostFetch:
		return `// Post-fetch hook
// This script runs after a dataset has been downloaded and extracted
// Available variables:
// - prefix: string - dataset prefix
// - dataRoot: string - data root directory
// - downloadDir: string - directory holding the downloaded files
// - extractDir: string - directory holding the extracted dataset

// Example: fail when an expected file is missing
/*
os := import("os")
if is_error(os.stat(extractDir + "/fragment.ply")) {
    err := "fragment.ply missing in " + extractDir
}
*/`

	case PostDelete:
		return `// Post-delete hook
// This script runs after dataset files have been deleted
// Available variables: same as post-fetch hooks

// Example: print what was removed
/*
fmt := import("fmt")
fmt.println("removed ", prefix)
*/`

	default:
		return "// Unknown hooks type: " + string(hookType)
	}
}
