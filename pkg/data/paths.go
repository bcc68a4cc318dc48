package data

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/glorpus-work/o3data/pkg/dataset"
	pkgerrors "github.com/glorpus-work/o3data/pkg/errors"
)

// under returns extractDir joined with a slash separated relative path.
func under(t *dataset.Template, rel string) string {
	return filepath.Join(t.ExtractDir(), filepath.FromSlash(rel))
}

func underAll(t *dataset.Template, rels []string) []string {
	out := make([]string, len(rels))
	for i, rel := range rels {
		out[i] = under(t, rel)
	}
	return out
}

func numbered(format string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf(format, i)
	}
	return out
}

func pathAt(paths []string, i int) (string, error) {
	if i < 0 || i >= len(paths) {
		return "", fmt.Errorf("index %d of %d paths: %w", i, len(paths), pkgerrors.ErrIndexOutOfRange)
	}
	return paths[i], nil
}

// pathMap backs datasets whose files are addressed by name.
type pathMap map[string]string

func (m pathMap) resolve(t *dataset.Template) map[string]string {
	out := make(map[string]string, len(m))
	for k, rel := range m {
		out[k] = under(t, rel)
	}
	return out
}

func (m pathMap) lookup(t *dataset.Template, key string) (string, error) {
	rel, ok := m[key]
	if !ok {
		return "", fmt.Errorf("%s has no file %q (known: %v): %w", t.Prefix(), key, m.keys(), pkgerrors.ErrUnknownPathKey)
	}
	return under(t, rel), nil
}

func (m pathMap) keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// files accumulates the accessor-name keyed map returned by Files.
type files map[string]string

func (f files) add(key, path string) files {
	f[key] = path
	return f
}

func (f files) list(key string, paths []string) files {
	for i, p := range paths {
		f[fmt.Sprintf("%s[%d]", key, i)] = p
	}
	return f
}

func (f files) merge(m map[string]string) files {
	for k, v := range m {
		f[k] = v
	}
	return f
}
