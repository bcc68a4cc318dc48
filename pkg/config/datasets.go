package config

import (
	"github.com/glorpus-work/o3data/pkg/dataset"
	"github.com/glorpus-work/o3data/pkg/hooks"
)

// Descriptors converts the datasets section into dataset descriptors.
func (c *Config) Descriptors() []dataset.Descriptor {
	out := make([]dataset.Descriptor, 0, len(c.Datasets))
	for _, ds := range c.Datasets {
		out = append(out, dataset.Descriptor{
			Prefix:      ds.Prefix,
			Sources:     []dataset.Source{{Checksum: ds.Checksum, Mirrors: ds.URLs}},
			NoExtract:   ds.NoExtract,
			Description: ds.Description,
		})
	}
	return out
}

// MirrorsFor returns the extra mirror bases for prefix followed by the wildcard ones.
func (c *Config) MirrorsFor(prefix string) []string {
	var out []string
	out = append(out, c.Mirrors[prefix]...)
	if prefix != WildcardMirror {
		out = append(out, c.Mirrors[WildcardMirror]...)
	}
	return out
}

// HookScripts returns the inline hook scripts keyed by hook type.
func (c *Config) HookScripts() map[string]string {
	return map[string]string{
		string(hooks.PostFetch):  c.Hooks.PostFetch,
		string(hooks.PostDelete): c.Hooks.PostDelete,
	}
}

// AddDataset adds or replaces the user dataset with the same prefix.
func (c *Config) AddDataset(ds *DatasetConfig) {
	for i, existing := range c.Datasets {
		if existing.Prefix == ds.Prefix {
			c.Datasets[i] = ds
			return
		}
	}
	c.Datasets = append(c.Datasets, ds)
}

// RemoveDataset removes the user dataset with prefix.
func (c *Config) RemoveDataset(prefix string) bool {
	for i, ds := range c.Datasets {
		if ds.Prefix == prefix {
			c.Datasets = append(c.Datasets[:i], c.Datasets[i+1:]...)
			return true
		}
	}
	return false
}
