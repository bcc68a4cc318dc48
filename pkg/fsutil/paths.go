package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// LocateDataRoot returns the data root used when no explicit one is given:
// $OPEN3D_DATA_ROOT when set, else $HOME/open3d_data.
func LocateDataRoot() (string, error) {
	if root := os.Getenv(EnvDataRoot); root != "" {
		return filepath.Clean(root), nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, DefaultDataRootName), nil
}

// ResolveDataRoot applies the data root precedence: explicit value first,
// then the environment, then the home directory default.
func ResolveDataRoot(explicit string) (string, error) {
	if explicit != "" {
		expanded, err := homedir.Expand(explicit)
		if err != nil {
			return "", fmt.Errorf("failed to expand data root %s: %w", explicit, err)
		}
		return filepath.Clean(expanded), nil
	}
	return LocateDataRoot()
}

// DownloadDir returns {dataRoot}/download/{prefix}.
func DownloadDir(dataRoot, prefix string) string {
	return filepath.Join(dataRoot, DownloadDirName, prefix)
}

// ExtractDir returns {dataRoot}/extract/{prefix}.
func ExtractDir(dataRoot, prefix string) string {
	return filepath.Join(dataRoot, ExtractDirName, prefix)
}
