// Package fsutil provides the filesystem helpers and data-root resolution used by o3data.
package fsutil

// File and directory permission constants.
const (
	// Default file modes.
	FileModeDefault = 0o644 // -rw-r--r--: Default for regular files
	FileModeSecure  = 0o640 // -rw-r-----: Lock files and partial downloads

	// Directory modes.
	DirModeDefault = 0o755 // drwxr-xr-x: Default for directories
	DirModePrivate = 0o700 // drwx------: Config directory
)

// Data root layout.
const (
	// EnvDataRoot overrides the default data root when set.
	EnvDataRoot = "OPEN3D_DATA_ROOT"
	// DefaultDataRootName is the directory created under the user's home.
	DefaultDataRootName = "open3d_data"
	// DownloadDirName holds raw downloads, one subdirectory per prefix.
	DownloadDirName = "download"
	// ExtractDirName holds extracted or copied files, one subdirectory per prefix.
	ExtractDirName = "extract"
)
