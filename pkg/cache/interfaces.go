package cache

// Manager defines the interface for data-root usage and cleanup.
type Manager interface {
	Clean(options CleanOptions) (*CleanResult, error)
	GetInfo() (*Info, error)
	GetDirectory() string
	SetDirectory(dir string) error
}

// CleanOptions specifies what to remove from the data root.
type CleanOptions struct {
	All       bool
	Downloads bool
	Extracts  bool
}

// CleanResult contains information about what was cleaned.
type CleanResult struct {
	TotalFreed    int64
	DownloadFreed int64
	ExtractFreed  int64
}

// DatasetUsage describes one prefix present under the data root.
type DatasetUsage struct {
	Prefix       string
	Downloaded   bool
	Extracted    bool
	DownloadSize int64
	ExtractSize  int64
}

// Info represents data-root usage.
type Info struct {
	Directory     string
	TotalSize     int64
	DownloadSize  int64
	DownloadFiles int
	ExtractSize   int64
	ExtractFiles  int
	Datasets      []DatasetUsage
}
