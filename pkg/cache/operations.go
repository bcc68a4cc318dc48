package cache

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/glorpus-work/o3data/internal/logger"
)

// Operation renders Manager results for the command line.
type Operation struct {
	manager Manager
}

// NewOperation creates a new operation instance.
func NewOperation(manager Manager) *Operation {
	return &Operation{
		manager: manager,
	}
}

// Clean cleans the data root and describes what was freed.
func (op *Operation) Clean(all, downloads, extracts bool) (string, error) {
	options := CleanOptions{
		All:       all,
		Downloads: downloads,
		Extracts:  extracts,
	}

	logger.Debug("Cleaning data root", logger.Fields{
		"all":       options.All,
		"downloads": options.Downloads,
		"extracts":  options.Extracts,
	})

	result, err := op.manager.Clean(options)
	if err != nil {
		return "", fmt.Errorf("failed to clean data root: %w", err)
	}

	if result.TotalFreed == 0 {
		return "No files were removed from the data root.", nil
	}
	msg := fmt.Sprintf("Successfully cleaned data root. Freed %s of disk space.", formatBytes(result.TotalFreed))
	if result.DownloadFreed > 0 {
		msg += fmt.Sprintf("\n- Downloads: %s", formatBytes(result.DownloadFreed))
	}
	if result.ExtractFreed > 0 {
		msg += fmt.Sprintf("\n- Extracts: %s", formatBytes(result.ExtractFreed))
	}
	return msg, nil
}

// GetInfo describes data-root usage.
func (op *Operation) GetInfo() (string, error) {
	info, err := op.manager.GetInfo()
	if err != nil {
		return "", fmt.Errorf("failed to get data root info: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Data Root Information:\n")
	fmt.Fprintf(&b, "  Directory:    %s\n", info.Directory)
	fmt.Fprintf(&b, "  Total Size:   %s\n", formatBytes(info.TotalSize))
	fmt.Fprintf(&b, "  Downloads:    %s (%d files)\n", formatBytes(info.DownloadSize), info.DownloadFiles)
	fmt.Fprintf(&b, "  Extracts:     %s (%d files)\n", formatBytes(info.ExtractSize), info.ExtractFiles)
	fmt.Fprintf(&b, "  Datasets:     %d", len(info.Datasets))
	for _, ds := range info.Datasets {
		fmt.Fprintf(&b, "\n    %-32s %10s %10s", ds.Prefix, formatBytes(ds.DownloadSize), formatBytes(ds.ExtractSize))
	}
	return b.String(), nil
}

// GetDirectory returns the data root.
func (op *Operation) GetDirectory() string {
	return op.manager.GetDirectory()
}

// SetDirectory points the operation at another data root.
func (op *Operation) SetDirectory(dir string) error {
	logger.Debug("Setting data root", logger.Fields{"directory": dir})
	return op.manager.SetDirectory(dir)
}

func formatBytes(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.IBytes(uint64(bytes))
}
