// Package cache reports and reclaims the disk space used under a data root.
package cache

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/glorpus-work/o3data/internal/logger"
	"github.com/glorpus-work/o3data/pkg/errors"
	"github.com/glorpus-work/o3data/pkg/fsutil"
	"github.com/spf13/afero"
)

// DefaultManager implements the Manager interface for a data root.
type DefaultManager struct {
	directory string
	fs        afero.Fs
}

// NewManager creates a new manager for dataRoot. A nil fs means the OS filesystem.
func NewManager(dataRoot string, fs afero.Fs) *DefaultManager {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &DefaultManager{
		directory: dataRoot,
		fs:        fs,
	}
}

// NewDefaultManager creates a manager for the data root resolved from the environment.
func NewDefaultManager() (*DefaultManager, error) {
	root, err := fsutil.ResolveDataRoot("")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve data root")
	}
	return NewManager(root, nil), nil
}

// Clean removes dataset directories below download/ and extract/.
// Hidden entries, such as lock files and in-progress staging directories, are kept.
func (cm *DefaultManager) Clean(options CleanOptions) (*CleanResult, error) {
	if cm.directory == "" {
		return nil, errors.ErrCacheDirectory
	}
	result := &CleanResult{}

	if !options.Downloads && !options.Extracts {
		options.All = true
	}

	if options.All || options.Downloads {
		size, err := cm.cleanDirectory(filepath.Join(cm.directory, fsutil.DownloadDirName))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to clean downloads")
		}
		result.DownloadFreed = size
		result.TotalFreed += size
	}

	if options.All || options.Extracts {
		size, err := cm.cleanDirectory(filepath.Join(cm.directory, fsutil.ExtractDirName))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to clean extracts")
		}
		result.ExtractFreed = size
		result.TotalFreed += size
	}

	return result, nil
}

// GetInfo returns the sizes of download/ and extract/ and the datasets present.
func (cm *DefaultManager) GetInfo() (*Info, error) {
	if cm.directory == "" {
		return nil, errors.ErrCacheDirectory
	}
	info := &Info{Directory: cm.directory}
	usage := make(map[string]*DatasetUsage)

	for _, side := range []string{fsutil.DownloadDirName, fsutil.ExtractDirName} {
		base := filepath.Join(cm.directory, side)
		entries, err := visibleEntries(cm.fs, base)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", base)
		}
		for _, name := range entries {
			size, count, err := fsutil.DirSize(cm.fs, filepath.Join(base, name))
			if err != nil {
				return nil, errors.Wrapf(err, "failed to measure %s", name)
			}
			u, ok := usage[name]
			if !ok {
				u = &DatasetUsage{Prefix: name}
				usage[name] = u
			}
			if side == fsutil.DownloadDirName {
				u.Downloaded = true
				u.DownloadSize = size
				info.DownloadSize += size
				info.DownloadFiles += count
			} else {
				u.Extracted = true
				u.ExtractSize = size
				info.ExtractSize += size
				info.ExtractFiles += count
			}
		}
	}

	info.TotalSize = info.DownloadSize + info.ExtractSize
	for _, u := range usage {
		info.Datasets = append(info.Datasets, *u)
	}
	sort.Slice(info.Datasets, func(i, j int) bool { return info.Datasets[i].Prefix < info.Datasets[j].Prefix })
	return info, nil
}

// GetDirectory returns the data root.
func (cm *DefaultManager) GetDirectory() string {
	return cm.directory
}

// SetDirectory sets the data root.
func (cm *DefaultManager) SetDirectory(dir string) error {
	if dir == "" {
		return errors.ErrCacheDirectory
	}
	cm.directory = dir
	return nil
}

// cleanDirectory removes the visible entries of dir and returns bytes freed.
func (cm *DefaultManager) cleanDirectory(dir string) (int64, error) {
	entries, err := visibleEntries(cm.fs, dir)
	if err != nil {
		return 0, err
	}

	var freed int64
	for _, name := range entries {
		path := filepath.Join(dir, name)
		size, _, err := fsutil.DirSize(cm.fs, path)
		if err != nil {
			return freed, errors.Wrapf(err, "error walking %s", path)
		}
		if err := fsutil.RemoveAll(cm.fs, path); err != nil {
			return freed, errors.Wrapf(err, "failed to remove %s", path)
		}
		logger.Debug("Removed dataset directory", logger.Fields{"path": path, "bytes": size})
		freed += size
	}
	return freed, nil
}

// visibleEntries lists the names below dir that do not start with a dot.
func visibleEntries(fs afero.Fs, dir string) ([]string, error) {
	if !fsutil.IsDir(fs, dir) {
		return nil, nil
	}
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, fi := range infos {
		if strings.HasPrefix(fi.Name(), ".") {
			continue
		}
		names = append(names, fi.Name())
	}
	return names, nil
}
