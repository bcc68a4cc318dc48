package fsutil

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// EnsureDir creates a directory and all necessary parents with DirModeDefault.
func EnsureDir(fs afero.Fs, path string) error {
	return fs.MkdirAll(path, DirModeDefault)
}

// EnsureFileDir creates the parent directory of a file path if it doesn't exist.
func EnsureFileDir(fs afero.Fs, filePath string) error {
	return EnsureDir(fs, filepath.Dir(filePath))
}

// Exists reports whether path exists. Errors other than not-exist count as existing.
func Exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

// IsDir reports whether path exists and is a directory.
func IsDir(fs afero.Fs, path string) bool {
	ok, err := afero.IsDir(fs, path)
	return err == nil && ok
}

// RemoveAll removes path and everything below it. A missing path is not an error.
func RemoveAll(fs afero.Fs, path string) error {
	return fs.RemoveAll(path)
}

// DirSize walks dir and returns the total size of regular files and their count.
// A missing directory yields zero values.
func DirSize(fs afero.Fs, dir string) (size int64, count int, err error) {
	if !Exists(fs, dir) {
		return 0, 0, nil
	}
	err = afero.Walk(fs, dir, func(_ string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if info.Mode().IsRegular() {
			size += info.Size()
			count++
		}
		return nil
	})
	return size, count, err
}

// Subdirectories lists the names of the directories directly below dir.
func Subdirectories(fs afero.Fs, dir string) ([]string, error) {
	if !IsDir(fs, dir) {
		return nil, nil
	}
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
