package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/glorpus-work/o3data/pkg/fsutil"
	"github.com/gofrs/flock"
	"github.com/spf13/afero"
)

const lockRetryDelay = 250 * time.Millisecond

// lockPath returns {data_root}/download/.{prefix}.lock.
func (d *Dataset) lockPath() string {
	return filepath.Join(d.dataRoot, fsutil.DownloadDirName, "."+d.prefix+".lock")
}

// lock serialises fetches of one prefix across processes. Only the OS
// filesystem is locked; other filesystems are private to the process.
func (d *Dataset) lock(ctx context.Context) (func(), error) {
	if _, ok := d.fs.(*afero.OsFs); !ok {
		return func() {}, nil
	}
	path := d.lockPath()
	if err := fsutil.EnsureFileDir(d.fs, path); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	fl := flock.New(path)
	locked, err := fl.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", d.prefix, err)
	}
	if !locked {
		return nil, fmt.Errorf("failed to lock %s", d.prefix)
	}
	return func() { _ = fl.Unlock() }, nil
}
