// Package dataset implements the data-root bookkeeping shared by every sample
// dataset and the template that downloads, verifies and unpacks one.
//
// A dataset is identified by its prefix. Its files live in two directories
// derived from the data root:
//
//	{data_root}/download/{prefix}  downloaded archives or files
//	{data_root}/extract/{prefix}   extracted contents handed to callers
package dataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/glorpus-work/o3data/internal/logger"
	pkgerrors "github.com/glorpus-work/o3data/pkg/errors"
	"github.com/glorpus-work/o3data/pkg/fsutil"
	"github.com/glorpus-work/o3data/pkg/hooks"
	"github.com/spf13/afero"
)

// Dataset holds the directory bookkeeping of one dataset.
type Dataset struct {
	prefix      string
	dataRoot    string
	description string
	fs          afero.Fs
	hooks       hooks.HookManager
	events      Events
}

// New creates a dataset without sources. An empty dataRoot is resolved from
// OPEN3D_DATA_ROOT or the home directory.
func New(prefix, dataRoot string, opts ...Option) (*Dataset, error) {
	return newDataset(prefix, dataRoot, newSettings(opts))
}

func newDataset(prefix, dataRoot string, s *settings) (*Dataset, error) {
	if prefix == "" {
		return nil, pkgerrors.ErrEmptyPrefix
	}
	root, err := fsutil.ResolveDataRoot(dataRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pkgerrors.ErrDataRoot, err)
	}
	return &Dataset{
		prefix:   prefix,
		dataRoot: root,
		fs:       s.fs,
		hooks:    s.hooks,
		events:   s.events,
	}, nil
}

// Prefix returns the dataset's unique short name.
func (d *Dataset) Prefix() string { return d.prefix }

// DataRoot returns the data root fixed at construction.
func (d *Dataset) DataRoot() string { return d.dataRoot }

// DownloadDir returns {data_root}/download/{prefix}.
func (d *Dataset) DownloadDir() string { return fsutil.DownloadDir(d.dataRoot, d.prefix) }

// ExtractDir returns {data_root}/extract/{prefix}.
func (d *Dataset) ExtractDir() string { return fsutil.ExtractDir(d.dataRoot, d.prefix) }

// Description returns the human readable summary, if any.
func (d *Dataset) Description() string { return d.description }

// Fs returns the filesystem the dataset lives on.
func (d *Dataset) Fs() afero.Fs { return d.fs }

// IsFetched reports whether the extract directory exists.
func (d *Dataset) IsFetched() bool { return fsutil.IsDir(d.fs, d.ExtractDir()) }

// Help describes the dataset and where its files live.
func (d *Dataset) Help() string {
	var b strings.Builder
	d.writeHelp(&b)
	return b.String()
}

func (d *Dataset) writeHelp(b *strings.Builder) {
	fmt.Fprintf(b, "Dataset: %s\n", d.prefix)
	if d.description != "" {
		fmt.Fprintf(b, "  %s\n", d.description)
	}
	fmt.Fprintf(b, "Data root:    %s\n", d.dataRoot)
	fmt.Fprintf(b, "Download dir: %s\n", d.DownloadDir())
	fmt.Fprintf(b, "Extract dir:  %s\n", d.ExtractDir())
}

// DeleteDownloadFiles removes the download directory. The in-memory dataset is unchanged.
func (d *Dataset) DeleteDownloadFiles() error {
	return d.Delete(context.Background(), true, false)
}

// DeleteExtractFiles removes the extract directory. The in-memory dataset is unchanged.
func (d *Dataset) DeleteExtractFiles() error {
	return d.Delete(context.Background(), false, true)
}

// Delete removes the selected directories and then runs the post-delete hook
// once. Scripts see which directories went away as deletedDownload and
// deletedExtract. Selecting neither directory is a no-op.
func (d *Dataset) Delete(ctx context.Context, download, extract bool) error {
	if !download && !extract {
		return nil
	}
	if extract {
		if err := d.deleteDir(d.ExtractDir()); err != nil {
			return err
		}
	}
	if download {
		if err := d.deleteDir(d.DownloadDir()); err != nil {
			return err
		}
	}
	return d.runHook(ctx, hooks.PostDelete, map[string]interface{}{
		"deletedDownload": download,
		"deletedExtract":  extract,
	})
}

func (d *Dataset) deleteDir(dir string) error {
	if err := fsutil.RemoveAll(d.fs, dir); err != nil {
		return pkgerrors.Wrapf(err, "failed to delete %s", dir)
	}
	logger.Debug("Deleted dataset directory", logger.Fields{"prefix": d.prefix, "dir": dir})
	return nil
}

func (d *Dataset) runHook(ctx context.Context, hookType hooks.HookType, vars map[string]interface{}) error {
	if d.hooks == nil || !d.hooks.HasHook(hookType) {
		return nil
	}
	return d.hooks.Execute(ctx, hookType, hooks.HookContext{
		Prefix:      d.prefix,
		DataRoot:    d.dataRoot,
		DownloadDir: d.DownloadDir(),
		ExtractDir:  d.ExtractDir(),
		Vars:        vars,
	})
}

func (d *Dataset) emit(phase Phase, msg string) {
	if d.events.OnEvent != nil {
		d.events.OnEvent(Event{Phase: phase, Prefix: d.prefix, Msg: msg})
	}
}
