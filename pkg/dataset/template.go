package dataset

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/o3data/internal/logger"
	"github.com/glorpus-work/o3data/pkg/archive"
	"github.com/glorpus-work/o3data/pkg/download"
	pkgerrors "github.com/glorpus-work/o3data/pkg/errors"
	"github.com/glorpus-work/o3data/pkg/fsutil"
	"github.com/glorpus-work/o3data/pkg/hooks"
	"github.com/google/uuid"
)

// Template is a dataset fetched from one or more checksummed sources.
// Sources are archives unless NoExtract is set, in which case each
// downloaded file is copied into the extract directory as is.
type Template struct {
	*Dataset
	items      []download.Item
	noExtract  bool
	downloader Downloader
	extractor  Extractor
	force      bool
}

// NewTemplate builds the dataset described by desc and, unless WithoutFetch
// is given, downloads and extracts it before returning.
func NewTemplate(ctx context.Context, desc Descriptor, dataRoot string, opts ...Option) (*Template, error) {
	s := newSettings(opts)
	base, err := newDataset(desc.Prefix, dataRoot, s)
	if err != nil {
		return nil, err
	}
	base.description = desc.Description

	sources := desc.Sources
	if len(s.sources) > 0 {
		sources = s.sources
	}
	items, err := buildItems(desc.Prefix, sources, s.extraMirrors)
	if err != nil {
		return nil, err
	}

	t := &Template{
		Dataset:    base,
		items:      items,
		noExtract:  desc.NoExtract,
		downloader: s.downloader,
		extractor:  s.extractor,
		force:      s.force,
	}
	if t.downloader == nil {
		t.downloader = download.NewManager(DefaultHTTPTimeout, "", download.WithFs(s.fs))
	}
	if t.extractor == nil {
		t.extractor = archive.NewManager(s.fs)
	}

	if s.noFetch {
		return t, nil
	}
	if err := t.Fetch(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// NewSingleDownload builds a template dataset with a single source.
func NewSingleDownload(ctx context.Context, prefix string, urls []string, checksum string,
	noExtract bool, dataRoot string, opts ...Option,
) (*Template, error) {
	return NewTemplate(ctx, Descriptor{
		Prefix:    prefix,
		Sources:   []Source{{Checksum: checksum, Mirrors: urls}},
		NoExtract: noExtract,
	}, dataRoot, opts...)
}

func buildItems(prefix string, sources []Source, extraMirrors []string) ([]download.Item, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("%s: %w", prefix, pkgerrors.ErrNoSources)
	}
	items := make([]download.Item, 0, len(sources))
	for _, src := range sources {
		if len(src.Mirrors) == 0 {
			return nil, fmt.Errorf("%s: %w", prefix, pkgerrors.ErrNoMirrors)
		}
		builtin := make([]*url.URL, 0, len(src.Mirrors))
		for _, raw := range src.Mirrors {
			u, err := url.Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: mirror %q: %w: %w", prefix, raw, pkgerrors.ErrUnsupportedURL, err)
			}
			builtin = append(builtin, u)
		}
		filename := path.Base(builtin[0].Path)

		mirrors := make([]*url.URL, 0, len(extraMirrors)+len(builtin))
		for _, base := range extraMirrors {
			u, err := url.Parse(base)
			if err != nil {
				return nil, fmt.Errorf("%s: mirror %q: %w: %w", prefix, base, pkgerrors.ErrUnsupportedURL, err)
			}
			u.Path = path.Join("/", u.Path, filename)
			u.RawPath = ""
			mirrors = append(mirrors, u)
		}
		mirrors = append(mirrors, builtin...)

		items = append(items, download.Item{
			ID:       prefix,
			Mirrors:  mirrors,
			Checksum: src.Checksum,
			Filename: filename,
		})
	}
	return items, nil
}

// NoExtract reports whether downloaded files are copied rather than extracted.
func (t *Template) NoExtract() bool { return t.noExtract }

// DownloadFilenames lists the file names fetched into the download directory.
func (t *Template) DownloadFilenames() []string {
	names := make([]string, len(t.items))
	for i, item := range t.items {
		names[i] = item.Filename
	}
	return names
}

// Mirrors returns the ordered mirror URLs of each source.
func (t *Template) Mirrors() [][]string {
	out := make([][]string, len(t.items))
	for i, item := range t.items {
		for _, u := range item.Mirrors {
			out[i] = append(out[i], u.Redacted())
		}
	}
	return out
}

// Help describes the dataset, its directories and its sources.
func (t *Template) Help() string {
	var b strings.Builder
	t.writeHelp(&b)
	mode := "extract"
	if t.noExtract {
		mode = "copy"
	}
	fmt.Fprintf(&b, "Mode:         %s\n", mode)
	fmt.Fprintf(&b, "Sources:\n")
	for i, item := range t.items {
		fmt.Fprintf(&b, "  [%d] %s", i+1, item.Filename)
		if item.Checksum != "" {
			fmt.Fprintf(&b, " (%s)", item.Checksum)
		}
		b.WriteString("\n")
		for _, u := range item.Mirrors {
			fmt.Fprintf(&b, "      %s\n", u.Redacted())
		}
	}
	return b.String()
}

// Fetch makes sure the extract directory is populated. Nothing is downloaded
// when the extract directory already exists; otherwise each source is fetched
// (the downloader reuses files whose checksum matches) and unpacked.
func (t *Template) Fetch(ctx context.Context) error {
	unlock, err := t.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	fields := logger.Fields{"prefix": t.prefix, "data_root": t.dataRoot}
	if t.force {
		if err := t.removeAll(); err != nil {
			return err
		}
	}

	t.emit(PhaseLocating, t.ExtractDir())
	if fsutil.Exists(t.fs, t.ExtractDir()) {
		logger.Debug("Dataset already extracted", fields)
		t.emit(PhaseSkipped, t.ExtractDir())
		return nil
	}

	downloadDir, err := filepath.Abs(t.DownloadDir())
	if err != nil {
		return pkgerrors.Wrapf(err, "invalid download dir for %s", t.prefix)
	}
	files := make([]string, 0, len(t.items))
	for _, item := range t.items {
		t.emit(PhaseDownloading, item.Filename)
		local, err := t.downloader.Fetch(ctx, item, download.Options{Dir: downloadDir})
		if err != nil {
			return fmt.Errorf("%s: %w", t.prefix, err)
		}
		files = append(files, local)
	}

	if err := t.populate(ctx, files); err != nil {
		return err
	}
	if err := t.runHook(ctx, hooks.PostFetch, nil); err != nil {
		return fmt.Errorf("%s: %w", t.prefix, err)
	}

	logger.Debug("Dataset ready", fields, logger.Fields{"extract_dir": t.ExtractDir()})
	t.emit(PhaseDone, t.ExtractDir())
	return nil
}

// populate unpacks files into a staging directory next to the extract
// directory and renames it into place once every file succeeded.
func (t *Template) populate(ctx context.Context, files []string) error {
	extractDir := t.ExtractDir()
	staging := filepath.Join(filepath.Dir(extractDir), "."+t.prefix+"-"+uuid.NewString())
	if err := fsutil.EnsureDir(t.fs, staging); err != nil {
		return pkgerrors.Wrapf(err, "failed to create staging dir for %s", t.prefix)
	}

	for _, file := range files {
		var err error
		if t.noExtract {
			t.emit(PhaseCopying, filepath.Base(file))
			_, err = t.extractor.CopyFile(ctx, file, staging)
		} else {
			t.emit(PhaseExtracting, filepath.Base(file))
			err = t.extractor.ExtractAll(ctx, file, staging)
		}
		if err != nil {
			_ = t.fs.RemoveAll(staging)
			return fmt.Errorf("%s: %w", t.prefix, err)
		}
	}

	if err := fsutil.Move(t.fs, staging, extractDir); err != nil {
		_ = t.fs.RemoveAll(staging)
		return pkgerrors.Wrapf(err, "failed to move %s into place", t.prefix)
	}
	return nil
}

func (t *Template) removeAll() error {
	for _, dir := range []string{t.ExtractDir(), t.DownloadDir()} {
		if err := fsutil.RemoveAll(t.fs, dir); err != nil {
			return pkgerrors.Wrapf(err, "failed to delete %s", dir)
		}
	}
	return nil
}
