// Package archive extracts downloaded dataset archives and copies single-file datasets.
package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/o3data/internal/logger"
	pkgerrors "github.com/glorpus-work/o3data/pkg/errors"
	"github.com/glorpus-work/o3data/pkg/fsutil"
	"github.com/mholt/archives"
	"github.com/spf13/afero"
)

// Manager handles archive extraction and creation operations.
type Manager struct {
	fs afero.Fs
}

// NewManager creates a new Manager working on fs. A nil fs means the OS filesystem.
func NewManager(fs afero.Fs) *Manager {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Manager{fs: fs}
}

// ExtractAll extracts every entry of the archive at archivePath into destDir.
// The format is detected from the file name and content.
func (am *Manager) ExtractAll(ctx context.Context, archivePath, destDir string) error {
	file, err := am.fs.Open(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open archive file: %w", err)
	}
	defer func() { _ = file.Close() }()

	format, stream, err := archives.Identify(ctx, filepath.Base(archivePath), file)
	if err != nil {
		if errors.Is(err, archives.NoMatch) {
			return fmt.Errorf("%s: %w", filepath.Base(archivePath), pkgerrors.ErrUnsupportedArchive)
		}
		return fmt.Errorf("failed to identify archive: %w", err)
	}
	extractor, ok := format.(archives.Extractor)
	if !ok {
		return fmt.Errorf("%s is %s, not an archive: %w",
			filepath.Base(archivePath), format.Extension(), pkgerrors.ErrUnsupportedArchive)
	}

	if err := fsutil.EnsureDir(am.fs, destDir); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	logger.Debug("Extracting archive", logger.Fields{"archive": archivePath, "format": format.Extension(), "dest": destDir})
	return extractor.Extract(ctx, stream, func(ctx context.Context, info archives.FileInfo) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return am.extractEntry(destDir, info)
	})
}

// CopyFile copies the file at srcPath into destDir under its own base name.
func (am *Manager) CopyFile(ctx context.Context, srcPath, destDir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dst := filepath.Join(destDir, filepath.Base(srcPath))
	if err := fsutil.Copy(am.fs, srcPath, dst); err != nil {
		return "", fmt.Errorf("failed to copy %s: %w", srcPath, err)
	}
	return dst, nil
}

// Create archives the contents of sourceDir, read from the OS filesystem, into archivePath.
// The format follows the extension: .zip, .tar, .tar.gz or .tgz.
func (am *Manager) Create(ctx context.Context, sourceDir, archivePath string) error {
	format, err := archiverFor(archivePath)
	if err != nil {
		return err
	}

	absolutePath, err := filepath.Abs(sourceDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for source directory: %w", err)
	}
	archiveFiles, err := archives.FilesFromDisk(ctx, nil, map[string]string{
		absolutePath + string(os.PathSeparator): "",
	})
	if err != nil {
		return fmt.Errorf("failed to read files from disk: %w", err)
	}

	if err := fsutil.EnsureFileDir(am.fs, archivePath); err != nil {
		return err
	}
	file, err := am.fs.Create(archivePath)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", archivePath, err)
	}
	defer func() {
		_ = file.Sync()
		_ = file.Close()
	}()

	if err := format.Archive(ctx, file, archiveFiles); err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	return nil
}

func archiverFor(name string) (archives.Archiver, error) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".zip"):
		return archives.Zip{}, nil
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		return archives.CompressedArchive{Compression: archives.Gz{}, Archival: archives.Tar{}}, nil
	case strings.HasSuffix(lower, ".tar"):
		return archives.Tar{}, nil
	default:
		return nil, fmt.Errorf("%s: %w", filepath.Base(name), pkgerrors.ErrUnsupportedArchive)
	}
}

// entryPath maps an archive entry name to a path under destDir.
// It returns "" for the archive root.
func entryPath(destDir, nameInArchive string) (string, error) {
	name := path.Clean(strings.TrimPrefix(nameInArchive, "./"))
	if name == "." || name == "/" {
		return "", nil
	}
	local := filepath.FromSlash(name)
	if !filepath.IsLocal(local) {
		return "", fmt.Errorf("entry %q escapes destination: %w", nameInArchive, pkgerrors.ErrIllegalPath)
	}
	return filepath.Join(destDir, local), nil
}

// extractEntry processes a single archive entry and writes it below destDir.
func (am *Manager) extractEntry(destDir string, info archives.FileInfo) error {
	targetPath, err := entryPath(destDir, info.NameInArchive)
	if err != nil || targetPath == "" {
		return err
	}

	switch {
	case info.IsDir():
		return fsutil.EnsureDir(am.fs, targetPath)
	case info.LinkTarget != "" || info.Mode()&os.ModeSymlink != 0:
		return am.writeSymlink(destDir, targetPath, info)
	case info.Mode().IsRegular():
		return am.writeRegularFile(targetPath, info)
	default:
		logger.Debug("Skipping special archive entry", logger.Fields{"entry": info.NameInArchive})
		return nil
	}
}

// writeSymlink recreates a link entry when the filesystem supports links.
func (am *Manager) writeSymlink(destDir, targetPath string, info archives.FileInfo) error {
	linker, ok := am.fs.(afero.Linker)
	if !ok {
		logger.Debug("Skipping symlink on filesystem without link support", logger.Fields{"entry": info.NameInArchive})
		return nil
	}

	resolved := info.LinkTarget
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(filepath.Dir(targetPath), filepath.FromSlash(resolved))
	}
	rel, err := filepath.Rel(destDir, resolved)
	if err != nil || !filepath.IsLocal(rel) {
		return fmt.Errorf("link %q points outside destination: %w", info.NameInArchive, pkgerrors.ErrIllegalPath)
	}

	if err := fsutil.EnsureFileDir(am.fs, targetPath); err != nil {
		return fmt.Errorf("failed to create parent directory for symlink %s: %w", info.NameInArchive, err)
	}
	_ = am.fs.Remove(targetPath)
	return linker.SymlinkIfPossible(info.LinkTarget, targetPath)
}

// writeRegularFile writes a regular file entry to targetPath and preserves metadata.
func (am *Manager) writeRegularFile(targetPath string, info archives.FileInfo) error {
	src, err := info.Open()
	if err != nil {
		return fmt.Errorf("failed to open archive entry %s: %w", info.NameInArchive, err)
	}
	defer func() { _ = src.Close() }()

	if err := fsutil.EnsureFileDir(am.fs, targetPath); err != nil {
		return fmt.Errorf("failed to create parent directory for %s: %w", info.NameInArchive, err)
	}

	perm := info.Mode().Perm()
	if perm == 0 {
		perm = fsutil.FileModeDefault
	}
	dst, err := fsutil.CreateFilePerm(am.fs, targetPath, perm)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", targetPath, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fmt.Errorf("failed to copy file %s: %w", info.NameInArchive, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", targetPath, err)
	}

	if err := am.fs.Chmod(targetPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions for %s: %w", targetPath, err)
	}
	if mt := info.ModTime(); !mt.IsZero() {
		if err := am.fs.Chtimes(targetPath, mt, mt); err != nil {
			return fmt.Errorf("failed to set modification time for %s: %w", targetPath, err)
		}
	}
	return nil
}
