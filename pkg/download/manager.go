package download

import (
	"context"
	"errors"
	"fmt"
	"hash"
	"io"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"time"

	"github.com/glorpus-work/o3data/internal/logger"
	"github.com/glorpus-work/o3data/pkg/auth"
	"github.com/glorpus-work/o3data/pkg/checksum"
	pkgerrors "github.com/glorpus-work/o3data/pkg/errors"
	"github.com/glorpus-work/o3data/pkg/fsutil"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// mirrors
	_ "gocloud.dev/blob/gcsblob"  // gs:// mirrors
	_ "gocloud.dev/blob/memblob"  // mem:// mirrors
	"gocloud.dev/gcerrors"
)

// DefaultUserAgent is sent with every HTTP request unless overridden.
const DefaultUserAgent = "o3data/1.0"

// BucketOpener opens the bucket behind a non-HTTP mirror.
type BucketOpener func(ctx context.Context, bucketURL string) (*blob.Bucket, error)

// ManagerImpl downloads over HTTP(S) and from gocloud blob buckets,
// trying mirrors in order and verifying checksums while streaming.
type ManagerImpl struct {
	client     *http.Client
	userAgent  string
	fs         afero.Fs
	openBucket BucketOpener
	auth       auth.Hosts
}

// ManagerOption customises a ManagerImpl.
type ManagerOption func(*ManagerImpl)

// WithFs sets the filesystem downloads are written to.
func WithFs(fs afero.Fs) ManagerOption {
	return func(m *ManagerImpl) { m.fs = fs }
}

// WithBucketOpener replaces blob.OpenBucket for non-HTTP mirrors.
func WithBucketOpener(open BucketOpener) ManagerOption {
	return func(m *ManagerImpl) { m.openBucket = open }
}

// WithAuth sets credentials sent to HTTP mirrors, keyed by host.
func WithAuth(hosts auth.Hosts) ManagerOption {
	return func(m *ManagerImpl) { m.auth = hosts }
}

// NewManager creates a new download manager with the given timeout and user agent.
func NewManager(timeout time.Duration, userAgent string, opts ...ManagerOption) *ManagerImpl {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	m := &ManagerImpl{
		client:     &http.Client{Timeout: timeout},
		userAgent:  userAgent,
		fs:         afero.NewOsFs(),
		openBucket: blob.OpenBucket,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Fetch downloads a single item and returns the path to the downloaded file.
func (m *ManagerImpl) Fetch(ctx context.Context, item Item, opts Options) (string, error) {
	if opts.Dir == "" || !filepath.IsAbs(opts.Dir) {
		return "", fmt.Errorf("download dir must be absolute: %s: %w", opts.Dir, pkgerrors.ErrInvalidPath)
	}
	if len(item.Mirrors) == 0 {
		return "", fmt.Errorf("%s: %w", item.ID, pkgerrors.ErrNoMirrors)
	}

	var sum *checksum.Sum
	if item.Checksum != "" {
		parsed, err := checksum.Parse(item.Checksum)
		if err != nil {
			return "", err
		}
		sum = &parsed
	}

	if err := fsutil.EnsureDir(m.fs, opts.Dir); err != nil {
		return "", pkgerrors.Wrap(err, "could not create download dir")
	}

	filename := selectFilename(item)
	absPath := filepath.Join(opts.Dir, filename)
	fields := logger.Fields{"id": item.ID, "file": filename, "request": requestID()}

	if m.tryReuseExisting(absPath, sum) {
		logger.Debug("Reusing verified download", fields)
		return absPath, nil
	}

	var failures []error
	for i, mirror := range item.Mirrors {
		logger.Debug("Downloading", fields, logger.Fields{"mirror": mirror.Redacted(), "attempt": i + 1})
		err := m.fetchFromMirror(ctx, mirror, absPath, sum)
		if err == nil {
			return absPath, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", pkgerrors.Wrapf(ctxErr, "download of %s interrupted", filename)
		}
		logger.Warn("Mirror failed", fields, logger.Fields{"mirror": mirror.Redacted(), "error": err.Error()})
		failures = append(failures, fmt.Errorf("%s: %w", mirror.Redacted(), err))
	}
	return "", fmt.Errorf("%s: %w: %w", filename, pkgerrors.ErrNetwork, errors.Join(failures...))
}

func requestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func selectFilename(item Item) string {
	if item.Filename != "" {
		return item.Filename
	}
	return path.Base(item.Mirrors[0].Path)
}

func (m *ManagerImpl) tryReuseExisting(absPath string, sum *checksum.Sum) bool {
	st, err := m.fs.Stat(absPath)
	if err != nil || st.IsDir() || st.Size() == 0 {
		return false
	}
	if sum == nil {
		return true
	}
	got, err := checksum.File(m.fs, absPath, sum.Algorithm)
	return err == nil && got == sum.Hex
}

func (m *ManagerImpl) fetchFromMirror(ctx context.Context, mirror *url.URL, absPath string, sum *checksum.Sum) error {
	body, err := m.open(ctx, mirror)
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	var h hash.Hash
	if sum != nil {
		h = sum.NewHash()
	}
	tmpPath, err := m.writeToTemp(body, filepath.Dir(absPath), h)
	if err != nil {
		return err
	}
	if sum != nil && !sum.Matches(h) {
		_ = m.fs.Remove(tmpPath)
		return fmt.Errorf("checksum mismatch, expected %s: %w", sum, pkgerrors.ErrFileHashMismatch)
	}
	return m.finalizeFile(tmpPath, absPath)
}

func (m *ManagerImpl) open(ctx context.Context, mirror *url.URL) (io.ReadCloser, error) {
	switch mirror.Scheme {
	case "http", "https":
		return m.doRequest(ctx, mirror)
	case "":
		return nil, fmt.Errorf("%s has no scheme: %w", mirror, pkgerrors.ErrUnsupportedURL)
	default:
		return m.openBlob(ctx, mirror)
	}
}

func (m *ManagerImpl) doRequest(ctx context.Context, mirror *url.URL) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mirror.String(), http.NoBody)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", m.userAgent)
	if err := m.auth.Apply(req); err != nil {
		return nil, err
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "download failed")
	}
	switch resp.StatusCode {
	case http.StatusOK:
		return resp.Body, nil
	case http.StatusNotFound:
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d: %w", resp.StatusCode, pkgerrors.ErrNotFound)
	default:
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d: %w", resp.StatusCode, pkgerrors.ErrDownloadFailed)
	}
}

// bucketReader closes the bucket together with the object reader.
type bucketReader struct {
	*blob.Reader
	bucket *blob.Bucket
}

func (r *bucketReader) Close() error {
	return errors.Join(r.Reader.Close(), r.bucket.Close())
}

func (m *ManagerImpl) openBlob(ctx context.Context, mirror *url.URL) (io.ReadCloser, error) {
	bucketURL, key := splitBlobURL(mirror)
	if key == "" {
		return nil, fmt.Errorf("%s names no object: %w", mirror.Redacted(), pkgerrors.ErrUnsupportedURL)
	}
	bucket, err := m.openBucket(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("open bucket %s: %w: %w", bucketURL, pkgerrors.ErrUnsupportedURL, err)
	}
	r, err := bucket.NewReader(ctx, key, nil)
	if err != nil {
		_ = bucket.Close()
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, fmt.Errorf("object %s: %w", key, pkgerrors.ErrNotFound)
		}
		return nil, pkgerrors.Wrapf(err, "read object %s", key)
	}
	return &bucketReader{Reader: r, bucket: bucket}, nil
}

// splitBlobURL splits a mirror into bucket URL and object key.
// file:///srv/mirror/a.zip -> (file:///srv/mirror, a.zip)
// gs://bucket/dir/a.zip    -> (gs://bucket, dir/a.zip)
func splitBlobURL(u *url.URL) (bucketURL, key string) {
	bucket := *u
	if u.Scheme == "file" {
		bucket.Path = path.Dir(u.Path)
		return bucket.String(), path.Base(u.Path)
	}
	bucket.Path = ""
	bucket.RawPath = ""
	key = u.Path
	if len(key) > 0 && key[0] == '/' {
		key = key[1:]
	}
	return bucket.String(), key
}

func (m *ManagerImpl) writeToTemp(body io.Reader, dir string, h hash.Hash) (string, error) {
	tmp, err := afero.TempFile(m.fs, dir, "dl-*.tmp")
	if err != nil {
		return "", pkgerrors.Wrap(err, "could not create temp file")
	}
	tmpPath := tmp.Name()

	var w io.Writer = tmp
	if h != nil {
		w = io.MultiWriter(tmp, h)
	}
	if _, err := io.Copy(w, body); err != nil {
		_ = tmp.Close()
		_ = m.fs.Remove(tmpPath)
		return "", pkgerrors.Wrap(err, "could not write file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = m.fs.Remove(tmpPath)
		return "", pkgerrors.Wrap(err, "could not sync file")
	}
	if err := tmp.Close(); err != nil {
		_ = m.fs.Remove(tmpPath)
		return "", pkgerrors.Wrap(err, "could not close file")
	}
	return tmpPath, nil
}

func (m *ManagerImpl) finalizeFile(tmpPath, absPath string) error {
	if err := fsutil.Move(m.fs, tmpPath, absPath); err != nil {
		_ = m.fs.Remove(tmpPath)
		return pkgerrors.Wrap(err, "could not finalize file")
	}
	if err := m.fs.Chmod(absPath, fsutil.FileModeDefault); err != nil {
		return pkgerrors.Wrap(err, "could not set permissions")
	}
	return nil
}
