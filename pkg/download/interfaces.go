package download

import (
	"context"
	"net/url"
)

// Manager downloads one checksummed file from an ordered list of mirrors.
type Manager interface {
	// Fetch downloads item into opts.Dir and returns the absolute local path.
	// When a file with a matching checksum is already present, no source is contacted.
	Fetch(ctx context.Context, item Item, opts Options) (string, error)
}

// Item represents one remote file available from several equivalent mirrors.
type Item struct {
	ID       string     // identifier used in logs, usually the dataset prefix
	Mirrors  []*url.URL // sources tried in order
	Checksum string     // expected digest ("md5:..", "sha256:..", "blake3:.." or bare hex); empty skips verification
	Filename string     // local file name; defaults to the base name of the first mirror
}

// Options control where a fetched file is stored.
type Options struct {
	Dir string // destination directory. Must be absolute.
}
