//go:generate mockgen -destination=./mocks/dataset.go . Downloader,Extractor

package dataset

import (
	"context"

	"github.com/glorpus-work/o3data/pkg/download"
)

// Downloader fetches one checksummed file from its mirrors.
type Downloader interface {
	Fetch(ctx context.Context, item download.Item, opts download.Options) (string, error)
}

// Extractor unpacks or copies a downloaded file into a directory.
type Extractor interface {
	ExtractAll(ctx context.Context, archivePath, destDir string) error
	CopyFile(ctx context.Context, srcPath, destDir string) (string, error)
}
