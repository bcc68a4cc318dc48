package dataset

import (
	"time"

	"github.com/glorpus-work/o3data/pkg/hooks"
	"github.com/spf13/afero"
)

// DefaultHTTPTimeout bounds each HTTP download when no Downloader is supplied.
const DefaultHTTPTimeout = 5 * time.Minute

// Option configures a dataset.
type Option func(*settings)

type settings struct {
	fs           afero.Fs
	downloader   Downloader
	extractor    Extractor
	hooks        hooks.HookManager
	events       Events
	extraMirrors []string
	sources      []Source
	noFetch      bool
	force        bool
}

func newSettings(opts []Option) *settings {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	if s.fs == nil {
		s.fs = afero.NewOsFs()
	}
	return s
}

// WithFs sets the filesystem datasets are stored on.
func WithFs(fs afero.Fs) Option {
	return func(s *settings) { s.fs = fs }
}

// WithDownloader replaces the default HTTP/blob downloader.
func WithDownloader(d Downloader) Option {
	return func(s *settings) { s.downloader = d }
}

// WithExtractor replaces the default archive extractor.
func WithExtractor(e Extractor) Option {
	return func(s *settings) { s.extractor = e }
}

// WithHooks runs post-fetch and post-delete scripts from m.
func WithHooks(m hooks.HookManager) Option {
	return func(s *settings) { s.hooks = m }
}

// WithEvents registers progress callbacks.
func WithEvents(e Events) Option {
	return func(s *settings) { s.events = e }
}

// WithExtraMirrors adds base URLs tried before the built-in mirrors.
// The downloaded file name is appended to each base URL.
func WithExtraMirrors(bases ...string) Option {
	return func(s *settings) { s.extraMirrors = append(s.extraMirrors, bases...) }
}

// WithSource replaces the descriptor's sources.
func WithSource(sources ...Source) Option {
	return func(s *settings) { s.sources = sources }
}

// WithoutFetch computes paths without touching the network or the filesystem.
func WithoutFetch() Option {
	return func(s *settings) { s.noFetch = true }
}

// WithForce deletes existing download and extract directories before fetching.
func WithForce(force bool) Option {
	return func(s *settings) { s.force = force }
}
