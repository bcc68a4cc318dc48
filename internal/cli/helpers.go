package cli

import (
	"context"
	"fmt"

	"github.com/glorpus-work/o3data/internal/logger"
	"github.com/glorpus-work/o3data/pkg/config"
	"github.com/glorpus-work/o3data/pkg/data"
	"github.com/glorpus-work/o3data/pkg/dataset"
	"github.com/glorpus-work/o3data/pkg/download"
	pkgerrors "github.com/glorpus-work/o3data/pkg/errors"
	"github.com/glorpus-work/o3data/pkg/fsutil"
	"github.com/glorpus-work/o3data/pkg/hooks"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	Verbose    *bool
	NoColor    *bool
	DataRoot   *string
)

// session bundles what every dataset command needs: configuration, the
// resolved data root and the registry extended with user datasets.
type session struct {
	cfg        *config.Config
	dataRoot   string
	registry   *data.Registry
	hooks      hooks.HookManager
	downloader dataset.Downloader
}

// readConfig loads the configuration file as stored, without flag overrides.
func readConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// loadConfig loads the configuration and applies the global flags on top of it.
func loadConfig() (*config.Config, error) {
	cfg, err := readConfig()
	if err != nil {
		return nil, err
	}

	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}
	if NoColor != nil && *NoColor {
		cfg.Settings.ColorOutput = false
	}
	if DataRoot != nil && *DataRoot != "" {
		cfg.Settings.DataRoot = *DataRoot
	}

	initLogging(cfg)
	return cfg, nil
}

func newSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	root, err := fsutil.ResolveDataRoot(cfg.Settings.DataRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pkgerrors.ErrDataRoot, err)
	}

	registry := data.NewRegistry()
	for _, desc := range cfg.Descriptors() {
		if err := registry.AddUser(desc); err != nil {
			return nil, fmt.Errorf("failed to register dataset %s: %w", desc.Prefix, err)
		}
	}

	executor := hooks.NewTengoExecutor()
	if err := hooks.LoadHooksFromMap(executor, cfg.HookScripts()); err != nil {
		return nil, fmt.Errorf("failed to load hooks: %w", err)
	}
	if cfg.Hooks.Dir != "" {
		dir, err := homedir.Expand(cfg.Hooks.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to expand hooks dir %s: %w", cfg.Hooks.Dir, err)
		}
		if err := hooks.LoadHooksFromDir(afero.NewOsFs(), executor, dir); err != nil {
			return nil, fmt.Errorf("failed to load hooks: %w", err)
		}
	}

	logger.Debug("Session ready", logger.Fields{"data_root": root, "datasets": len(registry.Names())})
	return &session{
		cfg:        cfg,
		dataRoot:   root,
		registry:   registry,
		hooks:      executor,
		downloader: download.NewManager(cfg.Settings.HTTPTimeout, cfg.Settings.UserAgent, download.WithAuth(cfg.Authenticators())),
	}, nil
}

// datasetOptions returns the options every dataset of the session is opened with.
func (s *session) datasetOptions(name string, extra ...dataset.Option) []dataset.Option {
	opts := []dataset.Option{
		dataset.WithDownloader(s.downloader),
		dataset.WithHooks(s.hooks),
		dataset.WithEvents(dataset.Events{OnEvent: logEvent}),
	}
	if mirrors := s.cfg.MirrorsFor(name); len(mirrors) > 0 {
		opts = append(opts, dataset.WithExtraMirrors(mirrors...))
	}
	return append(opts, extra...)
}

func (s *session) open(ctx context.Context, name string, extra ...dataset.Option) (data.Resource, error) {
	return s.registry.Open(ctx, name, s.dataRoot, s.datasetOptions(name, extra...)...)
}

// checkNames fails on the first name the registry does not know.
func (s *session) checkNames(names []string) error {
	for _, name := range names {
		if _, ok := s.registry.Lookup(name); !ok {
			return fmt.Errorf("%q: %w (see 'o3data list')", name, pkgerrors.ErrUnknownDataset)
		}
	}
	return nil
}

func logEvent(e dataset.Event) {
	fields := logger.Fields{"dataset": e.Prefix, "phase": string(e.Phase)}
	switch e.Phase {
	case dataset.PhaseDownloading, dataset.PhaseExtracting, dataset.PhaseCopying:
		logger.Info(e.Msg, fields)
	default:
		logger.Debug(e.Msg, fields)
	}
}

func getConfigPath() string {
	if ConfigPath != nil && *ConfigPath != "" {
		return *ConfigPath
	}

	defaultPath, err := config.GetDefaultConfigPath()
	if err != nil {
		logger.Warn("Failed to get default config path, using empty path", logger.Fields{"error": err})
		return ""
	}
	return defaultPath
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
