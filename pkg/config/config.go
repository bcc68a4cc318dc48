// Package config provides configuration management for o3data.
// It handles loading, validating and saving the YAML configuration file that
// sets the data root, network settings, extra mirrors, user datasets and
// hook scripts. Missing files and missing keys fall back to defaults.
package config

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glorpus-work/o3data/pkg/checksum"
	"github.com/glorpus-work/o3data/pkg/errors"
	"github.com/glorpus-work/o3data/pkg/fsutil"
	"github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Version is the schema version of the file.
	Version string `yaml:"version"`

	// General settings
	Settings Settings `yaml:"settings"`

	// Mirrors maps a dataset prefix to base URLs tried before the built-in
	// mirrors. The "*" entry applies to every dataset.
	Mirrors map[string][]string `yaml:"mirrors,omitempty"`

	// Datasets declares single-download datasets. A prefix naming a built-in
	// dataset replaces its sources.
	Datasets []*DatasetConfig `yaml:"datasets,omitempty"`

	// Hooks holds inline scripts and an optional directory of <type>.tengo files.
	Hooks HooksConfig `yaml:"hooks,omitempty"`

	// Auth maps a mirror host (host or host:port) to its credentials.
	Auth map[string]*AuthConfig `yaml:"auth,omitempty"`
}

// DatasetConfig represents a user-declared dataset.
type DatasetConfig struct {
	Prefix      string   `yaml:"prefix"`
	URLs        []string `yaml:"urls"`
	Checksum    string   `yaml:"checksum,omitempty"`
	NoExtract   bool     `yaml:"no_extract,omitempty"`
	Description string   `yaml:"description,omitempty"`
}

// HooksConfig represents hook script configuration.
type HooksConfig struct {
	PostFetch  string `yaml:"post_fetch,omitempty"`
	PostDelete string `yaml:"post_delete,omitempty"`
	Dir        string `yaml:"dir,omitempty"`
}

// Settings represents general application settings.
type Settings struct {
	// Storage settings
	DataRoot string `yaml:"data_root,omitempty"`

	// Network settings
	HTTPTimeout   time.Duration `yaml:"http_timeout"`
	UserAgent     string        `yaml:"user_agent,omitempty"`
	MaxConcurrent int           `yaml:"max_concurrent"`

	// Output settings
	OutputFormat string `yaml:"output_format"` // text, json
	ColorOutput  bool   `yaml:"color_output"`
	LogLevel     string `yaml:"log_level"` // debug, info, warn, error
}

// Default configuration values.
const (
	// CurrentVersion is written into new configuration files.
	CurrentVersion = "1"

	// SupportedVersions is the schema constraint accepted when loading.
	SupportedVersions = ">= 1, < 2"

	// DefaultHTTPTimeout is the default timeout for a single download.
	DefaultHTTPTimeout = 5 * time.Minute

	// DefaultMaxConcurrent is the default number of datasets fetched at once.
	DefaultMaxConcurrent = 4

	// EnvConfigPath overrides the default configuration file location.
	EnvConfigPath = "O3DATA_CONFIG"

	// WildcardMirror is the Mirrors key applied to every dataset.
	WildcardMirror = "*"

	// YAMLIndent is the number of spaces to use for YAML indentation.
	YAMLIndent = 2
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Settings: Settings{
			HTTPTimeout:   DefaultHTTPTimeout,
			MaxConcurrent: DefaultMaxConcurrent,
			OutputFormat:  "text",
			ColorOutput:   true,
			LogLevel:      "info",
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
// Keys absent from the document keep their default values.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves configuration to a file through a temporary file and an atomic rename.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(absPath), fsutil.DirModeDefault); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	tempPath := absPath + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeDefault)
	if err != nil {
		return errors.Wrap(errors.ErrConfigFileCreate, err.Error())
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(YAMLIndent)

	if err := encoder.Encode(c); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}

	_ = encoder.Close()
	_ = file.Close()

	if err := os.Rename(tempPath, absPath); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigFileRename, err.Error())
	}

	return nil
}

// ToYAML converts the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrConfigEncode, err.Error())
	}
	return data, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	if err := validateVersion(c.Version); err != nil {
		return err
	}
	if err := validateSettings(c.Settings); err != nil {
		return err
	}
	if err := validateMirrors(c.Mirrors); err != nil {
		return err
	}
	if err := validateAuth(c.Auth); err != nil {
		return err
	}
	return validateDatasets(c.Datasets)
}

func validateVersion(v string) error {
	parsed, err := version.NewVersion(v)
	if err != nil {
		return fmt.Errorf("version %q: %w", v, errors.ErrConfigVersion)
	}
	constraint, err := version.NewConstraint(SupportedVersions)
	if err != nil {
		return err
	}
	if !constraint.Check(parsed) {
		return fmt.Errorf("version %s does not satisfy %s: %w", parsed, SupportedVersions, errors.ErrConfigVersion)
	}
	return nil
}

func validateSettings(s Settings) error {
	if s.HTTPTimeout < 0 {
		return errors.ErrHTTPTimeoutNegative
	}
	if s.MaxConcurrent < 1 {
		return errors.ErrMaxConcurrentInvalid
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[s.OutputFormat] {
		return fmt.Errorf("invalid output format %q: %w", s.OutputFormat, errors.ErrConfigValidation)
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(s.LogLevel)] {
		return errors.ErrInvalidLogLevelWithDetails(s.LogLevel)
	}
	return nil
}

func validateMirrors(mirrors map[string][]string) error {
	for prefix, bases := range mirrors {
		for _, base := range bases {
			if err := validateURL(base); err != nil {
				return fmt.Errorf("mirrors[%s]: %w", prefix, err)
			}
		}
	}
	return nil
}

func validateDatasets(datasets []*DatasetConfig) error {
	seen := make(map[string]bool)
	for i, ds := range datasets {
		if ds == nil || ds.Prefix == "" {
			return fmt.Errorf("datasets[%d]: %w: %w", i, errors.ErrEmptyPrefix, errors.ErrConfigValidation)
		}
		if seen[ds.Prefix] {
			return errors.ErrDuplicateDatasetWithPrefix(ds.Prefix)
		}
		seen[ds.Prefix] = true
		if len(ds.URLs) == 0 {
			return fmt.Errorf("dataset %q: %w: %w", ds.Prefix, errors.ErrNoMirrors, errors.ErrConfigValidation)
		}
		for _, u := range ds.URLs {
			if err := validateURL(u); err != nil {
				return fmt.Errorf("dataset %q: %w", ds.Prefix, err)
			}
		}
		if ds.Checksum != "" {
			if _, err := checksum.Parse(ds.Checksum); err != nil {
				return fmt.Errorf("dataset %q: %w: %w", ds.Prefix, err, errors.ErrConfigValidation)
			}
		}
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return fmt.Errorf("%q: %w: %w", raw, errors.ErrUnsupportedURL, errors.ErrConfigValidation)
	}
	return nil
}

// GetDefaultConfigPath returns the configuration file path, honouring O3DATA_CONFIG.
func GetDefaultConfigPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "o3data", "config.yaml"), nil
}

// applyDefaults fills in values a document explicitly zeroed.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Settings.HTTPTimeout == 0 {
		c.Settings.HTTPTimeout = defaults.Settings.HTTPTimeout
	}
	if c.Settings.MaxConcurrent == 0 {
		c.Settings.MaxConcurrent = defaults.Settings.MaxConcurrent
	}
	if c.Settings.OutputFormat == "" {
		c.Settings.OutputFormat = defaults.Settings.OutputFormat
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
}
