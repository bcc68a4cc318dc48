// Package errors holds the sentinel errors shared across o3data packages.
package errors

import "fmt"

// Common error types.
var (
	// Dataset errors.
	ErrEmptyPrefix     = fmt.Errorf("dataset prefix cannot be empty")
	ErrNoSources       = fmt.Errorf("dataset has no download sources")
	ErrNoMirrors       = fmt.Errorf("no mirror urls given")
	ErrUnknownDataset  = fmt.Errorf("unknown dataset")
	ErrUnknownPathKey  = fmt.Errorf("unknown path key")
	ErrIndexOutOfRange = fmt.Errorf("index out of range")
	ErrDatasetExists   = fmt.Errorf("dataset already registered")
	ErrDataRoot        = fmt.Errorf("cannot determine data root")

	// Download errors.
	ErrNetwork          = fmt.Errorf("download failed on all mirrors")
	ErrDownloadFailed   = fmt.Errorf("download failed")
	ErrNotFound         = fmt.Errorf("resource not found")
	ErrInvalidPath      = fmt.Errorf("invalid path")
	ErrUnsupportedURL   = fmt.Errorf("unsupported mirror url")
	ErrFileHashMismatch = fmt.Errorf("file hash mismatch")
	ErrInvalidChecksum  = fmt.Errorf("invalid checksum")

	// Archive errors.
	ErrUnsupportedArchive = fmt.Errorf("unsupported archive format")
	ErrIllegalPath        = fmt.Errorf("archive entry escapes destination")

	// Config errors.
	ErrEmptyConfigPath    = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath  = fmt.Errorf("invalid config file path")
	ErrConfigParse        = fmt.Errorf("failed to parse config")
	ErrConfigValidation   = fmt.Errorf("invalid configuration")
	ErrConfigEncode       = fmt.Errorf("failed to encode config")
	ErrConfigDirectory    = fmt.Errorf("failed to create config directory")
	ErrConfigFileCreate   = fmt.Errorf("failed to create config file")
	ErrConfigFileRename   = fmt.Errorf("failed to rename config file")
	ErrConfigVersion      = fmt.Errorf("unsupported config version")
	ErrConfigFileExists   = fmt.Errorf("config file already exists")

	// Settings errors.
	ErrHTTPTimeoutNegative  = fmt.Errorf("http timeout cannot be negative")
	ErrMaxConcurrentInvalid = fmt.Errorf("max concurrent must be at least 1")

	// Cache errors.
	ErrCacheDirectory = fmt.Errorf("data root cannot be empty")

	// Hook errors.
	ErrHookExecution = fmt.Errorf("error executing hook")
	ErrHookScript    = fmt.Errorf("hook script error")
)

// ErrInvalidLogLevelWithDetails returns an error for an unknown log level.
func ErrInvalidLogLevelWithDetails(level string) error {
	return fmt.Errorf("invalid log level %q: %w", level, ErrConfigValidation)
}

// ErrDuplicateDatasetWithPrefix returns an error for a user dataset declared twice.
func ErrDuplicateDatasetWithPrefix(prefix string) error {
	return fmt.Errorf("dataset %q declared more than once: %w", prefix, ErrConfigValidation)
}

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
