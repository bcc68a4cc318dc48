package cli

import (
	"github.com/fatih/color"
	"github.com/glorpus-work/o3data/internal/logger"
	"github.com/glorpus-work/o3data/pkg/config"
)

// initLogging configures the process logger and terminal colors from cfg.
func initLogging(cfg *config.Config) {
	logger.SetNoColor(!cfg.Settings.ColorOutput)
	logger.InitLogger(cfg.Settings.LogLevel, logger.OutputFormat(cfg.Settings.OutputFormat))
	if !cfg.Settings.ColorOutput {
		color.NoColor = true
	}
}
