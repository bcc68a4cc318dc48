package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/glorpus-work/o3data/internal/cli"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	noColor    bool
	dataRoot   string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "o3data",
		Short: "Fetch and manage 3D sample datasets",
		Long: `o3data downloads the sample datasets used by 3D data processing
examples and tests (point clouds, RGB-D sequences, meshes and models)
into a local data root and tells you where their files are.

The data root is taken from --data-root, the configuration file,
OPEN3D_DATA_ROOT or ~/open3d_data, in that order.`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: auto-detect)")
	cmd.PersistentFlags().StringVar(&dataRoot, "data-root", "", "data root directory")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.Verbose = &verbose
	cli.NoColor = &noColor
	cli.DataRoot = &dataRoot

	cmd.AddCommand(
		cli.NewListCmd(),
		cli.NewInfoCmd(),
		cli.NewFetchCmd(),
		cli.NewPathCmd(),
		cli.NewTreeCmd(),
		cli.NewDeleteCmd(),
		cli.NewCacheCmd(),
		cli.NewConfigCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
