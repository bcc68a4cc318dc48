package cli

import (
	"fmt"
	"io"

	"github.com/glorpus-work/o3data/pkg/cache"
	"github.com/spf13/cobra"
)

// NewCacheCmd creates the cache command with subcommands
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the data root",
		Long:  "Clean, show information about, and locate the data root holding downloaded and extracted datasets",
	}

	cmd.AddCommand(
		newCacheCleanCmd(),
		newCacheInfoCmd(),
		newCacheDirCmd(),
	)

	return cmd
}

func newCacheCleanCmd() *cobra.Command {
	var (
		all       bool
		downloads bool
		extracts  bool
	)

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean the data root",
		Long:  "Remove downloaded and extracted dataset files to free up disk space",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCacheClean(cmd.OutOrStdout(), all, downloads, extracts)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Clean all dataset files")
	cmd.Flags().BoolVar(&downloads, "downloads", false, "Clean only downloaded files")
	cmd.Flags().BoolVar(&extracts, "extracts", false, "Clean only extracted files")

	return cmd
}

func newCacheInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show data root information",
		Long:  "Display the size of the data root per dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCacheInfo(cmd.OutOrStdout())
		},
	}
}

func newCacheDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dir",
		Short: "Show data root path",
		Long:  "Display the path of the data root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			op, err := newCacheOperation()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), op.GetDirectory())
			return nil
		},
	}
}

func newCacheOperation() (*cache.Operation, error) {
	s, err := newSession()
	if err != nil {
		return nil, err
	}
	return cache.NewOperation(cache.NewManager(s.dataRoot, nil)), nil
}

func runCacheClean(out io.Writer, all, downloads, extracts bool) error {
	op, err := newCacheOperation()
	if err != nil {
		return err
	}

	msg, err := op.Clean(all, downloads, extracts)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, msg)
	return nil
}

func runCacheInfo(out io.Writer) error {
	op, err := newCacheOperation()
	if err != nil {
		return err
	}

	msg, err := op.GetInfo()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, msg)
	return nil
}
