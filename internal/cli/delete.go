package cli

import (
	"fmt"

	"github.com/glorpus-work/o3data/internal/logger"
	"github.com/glorpus-work/o3data/pkg/orchestrator"
	"github.com/spf13/cobra"
)

// NewDeleteCmd creates the delete command.
func NewDeleteCmd() *cobra.Command {
	var downloads, extracts bool

	cmd := &cobra.Command{
		Use:     "delete NAME...",
		Aliases: []string{"rm"},
		Short:   "Delete the local files of datasets",
		Long: `Delete the download and extract directories of the given datasets.

Use --download or --extract to only remove one of them. Without either
flag both directories are removed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			if err := s.checkNames(args); err != nil {
				return err
			}

			orch := orchestrator.New(s.registry, orchestrator.Hooks{OnEvent: logOrchestratorEvent})
			out := cmd.OutOrStdout()
			for _, name := range args {
				err := orch.Delete(cmd.Context(), name, orchestrator.DeleteOptions{
					DataRoot: s.dataRoot,
					Download: downloads,
					Extract:  extracts,
				}, s.datasetOptions(name)...)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "Deleted %s\n", name)
			}
			logger.Success("Delete completed", logger.Fields{"datasets": len(args)})
			return nil
		},
	}

	cmd.Flags().BoolVar(&downloads, "download", false, "Delete only downloaded files")
	cmd.Flags().BoolVar(&extracts, "extract", false, "Delete only extracted files")

	return cmd
}
