package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/glorpus-work/o3data/internal/logger"
	"github.com/glorpus-work/o3data/pkg/dataset"
	"github.com/glorpus-work/o3data/pkg/orchestrator"
	"github.com/spf13/cobra"
)

// NewFetchCmd creates the fetch command.
func NewFetchCmd() *cobra.Command {
	var all, force bool

	cmd := &cobra.Command{
		Use:   "fetch [NAME...]",
		Short: "Download and extract datasets",
		Long: `Fetch one or more datasets into the data root.

Datasets whose extract directory already exists are skipped unless --force
is given, in which case download and extract files are removed first.`,
		Args: func(_ *cobra.Command, args []string) error {
			if !all && len(args) == 0 {
				return fmt.Errorf("requires at least one dataset name or --all")
			}
			if all && len(args) > 0 {
				return fmt.Errorf("dataset names cannot be combined with --all")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, args, all, force)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Fetch every known dataset")
	cmd.Flags().BoolVar(&force, "force", false, "Delete existing files and fetch again")

	return cmd
}

func runFetch(cmd *cobra.Command, names []string, all, force bool) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	if all {
		names = s.registry.Names()
	}
	if err := s.checkNames(names); err != nil {
		return err
	}

	orch := orchestrator.New(s.registry, orchestrator.Hooks{OnEvent: logOrchestratorEvent})
	fetched, err := orch.FetchAll(cmd.Context(), names, orchestrator.Options{
		DataRoot:    s.dataRoot,
		Concurrency: s.cfg.Settings.MaxConcurrent,
		DatasetOptions: func(name string) []dataset.Option {
			return s.datasetOptions(name, dataset.WithForce(force))
		},
	})

	out := cmd.OutOrStdout()
	for _, name := range names {
		if r, ok := fetched[name]; ok {
			_, _ = fmt.Fprintf(out, "%s %s\n", color.GreenString("%-28s", name), r.ExtractDir())
		}
	}
	if err != nil {
		return err
	}

	logger.Success("Fetch completed", logger.Fields{"datasets": len(fetched)})
	return nil
}

func logOrchestratorEvent(e orchestrator.Event) {
	logger.Debug(e.Msg, logger.Fields{"dataset": e.ID, "phase": e.Phase})
}
