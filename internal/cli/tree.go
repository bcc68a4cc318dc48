package cli

import (
	"fmt"

	"github.com/glorpus-work/o3data/pkg/dataset"
	"github.com/spf13/cobra"
)

// NewTreeCmd creates the tree command.
func NewTreeCmd() *cobra.Command {
	var (
		depth   int
		noFetch bool
	)

	cmd := &cobra.Command{
		Use:   "tree NAME",
		Short: "Display the extracted files of a dataset",
		Long:  "Print the directory tree of a dataset's extract directory. A depth of 0 prints the whole tree.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			if err := s.checkNames(args); err != nil {
				return err
			}

			var extra []dataset.Option
			if noFetch {
				extra = append(extra, dataset.WithoutFetch())
			}
			r, err := s.open(cmd.Context(), args[0], extra...)
			if err != nil {
				return err
			}
			if !r.IsFetched() {
				return fmt.Errorf("%s is not fetched yet, run 'o3data fetch %s'", args[0], args[0])
			}
			return r.DisplayDataTree(cmd.OutOrStdout(), depth)
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 0, "Maximum depth to display (0 for unlimited)")
	cmd.Flags().BoolVar(&noFetch, "no-fetch", false, "Do not fetch the dataset if it is missing")

	return cmd
}
