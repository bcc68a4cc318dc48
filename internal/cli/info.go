package cli

import (
	"fmt"

	"github.com/glorpus-work/o3data/pkg/dataset"
	"github.com/spf13/cobra"
)

// NewInfoCmd creates the info command.
func NewInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info NAME",
		Short: "Show dataset details",
		Long:  "Show the description, directories and download sources of a dataset without fetching it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			if err := s.checkNames(args); err != nil {
				return err
			}
			r, err := s.open(cmd.Context(), args[0], dataset.WithoutFetch())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprint(out, r.Help())
			_, _ = fmt.Fprintf(out, "Fetched: %s\n", yesNo(r.IsFetched()))
			return nil
		},
	}
}
