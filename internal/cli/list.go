package cli

import (
	"fmt"
	"io"

	"github.com/glorpus-work/o3data/pkg/fsutil"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var (
		kind        string
		fetchedOnly bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available datasets",
		Long: `List every dataset o3data knows about: the built-in sample datasets
and the ones declared in the configuration file.

Use --kind to filter by dataset kind and --fetched to show only datasets
that are present in the data root.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.OutOrStdout(), kind, fetchedOnly)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Only list datasets of this kind (pointcloud, rgbd, mesh, model, image, bundle, user)")
	cmd.Flags().BoolVar(&fetchedOnly, "fetched", false, "Only list datasets present in the data root")

	return cmd
}

func runList(out io.Writer, kind string, fetchedOnly bool) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	fs := afero.NewOsFs()
	table := newTable(out, "Name", "Kind", "Fetched", "Description")
	rows := 0
	for _, name := range s.registry.Names() {
		entry, _ := s.registry.Lookup(name)
		if kind != "" && string(entry.Kind) != kind {
			continue
		}
		fetched := fsutil.IsDir(fs, fsutil.ExtractDir(s.dataRoot, name))
		if fetchedOnly && !fetched {
			continue
		}
		table.Append([]string{name, string(entry.Kind), yesNo(fetched), truncate(entry.Descriptor.Description, MaxDescriptionLength)})
		rows++
	}

	if rows == 0 {
		_, _ = fmt.Fprintln(out, "No datasets found")
		return nil
	}
	table.Render()
	return nil
}

func newTable(out io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	return table
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
