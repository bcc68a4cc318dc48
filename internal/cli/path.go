package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/glorpus-work/o3data/pkg/dataset"
	pkgerrors "github.com/glorpus-work/o3data/pkg/errors"
	"github.com/spf13/cobra"
)

// NewPathCmd creates the path command.
func NewPathCmd() *cobra.Command {
	var noFetch bool

	cmd := &cobra.Command{
		Use:   "path NAME [KEY]",
		Short: "Print the file paths of a dataset",
		Long: `Print the paths of the files a dataset provides, fetching it first if needed.

Without KEY every path is listed next to its key. With KEY only that
path is printed, which makes the command convenient in scripts:

  o3data path BunnyMesh path`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := ""
			if len(args) == 2 {
				key = args[1]
			}
			return runPath(cmd, args[0], key, noFetch)
		},
	}

	cmd.Flags().BoolVar(&noFetch, "no-fetch", false, "Do not fetch the dataset if it is missing")

	return cmd
}

func runPath(cmd *cobra.Command, name, key string, noFetch bool) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	if err := s.checkNames([]string{name}); err != nil {
		return err
	}

	var extra []dataset.Option
	if noFetch {
		extra = append(extra, dataset.WithoutFetch())
	}
	r, err := s.open(cmd.Context(), name, extra...)
	if err != nil {
		return err
	}

	files := r.Files()
	keys := make([]string, 0, len(files))
	for k := range files {
		keys = append(keys, k)
	}
	sortPathKeys(keys)

	out := cmd.OutOrStdout()
	if key != "" {
		p, ok := files[key]
		if !ok {
			return fmt.Errorf("%s has no key %q (available: %s): %w",
				name, key, strings.Join(keys, ", "), pkgerrors.ErrUnknownPathKey)
		}
		_, _ = fmt.Fprintln(out, p)
		return nil
	}

	writePaths(out, keys, files)
	return nil
}

// sortPathKeys orders keys by base name, then indexed keys such as
// paths[10] by their numeric index.
func sortPathKeys(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		bi, ii := splitPathKey(keys[i])
		bj, ij := splitPathKey(keys[j])
		if bi != bj {
			return bi < bj
		}
		return ii < ij
	})
}

// splitPathKey returns the base and index of "name[N]"; unindexed keys get -1.
func splitPathKey(k string) (string, int) {
	open := strings.LastIndexByte(k, '[')
	if open < 0 || !strings.HasSuffix(k, "]") {
		return k, -1
	}
	n, err := strconv.Atoi(k[open+1 : len(k)-1])
	if err != nil {
		return k, -1
	}
	return k[:open], n
}

func writePaths(out io.Writer, keys []string, files map[string]string) {
	table := newTable(out, "Key", "Path")
	for _, k := range keys {
		table.Append([]string{k, files[k]})
	}
	table.Render()
}
