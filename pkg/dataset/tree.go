package dataset

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/afero"
)

var dirColor = color.New(color.FgBlue, color.Bold)

// DisplayDataTree writes the extract directory as a tree. depth limits how
// many levels below the extract directory are shown; depth <= 0 shows all.
func (d *Dataset) DisplayDataTree(w io.Writer, depth int) error {
	root := d.ExtractDir()
	info, err := d.fs.Stat(root)
	if err != nil {
		return fmt.Errorf("%s has not been fetched: %w", d.prefix, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", root)
	}
	if _, err := fmt.Fprintln(w, dirColor.Sprint(root)); err != nil {
		return err
	}
	return d.writeTree(w, root, "", 1, depth)
}

func (d *Dataset) writeTree(w io.Writer, dir, indent string, level, depth int) error {
	if depth > 0 && level > depth {
		return nil
	}
	entries, err := afero.ReadDir(d.fs, dir)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for i, entry := range entries {
		branch, next := "├── ", "│   "
		if i == len(entries)-1 {
			branch, next = "└── ", "    "
		}
		name := entry.Name()
		if entry.IsDir() {
			name = dirColor.Sprint(name + "/")
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", indent, branch, name); err != nil {
			return err
		}
		if entry.IsDir() {
			if err := d.writeTree(w, filepath.Join(dir, entry.Name()), indent+next, level+1, depth); err != nil {
				return err
			}
		}
	}
	return nil
}
