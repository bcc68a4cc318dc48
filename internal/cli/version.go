package cli

import (
	"fmt"

	"github.com/glorpus-work/o3data/pkg/config"
	"github.com/hashicorp/go-version"
	"github.com/spf13/cobra"
)

// Build information, overridden with -ldflags at release time.
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version information for o3data",
		Args:  cobra.NoArgs,
		RunE:  runVersion,
	}

	return cmd
}

func runVersion(cmd *cobra.Command, _ []string) error {
	v, err := version.NewVersion(Version)
	if err != nil {
		return fmt.Errorf("invalid build version %q: %w", Version, err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "o3data version %s", v)
	if v.Prerelease() != "" {
		_, _ = fmt.Fprint(out, " (pre-release)")
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintf(out, "Build date: %s\n", BuildDate)
	_, _ = fmt.Fprintf(out, "Git commit: %s\n", GitCommit)
	_, _ = fmt.Fprintf(out, "Config versions: %s\n", config.SupportedVersions)
	return nil
}
