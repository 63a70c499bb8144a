package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/pickr/pkg/version"
)

// NewVersionCmd creates the version command printing build information.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("pickr %s\n", version.GetVersion())
			cmd.Printf("  commit:  %s\n", version.GetGitCommit())
			cmd.Printf("  built:   %s\n", version.GetBuildDate())
			cmd.Printf("  go:      %s\n", version.GetGoVersion())
		},
	}
}
