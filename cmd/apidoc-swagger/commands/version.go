package commands

import (
	"github.com/spf13/cobra"

	apidocswagger "github.com/ALE-Rainbow/apidoc-swagger"
	"github.com/ALE-Rainbow/apidoc-swagger/internal/cliutil"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if verbose {
				cliutil.Writef(cmd.OutOrStdout(), "%s", apidocswagger.BuildInfo())
				return
			}
			cliutil.Writef(cmd.OutOrStdout(), "apidoc-swagger %s\n", apidocswagger.Version())
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print commit and Go version too")
	return cmd
}
