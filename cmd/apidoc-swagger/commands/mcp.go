package commands

import (
	"github.com/spf13/cobra"

	"github.com/ALE-Rainbow/apidoc-swagger/internal/mcpserver"
)

// NewMCPCommand creates the mcp command, which serves the MCP tools over
// stdio until the client disconnects or the context is cancelled.
func NewMCPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the convert and list_records tools over MCP (stdio)",
		Long: `Start a Model Context Protocol server on stdin/stdout.

Defaults are read from the environment:
  APIDOC_SWAGGER_FORMAT         default output format (json or yaml)
  APIDOC_SWAGGER_STRICT         fail conversions on any issue
  APIDOC_SWAGGER_INCLUDE_INFO   report info issues (default true)
  APIDOC_SWAGGER_CACHE_ENABLED  cache decoded records (default true)
  APIDOC_SWAGGER_LIST_LIMIT     default page size (default 100)`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mcpserver.Run(cmd.Context())
		},
	}
}
