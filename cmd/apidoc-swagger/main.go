package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	apidocswagger "github.com/ALE-Rainbow/apidoc-swagger"
	"github.com/ALE-Rainbow/apidoc-swagger/cmd/apidoc-swagger/commands"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "apidoc-swagger",
		Short: "Compile apidoc annotations into an OpenAPI 3.0.3 document",
		Long: `apidoc-swagger reads the api_data.json and api_project.json files written
by apidoc and produces the equivalent OpenAPI 3.0.3 (Swagger) document.`,
		Version:       apidocswagger.Version(),
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("apidoc-swagger {{.Version}}\n")
	rootCmd.AddCommand(
		commands.NewConvertCommand(),
		commands.NewMCPCommand(),
		commands.NewVersionCommand(),
	)
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		if !commands.IsConversionFailure(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
