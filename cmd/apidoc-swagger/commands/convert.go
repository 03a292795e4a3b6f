package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	apidocswagger "github.com/ALE-Rainbow/apidoc-swagger"
	"github.com/ALE-Rainbow/apidoc-swagger/converter"
	"github.com/ALE-Rainbow/apidoc-swagger/internal/cliutil"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Data        string
	Project     string
	SwaggerInit string
	Output      string
	Format      string
	Strict      bool
	NoInfo      bool
	Quiet       bool
	Verbose     bool
}

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	flags := &ConvertFlags{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Compile apidoc records into an OpenAPI 3.0.3 document",
		Long: `Compile the api_data.json written by apidoc into an OpenAPI 3.0.3 document.

The project metadata (api_project.json) fills the info section. The
--swagger-init document is deep-merged on top of the generated document,
which is how tags, x-tagGroups and x-servers are declared.

The document is written to swagger.json (or swagger.yaml) inside the
--output directory, or to stdout when --output is empty or '-'.

Exit Codes:
  0    Document written; warnings and error issues are only reported
  1    Conversion failed, or a record could not be compiled and was dropped`,
		Example: `  apidoc-swagger convert -d doc/api_data.json -p doc/api_project.json -o out
  apidoc-swagger convert -d doc/api_data.json -s swagger-init.yaml -f yaml
  cat doc/api_data.json | apidoc-swagger convert -q -d - > swagger.json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunConvert(cmd, flags)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&flags.Data, "data", "d", "", "apidoc records file (api_data.json), or '-' for stdin (required)")
	fs.StringVarP(&flags.Project, "project", "p", "", "apidoc project file (api_project.json)")
	fs.StringVarP(&flags.SwaggerInit, "swagger-init", "s", "", "document deep-merged on top of the generated one (JSON or YAML)")
	fs.StringVarP(&flags.Output, "output", "o", "", "output directory (default: stdout)")
	fs.StringVarP(&flags.Format, "format", "f", FormatJSON, "output format: json or yaml")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on any conversion issues (even warnings)")
	fs.BoolVar(&flags.NoInfo, "no-info", false, "suppress info messages")
	fs.BoolVarP(&flags.Quiet, "quiet", "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVarP(&flags.Verbose, "verbose", "v", false, "log every compilation step to stderr")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

// RunConvert executes the convert command
func RunConvert(cmd *cobra.Command, flags *ConvertFlags) error {
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	stderr := cmd.ErrOrStderr()

	opts := []converter.Option{
		converter.WithStrictMode(flags.Strict),
		converter.WithIncludeInfo(!flags.NoInfo),
		converter.WithLogger(NewLogger(stderr, flags.Verbose && !flags.Quiet)),
	}
	if flags.Data == StdinFilePath {
		opts = append(opts, converter.WithRecordsReader(cmd.InOrStdin()))
	} else {
		opts = append(opts, converter.WithRecordsFile(flags.Data))
	}
	if flags.Project != "" {
		opts = append(opts, converter.WithProjectFile(flags.Project))
	}
	if flags.SwaggerInit != "" {
		opts = append(opts, converter.WithOverrideFile(flags.SwaggerInit))
	}

	startTime := time.Now()
	result, convErr := converter.ConvertWithOptions(opts...)
	totalTime := time.Since(startTime)
	if result == nil {
		return fmt.Errorf("converting records: %w", convErr)
	}

	if !flags.Quiet {
		printSummary(cmd, flags, result, totalTime)
	}
	// Strict mode hands back the result alongside the error so the issues
	// above are still printed.
	if convErr != nil {
		return convErr
	}

	if flags.Output == "" || flags.Output == StdinFilePath {
		data, err := result.Marshal(flags.Format)
		if err != nil {
			return err
		}
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return fmt.Errorf("writing document to stdout: %w", err)
		}
	} else {
		path, err := converter.WriteResult(result, flags.Output, flags.Format)
		if err != nil {
			return err
		}
		if !flags.Quiet {
			cliutil.Writef(stderr, "\nOutput written to: %s\n", path)
		}
	}

	if !result.Success {
		return ErrConversionFailed
	}
	return nil
}

func printSummary(cmd *cobra.Command, flags *ConvertFlags, result *converter.ConversionResult, totalTime time.Duration) {
	w := cmd.ErrOrStderr()
	cliutil.Writef(w, "apidoc to OpenAPI Converter\n")
	cliutil.Writef(w, "===========================\n\n")
	cliutil.Writef(w, "apidoc-swagger version: %s\n", apidocswagger.Version())
	if flags.Data == StdinFilePath {
		cliutil.Writef(w, "Records: <stdin>\n")
	} else {
		cliutil.Writef(w, "Records: %s\n", flags.Data)
	}
	cliutil.Writef(w, "Paths: %d\n", result.PathCount)
	cliutil.Writef(w, "Schemas: %d\n", result.SchemaCount)
	cliutil.Writef(w, "Total Time: %v\n\n", totalTime)

	if cliutil.WriteIssues(w, result.Issues, converter.SeverityInfo) > 0 {
		cliutil.Writef(w, "\n")
	}

	if result.Success {
		cliutil.Writef(w, "✓ Conversion successful")
		if result.InfoCount > 0 || result.WarningCount > 0 || result.ErrorCount > 0 {
			cliutil.Writef(w, " (%d info, %d warnings, %d errors)", result.InfoCount, result.WarningCount, result.ErrorCount)
		}
		cliutil.Writef(w, "\n")
		return
	}
	cliutil.Writef(w, "✗ Conversion dropped %d record(s)", result.CriticalCount)
	if result.ErrorCount > 0 || result.WarningCount > 0 {
		cliutil.Writef(w, ", %d error(s), %d warning(s)", result.ErrorCount, result.WarningCount)
	}
	cliutil.Writef(w, "\n")
}

// IsConversionFailure reports whether err only signals reported issues.
func IsConversionFailure(err error) bool {
	return errors.Is(err, ErrConversionFailed)
}
