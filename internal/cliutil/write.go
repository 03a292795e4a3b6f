// Package cliutil provides output helpers shared by the CLI and the MCP server.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/ALE-Rainbow/apidoc-swagger/internal/issues"
	"github.com/ALE-Rainbow/apidoc-swagger/internal/severity"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteIssues prints one line per issue at or above min severity,
// followed by a count summary when anything was printed.
func WriteIssues(w io.Writer, list []issues.Issue, min severity.Severity) int {
	printed := 0
	for _, iss := range list {
		if !iss.Severity.AtLeast(min) {
			continue
		}
		Writef(w, "%s\n", iss.String())
		printed++
	}
	if printed > 0 {
		Writef(w, "\n%d issue(s) reported\n", printed)
	}
	return printed
}
