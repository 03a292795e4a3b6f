// Package commands provides CLI command handlers for apidoc-swagger.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ALE-Rainbow/apidoc-swagger/converter"
)

// Output format constants
const (
	FormatJSON = converter.FormatJSON
	FormatYAML = converter.FormatYAML
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ErrConversionFailed is returned when the document was produced but at
// least one record had to be dropped. main maps it to exit status 1
// without printing it again.
var ErrConversionFailed = errors.New("conversion dropped records")

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	switch strings.ToLower(format) {
	case FormatJSON, FormatYAML, "yml":
		return nil
	}
	return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML)
}

// NewLogger returns the converter logger for the given verbosity. Only
// verbose runs log; the issue listing covers everything else.
func NewLogger(w io.Writer, verbose bool) converter.Logger {
	if !verbose {
		return converter.NopLogger{}
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return converter.NewSlogAdapter(slog.New(handler))
}
