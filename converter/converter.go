package converter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"go.yaml.in/yaml/v4"

	"github.com/ALE-Rainbow/apidoc-swagger/apidoc"
	"github.com/ALE-Rainbow/apidoc-swagger/internal/issues"
	"github.com/ALE-Rainbow/apidoc-swagger/internal/pathutil"
	"github.com/ALE-Rainbow/apidoc-swagger/internal/severity"
	"github.com/ALE-Rainbow/apidoc-swagger/oaserrors"
)

// Severity indicates the severity level of a conversion issue
type Severity = severity.Severity

const (
	// SeverityError indicates a problem in the annotations that the
	// generated document reflects, such as an unparsable example
	SeverityError = severity.SeverityError
	// SeverityWarning indicates advisory findings such as a missing description
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates informational messages about conversion choices
	SeverityInfo = severity.SeverityInfo
	// SeverityCritical indicates a record that could not be converted at all
	SeverityCritical = severity.SeverityCritical
)

// ConversionIssue represents a single conversion issue
type ConversionIssue = issues.Issue

// Output formats accepted by WriteResult.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// outputFileMode keeps generated documents private to the owner.
const outputFileMode = 0o600

// ConversionResult contains the results of compiling annotation records
type ConversionResult struct {
	// Document is the final document, after the override merge, as a
	// generic map ready for encoding
	Document map[string]any
	// OpenAPI is the generated document before the override merge
	OpenAPI *openapi3.T
	// Issues contains all conversion issues in the order they were found
	Issues []ConversionIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// ErrorCount is the total number of errors
	ErrorCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// PathCount is the number of path items in the document
	PathCount int
	// SchemaCount is the number of component schemas in the document
	SchemaCount int
	// Success is true when no record had to be dropped. Error issues such as
	// an undeclared tag or a skipped example are reported but do not fail
	// the run.
	Success bool
}

// HasCriticalIssues returns true if there are any critical issues
func (r *ConversionResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasErrors returns true if there are any error or critical issues
func (r *ConversionResult) HasErrors() bool {
	return r.ErrorCount > 0 || r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *ConversionResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// JSON encodes the document as indented JSON. Keys are sorted, so two runs
// over the same input produce identical bytes.
func (r *ConversionResult) JSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.Document); err != nil {
		return nil, fmt.Errorf("converter: failed to marshal document: %w", err)
	}
	return buf.Bytes(), nil
}

// YAML encodes the document as YAML.
func (r *ConversionResult) YAML() ([]byte, error) {
	data, err := yaml.Marshal(r.Document)
	if err != nil {
		return nil, fmt.Errorf("converter: failed to marshal document: %w", err)
	}
	return data, nil
}

// Marshal encodes the document in the named format.
func (r *ConversionResult) Marshal(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", FormatJSON:
		return r.JSON()
	case FormatYAML, "yml":
		return r.YAML()
	default:
		return nil, &oaserrors.ConfigError{Option: "format", Value: format, Message: "must be json or yaml"}
	}
}

// WriteResult writes the document to dir as swagger.json or swagger.yaml
// and returns the file path. The directory is created when missing.
//
// The file is written with 0600 permissions.
func WriteResult(result *ConversionResult, dir, format string) (string, error) {
	data, err := result.Marshal(format)
	if err != nil {
		return "", err
	}
	name := "swagger.json"
	if f := strings.ToLower(format); f == FormatYAML || f == "yml" {
		name = "swagger.yaml"
	}
	path, err := pathutil.OutputFile(dir, name)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, outputFileMode); err != nil {
		return "", fmt.Errorf("converter: failed to write output file: %w", err)
	}
	return path, nil
}

// Converter compiles annotation records into an OpenAPI 3.0.3 document
type Converter struct {
	// StrictMode causes conversion to fail on any warning or error issue
	StrictMode bool
	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool
	// Logger receives every issue as it is found. Defaults to NopLogger.
	Logger Logger
	// DescriptionFormatter is applied to every free-text description.
	// Defaults to stripping a surrounding <p> element.
	DescriptionFormatter func(string) string
}

// New creates a new Converter instance with default settings
func New() *Converter {
	return &Converter{
		StrictMode:  false,
		IncludeInfo: true,
	}
}

// Convert is a convenience function equivalent to New().Convert.
//
// Example:
//
//	records, _ := apidoc.ParseRecordsFile("api_data.json")
//	project, _ := apidoc.ParseProjectFile("api_project.json")
//	result, err := converter.Convert(records, project, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Convert(records []apidoc.Record, project *apidoc.Project, override map[string]any) (*ConversionResult, error) {
	return New().Convert(records, project, override)
}

// Convert compiles records into a document, using project for the info
// section and deep-merging override on top of the generated document.
// project and override may be nil. Neither the records nor the override
// are modified.
//
// A run-level error is returned when an annotation cannot be represented
// at all, such as a numeric range written as allowed values. Every other
// problem is reported as an issue.
func (c *Converter) Convert(records []apidoc.Record, project *apidoc.Project, override map[string]any) (*ConversionResult, error) {
	comp := newCompilation(c.logger(), c.DescriptionFormatter)

	prepared, rejected := apidoc.Prepare(records)
	for _, err := range rejected {
		issue := ConversionIssue{Path: "paths", Message: err.Error(), Severity: SeverityCritical}
		var convErr *oaserrors.ConversionError
		if errors.As(err, &convErr) {
			issue.Operation = convErr.Operation
			issue.Message = convErr.Message
		}
		comp.add(issue)
	}

	doc, err := comp.assemble(prepared, project)
	if err != nil {
		return nil, err
	}

	out, err := comp.finish(doc, override)
	if err != nil {
		return nil, err
	}

	result := &ConversionResult{
		Document:    out,
		OpenAPI:     doc,
		Issues:      comp.issues,
		SchemaCount: comp.registry.Len(),
	}
	if paths, ok := out["paths"].(map[string]any); ok {
		result.PathCount = len(paths)
	}
	if result.Issues == nil {
		result.Issues = make([]ConversionIssue, 0)
	}

	comp.logger.Debug("schemas registered", "names", comp.registry.Names())
	c.updateCounts(result)
	result.Success = result.CriticalCount == 0

	// In strict mode, fail on any issues
	if c.StrictMode && (result.CriticalCount > 0 || result.ErrorCount > 0 || result.WarningCount > 0) {
		return result, fmt.Errorf("conversion failed in strict mode: %d critical issue(s), %d error(s), %d warning(s)",
			result.CriticalCount, result.ErrorCount, result.WarningCount)
	}

	// Filter info messages if not included
	if !c.IncludeInfo {
		filtered := make([]ConversionIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
		result.InfoCount = 0
	}

	return result, nil
}

func (c *Converter) logger() Logger {
	if c.Logger == nil {
		return NopLogger{}
	}
	return c.Logger
}

// updateCounts updates the issue counts in the result
func (c *Converter) updateCounts(result *ConversionResult) {
	result.InfoCount = 0
	result.WarningCount = 0
	result.ErrorCount = 0
	result.CriticalCount = 0

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		case SeverityError:
			result.ErrorCount++
		case SeverityCritical:
			result.CriticalCount++
		}
	}
}
