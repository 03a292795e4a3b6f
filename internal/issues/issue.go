// Package issues provides the issue type reported by the compiler.
package issues

import (
	"fmt"

	"github.com/ALE-Rainbow/apidoc-swagger/internal/severity"
)

// Issue represents a single problem found while compiling annotation records.
type Issue struct {
	// Path locates the problem in the output document (e.g., "paths./users/{id}.get")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Field is the annotation field the issue relates to (optional)
	Field string
	// Value is the problematic value (optional)
	Value any
	// Context provides additional information, such as a parser diagnostic (optional)
	Context string
	// Operation identifies the annotated verb, formatted as "METHOD url" (optional)
	Operation string
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	location := i.Path
	if i.Operation != "" {
		location = fmt.Sprintf("%s (%s)", i.Path, i.Operation)
	}
	if location == "" {
		location = "document"
	}

	result := fmt.Sprintf("%s %s: %s", symbol, location, i.Message)
	if i.Field != "" {
		result += fmt.Sprintf("\n    Field: %s", i.Field)
	}
	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}

	return result
}
