// Package severity provides the severity levels attached to issues reported
// while compiling annotation records into an OpenAPI document.
//
// Levels, from least to most serious:
//   - SeverityInfo: notes about choices the compiler made
//   - SeverityWarning: advisory findings; the document is emitted unchanged
//   - SeverityError: the offending example or tag is skipped or reported
//   - SeverityCritical: a whole record was dropped from the document
package severity

// Severity indicates how serious an issue is.
type Severity int

const (
	// SeverityError indicates a recoverable problem such as an unparsable example
	// or an undeclared tag. The run continues.
	SeverityError Severity = iota

	// SeverityWarning indicates an advisory finding, for example a verb without
	// a description.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	SeverityInfo

	// SeverityCritical indicates a record that could not be compiled at all,
	// such as one using an unsupported HTTP method.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// AtLeast reports whether s is at least as severe as other.
// Severity values are not declared in order, so comparisons go through rank.
func (s Severity) AtLeast(other Severity) bool {
	return s.rank() >= other.rank()
}

func (s Severity) rank() int {
	switch s {
	case SeverityInfo:
		return 0
	case SeverityWarning:
		return 1
	case SeverityError:
		return 2
	case SeverityCritical:
		return 3
	default:
		return -1
	}
}
