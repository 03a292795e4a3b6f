package issues

import (
	"testing"

	"github.com/ALE-Rainbow/apidoc-swagger/internal/severity"
	"github.com/stretchr/testify/assert"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name        string
		issue       Issue
		contains    []string
		notContains []string
	}{
		{
			name: "error severity with basic fields",
			issue: Issue{
				Path:     "tags",
				Message:  "tag Users is used but not declared",
				Severity: severity.SeverityError,
			},
			contains:    []string{"✗", "tags", "tag Users is used but not declared"},
			notContains: []string{"Field:", "Context:"},
		},
		{
			name: "critical severity",
			issue: Issue{
				Path:     "paths./users.get",
				Message:  "numeric range in allowed values",
				Severity: severity.SeverityCritical,
			},
			contains: []string{"✗", "numeric range"},
		},
		{
			name: "warning with operation",
			issue: Issue{
				Path:      "paths./users/{id}.get",
				Message:   "no description",
				Severity:  severity.SeverityWarning,
				Operation: "GET /users/:id",
			},
			contains: []string{"⚠", "paths./users/{id}.get (GET /users/:id)", "no description"},
		},
		{
			name: "info with field and context",
			issue: Issue{
				Path:     "components.schemas.getUserSuccess",
				Message:  "reused synthesized schema",
				Severity: severity.SeverityInfo,
				Field:    "profile.tags",
				Context:  "line 3: unexpected token",
			},
			contains: []string{"ℹ", "Field: profile.tags", "Context: line 3: unexpected token"},
		},
		{
			name:     "unknown severity and empty path",
			issue:    Issue{Message: "odd", Severity: severity.Severity(99)},
			contains: []string{"?", "document: odd"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.issue.String()
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}
