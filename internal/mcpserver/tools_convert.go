package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ALE-Rainbow/apidoc-swagger/converter"
)

type convertInput struct {
	Records     documentInput `json:"records"                jsonschema:"The apidoc records document (api_data.json)"`
	Project     documentInput `json:"project,omitempty"      jsonschema:"The apidoc project metadata (api_project.json)"`
	Override    documentInput `json:"override,omitempty"     jsonschema:"Document deep-merged over the generated one (tags\\, x-tagGroups\\, x-servers)"`
	Format      string        `json:"format,omitempty"       jsonschema:"Output format: json or yaml (default from APIDOC_SWAGGER_FORMAT)"`
	Strict      bool          `json:"strict,omitempty"       jsonschema:"Fail the conversion on any warning or error issue"`
	Output      string        `json:"output,omitempty"       jsonschema:"Directory to write swagger.json or swagger.yaml into. If omitted the document is returned inline."`
	MinSeverity string        `json:"min_severity,omitempty" jsonschema:"Only list issues at or above this severity (info\\, warning\\, error\\, critical)"`
	Limit       int           `json:"limit,omitempty"        jsonschema:"Maximum number of issues to return (default 100)"`
	Offset      int           `json:"offset,omitempty"       jsonschema:"Skip the first N issues (for pagination)"`
}

type convertIssue struct {
	Severity  string `json:"severity"`
	Path      string `json:"path"`
	Operation string `json:"operation,omitempty"`
	Message   string `json:"message"`
}

type convertOutput struct {
	Success      bool           `json:"success"`
	IssueCount   int            `json:"issue_count"`
	ErrorCount   int            `json:"error_count"`
	WarningCount int            `json:"warning_count"`
	Issues       []convertIssue `json:"issues,omitempty"`
	PathCount    int            `json:"path_count"`
	SchemaCount  int            `json:"schema_count"`
	WrittenTo    string         `json:"written_to,omitempty"`
	Document     string         `json:"document,omitempty"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	format := strings.ToLower(input.Format)
	if format == "" {
		format = cfg.Format
	}
	if !validFormats[format] {
		return errResult(fmt.Errorf("invalid format %q; valid values: json, yaml", input.Format)), convertOutput{}, nil
	}
	minSeverity, err := parseSeverity(input.MinSeverity)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	set, err := input.Records.resolveRecords()
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}
	project, err := input.Project.resolveProject()
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}
	override, err := input.Override.resolveOverride()
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	c := converter.New()
	c.StrictMode = input.Strict || cfg.Strict
	c.IncludeInfo = cfg.IncludeInfo
	result, err := c.Convert(set.Records, project, override)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	var issues []converter.ConversionIssue
	for _, issue := range result.Issues {
		if issue.Severity.AtLeast(minSeverity) {
			issues = append(issues, issue)
		}
	}
	page := paginate(issues, input.Offset, input.Limit)

	output := convertOutput{
		Success:      result.Success,
		IssueCount:   len(issues),
		ErrorCount:   result.ErrorCount + result.CriticalCount,
		WarningCount: result.WarningCount,
		PathCount:    result.PathCount,
		SchemaCount:  result.SchemaCount,
	}
	output.Issues = makeSlice[convertIssue](len(page))
	for _, issue := range page {
		output.Issues = append(output.Issues, convertIssue{
			Severity:  issue.Severity.String(),
			Path:      issue.Path,
			Operation: issue.Operation,
			Message:   issue.Message,
		})
	}

	if input.Output != "" {
		written, err := converter.WriteResult(result, input.Output, format)
		if err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), convertOutput{}, nil
		}
		output.WrittenTo = written
		return nil, output, nil
	}

	data, err := result.Marshal(format)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}
	output.Document = string(data)
	return nil, output, nil
}

// parseSeverity reads a min_severity value. Empty means info.
func parseSeverity(s string) (converter.Severity, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return converter.SeverityInfo, nil
	case "warning", "warn":
		return converter.SeverityWarning, nil
	case "error":
		return converter.SeverityError, nil
	case "critical":
		return converter.SeverityCritical, nil
	}
	return 0, fmt.Errorf("invalid min_severity %q; valid values: info, warning, error, critical", s)
}
