package mcpserver

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ALE-Rainbow/apidoc-swagger/apidoc"
)

type listRecordsInput struct {
	Records documentInput `json:"records"            jsonschema:"The apidoc records document (api_data.json)"`
	Group   string        `json:"group,omitempty"    jsonschema:"Filter by apidoc group (case-insensitive)"`
	Method  string        `json:"method,omitempty"   jsonschema:"Filter by HTTP method (get\\, post\\, put\\, del\\, etc.)"`
	URL     string        `json:"url,omitempty"      jsonschema:"Filter by url pattern (supports * glob per segment)"`
	GroupBy string        `json:"group_by,omitempty" jsonschema:"Group results and return counts: group or method"`
	Limit   int           `json:"limit,omitempty"    jsonschema:"Maximum number of results to return (default 100)"`
	Offset  int           `json:"offset,omitempty"   jsonschema:"Skip the first N results (for pagination)"`
}

type recordSummary struct {
	Method     string `json:"method"`
	URL        string `json:"url"`
	Name       string `json:"name,omitempty"`
	Group      string `json:"group,omitempty"`
	Title      string `json:"title,omitempty"`
	Deprecated bool   `json:"deprecated,omitempty"`
}

type listRecordsOutput struct {
	Total     int             `json:"total"`
	Matched   int             `json:"matched"`
	Returned  int             `json:"returned"`
	Summaries []recordSummary `json:"summaries,omitempty"`
	Groups    []groupCount    `json:"groups,omitempty"`
}

func handleListRecords(_ context.Context, _ *mcp.CallToolRequest, input listRecordsInput) (*mcp.CallToolResult, listRecordsOutput, error) {
	if err := validateGroupBy(input.GroupBy, []string{"group", "method"}); err != nil {
		return errResult(err), listRecordsOutput{}, nil
	}
	if err := validateGlobPattern(input.URL); err != nil {
		return errResult(err), listRecordsOutput{}, nil
	}

	set, err := input.Records.resolveRecords()
	if err != nil {
		return errResult(err), listRecordsOutput{}, nil
	}

	matched := filterRecords(set.Records, input)
	output := listRecordsOutput{
		Total:   len(set.Records),
		Matched: len(matched),
	}

	if input.GroupBy != "" {
		output.Groups = groupAndSort(matched, func(r apidoc.Record) []string {
			if strings.EqualFold(input.GroupBy, "method") {
				return []string{strings.ToUpper(normalizeMethod(r.Type))}
			}
			return []string{r.Group}
		})
		output.Returned = len(output.Groups)
		return nil, output, nil
	}

	returned := paginate(matched, input.Offset, input.Limit)
	output.Returned = len(returned)
	output.Summaries = makeSlice[recordSummary](len(returned))
	for _, r := range returned {
		output.Summaries = append(output.Summaries, recordSummary{
			Method:     strings.ToUpper(normalizeMethod(r.Type)),
			URL:        r.URL,
			Name:       r.Name,
			Group:      r.Group,
			Title:      r.Title,
			Deprecated: r.IsDeprecated(),
		})
	}
	return nil, output, nil
}

// filterRecords applies the group, method and url filters.
func filterRecords(records []apidoc.Record, input listRecordsInput) []apidoc.Record {
	var out []apidoc.Record
	for _, r := range records {
		if input.Group != "" && !strings.EqualFold(r.Group, input.Group) {
			continue
		}
		if input.Method != "" && normalizeMethod(r.Type) != normalizeMethod(input.Method) {
			continue
		}
		if input.URL != "" && !matchGlob(input.URL, r.URL) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// normalizeMethod lower-cases a method and spells out apidoc's "del".
func normalizeMethod(m string) string {
	m = strings.ToLower(strings.TrimSpace(m))
	if m == "del" {
		return "delete"
	}
	return m
}
