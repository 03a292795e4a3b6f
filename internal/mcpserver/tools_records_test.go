package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ALE-Rainbow/apidoc-swagger/apidoc"
	"github.com/ALE-Rainbow/apidoc-swagger/internal/testutil"
)

func sampleRecords(t *testing.T) documentInput {
	t.Helper()
	remove := testutil.NewGetUserRecord()
	remove.Type = "del"
	remove.Name = "DeleteUser"
	remove.Deprecated = &apidoc.Deprecated{Content: "gone"}

	status := apidoc.Record{Type: "get", URL: "/status", Group: "ops", Name: "Status"}
	return documentInput{Content: recordsContent(t,
		testutil.NewGetUserRecord(), testutil.NewCreateUserRecord(), remove, status)}
}

func TestListRecords_All(t *testing.T) {
	_, output, err := handleListRecords(context.Background(), &mcp.CallToolRequest{}, listRecordsInput{Records: sampleRecords(t)})
	require.NoError(t, err)

	assert.Equal(t, 4, output.Total)
	assert.Equal(t, 4, output.Matched)
	require.Len(t, output.Summaries, 4)
	assert.Equal(t, recordSummary{
		Method: "GET", URL: "/users/:id", Name: "GetUsersId", Group: "users", Title: "Read a user",
	}, output.Summaries[0])
	assert.Equal(t, "DELETE", output.Summaries[2].Method)
	assert.True(t, output.Summaries[2].Deprecated)
}

func TestListRecords_Filters(t *testing.T) {
	tests := []struct {
		name  string
		input listRecordsInput
		want  []string
	}{
		{"by group", listRecordsInput{Group: "USERS"}, []string{"GetUsersId", "CreateUser", "DeleteUser"}},
		{"by method", listRecordsInput{Method: "delete"}, []string{"DeleteUser"}},
		{"by del alias", listRecordsInput{Method: "del"}, []string{"DeleteUser"}},
		{"by url glob", listRecordsInput{URL: "/users/*"}, []string{"GetUsersId", "DeleteUser"}},
		{"by exact url", listRecordsInput{URL: "/status"}, []string{"Status"}},
		{"paginated", listRecordsInput{Offset: 1, Limit: 2}, []string{"CreateUser", "DeleteUser"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.Records = sampleRecords(t)
			_, output, err := handleListRecords(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)

			var names []string
			for _, s := range output.Summaries {
				names = append(names, s.Name)
			}
			assert.Equal(t, tt.want, names)
			assert.Equal(t, len(tt.want), output.Returned)
		})
	}
}

func TestListRecords_GroupBy(t *testing.T) {
	_, output, err := handleListRecords(context.Background(), &mcp.CallToolRequest{},
		listRecordsInput{Records: sampleRecords(t), GroupBy: "method"})
	require.NoError(t, err)
	assert.Empty(t, output.Summaries)
	assert.Equal(t, []groupCount{{"GET", 2}, {"DELETE", 1}, {"POST", 1}}, output.Groups)

	_, output, err = handleListRecords(context.Background(), &mcp.CallToolRequest{},
		listRecordsInput{Records: sampleRecords(t), GroupBy: "group"})
	require.NoError(t, err)
	assert.Equal(t, []groupCount{{"users", 3}, {"ops", 1}}, output.Groups)
}

func TestListRecords_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input listRecordsInput
	}{
		{"bad group_by", listRecordsInput{Records: sampleRecords(t), GroupBy: "tag"}},
		{"bad glob", listRecordsInput{Records: sampleRecords(t), URL: "/users/["}},
		{"no records", listRecordsInput{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleListRecords(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}
