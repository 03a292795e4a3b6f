// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/ALE-Rainbow/apidoc-swagger/apidoc"
)

// NewGetUserRecord returns the canonical "GET /users/:id" record: one path
// parameter and a one-field success body.
func NewGetUserRecord() apidoc.Record {
	return apidoc.Record{
		Type:        "get",
		URL:         "/users/:id",
		Group:       "users",
		Name:        "GetUsersId",
		Title:       "Read a user",
		Description: "Returns one user.",
		Parameter: &apidoc.Section{Fields: apidoc.FieldGroups{
			{Name: "UrlParameters", Fields: []apidoc.Field{
				{Field: "id", Group: "UrlParameters", Type: "String", Description: "User id"},
			}},
		}},
		Success: &apidoc.Section{Fields: apidoc.FieldGroups{
			{Name: "Success 200", Fields: []apidoc.Field{
				{Field: "name", Group: "Success 200", Type: "String", Description: "User name"},
			}},
		}},
	}
}

// NewCreateUserRecord returns a "POST /users" record with a body, headers,
// bearer security, a permission and error responses with an example.
func NewCreateUserRecord() apidoc.Record {
	return apidoc.Record{
		Type:        "post",
		URL:         "/users",
		Group:       "users",
		Name:        "CreateUser",
		Title:       "<p>Create a user</p>",
		Description: "<p>Creates a user.</p>",
		Header: &apidoc.Section{Fields: apidoc.FieldGroups{
			{Name: "Header", Fields: []apidoc.Field{
				{Field: "Content-Type", Group: "Header", Type: "String", AllowedValues: []string{`"application/json"`}},
				{Field: "X-Request-Id", Group: "Header", Type: "String", Optional: true, Description: "Correlation id"},
			}},
			{Name: "Security", Fields: []apidoc.Field{
				{Field: "Authorization", Group: "BearerAuthorization", Type: "String", Description: "Access token"},
			}},
		}},
		Parameter: &apidoc.Section{Fields: apidoc.FieldGroups{
			{Name: "Body Parameters", Fields: []apidoc.Field{
				{Field: "name", Group: "Body Parameters", Type: "String", Size: "1..64", Description: "User name"},
				{Field: "role", Group: "Body Parameters", Type: "String", Optional: true, AllowedValues: []string{"admin", "user"}, DefaultValue: "user"},
				{Field: "address", Group: "Body Parameters", Type: "Object", Optional: true, Description: "Postal address"},
				{Field: "address.city", Group: "Body Parameters", Type: "String", Description: "City"},
			}},
			{Name: "UrlQueryParameters", Fields: []apidoc.Field{
				{Field: "notify", Group: "UrlQueryParameters", Type: "Boolean", Optional: true, DefaultValue: "false"},
			}},
		}},
		Success: &apidoc.Section{
			Fields: apidoc.FieldGroups{
				{Name: "Success 201", Fields: []apidoc.Field{
					{Field: "id", Group: "Success 201", Type: "String", Description: "New user id"},
					{Field: "Location", Group: "HeadersResponse", Type: "String", Description: "User URL"},
				}},
			},
			Examples: []apidoc.Example{
				{Title: "Success-Response:", Type: "json", Content: "HTTP/1.1 201 Created\n{\n  \"id\": \"42\"\n}"},
			},
		},
		Error: &apidoc.Section{
			Fields: apidoc.FieldGroups{
				{Name: "Error 4xx", Fields: []apidoc.Field{
					{Field: "400", Group: "Error 4xx", Description: "Invalid body"},
					{Field: "409", Group: "Error 4xx", Description: "Name already taken"},
				}},
			},
			Examples: []apidoc.Example{
				{Title: "409 Conflict:", Type: "json", Content: "HTTP/1.1 409 Conflict\n{\"error\": \"exists\"}"},
			},
		},
		Permission: []apidoc.Permission{
			{Name: "admin", Title: "Administrators", Description: "<p>Full access</p>"},
		},
	}
}

// NewProject returns project metadata for the info section.
func NewProject() *apidoc.Project {
	return &apidoc.Project{
		Name:        "user-api",
		Title:       "User API",
		Version:     "1.2.0",
		Description: "Manages users",
	}
}

// NewOverride returns an override document declaring the "Users" tag in a
// tag group and a legacy x-servers list.
func NewOverride() map[string]any {
	return map[string]any{
		"x-servers": []any{
			map[string]any{"url": "https://api.example.com/v1"},
		},
		"tags": []any{
			map[string]any{"name": "Users", "description": "User management"},
		},
		"x-tagGroups": []any{
			map[string]any{"name": "Accounts", "tags": []any{"Users"}},
		},
	}
}

// WriteTempYAML marshals a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}

	return WriteTempFile(t, "test.yaml", data)
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}

	return WriteTempFile(t, "test.json", data)
}

// WriteTempFile writes data to name inside a fresh temporary directory.
func WriteTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}

	return tmpFile
}
