package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ALE-Rainbow/apidoc-swagger/apidoc"
	"github.com/ALE-Rainbow/apidoc-swagger/internal/maputil"
	"github.com/ALE-Rainbow/apidoc-swagger/internal/testutil"
)

// TestCreateUserOperation walks the operation built from a record that
// uses every section.
func TestCreateUserOperation(t *testing.T) {
	result := convert(t, testutil.NewCreateUserRecord())
	post := operation(t, result, "/users", "post")

	assert.Equal(t, "createUser", post["operationId"])
	assert.Equal(t, "Create a user", post["summary"])
	assert.Equal(t, "Creates a user.", post["description"])

	t.Run("parameters", func(t *testing.T) {
		params, ok := post["parameters"].([]any)
		require.True(t, ok)
		require.Len(t, params, 2)

		header := params[0].(map[string]any)
		assert.Equal(t, "X-Request-Id", header["name"])
		assert.Equal(t, "header", header["in"])
		assert.NotContains(t, header, "required")

		query := params[1].(map[string]any)
		assert.Equal(t, "notify", query["name"])
		assert.Equal(t, "query", query["in"])
		assert.Equal(t, map[string]any{"type": "boolean", "default": false}, query["schema"])
	})

	t.Run("request body", func(t *testing.T) {
		body := object(t, post, "requestBody")
		assert.Equal(t, true, body["required"])
		schema := object(t, body, "content", "application/json", "schema")
		assert.Equal(t, "#/components/schemas/createUser", schema["$ref"])

		s := componentSchema(t, result, "createUser")
		assert.Equal(t, []any{"name"}, s["required"])

		name := object(t, s, "properties", "name")
		assert.Equal(t, int64(1), name["minLength"])
		assert.Equal(t, int64(64), name["maxLength"])

		role := object(t, s, "properties", "role")
		assert.Equal(t, []any{"admin", "user"}, role["enum"])
		assert.Equal(t, "user", role["default"])

		address := object(t, s, "properties", "address")
		assert.Equal(t, "object", address["type"])
		assert.Equal(t, []any{"city"}, address["required"])
		assert.Equal(t, "string", object(t, address, "properties", "city")["type"])
	})

	t.Run("success response", func(t *testing.T) {
		created := object(t, post, "responses", "201")
		assert.Equal(t, "successful operation", created["description"])

		media := object(t, created, "content", "application/json")
		assert.Equal(t, "#/components/schemas/createUser201Success", object(t, media, "schema")["$ref"])
		example := object(t, media, "examples", "successResponse")
		assert.Equal(t, "Success-Response:", example["summary"])
		assert.Equal(t, map[string]any{"id": "42"}, example["value"])

		location := object(t, created, "headers", "Location")
		assert.Equal(t, "User URL", location["description"])
		assert.Equal(t, "string", object(t, location, "schema")["type"])

		s := componentSchema(t, result, "createUser201Success")
		assert.Contains(t, object(t, s, "properties"), "id")
		assert.NotContains(t, object(t, s, "properties"), "Location")
	})

	t.Run("error responses", func(t *testing.T) {
		bad := object(t, post, "responses", "400")
		assert.Equal(t, "Invalid body", bad["description"])
		assert.NotContains(t, bad, "content")

		conflict := object(t, post, "responses", "409")
		assert.Equal(t, "Name already taken", conflict["description"])
		example := object(t, conflict, "content", "application/json", "examples", "409Conflict")
		assert.Equal(t, map[string]any{"error": "exists"}, example["value"])
	})

	t.Run("security", func(t *testing.T) {
		assert.Equal(t, []any{map[string]any{"Bearer": []any{}}}, post["security"])
		bearer := object(t, result.Document, "components", "securitySchemes", "Bearer")
		assert.Equal(t, map[string]any{
			"type":        "http",
			"scheme":      "bearer",
			"description": "Access token",
		}, bearer)
	})

	t.Run("permissions", func(t *testing.T) {
		assert.Equal(t, []any{map[string]any{"name": "admin"}}, post["x-permissions"])
		admin := object(t, result.Document, "x-permissions", "admin")
		assert.Equal(t, map[string]any{
			"name":        "admin",
			"title":       "Administrators",
			"description": "Full access",
		}, admin)
	})
}

// TestMultipleSuccessGroups verifies several success groups become a oneOf
// served under 200.
func TestMultipleSuccessGroups(t *testing.T) {
	rec := testutil.NewGetUserRecord()
	rec.Success.Fields = apidoc.FieldGroups{
		{Name: "Success 200", Fields: []apidoc.Field{{Field: "name", Type: "String"}}},
		{Name: "Success 202", Fields: []apidoc.Field{{Field: "jobId", Type: "String"}}},
	}

	result := convert(t, rec)
	get := operation(t, result, "/users/{id}", "get")

	responses := object(t, get, "responses")
	assert.Len(t, responses, 1)
	schema := object(t, responses, "200", "content", "application/json", "schema")
	assert.Equal(t, "#/components/schemas/getUsersIdSuccess", schema["$ref"])

	union := componentSchema(t, result, "getUsersIdSuccess")
	assert.Equal(t, []any{
		map[string]any{"$ref": "#/components/schemas/getUsersId200Success"},
		map[string]any{"$ref": "#/components/schemas/getUsersId202Success"},
	}, union["oneOf"])
	assert.Contains(t, object(t, componentSchema(t, result, "getUsersId200Success"), "properties"), "name")
	assert.Contains(t, object(t, componentSchema(t, result, "getUsersId202Success"), "properties"), "jobId")
}

// TestSuccessStatus covers status code and schema label derivation.
func TestSuccessStatus(t *testing.T) {
	tests := []struct {
		key       string
		multi     bool
		wantCode  string
		wantLabel string
	}{
		{"Success 200", false, "200", ""},
		{"Success 200", true, "200", "200"},
		{"Success 201", false, "201", "201"},
		{"success 204", false, "204", "204"},
		{"Created", false, "200", "Created"},
		{"Created 201", true, "201", "Created 201"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			code, label := successStatus(tt.key, tt.multi)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}

// TestBinarySuccess verifies a binary payload is inlined with an
// octet-stream media type.
func TestBinarySuccess(t *testing.T) {
	rec := testutil.NewGetUserRecord()
	rec.Success.Fields = apidoc.FieldGroups{
		{Name: "Success 200", Fields: []apidoc.Field{{Field: "file", Type: "Binary", Description: "Avatar"}}},
	}

	result := convert(t, rec)
	get := operation(t, result, "/users/{id}", "get")
	schema := object(t, get, "responses", "200", "content", "application/octet-stream", "schema")
	assert.Equal(t, map[string]any{"type": "string", "format": "binary"}, schema)

	registered := componentSchema(t, result, "getUsersIdSuccess")
	assert.Equal(t, "binary", registered["format"])
	assert.Equal(t, "Avatar", registered["description"])
}

// TestPrimitiveSuccessMediaType covers the media type choice for primitive
// payloads without a Content-Type header.
func TestPrimitiveSuccessMediaType(t *testing.T) {
	rec := testutil.NewGetUserRecord()
	rec.Success.Fields = apidoc.FieldGroups{
		{Name: "Success 200", Fields: []apidoc.Field{{Field: "file", Type: "Binary"}}},
	}
	rec.Success.Examples = []apidoc.Example{{Title: "CSV export", Type: "csv", Content: "a,b\n1,2"}}

	result := convert(t, rec)
	media := object(t, operation(t, result, "/users/{id}", "get"), "responses", "200", "content", "text/csv")
	assert.Contains(t, media, "schema")
	assert.Equal(t, "a,b\n1,2", object(t, media, "examples", "csvExport")["value"])
}

// TestResponseContentTypeHeader verifies a Content-Type response header
// sets the success media types and is not repeated as a header.
func TestResponseContentTypeHeader(t *testing.T) {
	rec := testutil.NewGetUserRecord()
	rec.Success.Fields[0].Fields = append(rec.Success.Fields[0].Fields, apidoc.Field{
		Field: "Content-Type", Group: "HeadersResponse", Type: "String",
		AllowedValues: []string{"application/json", "application/xml"},
	})

	result := convert(t, rec)
	ok200 := object(t, operation(t, result, "/users/{id}", "get"), "responses", "200")
	content := object(t, ok200, "content")
	assert.Contains(t, content, "application/json")
	assert.Contains(t, content, "application/xml")
	assert.NotContains(t, ok200, "headers")
}

// TestRequestContentTypeHeader verifies request media types come from the
// Content-Type header description when no allowed values are given.
func TestRequestContentTypeHeader(t *testing.T) {
	rec := testutil.NewCreateUserRecord()
	rec.Header.Fields[0].Fields[0] = apidoc.Field{
		Field: "Content-Type", Group: "Header", Type: "String", Description: "<p>multipart/form-data</p>",
	}

	result := convert(t, rec)
	body := object(t, operation(t, result, "/users", "post"), "requestBody", "content")
	assert.Equal(t, []string{"multipart/form-data"}, maputil.SortedKeys(body))
}

// TestParameterOrder verifies parameters come out as path, header, cookie,
// query, form whatever the declaration order.
func TestParameterOrder(t *testing.T) {
	rec := apidoc.Record{
		Type: "get", URL: "/orgs/:org/files", Group: "files", Name: "ListFiles", Description: "Lists files.",
		Parameter: &apidoc.Section{Fields: apidoc.FieldGroups{
			{Name: "Parameter", Fields: []apidoc.Field{
				{Field: "upload", Group: "FormParameters", Type: "String"},
				{Field: "page", Group: "UrlQueryParameters", Type: "Integer", Size: "1-100"},
				{Field: "session", Group: "CookieParameters", Type: "String"},
				{Field: "X-Trace", Group: "HeaderParameters", Type: "String"},
				{Field: "org", Group: "UrlParameters", Type: "String"},
			}},
		}},
	}

	result := convert(t, rec)
	params := operation(t, result, "/orgs/{org}/files", "get")["parameters"].([]any)
	var got []string
	for _, p := range params {
		m := p.(map[string]any)
		got = append(got, m["in"].(string)+":"+m["name"].(string))
	}
	assert.Equal(t, []string{"path:org", "header:X-Trace", "cookie:session", "query:page", "form:upload"}, got)

	page := params[3].(map[string]any)
	assert.Equal(t, map[string]any{
		"type": "integer", "format": "int32", "minimum": int64(1), "maximum": int64(100),
	}, page["schema"])
}

// TestFileParameter verifies a path parameter typed file is sent as form data.
func TestFileParameter(t *testing.T) {
	rec := apidoc.Record{
		Type: "put", URL: "/files/:file", Group: "files", Description: "Uploads a file.",
		Parameter: &apidoc.Section{Fields: apidoc.FieldGroups{
			{Name: "UrlParameters", Fields: []apidoc.Field{{Field: "file", Type: "file"}}},
		}},
	}

	result := convert(t, rec)
	put := operation(t, result, "/files/{file}", "put")
	assert.Equal(t, "putFilesFile", put["operationId"])
	param := put["parameters"].([]any)[0].(map[string]any)
	assert.Equal(t, "formData", param["in"])
}

// TestArrayParameter verifies an array typed query field becomes an array
// schema whose items carry the element type and allowed values.
func TestArrayParameter(t *testing.T) {
	rec := apidoc.Record{
		Type: "get", URL: "/users", Group: "users", Name: "ListUsers", Description: "Lists users.",
		Parameter: &apidoc.Section{Fields: apidoc.FieldGroups{
			{Name: "UrlQueryParameters", Fields: []apidoc.Field{
				{Field: "roles", Group: "UrlQueryParameters", Type: "String[]", Optional: true, AllowedValues: []string{"admin", "guest"}},
				{Field: "ids", Group: "UrlQueryParameters", Type: "Integer[]", Optional: true},
			}},
		}},
	}

	result := convert(t, rec)
	params := operation(t, result, "/users", "get")["parameters"].([]any)
	require.Len(t, params, 2)

	assert.Equal(t, map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string", "enum": []any{"admin", "guest"}},
	}, params[0].(map[string]any)["schema"])
	assert.Equal(t, map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "integer", "format": "int32"},
	}, params[1].(map[string]any)["schema"])
}

// TestGenericFieldsWithoutBody verifies generic parameter fields are
// reported when no body parameter gives them a request body.
func TestGenericFieldsWithoutBody(t *testing.T) {
	rec := testutil.NewGetUserRecord()
	rec.Parameter.Fields = append(rec.Parameter.Fields, apidoc.FieldGroup{
		Name: "Parameter",
		Fields: []apidoc.Field{
			{Field: "verbose", Group: "Parameter", Type: "Boolean"},
			{Field: "lang", Group: "Parameter", Type: "String"},
		},
	})

	result := convert(t, rec)
	get := operation(t, result, "/users/{id}", "get")
	assert.NotContains(t, get, "requestBody")
	assert.Len(t, get["parameters"].([]any), 1)

	infos := issueMessages(result, SeverityInfo)
	require.Len(t, infos, 1)
	assert.Contains(t, infos[0], "verbose, lang")
	assert.True(t, result.Success)
}

// TestBasicSecurity covers basic and API key header schemes.
func TestBasicSecurity(t *testing.T) {
	rec := testutil.NewGetUserRecord()
	rec.Header = &apidoc.Section{Fields: apidoc.FieldGroups{
		{Name: "Security", Fields: []apidoc.Field{
			{Field: "Authorization", Group: "BasicAuthorization", Type: "basic", Description: "Login"},
			{Field: "x-api-key", Group: "BasicAuthorization", Type: "String", Description: "Key"},
		}},
	}}

	result := convert(t, rec)
	get := operation(t, result, "/users/{id}", "get")
	assert.Equal(t, []any{
		map[string]any{"Basic": []any{}},
		map[string]any{"XApiKey": []any{}},
	}, get["security"])

	schemes := object(t, result.Document, "components", "securitySchemes")
	assert.Equal(t, map[string]any{"type": "http", "scheme": "basic", "description": "Login"}, schemes["Basic"])
	assert.Equal(t, map[string]any{"type": "apiKey", "name": "x-api-key", "in": "header", "description": "Key"}, schemes["XApiKey"])
}

// TestSecuritySchemeRegisteredOnce verifies the first declaration of a key wins.
func TestSecuritySchemeRegisteredOnce(t *testing.T) {
	first := testutil.NewCreateUserRecord()
	second := testutil.NewGetUserRecord()
	second.Header = &apidoc.Section{Fields: apidoc.FieldGroups{
		{Name: "Security", Fields: []apidoc.Field{
			{Field: "Authorization", Group: "BearerAuthorization", Type: "String", Description: "Other text"},
		}},
	}}

	result := convert(t, first, second)
	bearer := object(t, result.Document, "components", "securitySchemes", "Bearer")
	assert.Equal(t, "Access token", bearer["description"])
	assert.Equal(t, []any{map[string]any{"Bearer": []any{}}}, operation(t, result, "/users/{id}", "get")["security"])
}

// TestPermissionNoneSkipped verifies the "none" permission is ignored.
func TestPermissionNoneSkipped(t *testing.T) {
	rec := testutil.NewGetUserRecord()
	rec.Permission = []apidoc.Permission{{Name: "none"}}

	result := convert(t, rec)
	assert.NotContains(t, operation(t, result, "/users/{id}", "get"), "x-permissions")
	assert.NotContains(t, result.Document, "x-permissions")
}

// TestDeprecated verifies the deprecation notice replaces the description.
func TestDeprecated(t *testing.T) {
	rec := testutil.NewGetUserRecord()
	rec.Deprecated = &apidoc.Deprecated{Content: "<p>Use /v2/users instead.</p>"}

	result := convert(t, rec)
	get := operation(t, result, "/users/{id}", "get")
	assert.Equal(t, true, get["deprecated"])
	assert.Equal(t, "Use /v2/users instead.", get["description"])
}

// TestMissingDescription verifies the advisory for an empty description.
func TestMissingDescription(t *testing.T) {
	rec := testutil.NewGetUserRecord()
	rec.Description = "  "

	result := convert(t, rec)
	warnings := issueMessages(result, SeverityWarning)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "getUsersId has no description")
}

// TestErrorExamplesWithoutCode verifies error examples that cannot be
// placed are reported and skipped.
func TestErrorExamplesWithoutCode(t *testing.T) {
	rec := testutil.NewCreateUserRecord()
	rec.Error.Examples = []apidoc.Example{
		{Title: "", Type: "json", Content: `{}`},
		{Title: "Conflict", Type: "json", Content: `{}`},
		{Title: "500 Boom", Type: "json", Content: `{}`},
	}

	result := convert(t, rec)
	assert.Len(t, issueMessages(result, SeverityWarning), 2)
	assert.Len(t, issueMessages(result, SeverityInfo), 1)

	responses := object(t, operation(t, result, "/users", "post"), "responses")
	assert.NotContains(t, responses, "500")
	assert.NotContains(t, object(t, responses, "409"), "content")
}

// TestInvalidJSONExample verifies an unparsable example is reported as an
// error and left out.
func TestInvalidJSONExample(t *testing.T) {
	rec := testutil.NewGetUserRecord()
	rec.Success.Examples = []apidoc.Example{{Title: "Broken", Type: "json", Content: "{\n  \"name\": \n}"}}

	result := convert(t, rec)
	errs := issueMessages(result, SeverityError)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], `example "Broken" skipped`)
	assert.True(t, result.Success, "a skipped example does not fail the run")

	media := object(t, operation(t, result, "/users/{id}", "get"), "responses", "200", "content", "application/json")
	assert.NotContains(t, media, "examples")
}

// TestUndeclaredTag verifies tag checks against the override.
func TestUndeclaredTag(t *testing.T) {
	rec := testutil.NewGetUserRecord()
	rec.Group = "admin_tools"

	override := map[string]any{
		"tags": []any{
			map[string]any{"name": "Users"},
			map[string]any{"name": "Billing"},
		},
		"x-tagGroups": []any{
			map[string]any{"name": "Accounts", "tags": []any{"Users"}},
		},
	}
	result, err := New().Convert([]apidoc.Record{rec}, nil, override)
	require.NoError(t, err)

	assert.Equal(t, []any{"Admin Tools"}, operation(t, result, "/users/{id}", "get")["tags"])
	errs := issueMessages(result, SeverityError)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], `"Admin Tools"`)
	assert.True(t, result.Success, "an undeclared tag does not fail the run")

	warnings := issueMessages(result, SeverityWarning)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `"Billing"`)

	tags := result.Document["tags"].([]any)
	assert.Equal(t, "Billing", tags[0].(map[string]any)["name"])
	assert.Equal(t, "Users", tags[1].(map[string]any)["name"])
}

// TestOverrideDeepMerge verifies objects merge and scalars are replaced.
func TestOverrideDeepMerge(t *testing.T) {
	override := testutil.NewOverride()
	override["info"] = map[string]any{
		"version": "2.0.0",
		"contact": map[string]any{"email": "api@example.com"},
	}

	result, err := New().Convert([]apidoc.Record{testutil.NewGetUserRecord()}, testutil.NewProject(), override)
	require.NoError(t, err)

	info := object(t, result.Document, "info")
	assert.Equal(t, "User API", info["title"])
	assert.Equal(t, "2.0.0", info["version"])
	assert.Equal(t, "api@example.com", object(t, info, "contact")["email"])
}

// TestPathTemplates verifies URL placeholder forms share one path item.
func TestPathTemplates(t *testing.T) {
	get := testutil.NewGetUserRecord()
	del := testutil.NewGetUserRecord()
	del.Type = "del"
	del.URL = "/users/{id}"
	del.Name = "DeleteUser"

	result := convert(t, get, del)
	item := object(t, result.Document, "paths", "/users/{id}")
	assert.Contains(t, item, "get")
	assert.Contains(t, item, "delete")
	assert.Equal(t, 1, result.PathCount)
}
