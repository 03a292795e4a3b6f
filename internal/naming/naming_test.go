package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "single lowercase letter", input: "a", want: "A"},
		{name: "snake_case", input: "user_profile", want: "UserProfile"},
		{name: "header name", input: "x-api-key", want: "XApiKey"},
		{name: "header name mixed case", input: "X-Api-Key", want: "XApiKey"},
		{name: "dot separator", input: "com.example.api", want: "ComExampleApi"},
		{name: "path-like", input: "/api/v1/users", want: "ApiV1Users"},
		{name: "spaces", input: "get user", want: "GetUser"},
		{name: "already PascalCase", input: "UserProfile", want: "UserProfile"},
		{name: "all caps kept", input: "API", want: "API"},
		{name: "unicode", input: "über_user", want: "ÜberUser"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPascalCase(tt.input))
		})
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "spaced words", input: "get user", want: "getUser"},
		{name: "PascalCase", input: "GetUser", want: "getUser"},
		{name: "already camel", input: "getUserSuccess", want: "getUserSuccess"},
		{name: "snake_case", input: "get_user_by_id", want: "getUserById"},
		{name: "acronym", input: "GetUserByID", want: "getUserById"},
		{name: "acronym followed by word", input: "HTTPServer", want: "httpServer"},
		{name: "digits split words", input: "getUser400Success", want: "getUser400Success"},
		{name: "root plus property path", input: "getUserSuccess profile.addresses", want: "getUserSuccessProfileAddresses"},
		{name: "all caps", input: "API", want: "api"},
		{name: "only separators", input: "--__", want: ""},
		{name: "greek final sigma", input: "ΟΔΟΣ", want: "οδος"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToCamelCase(tt.input))
		})
	}
}

func TestToTagTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "single word", input: "users", want: "Users"},
		{name: "underscores", input: "user_management", want: "User Management"},
		{name: "upper-case words lowered", input: "ADMIN tools", want: "Admin Tools"},
		{name: "hyphen stays inside word", input: "my-group", want: "My-group"},
		{name: "keeps spacing", input: "a  b", want: "A  B"},
		{name: "empty", input: "", want: ""},
		{name: "greek final sigma", input: "ΟΔΟΣ ΚΑΙ", want: "Οδος Και"},
		{name: "digraph title case", input: "ǆungla", want: "ǅungla"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToTagTitle(tt.input))
		})
	}
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"get", "User", "By", "ID"}, Words("getUserByID"))
	assert.Equal(t, []string{"HTTP", "Server"}, Words("HTTPServer"))
	assert.Equal(t, []string{"Success", "200"}, Words("Success 200"))
	assert.Nil(t, Words(" . "))
}
