package pathutil

import (
	"regexp"
	"strings"
)

// PathParamRegex matches path template parameters like {paramName}.
// It captures the parameter name inside the braces.
var PathParamRegex = regexp.MustCompile(`\{([^}]+)\}`)

// expressParamRegex matches ":name", optionally followed by a custom
// pattern in parentheses and a single modifier (?, * or +).
var expressParamRegex = regexp.MustCompile(`:([A-Za-z0-9_]+)(\([^)]*\))?[?*+]?`)

// PathTemplate is an OpenAPI path template derived from a route URL.
type PathTemplate struct {
	// Path is the templated path, e.g. "/users/{id}"
	Path string
	// Keys lists the path parameter names in order of appearance
	Keys []string
}

// HasKey reports whether name is one of the template's path parameters.
func (t PathTemplate) HasKey(name string) bool {
	for _, k := range t.Keys {
		if k == name {
			return true
		}
	}
	return false
}

// Template rewrites every ":name" segment of url to "{name}" and collects
// the parameter names. Custom patterns and modifiers are dropped.
func Template(url string) PathTemplate {
	var keys []string
	path := expressParamRegex.ReplaceAllStringFunc(url, func(m string) string {
		name := expressParamRegex.FindStringSubmatch(m)[1]
		keys = append(keys, name)
		return "{" + name + "}"
	})
	for _, m := range PathParamRegex.FindAllStringSubmatch(url, -1) {
		keys = append(keys, strings.TrimSpace(m[1]))
	}
	return PathTemplate{Path: path, Keys: keys}
}
