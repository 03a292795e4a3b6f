package pathutil

import "strings"

// Component reference prefixes.
const (
	RefPrefixSchemas         = "#/components/schemas/"
	RefPrefixSecuritySchemes = "#/components/securitySchemes/"
)

// SchemaRef builds "#/components/schemas/{name}".
func SchemaRef(name string) string {
	return RefPrefixSchemas + name
}

// SchemaName returns the component name a schema reference points to,
// or false when ref is not a local component schema reference.
func SchemaName(ref string) (string, bool) {
	if !strings.HasPrefix(ref, RefPrefixSchemas) {
		return "", false
	}
	return strings.TrimPrefix(ref, RefPrefixSchemas), true
}
