package schema

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// TypeInfo is an OpenAPI type and optional format.
type TypeInfo struct {
	Type   string
	Format string
}

// MapType maps an annotation type name (case-insensitive) to an OpenAPI
// type. Unknown names pass through lower-cased.
func MapType(name string) TypeInfo {
	t := strings.ToLower(name)
	switch t {
	case "string":
		return TypeInfo{Type: "string"}
	case "date", "date-time", "byte", "binary", "password":
		return TypeInfo{Type: "string", Format: t}
	case "integer":
		return TypeInfo{Type: "integer", Format: "int32"}
	case "long":
		return TypeInfo{Type: "integer", Format: "int64"}
	case "float", "double":
		return TypeInfo{Type: "number", Format: t}
	default:
		return TypeInfo{Type: t}
	}
}

// Schema returns a new schema carrying the type and format.
func (t TypeInfo) Schema() *openapi3.Schema {
	s := &openapi3.Schema{Format: t.Format}
	if t.Type != "" {
		s.Type = &openapi3.Types{t.Type}
	}
	return s
}

func isIntegerType(t string) bool {
	switch t {
	case "number", "integer", "long":
		return true
	}
	return false
}

func isFloatType(t string) bool {
	return t == "float" || t == "double"
}

func isNumericType(t string) bool {
	return isIntegerType(t) || isFloatType(t)
}

func typeOf(s *openapi3.Schema) string {
	if s == nil || s.Type == nil || len(*s.Type) == 0 {
		return ""
	}
	return (*s.Type)[0]
}
