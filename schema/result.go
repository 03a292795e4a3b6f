package schema

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/ALE-Rainbow/apidoc-swagger/internal/pathutil"
)

// Result describes the top-level schema produced for one field list.
type Result struct {
	// Name is the registry key of the top-level schema.
	Name string
	// Ref is "#/components/schemas/" + Name.
	Ref string
	// Type and Format are set when the payload is a primitive rather than
	// an object, for example an opaque binary body.
	Type   string
	Format string
	// Warnings are advisory findings met while building.
	Warnings []string
}

// IsPrimitive reports whether the payload is a primitive value.
func (r Result) IsPrimitive() bool {
	return r.Type != ""
}

// SchemaRef returns the schema to place in a media type: an inline
// type/format for primitives, a component reference otherwise.
func (r Result) SchemaRef() *openapi3.SchemaRef {
	if r.IsPrimitive() {
		return openapi3.NewSchemaRef("", TypeInfo{Type: r.Type, Format: r.Format}.Schema())
	}
	return openapi3.NewSchemaRef(r.Ref, nil)
}

func newResult(name string) Result {
	return Result{Name: name, Ref: pathutil.SchemaRef(name)}
}
