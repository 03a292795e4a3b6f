package schema

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/ALE-Rainbow/apidoc-swagger/internal/maputil"
	"github.com/ALE-Rainbow/apidoc-swagger/internal/pathutil"
)

// Registry holds the named component schemas of one compilation run.
// Entries are created lazily and never removed. A Registry is not safe for
// concurrent use; each run owns its own.
type Registry struct {
	schemas     openapi3.Schemas
	synthesized map[string]bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		schemas:     openapi3.Schemas{},
		synthesized: map[string]bool{},
	}
}

// Get returns the named schema.
func (r *Registry) Get(name string) (*openapi3.Schema, bool) {
	ref, ok := r.schemas[name]
	if !ok || ref.Value == nil {
		return nil, false
	}
	return ref.Value, true
}

// Set registers s under name, replacing any previous entry.
func (r *Registry) Set(name string, s *openapi3.Schema) {
	r.schemas[name] = openapi3.NewSchemaRef("", s)
}

// Ensure returns the named schema, registering an empty object first when
// the name is unknown.
func (r *Registry) Ensure(name string) *openapi3.Schema {
	if s, ok := r.Get(name); ok {
		return s
	}
	s := newObject()
	r.Set(name, s)
	return s
}

// Resolve follows a local component reference.
func (r *Registry) Resolve(ref string) (*openapi3.Schema, bool) {
	name, ok := pathutil.SchemaName(ref)
	if !ok {
		return nil, false
	}
	return r.Get(name)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	return maputil.SortedKeys(r.schemas)
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int {
	return len(r.schemas)
}

// Schemas returns the registered schemas for use in openapi3.Components.
func (r *Registry) Schemas() openapi3.Schemas {
	return r.schemas
}

// synthesize registers the item schema of an array of objects and records
// that the name was derived from a field path, so later fields below that
// path can attach to it directly.
func (r *Registry) synthesize(name string) *openapi3.Schema {
	r.synthesized[name] = true
	return r.Ensure(name)
}

func (r *Registry) isSynthesized(name string) bool {
	return r.synthesized[name]
}

func newObject() *openapi3.Schema {
	return &openapi3.Schema{
		Type:       &openapi3.Types{openapi3.TypeObject},
		Properties: openapi3.Schemas{},
	}
}
