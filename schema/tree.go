package schema

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/ALE-Rainbow/apidoc-swagger/apidoc"
	"github.com/ALE-Rainbow/apidoc-swagger/internal/fieldpath"
	"github.com/ALE-Rainbow/apidoc-swagger/internal/naming"
	"github.com/ALE-Rainbow/apidoc-swagger/internal/pathutil"
)

// Builder builds schema trees into a registry.
type Builder struct {
	registry *Registry
	describe func(string) string
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithDescriber sets the function applied to field descriptions.
func WithDescriber(fn func(string) string) BuilderOption {
	return func(b *Builder) {
		if fn != nil {
			b.describe = fn
		}
	}
}

// NewBuilder returns a Builder writing into registry.
func NewBuilder(registry *Registry, opts ...BuilderOption) *Builder {
	b := &Builder{
		registry: registry,
		describe: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Tree attaches fields to the schema registered under root, creating it and
// any intermediate objects as needed. Fields are processed sorted by path;
// the input slice is not modified.
//
// A binary field anywhere in the list makes the whole payload opaque: root
// is registered as a binary string and the other fields are ignored.
//
// Arrays of objects get an item schema named after the root and the full
// field path, e.g. root "getUserSuccess" and field "profile.addresses"
// give "getUserSuccessProfileAddresses". Fields below that path attach to
// the item schema.
func (b *Builder) Tree(root string, fields []apidoc.Field) (Result, error) {
	res := newResult(root)

	sorted := slices.Clone(fields)
	slices.SortStableFunc(sorted, func(x, y apidoc.Field) int {
		return cmp.Compare(x.Field, y.Field)
	})

	for _, f := range sorted {
		if f.LowerType() == "binary" {
			b.registry.Set(root, &openapi3.Schema{
				Type:        &openapi3.Types{openapi3.TypeString},
				Format:      "binary",
				Description: b.describe(f.Description),
			})
			res.Type, res.Format = openapi3.TypeString, "binary"
			return res, nil
		}
	}

	rootSchema := b.registry.Ensure(root)
	for _, f := range sorted {
		path := fieldpath.Resolve(f.Field)
		if path.Leaf == "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf("field %q has an empty property name", f.Field))
			continue
		}

		prop, notes, err := b.property(root, path, f)
		if err != nil {
			return Result{}, fmt.Errorf("field %s: %w", f.Field, err)
		}
		res.Warnings = append(res.Warnings, notes...)

		owner := b.owner(root, rootSchema, path, &res)
		attach(owner, path.Leaf, prop, !f.Optional)
	}
	return res, nil
}

// Union registers {oneOf: [$ref...]} under name.
func (b *Builder) Union(name string, refs []string) Result {
	oneOf := make(openapi3.SchemaRefs, 0, len(refs))
	for _, ref := range refs {
		oneOf = append(oneOf, openapi3.NewSchemaRef(ref, nil))
	}
	b.registry.Set(name, &openapi3.Schema{OneOf: oneOf})
	return newResult(name)
}

// property builds the schema of one leaf field.
func (b *Builder) property(root string, path fieldpath.Path, f apidoc.Field) (*openapi3.Schema, []string, error) {
	if f.IsObject() {
		s := newObject()
		s.Description = b.describe(f.Description)
		return s, nil, nil
	}

	if f.IsArray() && f.ElementType() == "object" {
		name := naming.ToCamelCase(root + " " + path.Full)
		b.registry.synthesize(name)
		s := arrayOf(openapi3.NewSchemaRef(pathutil.SchemaRef(name), nil))
		s.Description = b.describe(f.Description)
		def, notes := ExtractDefaultValue(f.DefaultValue, f.LowerType())
		def.Apply(s)
		return s, notes, nil
	}

	return FieldSchema(f, b.describe)
}

// FieldSchema builds the schema of a field outside a schema tree: mapped
// type, allowed values, default and size. An array field becomes an array
// whose items carry the element type, allowed values and size. describe
// may be nil.
func FieldSchema(f apidoc.Field, describe func(string) string) (*openapi3.Schema, []string, error) {
	lower := f.LowerType()
	elem := MapType(lower).Schema()
	if f.IsArray() {
		lower = f.ElementType()
		if lower == "object" {
			elem = newObject()
		} else {
			elem = MapType(lower).Schema()
		}
	}

	allowed, err := ExtractAllowedValues(f.AllowedValues, lower)
	if err != nil {
		return nil, nil, err
	}
	allowed.Apply(elem)
	ParseSize(f.Size, typeOf(elem)).Apply(elem)

	s := elem
	if f.IsArray() {
		s = arrayOf(openapi3.NewSchemaRef("", elem))
	}
	if describe != nil {
		s.Description = describe(f.Description)
	}
	def, notes := ExtractDefaultValue(f.DefaultValue, f.LowerType())
	def.Apply(s)
	return s, notes, nil
}

func arrayOf(items *openapi3.SchemaRef) *openapi3.Schema {
	return &openapi3.Schema{
		Type:  &openapi3.Types{openapi3.TypeArray},
		Items: items,
	}
}

// owner returns the object schema a field belongs to.
func (b *Builder) owner(root string, rootSchema *openapi3.Schema, path fieldpath.Path, res *Result) *openapi3.Schema {
	if !path.Nested() {
		return rootSchema
	}

	// Fields below an array of objects attach to its item schema.
	if name := naming.ToCamelCase(root + " " + path.Object); b.registry.isSynthesized(name) {
		if s, ok := b.registry.Get(name); ok {
			return s
		}
	}

	cur := rootSchema
	for i, segment := range path.Segments {
		cur = b.child(cur, segment, path.Segments[:i+1], res)
	}
	return cur
}

// child descends from parent into the named property, creating an empty
// object when the property is missing and following array item references.
func (b *Builder) child(parent *openapi3.Schema, segment string, walked []string, res *Result) *openapi3.Schema {
	if parent.Properties == nil {
		parent.Properties = openapi3.Schemas{}
	}

	ref, ok := parent.Properties[segment]
	if !ok || ref == nil {
		s := newObject()
		parent.Properties[segment] = openapi3.NewSchemaRef("", s)
		return s
	}

	if ref.Ref != "" {
		if s, ok := b.registry.Resolve(ref.Ref); ok {
			return s
		}
	}
	s := ref.Value
	if s == nil {
		s = newObject()
		parent.Properties[segment] = openapi3.NewSchemaRef("", s)
		return s
	}
	if s.Items != nil {
		if s.Items.Ref != "" {
			if target, ok := b.registry.Resolve(s.Items.Ref); ok {
				return target
			}
		}
	}

	if t := typeOf(s); t != openapi3.TypeObject && t != "" {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%s is declared %s but has nested fields", strings.Join(walked, "."), t))
	}
	if s.Properties == nil {
		s.Properties = openapi3.Schemas{}
	}
	return s
}

// attach sets a property on owner and records it as required once.
func attach(owner *openapi3.Schema, name string, prop *openapi3.Schema, required bool) {
	if owner.Properties == nil {
		owner.Properties = openapi3.Schemas{}
	}

	if existing, ok := owner.Properties[name]; ok && existing.Value != nil && typeOf(prop) == openapi3.TypeObject && len(existing.Value.Properties) > 0 {
		// An object declared after its children keeps them.
		if prop.Description != "" {
			existing.Value.Description = prop.Description
		}
	} else {
		owner.Properties[name] = openapi3.NewSchemaRef("", prop)
	}

	if required && !slices.Contains(owner.Required, name) {
		owner.Required = append(owner.Required, name)
	}
}
