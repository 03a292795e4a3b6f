package apidoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Record is one annotated (URL, verb) unit as emitted by apidoc.
type Record struct {
	Type        string       `yaml:"type" json:"type"`
	URL         string       `yaml:"url" json:"url"`
	Group       string       `yaml:"group" json:"group"`
	GroupTitle  string       `yaml:"groupTitle,omitempty" json:"groupTitle,omitempty"`
	Name        string       `yaml:"name" json:"name"`
	Title       string       `yaml:"title" json:"title"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string       `yaml:"version,omitempty" json:"version,omitempty"`
	Filename    string       `yaml:"filename,omitempty" json:"filename,omitempty"`
	Deprecated  *Deprecated  `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Parameter   *Section     `yaml:"parameter,omitempty" json:"parameter,omitempty"`
	Success     *Section     `yaml:"success,omitempty" json:"success,omitempty"`
	Error       *Section     `yaml:"error,omitempty" json:"error,omitempty"`
	Header      *Section     `yaml:"header,omitempty" json:"header,omitempty"`
	Permission  []Permission `yaml:"permission,omitempty" json:"permission,omitempty"`

	// Method is the lower-case HTTP method, set by Prepare.
	Method string `yaml:"-" json:"-"`
}

// Operation identifies the record in diagnostics, e.g. "GET /users/:id".
func (r *Record) Operation() string {
	method := r.Method
	if method == "" {
		method = r.Type
	}
	return strings.ToUpper(method) + " " + r.URL
}

// IsDeprecated reports whether the record carries a deprecation notice.
func (r *Record) IsDeprecated() bool {
	return r.Deprecated != nil && !r.Deprecated.disabled
}

// ParameterFields returns the parameter field groups, or nil.
func (r *Record) ParameterFields() FieldGroups {
	if r.Parameter == nil {
		return nil
	}
	return r.Parameter.Fields
}

// SuccessFields returns the success field groups, or nil.
func (r *Record) SuccessFields() FieldGroups {
	if r.Success == nil {
		return nil
	}
	return r.Success.Fields
}

// ErrorFields returns the error field groups, or nil.
func (r *Record) ErrorFields() FieldGroups {
	if r.Error == nil {
		return nil
	}
	return r.Error.Fields
}

// HeaderFields returns the header field groups, or nil.
func (r *Record) HeaderFields() FieldGroups {
	if r.Header == nil {
		return nil
	}
	return r.Header.Fields
}

// SuccessExamples returns the success examples, or nil.
func (r *Record) SuccessExamples() []Example {
	if r.Success == nil {
		return nil
	}
	return r.Success.Examples
}

// ErrorExamples returns the error examples, or nil.
func (r *Record) ErrorExamples() []Example {
	if r.Error == nil {
		return nil
	}
	return r.Error.Examples
}

// Section groups the fields and examples of one annotation block
// (@apiParam, @apiSuccess, @apiError or @apiHeader).
type Section struct {
	Fields   FieldGroups `yaml:"fields,omitempty" json:"fields,omitempty"`
	Examples []Example   `yaml:"examples,omitempty" json:"examples,omitempty"`
}

func (s *Section) clone() *Section {
	if s == nil {
		return nil
	}
	out := &Section{Fields: s.Fields.clone()}
	if s.Examples != nil {
		out.Examples = append([]Example(nil), s.Examples...)
	}
	return out
}

// Field is one declared parameter or property.
type Field struct {
	Field         string   `yaml:"field" json:"field"`
	Group         string   `yaml:"group,omitempty" json:"group,omitempty"`
	Type          string   `yaml:"type,omitempty" json:"type,omitempty"`
	Optional      bool     `yaml:"optional,omitempty" json:"optional,omitempty"`
	Size          string   `yaml:"size,omitempty" json:"size,omitempty"`
	AllowedValues []string `yaml:"allowedValues,omitempty" json:"allowedValues,omitempty"`
	DefaultValue  string   `yaml:"defaultValue,omitempty" json:"defaultValue,omitempty"`
	Description   string   `yaml:"description,omitempty" json:"description,omitempty"`

	// Placement is resolved once by Prepare from Group, falling back to
	// the key of the group map the field was listed under.
	Placement Placement `yaml:"-" json:"-"`
}

// LowerType returns the declared type in lower case.
func (f Field) LowerType() string {
	return strings.ToLower(f.Type)
}

// IsArray reports whether the type is written "T[]".
func (f Field) IsArray() bool {
	return strings.HasSuffix(f.Type, "[]")
}

// ElementType returns the lower-case element type of an array field, or
// the lower-case type itself.
func (f Field) ElementType() string {
	return strings.TrimSuffix(f.LowerType(), "[]")
}

// IsObject reports whether the field declares an inline object.
func (f Field) IsObject() bool {
	return f.LowerType() == "object"
}

// FieldGroup is one named list of fields, e.g. "Parameter" or "Success 200".
type FieldGroup struct {
	Name   string
	Fields []Field
}

// FieldGroups keeps field groups in input order.
type FieldGroups []FieldGroup

// UnmarshalYAML decodes a mapping of group name to field list, keeping
// the mapping order.
func (g *FieldGroups) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*g = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: field groups must be a mapping", node.Line)
	}
	groups := make(FieldGroups, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var fields []Field
		if err := node.Content[i+1].Decode(&fields); err != nil {
			return fmt.Errorf("group %q: %w", node.Content[i].Value, err)
		}
		groups = append(groups, FieldGroup{Name: node.Content[i].Value, Fields: fields})
	}
	*g = groups
	return nil
}

// MarshalJSON encodes the groups as an object, keeping their order.
func (g FieldGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, group := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(group.Name)
		if err != nil {
			return nil, err
		}
		fields, err := json.Marshal(group.Fields)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(fields)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the groups as a mapping, keeping their order.
func (g FieldGroups) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, group := range g {
		var value yaml.Node
		if err := value.Encode(group.Fields); err != nil {
			return nil, fmt.Errorf("group %q: %w", group.Name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: group.Name},
			&value,
		)
	}
	return node, nil
}

// Get returns the fields of the named group.
func (g FieldGroups) Get(name string) ([]Field, bool) {
	for _, group := range g {
		if group.Name == name {
			return group.Fields, true
		}
	}
	return nil, false
}

// All returns every field of every group, in order.
func (g FieldGroups) All() []Field {
	var out []Field
	for _, group := range g {
		out = append(out, group.Fields...)
	}
	return out
}

// Filter returns the fields whose placement satisfies keep, in order.
func (g FieldGroups) Filter(keep func(Placement) bool) []Field {
	var out []Field
	for _, group := range g {
		for _, f := range group.Fields {
			if keep(f.Placement) {
				out = append(out, f)
			}
		}
	}
	return out
}

func (g FieldGroups) clone() FieldGroups {
	if g == nil {
		return nil
	}
	out := make(FieldGroups, len(g))
	for i, group := range g {
		fields := make([]Field, len(group.Fields))
		for j, f := range group.Fields {
			if f.AllowedValues != nil {
				f.AllowedValues = append([]string(nil), f.AllowedValues...)
			}
			fields[j] = f
		}
		out[i] = FieldGroup{Name: group.Name, Fields: fields}
	}
	return out
}

// Example is an annotated request or response example.
type Example struct {
	Title   string `yaml:"title,omitempty" json:"title,omitempty"`
	Content string `yaml:"content,omitempty" json:"content,omitempty"`
	Type    string `yaml:"type,omitempty" json:"type,omitempty"`
}

// Permission is an @apiPermission declaration.
type Permission struct {
	Name        string `yaml:"name" json:"name"`
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Deprecated is an @apiDeprecated declaration.
type Deprecated struct {
	Content string `yaml:"content,omitempty" json:"content,omitempty"`

	disabled bool
}

// UnmarshalYAML accepts either {content: ...} or a plain boolean.
func (d *Deprecated) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var flag bool
		if err := node.Decode(&flag); err != nil {
			return fmt.Errorf("line %d: deprecated must be a boolean or an object", node.Line)
		}
		d.disabled = !flag
		return nil
	}
	type plain Deprecated
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	d.Content = p.Content
	return nil
}
