package converter

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/ALE-Rainbow/apidoc-swagger/apidoc"
	"github.com/ALE-Rainbow/apidoc-swagger/schema"
)

const defaultMediaType = "application/json"

// parameters builds the parameter list in the order path, header, cookie,
// query, form.
func (c *compilation) parameters(v *verb) (openapi3.Parameters, error) {
	fields := v.rec.ParameterFields()
	var params openapi3.Parameters

	for _, f := range fields.Filter(is(apidoc.PlacementPath)) {
		if !v.template.HasKey(f.Field) {
			c.add(ConversionIssue{
				Path:      v.path + ".parameters",
				Operation: v.operation,
				Field:     f.Field,
				Message:   fmt.Sprintf("path parameter %q does not appear in the url and was dropped", f.Field),
				Severity:  SeverityInfo,
			})
			continue
		}
		in := openapi3.ParameterInPath
		if f.LowerType() == "file" {
			in = "formData"
		}
		p, err := c.parameter(v, f, in)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}

	headers := fields.Filter(is(apidoc.PlacementHeader, apidoc.PlacementResponseHeader))
	for _, f := range v.rec.HeaderFields().Filter(is(apidoc.PlacementHeader)) {
		if isMediaTypeHeader(f.Field) {
			continue
		}
		headers = append(headers, f)
	}

	groups := []struct {
		fields []apidoc.Field
		in     string
	}{
		{headers, openapi3.ParameterInHeader},
		{fields.Filter(is(apidoc.PlacementCookie)), openapi3.ParameterInCookie},
		{fields.Filter(is(apidoc.PlacementQuery)), openapi3.ParameterInQuery},
		{fields.Filter(is(apidoc.PlacementForm)), "form"},
	}
	for _, g := range groups {
		for _, f := range g.fields {
			p, err := c.parameter(v, f, g.in)
			if err != nil {
				return nil, err
			}
			params = append(params, p)
		}
	}
	return params, nil
}

// parameter builds one parameter. The schema carries the mapped type and
// the allowed values, default and size constraints.
func (c *compilation) parameter(v *verb, f apidoc.Field, in string) (*openapi3.ParameterRef, error) {
	s, notes, err := schema.FieldSchema(f, nil)
	if err != nil {
		return nil, fmt.Errorf("parameter %s: %w", f.Field, err)
	}
	c.advise(v, "parameters", notes)

	return &openapi3.ParameterRef{Value: &openapi3.Parameter{
		Name:        f.Field,
		In:          in,
		Required:    !f.Optional,
		Description: c.describe(f.Description),
		Schema:      openapi3.NewSchemaRef("", s),
	}}, nil
}

// requestBody builds the request body when the record declares body
// parameters. The schema covers the generic and body parameter fields and
// is registered under the operation id. Without body parameters the
// generic fields have nowhere to go and are reported as dropped.
func (c *compilation) requestBody(v *verb) (*openapi3.RequestBody, error) {
	fields := v.rec.ParameterFields()
	if len(fields.Filter(is(apidoc.PlacementBody))) == 0 {
		if generic := fields.Filter(is(apidoc.PlacementGeneric)); len(generic) > 0 {
			names := make([]string, 0, len(generic))
			for _, f := range generic {
				names = append(names, f.Field)
			}
			c.add(ConversionIssue{
				Path:      v.path + ".requestBody",
				Operation: v.operation,
				Message: fmt.Sprintf("parameter fields %s have no placement and no body parameters to join; they were dropped",
					strings.Join(names, ", ")),
				Severity: SeverityInfo,
			})
		}
		return nil, nil
	}

	bodyFields := fields.Filter(is(apidoc.PlacementGeneric, apidoc.PlacementBody))
	res, err := c.builder.Tree(v.opID, bodyFields)
	if err != nil {
		return nil, fmt.Errorf("request body: %w", err)
	}
	c.advise(v, "requestBody", res.Warnings)

	content := openapi3.Content{}
	for _, mime := range mediaTypes(v.rec.HeaderFields().Filter(is(apidoc.PlacementHeader))) {
		content[mime] = openapi3.NewMediaType().WithSchemaRef(res.SchemaRef())
	}
	if v.rec.Parameter != nil {
		c.attachExamples(v, content, v.rec.Parameter.Examples, "requestBody")
	}

	return &openapi3.RequestBody{
		Required: len(bodyFields) > 0,
		Content:  content,
	}, nil
}

// mediaTypes reads the media types declared by a Content-Type field:
// its allowed values, else its description, else application/json.
func mediaTypes(fields []apidoc.Field) []string {
	f, ok := findField(fields, "content-type")
	if !ok {
		return []string{defaultMediaType}
	}
	var out []string
	for _, value := range f.AllowedValues {
		if value = strings.Trim(value, `"'`); value != "" {
			out = append(out, value)
		}
	}
	if len(out) > 0 {
		return out
	}
	if d := strings.TrimSpace(stripParagraph(f.Description)); d != "" {
		return []string{d}
	}
	return []string{defaultMediaType}
}

// findField returns the first field with the given name, ignoring case.
func findField(fields []apidoc.Field, name string) (apidoc.Field, bool) {
	for _, f := range fields {
		if strings.EqualFold(f.Field, name) {
			return f, true
		}
	}
	return apidoc.Field{}, false
}

// isMediaTypeHeader reports headers expressed through content media types
// rather than as parameters.
func isMediaTypeHeader(name string) bool {
	return strings.EqualFold(name, "accept") || strings.EqualFold(name, "content-type")
}

// is returns a placement predicate matching any of the given placements.
func is(placements ...apidoc.Placement) func(apidoc.Placement) bool {
	return func(p apidoc.Placement) bool {
		for _, want := range placements {
			if p == want {
				return true
			}
		}
		return false
	}
}
