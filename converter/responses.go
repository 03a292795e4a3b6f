package converter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/ALE-Rainbow/apidoc-swagger/apidoc"
	"github.com/ALE-Rainbow/apidoc-swagger/internal/naming"
	"github.com/ALE-Rainbow/apidoc-swagger/schema"
)

const (
	successDescription = "successful operation"
	defaultStatus      = "200"
)

var (
	// successKeyPattern matches apidoc's default group names, "Success 201".
	successKeyPattern = regexp.MustCompile(`(?i)^success\s*(\d{3})$`)
	statusPattern     = regexp.MustCompile(`\d{3}`)
	firstNumber       = regexp.MustCompile(`\d+`)
)

// successGroup is one success field group after response headers and
// parameter placements were set aside.
type successGroup struct {
	key    string
	fields []apidoc.Field
}

// successStatus returns the status code a success group is served under
// and the label added to its schema name. The label is empty only for the
// plain "Success 200" group of a single-group response.
func successStatus(key string, multi bool) (code, label string) {
	if m := successKeyPattern.FindStringSubmatch(key); m != nil {
		if m[1] == defaultStatus && !multi {
			return defaultStatus, ""
		}
		return m[1], m[1]
	}
	code = defaultStatus
	if m := statusPattern.FindString(key); m != "" {
		code = m
	}
	return code, key
}

// successResponses adds the success response. One group gives one schema;
// several groups give one schema each, combined with oneOf under 200.
func (c *compilation) successResponses(v *verb, responses *openapi3.Responses) error {
	var groups []successGroup
	var headers []apidoc.Field
	for _, g := range v.rec.SuccessFields() {
		var body []apidoc.Field
		for _, f := range g.Fields {
			switch f.Placement {
			case apidoc.PlacementResponseHeader:
				headers = append(headers, f)
			case apidoc.PlacementQuery, apidoc.PlacementCookie, apidoc.PlacementForm:
				// not part of a response
			default:
				body = append(body, f)
			}
		}
		if len(body) > 0 {
			groups = append(groups, successGroup{key: g.Name, fields: body})
		}
	}
	if len(groups) == 0 {
		return nil
	}

	var (
		res  schema.Result
		code string
	)
	if len(groups) == 1 {
		var label string
		code, label = successStatus(groups[0].key, false)
		name := naming.ToCamelCase(v.opID + " " + label + " Success")
		var err error
		if res, err = c.builder.Tree(name, groups[0].fields); err != nil {
			return fmt.Errorf("success %s: %w", groups[0].key, err)
		}
		c.advise(v, "responses."+code, res.Warnings)
	} else {
		refs := make([]string, 0, len(groups))
		for _, g := range groups {
			_, label := successStatus(g.key, true)
			name := naming.ToCamelCase(v.opID + " " + label + " Success")
			part, err := c.builder.Tree(name, g.fields)
			if err != nil {
				return fmt.Errorf("success %s: %w", g.key, err)
			}
			c.advise(v, "responses."+defaultStatus, part.Warnings)
			refs = append(refs, part.Ref)
		}
		code = defaultStatus
		res = c.builder.Union(naming.ToCamelCase(v.opID+" Success"), refs)
	}

	content := openapi3.Content{}
	contentType, declared := findField(headers, "content-type")
	var mimes []string
	switch {
	case declared || !res.IsPrimitive():
		mimes = mediaTypes(headers)
	default:
		mimes = []string{primitiveMediaType(res, v.rec.SuccessExamples())}
	}
	for _, mime := range mimes {
		content[mime] = openapi3.NewMediaType().WithSchemaRef(res.SchemaRef())
	}
	c.attachExamples(v, content, v.rec.SuccessExamples(), "responses."+code)

	resp := openapi3.NewResponse().WithDescription(successDescription).WithContent(content)
	for _, h := range headers {
		if h.Field == contentType.Field && declared {
			continue
		}
		hdr, err := c.responseHeader(v, h)
		if err != nil {
			return err
		}
		if resp.Headers == nil {
			resp.Headers = openapi3.Headers{}
		}
		resp.Headers[h.Field] = hdr
	}
	responses.Set(code, &openapi3.ResponseRef{Value: resp})
	return nil
}

// primitiveMediaType picks the media type of a primitive success body that
// declares no Content-Type: the first example's, else octet-stream for
// binary payloads, else plain text.
func primitiveMediaType(res schema.Result, examples []apidoc.Example) string {
	if mime := firstExampleMime(examples); mime != "" && mime != mimeUnknown {
		return mime
	}
	if res.Format == "binary" {
		return "application/octet-stream"
	}
	return "text/plain"
}

func (c *compilation) responseHeader(v *verb, f apidoc.Field) (*openapi3.HeaderRef, error) {
	s, notes, err := schema.FieldSchema(f, nil)
	if err != nil {
		return nil, fmt.Errorf("response header %s: %w", f.Field, err)
	}
	c.advise(v, "responses.headers", notes)
	return &openapi3.HeaderRef{Value: &openapi3.Header{Parameter: openapi3.Parameter{
		Description: c.describe(f.Description),
		Required:    !f.Optional,
		Schema:      openapi3.NewSchemaRef("", s),
	}}}, nil
}

// errorResponses adds one response per error field, keyed by the field
// name, then attaches error examples to the response whose code is the
// first number of the example title.
func (c *compilation) errorResponses(v *verb, responses *openapi3.Responses) {
	for _, f := range v.rec.ErrorFields().All() {
		responses.Set(f.Field, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription(c.describe(f.Description)),
		})
	}

	for i, ex := range v.rec.ErrorExamples() {
		if strings.TrimSpace(ex.Title) == "" {
			c.add(ConversionIssue{
				Path:      v.path + ".responses",
				Operation: v.operation,
				Message:   fmt.Sprintf("error example %d has no title; write it as '@apiErrorExample {json} 401 Error Response:'", i+1),
				Severity:  SeverityWarning,
			})
			continue
		}
		code := firstNumber.FindString(ex.Title)
		if code == "" {
			c.add(ConversionIssue{
				Path:      v.path + ".responses",
				Operation: v.operation,
				Message:   fmt.Sprintf("error example %q has no status code in its title", ex.Title),
				Severity:  SeverityWarning,
			})
			continue
		}
		ref := responses.Value(code)
		if ref == nil || ref.Value == nil {
			c.add(ConversionIssue{
				Path:      v.path + ".responses",
				Operation: v.operation,
				Message:   fmt.Sprintf("error example %q refers to undeclared response %s", ex.Title, code),
				Severity:  SeverityInfo,
				Value:     code,
			})
			continue
		}
		if ref.Value.Content == nil {
			ref.Value.Content = openapi3.Content{}
		}
		c.attachExamples(v, ref.Value.Content, []apidoc.Example{ex}, "responses."+code)
	}
}
