package converter

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/ALE-Rainbow/apidoc-swagger/apidoc"
	"github.com/ALE-Rainbow/apidoc-swagger/internal/maputil"
	"github.com/ALE-Rainbow/apidoc-swagger/internal/pathutil"
)

// OpenAPIVersion is the version written to every generated document.
const OpenAPIVersion = "3.0.3"

// assemble groups records by URL in order of first appearance and builds
// every operation into one document.
func (c *compilation) assemble(records []apidoc.Record, project *apidoc.Project) (*openapi3.T, error) {
	var urls []string
	byURL := map[string][]int{}
	for i := range records {
		url := records[i].URL
		if _, seen := byURL[url]; !seen {
			urls = append(urls, url)
		}
		byURL[url] = append(byURL[url], i)
	}

	paths := openapi3.NewPaths()
	opIDs := map[string]string{}
	for _, url := range urls {
		tmpl := pathutil.Template(url)
		for _, i := range byURL[url] {
			rec := &records[i]
			op, err := c.assembleVerb(rec, tmpl)
			if err != nil {
				return nil, err
			}

			if prev, dup := opIDs[op.OperationID]; dup {
				c.add(ConversionIssue{
					Path:      "paths." + tmpl.Path + "." + rec.Method,
					Operation: rec.Operation(),
					Message:   fmt.Sprintf("operationId %s is also used by %s; their schemas are shared", op.OperationID, prev),
					Severity:  SeverityWarning,
				})
			} else {
				opIDs[op.OperationID] = rec.Operation()
			}

			item := paths.Value(tmpl.Path)
			if item == nil {
				item = &openapi3.PathItem{}
				paths.Set(tmpl.Path, item)
			}
			method := strings.ToUpper(rec.Method)
			if item.GetOperation(method) != nil {
				c.add(ConversionIssue{
					Path:      "paths." + tmpl.Path + "." + rec.Method,
					Operation: rec.Operation(),
					Message:   "operation declared more than once; the last declaration wins",
					Severity:  SeverityWarning,
				})
			}
			item.SetOperation(method, op)
		}
	}

	components := openapi3.NewComponents()
	components.Schemas = c.registry.Schemas()
	components.SecuritySchemes = c.securitySchemes

	doc := &openapi3.T{
		OpenAPI:    OpenAPIVersion,
		Info:       c.info(project),
		Paths:      paths,
		Components: &components,
		Security:   openapi3.SecurityRequirements{openapi3.SecurityRequirement{}},
		Extensions: map[string]any{
			"x-permissions": c.permissions,
		},
	}
	return doc, nil
}

// info builds the info section. With a project header the description
// becomes a small Markdown page: the project description as a title and
// the header as a section.
func (c *compilation) info(project *apidoc.Project) *openapi3.Info {
	if project == nil {
		return &openapi3.Info{}
	}
	info := &openapi3.Info{
		Title:       project.DisplayTitle(),
		Version:     project.Version,
		Description: c.describe(project.Description),
	}
	if h := project.Header; h != nil {
		info.Description = fmt.Sprintf("# %s\n\n## %s\n\n%s",
			c.describe(project.Description), h.Title, c.describe(h.Content))
	}
	return info
}

// finish turns the generated document into a generic map, merges the
// override, checks tags and drops empty optional sections.
func (c *compilation) finish(doc *openapi3.T, override map[string]any) (map[string]any, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("converter: failed to encode document: %w", err)
	}
	out, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}

	ensureMap(out, "paths")
	ensure(out, "tags", []any{})
	ensure(out, "x-tagGroups", []any{})
	ensure(out, "security", []any{map[string]any{}})
	components := ensureMap(out, "components")
	ensureMap(components, "schemas")

	if override != nil {
		ov := maps.Clone(override)
		if servers, ok := ov["x-servers"]; ok {
			ov["servers"] = servers
			delete(ov, "x-servers")
		}
		if _, err := maputil.DeepMerge(out, normalize(ov).(map[string]any)); err != nil {
			return nil, err
		}
	}

	c.checkTags(out)

	if components, ok := out["components"].(map[string]any); ok {
		if schemes, ok := components["securitySchemes"].(map[string]any); !ok || len(schemes) == 0 {
			delete(components, "securitySchemes")
		}
	}
	if perms, ok := out["x-permissions"].(map[string]any); !ok || len(perms) == 0 {
		delete(out, "x-permissions")
	}
	return out, nil
}

// checkTags reports operation tags missing from the top-level tag list,
// sorts that list by name and reports tags that no x-tagGroups entry
// lists.
func (c *compilation) checkTags(out map[string]any) {
	tags, _ := out["tags"].([]any)
	declared := map[string]bool{}
	for _, t := range tags {
		declared[tagName(t)] = true
	}
	for _, used := range c.usedTags {
		if !declared[used] {
			c.add(ConversionIssue{
				Path:     "tags",
				Message:  fmt.Sprintf("operation tag %q must be declared in the global tags", used),
				Severity: SeverityError,
				Value:    used,
			})
		}
	}

	slices.SortStableFunc(tags, func(a, b any) int {
		return cmp.Compare(tagName(a), tagName(b))
	})

	grouped := map[string]bool{}
	groups, _ := out["x-tagGroups"].([]any)
	for _, g := range groups {
		gm, _ := g.(map[string]any)
		members, _ := gm["tags"].([]any)
		for _, m := range members {
			if name, ok := m.(string); ok {
				grouped[name] = true
			}
		}
	}
	for _, t := range tags {
		if name := tagName(t); !grouped[name] {
			c.add(ConversionIssue{
				Path:     "x-tagGroups",
				Message:  fmt.Sprintf("tag %q does not belong to a group in x-tagGroups", name),
				Severity: SeverityWarning,
				Value:    name,
			})
		}
	}
}

func tagName(t any) string {
	m, _ := t.(map[string]any)
	name, _ := m["name"].(string)
	return name
}

func ensure(m map[string]any, key string, value any) {
	if _, ok := m[key]; !ok {
		m[key] = value
	}
}

func ensureMap(m map[string]any, key string) map[string]any {
	if sub, ok := m[key].(map[string]any); ok {
		return sub
	}
	sub := map[string]any{}
	m[key] = sub
	return sub
}

// decodeDocument decodes JSON into generic values, keeping integers as
// int64 rather than float64 so they encode back without a fraction.
func decodeDocument(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("converter: failed to decode document: %w", err)
	}
	return normalize(out).(map[string]any), nil
}

// normalize replaces json.Number values with int64 or float64 and
// map[any]any values with map[string]any, recursively.
func normalize(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		f, _ := t.Float64()
		return f
	case int:
		return int64(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	default:
		return v
	}
}
