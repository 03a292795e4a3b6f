package converter

import (
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/ALE-Rainbow/apidoc-swagger/internal/naming"
	"github.com/ALE-Rainbow/apidoc-swagger/schema"
)

// permission is one entry of the top-level x-permissions map.
type permission struct {
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// compilation holds the state of one Convert call. Nothing in it outlives
// the call, so a Converter can be reused and shared between goroutines.
type compilation struct {
	registry *schema.Registry
	builder  *schema.Builder
	describe func(string) string
	logger   Logger

	// tags caches the tag name derived from each group
	tags map[string]string
	// usedTags lists tag names in order of first use
	usedTags []string

	permissions     map[string]permission
	securitySchemes openapi3.SecuritySchemes

	issues []ConversionIssue
}

func newCompilation(logger Logger, describe func(string) string) *compilation {
	if describe == nil {
		describe = stripParagraph
	}
	registry := schema.NewRegistry()
	return &compilation{
		registry:        registry,
		builder:         schema.NewBuilder(registry, schema.WithDescriber(describe)),
		describe:        describe,
		logger:          logger,
		tags:            map[string]string{},
		permissions:     map[string]permission{},
		securitySchemes: openapi3.SecuritySchemes{},
	}
}

// add records an issue and logs it.
func (c *compilation) add(issue ConversionIssue) {
	c.issues = append(c.issues, issue)
	logIssue(c.logger, issue)
}

// tag returns the tag for a group, registering it on first use.
func (c *compilation) tag(group string) string {
	if t, ok := c.tags[group]; ok {
		return t
	}
	t := naming.ToTagTitle(group)
	c.tags[group] = t
	if !slices.Contains(c.usedTags, t) {
		c.usedTags = append(c.usedTags, t)
	}
	return t
}

// stripParagraph removes a <p> element wrapping the whole text, which is
// how apidoc renders single-paragraph descriptions.
func stripParagraph(text string) string {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "<p>") || !strings.HasSuffix(t, "</p>") {
		return text
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(t, "<p>"), "</p>")
	if strings.Contains(inner, "<p>") {
		return text
	}
	return inner
}
