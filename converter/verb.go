package converter

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/ALE-Rainbow/apidoc-swagger/apidoc"
	"github.com/ALE-Rainbow/apidoc-swagger/internal/naming"
	"github.com/ALE-Rainbow/apidoc-swagger/internal/pathutil"
	"github.com/ALE-Rainbow/apidoc-swagger/oaserrors"
)

// verb is the record being assembled plus what is derived from it once.
type verb struct {
	rec       *apidoc.Record
	template  pathutil.PathTemplate
	opID      string
	path      string // issue location, e.g. "paths./users/{id}.get"
	operation string // e.g. "GET /users/:id"
}

func newVerb(rec *apidoc.Record, tmpl pathutil.PathTemplate) *verb {
	return &verb{
		rec:       rec,
		template:  tmpl,
		opID:      naming.ToCamelCase(rec.Name),
		path:      "paths." + tmpl.Path + "." + rec.Method,
		operation: rec.Operation(),
	}
}

// assembleVerb builds the operation for one record. The only error it
// returns is a fatal annotation error, wrapped with the verb's location.
func (c *compilation) assembleVerb(rec *apidoc.Record, tmpl pathutil.PathTemplate) (*openapi3.Operation, error) {
	v := newVerb(rec, tmpl)
	c.logger.Debug("assembling operation", "operation", v.operation, "operationId", v.opID)

	op := &openapi3.Operation{
		Extensions:  map[string]any{},
		OperationID: v.opID,
		Summary:     stripParagraph(rec.Title),
		Description: c.describe(rec.Description),
		Responses:   openapi3.NewResponsesWithCapacity(1),
	}
	if rec.Group != "" {
		op.Tags = []string{c.tag(rec.Group)}
	}

	params, err := c.parameters(v)
	if err != nil {
		return nil, v.fail(err)
	}
	op.Parameters = params

	body, err := c.requestBody(v)
	if err != nil {
		return nil, v.fail(err)
	}
	if body != nil {
		op.RequestBody = &openapi3.RequestBodyRef{Value: body}
	}

	if err := c.successResponses(v, op.Responses); err != nil {
		return nil, v.fail(err)
	}
	c.errorResponses(v, op.Responses)

	if security := c.security(v); len(security) > 0 {
		op.Security = &security
	}
	if perms := c.operationPermissions(rec); len(perms) > 0 {
		op.Extensions["x-permissions"] = perms
	}

	if rec.IsDeprecated() {
		op.Deprecated = true
		if content := c.describe(rec.Deprecated.Content); content != "" {
			op.Description = content
		}
	}

	if strings.TrimSpace(op.Description) == "" {
		c.add(ConversionIssue{
			Path:      v.path + ".description",
			Operation: v.operation,
			Message:   fmt.Sprintf("operation %s has no description", v.opID),
			Severity:  SeverityWarning,
		})
	}
	return op, nil
}

// fail wraps a fatal error with the verb's location.
func (v *verb) fail(err error) error {
	return &oaserrors.ConversionError{
		Operation: v.operation,
		Path:      v.path,
		Message:   "cannot compile annotation",
		Cause:     err,
	}
}

// advise reports schema builder notes as warnings.
func (c *compilation) advise(v *verb, where string, notes []string) {
	for _, note := range notes {
		c.add(ConversionIssue{
			Path:      v.path + "." + where,
			Operation: v.operation,
			Message:   note,
			Severity:  SeverityWarning,
		})
	}
}
