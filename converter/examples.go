package converter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"go.yaml.in/yaml/v4"

	"github.com/ALE-Rainbow/apidoc-swagger/apidoc"
	"github.com/ALE-Rainbow/apidoc-swagger/internal/naming"
	"github.com/ALE-Rainbow/apidoc-swagger/oaserrors"
)

// mimeUnknown is used for example types that name no known media type.
const mimeUnknown = "application/unknown"

// mimeFromType maps an example type such as "json" to a media type.
// ok is false when the type was not recognized.
func mimeFromType(typ string) (mime string, ok bool) {
	switch typ {
	case "json":
		return "application/json", true
	case "csv":
		return "text/csv", true
	case "txt":
		return "text/plain", true
	case "xml":
		return "text/xml", true
	}
	if strings.HasPrefix(typ, "application/") || strings.HasPrefix(typ, "audio/") {
		return typ, true
	}
	return mimeUnknown, false
}

// parseExample returns the value to embed for an example. Non-JSON
// examples are embedded verbatim.
//
// JSON examples are cleaned first: a leading HTTP status line and "//"
// comments are removed and raw newlines inside strings are escaped. The
// result must then be strict JSON. When it is not, the content is parsed
// again with a YAML parser, which accepts a superset of JSON, only to give
// a better position in the returned *oaserrors.ParseError.
func parseExample(content, typ, source string) (any, error) {
	if typ != "json" {
		return content, nil
	}

	cleaned := cleanJSONExample(content)
	dec := json.NewDecoder(strings.NewReader(cleaned))
	dec.UseNumber()
	var value any
	err := dec.Decode(&value)
	if err == nil && dec.More() {
		err = errors.New("unexpected data after the top-level value")
	}
	if err == nil {
		return value, nil
	}

	perr := &oaserrors.ParseError{Path: source, Message: "invalid JSON example", Cause: err}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		perr.Line, perr.Column = position(cleaned, syntaxErr.Offset)
	}
	var lenient any
	if yerr := yaml.Unmarshal([]byte(cleaned), &lenient); yerr != nil {
		perr.Message = "invalid JSON example: " + yerr.Error()
	}
	return nil, perr
}

// cleanJSONExample strips what apidoc authors commonly paste around a JSON
// body: the "HTTP/1.1 200 OK" status line, // comments and /* */ comments.
// Raw newlines inside string literals are escaped so multi-line strings
// survive. A block comment keeps its newlines so error positions still
// match the source.
func cleanJSONExample(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	inString, escaped := false, false
	lineStart := true
	for i := 0; i < len(content); i++ {
		ch := content[i]

		if lineStart && !inString {
			rest := strings.TrimLeft(content[i:], " \t")
			if strings.HasPrefix(rest, "HTTP") {
				i = skipLine(content, i)
				continue
			}
		}
		lineStart = false

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			case ch == '\n':
				b.WriteString(`\n`)
				continue
			case ch == '\r':
				continue
			}
			b.WriteByte(ch)
			continue
		}

		switch {
		case ch == '"':
			inString = true
		case ch == '/' && i+1 < len(content) && content[i+1] == '/':
			i = skipLine(content, i)
			b.WriteByte('\n')
			lineStart = true
			continue
		case ch == '/' && i+1 < len(content) && content[i+1] == '*':
			comment := content[i:]
			if end := strings.Index(content[i+2:], "*/"); end >= 0 {
				comment = content[i : i+2+end+2]
			}
			b.WriteString(strings.Repeat("\n", strings.Count(comment, "\n")))
			i += len(comment) - 1
			continue
		case ch == '\n':
			lineStart = true
		}
		b.WriteByte(ch)
	}
	return b.String()
}

// skipLine returns the index of the newline ending the line at i, or the
// last index of s.
func skipLine(s string, i int) int {
	if j := strings.IndexByte(s[i:], '\n'); j >= 0 {
		return i + j
	}
	return len(s) - 1
}

// position converts a byte offset into a 1-based line and column.
func position(s string, offset int64) (line, col int) {
	if offset > int64(len(s)) {
		offset = int64(len(s))
	}
	prefix := s[:offset]
	line = strings.Count(prefix, "\n") + 1
	col = int(offset) - (strings.LastIndexByte(prefix, '\n') + 1)
	return line, col
}

// exampleName derives the key of a named example from its title.
func exampleName(title string, taken openapi3.Examples) string {
	base := naming.ToCamelCase(title)
	if base == "" {
		base = "response"
	}
	name := base
	for n := 2; taken[name] != nil; n++ {
		name = fmt.Sprintf("%s%d", base, n)
	}
	return name
}

// attachExamples adds examples to content, one media type per example
// type. Media types created here carry no schema. Examples that fail to
// parse are reported and left out.
func (c *compilation) attachExamples(v *verb, content openapi3.Content, examples []apidoc.Example, where string) {
	for i, ex := range examples {
		mime, ok := mimeFromType(ex.Type)
		if !ok {
			c.add(ConversionIssue{
				Path:      v.path + "." + where,
				Operation: v.operation,
				Message:   fmt.Sprintf("unexpected example type %q", ex.Type),
				Severity:  SeverityWarning,
				Value:     ex.Type,
			})
		}

		source := fmt.Sprintf("%s %s example %d", v.operation, where, i+1)
		value, err := parseExample(ex.Content, ex.Type, source)
		if err != nil {
			c.add(ConversionIssue{
				Path:      v.path + "." + where,
				Operation: v.operation,
				Message:   fmt.Sprintf("example %q skipped: %v", ex.Title, err),
				Severity:  SeverityError,
				Context:   ex.Content,
			})
			continue
		}

		mt, exists := content[mime]
		if !exists || mt == nil {
			mt = openapi3.NewMediaType()
			content[mime] = mt
		}
		if mt.Examples == nil {
			mt.Examples = openapi3.Examples{}
		}
		example := openapi3.NewExample(value)
		example.Summary = ex.Title
		mt.Examples[exampleName(ex.Title, mt.Examples)] = &openapi3.ExampleRef{Value: example}
	}
}

// firstExampleMime returns the media type of the first example, or "".
func firstExampleMime(examples []apidoc.Example) string {
	if len(examples) == 0 {
		return ""
	}
	mime, _ := mimeFromType(examples[0].Type)
	return mime
}
