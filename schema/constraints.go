package schema

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/ALE-Rainbow/apidoc-swagger/oaserrors"
)

var (
	numericRangeRegex = regexp.MustCompile(`-?\d+--?\d+`)
	integerPrefix     = regexp.MustCompile(`^\s*[-+]?\d+`)
	stringSizeRegex   = regexp.MustCompile(`^(\d*)\.\.(\d*)$`)
	bareSizeRegex     = regexp.MustCompile(`^\d+$`)
	numericSizeRegex  = regexp.MustCompile(`^(-?\d*)-(\d*)$`)
)

// Constraints are the schema keywords derived from annotation constraints.
// Zero values mean "not set".
type Constraints struct {
	Enum       []any
	Pattern    string
	Default    any
	HasDefault bool
	MinLength  *uint64
	MaxLength  *uint64
	Minimum    *float64
	Maximum    *float64
}

// Apply writes the set constraints onto s.
func (c Constraints) Apply(s *openapi3.Schema) {
	if c.Enum != nil {
		s.Enum = c.Enum
	}
	if c.Pattern != "" {
		s.Pattern = c.Pattern
	}
	if c.HasDefault {
		s.Default = c.Default
	}
	if c.MinLength != nil {
		s.MinLength = *c.MinLength
	}
	if c.MaxLength != nil {
		s.MaxLength = c.MaxLength
	}
	if c.Minimum != nil {
		s.Min = c.Minimum
	}
	if c.Maximum != nil {
		s.Max = c.Maximum
	}
}

// ExtractAllowedValues turns an allowed-values list into an enum or pattern.
//
// One layer of surrounding quotes is stripped from each value. A first value
// starting with "/" makes the list a pattern. Otherwise values become enum
// members typed after typ: integers for number/integer/long, floats for
// float/double, booleans for boolean and strings for everything else.
//
// A number field whose first value looks like a range ("1..9", "100-999")
// is refused with a *oaserrors.ConfigError: ranges belong in the size
// annotation, and an enum built from them would be wrong.
func ExtractAllowedValues(values []string, typ string) (Constraints, error) {
	var c Constraints
	if len(values) == 0 {
		return c, nil
	}

	stripped := make([]string, len(values))
	for i, v := range values {
		stripped[i] = stripQuotes(v)
	}

	if strings.HasPrefix(stripped[0], "/") {
		c.Pattern = stripped[0]
		return c, nil
	}

	if typ == "number" && (strings.Contains(stripped[0], "..") || numericRangeRegex.MatchString(stripped[0])) {
		return c, &oaserrors.ConfigError{
			Option:  "allowedValues",
			Value:   stripped[0],
			Message: "number range must be set using {number{100-999}} and not as an allowed value",
		}
	}

	c.Enum = make([]any, len(stripped))
	for i, v := range stripped {
		c.Enum[i] = typedValue(v, typ)
	}
	return c, nil
}

// ExtractDefaultValue turns a default-value string into a default or pattern.
// It returns advisory messages for values it could not interpret; those
// never abort compilation.
func ExtractDefaultValue(value, typ string) (Constraints, []string) {
	var c Constraints
	if value == "" {
		return c, nil
	}
	value = stripQuotes(value)
	if value == "" {
		return c, nil
	}

	if strings.HasPrefix(value, "/") {
		if isNumericType(typ) {
			return c, []string{fmt.Sprintf("pattern default %q ignored on %s field", value, typ)}
		}
		c.Pattern = value
		return c, nil
	}

	switch {
	case isIntegerType(typ):
		n, ok := parseIntPrefix(value)
		if !ok {
			return c, []string{fmt.Sprintf("default %q is not an integer", value)}
		}
		c.Default, c.HasDefault = n, true
	case isFloatType(typ):
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return c, []string{fmt.Sprintf("default %q is not a number", value)}
		}
		c.Default, c.HasDefault = f, true
	case typ == "string[]":
		var parsed any
		if err := json.Unmarshal([]byte(value), &parsed); err != nil {
			c.Default, c.HasDefault = value, true
			return c, []string{fmt.Sprintf("string[] default %q is not valid JSON, kept as text", value)}
		}
		c.Default, c.HasDefault = parsed, true
	case typ == "boolean":
		c.Default, c.HasDefault = strings.EqualFold(value, "true"), true
	default:
		c.Default, c.HasDefault = value, true
	}
	return c, nil
}

// ParseSize turns a size annotation into length or range keywords.
// typ is the OpenAPI type of the field. Strings accept "min..max" (either
// bound optional) or a bare length; integers and numbers accept "min-max".
func ParseSize(size, typ string) Constraints {
	var c Constraints
	size = strings.TrimSpace(size)
	if size == "" {
		return c
	}

	switch typ {
	case "string":
		if m := stringSizeRegex.FindStringSubmatch(size); m != nil {
			c.MinLength = parseUint(m[1])
			c.MaxLength = parseUint(m[2])
			return c
		}
		if bareSizeRegex.MatchString(size) {
			c.MinLength = parseUint(size)
			c.MaxLength = parseUint(size)
		}
	case "integer", "number":
		if m := numericSizeRegex.FindStringSubmatch(size); m != nil {
			c.Minimum = parseFloat(m[1])
			c.Maximum = parseFloat(m[2])
		}
	}
	return c
}

func typedValue(v, typ string) any {
	switch {
	case isIntegerType(typ):
		if n, ok := parseIntPrefix(v); ok {
			return n
		}
	case isFloatType(typ):
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	case typ == "boolean":
		return strings.EqualFold(v, "true")
	}
	return v
}

// stripQuotes removes one leading and one trailing quote character.
func stripQuotes(v string) string {
	if len(v) > 0 && (v[0] == '"' || v[0] == '\'') {
		v = v[1:]
	}
	if n := len(v); n > 0 && (v[n-1] == '"' || v[n-1] == '\'') {
		v = v[:n-1]
	}
	return v
}

// parseIntPrefix parses the leading base-10 integer of v, ignoring trailing text.
func parseIntPrefix(v string) (int64, bool) {
	m := integerPrefix.FindString(v)
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(m), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseUint(v string) *uint64 {
	if v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func parseFloat(v string) *float64 {
	if v == "" || v == "-" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}
