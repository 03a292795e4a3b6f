package apidoc

import (
	"strings"

	"github.com/ALE-Rainbow/apidoc-swagger/internal/naming"
	"github.com/ALE-Rainbow/apidoc-swagger/oaserrors"
)

// supportedMethods lists the HTTP methods an OpenAPI path item can hold.
var supportedMethods = map[string]bool{
	"get":     true,
	"put":     true,
	"post":    true,
	"delete":  true,
	"options": true,
	"head":    true,
	"patch":   true,
	"trace":   true,
}

// Prepare validates records and returns normalized copies. The input slice
// and its records are left untouched.
//
// For every accepted record the method is lower-cased ("del" becomes
// "delete"), a missing name is derived from the method and URL, and every
// field gets its Placement. Records with an unsupported method or no URL
// are returned as errors instead.
func Prepare(records []Record) ([]Record, []error) {
	prepared := make([]Record, 0, len(records))
	var rejected []error

	for i := range records {
		r, err := prepareRecord(records[i])
		if err != nil {
			rejected = append(rejected, err)
			continue
		}
		prepared = append(prepared, r)
	}
	return prepared, rejected
}

func prepareRecord(in Record) (Record, error) {
	r := in
	r.Parameter = in.Parameter.clone()
	r.Success = in.Success.clone()
	r.Error = in.Error.clone()
	r.Header = in.Header.clone()
	if in.Permission != nil {
		r.Permission = append([]Permission(nil), in.Permission...)
	}
	if in.Deprecated != nil {
		d := *in.Deprecated
		r.Deprecated = &d
	}

	if strings.TrimSpace(r.URL) == "" {
		return Record{}, &oaserrors.ConversionError{
			Operation: in.Operation(),
			Message:   "record has no url",
		}
	}

	method := strings.ToLower(strings.TrimSpace(r.Type))
	if method == "del" {
		method = "delete"
	}
	if !supportedMethods[method] {
		return Record{}, &oaserrors.ConversionError{
			Operation: in.Operation(),
			Message:   "unsupported HTTP method " + strings.ToUpper(r.Type),
		}
	}
	r.Method = method

	if strings.TrimSpace(r.Name) == "" {
		r.Name = DeriveName(method, r.URL)
	}

	for _, s := range []*Section{r.Parameter, r.Success, r.Error, r.Header} {
		if s == nil {
			continue
		}
		classifyFields(s.Fields)
	}
	return r, nil
}

func classifyFields(groups FieldGroups) {
	for gi := range groups {
		for fi := range groups[gi].Fields {
			f := &groups[gi].Fields[fi]
			group := f.Group
			if group == "" {
				group = groups[gi].Name
			}
			f.Placement = ClassifyGroup(group)
		}
	}
}

// DeriveName builds an operation name from the method and URL the way
// apidoc names unnamed blocks: "get" + "/users/:id" gives "GetUsersId".
func DeriveName(method, url string) string {
	var b strings.Builder
	b.WriteString(naming.ToPascalCase(strings.ToLower(method)))
	for _, segment := range strings.Split(url, "/") {
		segment = strings.Trim(segment, ":{}?*+")
		if segment == "" {
			continue
		}
		b.WriteString(naming.ToPascalCase(segment))
	}
	return b.String()
}
