package converter

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/ALE-Rainbow/apidoc-swagger/apidoc"
	"github.com/ALE-Rainbow/apidoc-swagger/internal/naming"
)

// security builds the operation's security requirements from header
// fields placed in a bearer or basic authorization group, registering each
// scheme the first time its key is seen.
func (c *compilation) security(v *verb) openapi3.SecurityRequirements {
	var reqs openapi3.SecurityRequirements
	for _, f := range v.rec.HeaderFields().Filter(is(apidoc.PlacementBearer, apidoc.PlacementBasic)) {
		var key string
		var scheme *openapi3.SecurityScheme
		if f.Placement == apidoc.PlacementBearer {
			key, scheme = c.bearerScheme(f)
		} else {
			key, scheme = c.basicScheme(f)
		}

		if _, ok := c.securitySchemes[key]; !ok {
			c.securitySchemes[key] = &openapi3.SecuritySchemeRef{Value: scheme}
			c.logger.Debug("security scheme registered", "name", key, "type", scheme.Type)
		}
		reqs = append(reqs, openapi3.SecurityRequirement{key: []string{}})
	}
	return reqs
}

// bearerScheme keys the Authorization header as "Bearer" and any other
// header as "Bearer-<name>".
func (c *compilation) bearerScheme(f apidoc.Field) (string, *openapi3.SecurityScheme) {
	key := "Bearer-" + f.Field
	if isAuthorization(f.Field) {
		key = "Bearer"
	}

	scheme := &openapi3.SecurityScheme{Description: c.describe(f.Description)}
	if strings.EqualFold(f.Type, "apiKey") {
		scheme.Type = "apiKey"
		scheme.Name = f.Field
		scheme.In = openapi3.ParameterInHeader
	} else {
		scheme.Type = "http"
		scheme.Scheme = "bearer"
	}
	return key, scheme
}

// basicScheme keys the Authorization header as "Basic" and any other
// header by its PascalCased name, so "x-api-key" becomes "XApiKey".
// Only a field typed "basic" is HTTP basic auth; anything else is an API
// key carried in that header.
func (c *compilation) basicScheme(f apidoc.Field) (string, *openapi3.SecurityScheme) {
	key := naming.ToPascalCase(f.Field)
	if isAuthorization(f.Field) {
		key = "Basic"
	}

	scheme := &openapi3.SecurityScheme{Description: c.describe(f.Description)}
	if f.LowerType() == "basic" {
		scheme.Type = "http"
		scheme.Scheme = "basic"
	} else {
		scheme.Type = "apiKey"
		scheme.Name = f.Field
		scheme.In = openapi3.ParameterInHeader
	}
	return key, scheme
}

func isAuthorization(name string) bool {
	return strings.EqualFold(name, "authorization")
}
