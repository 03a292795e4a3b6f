package apidoc

import "strings"

// Placement says where an annotated field ends up in the document.
type Placement int

const (
	// PlacementGeneric marks schema fields: request body, success or error payloads.
	PlacementGeneric Placement = iota
	// PlacementPath marks URL path parameters.
	PlacementPath
	// PlacementQuery marks URL query parameters.
	PlacementQuery
	// PlacementHeader marks request header parameters.
	PlacementHeader
	// PlacementResponseHeader marks headers sent back with a response.
	PlacementResponseHeader
	// PlacementCookie marks cookie parameters.
	PlacementCookie
	// PlacementForm marks form parameters.
	PlacementForm
	// PlacementBody marks explicit request body fields.
	PlacementBody
	// PlacementBearer marks bearer authorization headers.
	PlacementBearer
	// PlacementBasic marks basic (or other header based) authorization.
	PlacementBasic
)

var placementNames = map[Placement]string{
	PlacementGeneric:        "generic",
	PlacementPath:           "path",
	PlacementQuery:          "query",
	PlacementHeader:         "header",
	PlacementResponseHeader: "response-header",
	PlacementCookie:         "cookie",
	PlacementForm:           "form",
	PlacementBody:           "body",
	PlacementBearer:         "bearer",
	PlacementBasic:          "basic",
}

// String returns the placement name.
func (p Placement) String() string {
	if s, ok := placementNames[p]; ok {
		return s
	}
	return "unknown"
}

// ClassifyGroup maps an apidoc group name to a placement. Matching ignores
// case, spaces, underscores and hyphens, so "URL Query Parameters" and
// "urlQueryParameters" classify alike.
func ClassifyGroup(group string) Placement {
	g := normalizeGroup(group)
	switch g {
	case "urlparameters":
		return PlacementPath
	case "urlqueryparameters":
		return PlacementQuery
	case "headerparameters", "header":
		return PlacementHeader
	case "headersresponse":
		return PlacementResponseHeader
	case "cookieparameters":
		return PlacementCookie
	case "formparameters":
		return PlacementForm
	case "bodyparameters":
		return PlacementBody
	case "bearerauthorization":
		return PlacementBearer
	}
	if strings.HasPrefix(g, "basic") {
		return PlacementBasic
	}
	return PlacementGeneric
}

func normalizeGroup(group string) string {
	var b strings.Builder
	b.Grow(len(group))
	for _, r := range strings.ToLower(group) {
		switch r {
		case ' ', '_', '-', '\t':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
