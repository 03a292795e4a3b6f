package apidoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyGroup(t *testing.T) {
	tests := []struct {
		group string
		want  Placement
	}{
		{"urlParameters", PlacementPath},
		{"URL Parameters", PlacementPath},
		{"urlQueryParameters", PlacementQuery},
		{"url_query_parameters", PlacementQuery},
		{"headerParameters", PlacementHeader},
		{"Header", PlacementHeader},
		{"headersResponse", PlacementResponseHeader},
		{"cookieParameters", PlacementCookie},
		{"formParameters", PlacementForm},
		{"Body Parameters", PlacementBody},
		{"bearerAuthorization", PlacementBearer},
		{"basicAuthorization", PlacementBasic},
		{"Basic", PlacementBasic},
		{"Parameter", PlacementGeneric},
		{"Success 200", PlacementGeneric},
		{"Error 4xx", PlacementGeneric},
		{"", PlacementGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.group, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyGroup(tt.group))
		})
	}
}

func TestPlacementString(t *testing.T) {
	assert.Equal(t, "response-header", PlacementResponseHeader.String())
	assert.Equal(t, "generic", PlacementGeneric.String())
	assert.Equal(t, "unknown", Placement(42).String())
}
