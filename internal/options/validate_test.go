package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSingleInputSource(t *testing.T) {
	tests := []struct {
		name    string
		sources []bool
		wantErr string
	}{
		{"none set", []bool{false, false, false}, "no records"},
		{"one set", []bool{false, true, false}, ""},
		{"two set", []bool{true, true, false}, "too many records"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSingleInputSource("no records", "too many records", tt.sources...)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestValidateAtMostOneSource(t *testing.T) {
	assert.NoError(t, ValidateAtMostOneSource("two projects"))
	assert.NoError(t, ValidateAtMostOneSource("two projects", false, false))
	assert.NoError(t, ValidateAtMostOneSource("two projects", true, false))
	assert.EqualError(t, ValidateAtMostOneSource("two projects", true, true), "two projects")
}
