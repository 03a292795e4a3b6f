package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapType(t *testing.T) {
	tests := []struct {
		input string
		want  TypeInfo
	}{
		{"string", TypeInfo{Type: "string"}},
		{"String", TypeInfo{Type: "string"}},
		{"date", TypeInfo{Type: "string", Format: "date"}},
		{"date-time", TypeInfo{Type: "string", Format: "date-time"}},
		{"byte", TypeInfo{Type: "string", Format: "byte"}},
		{"Binary", TypeInfo{Type: "string", Format: "binary"}},
		{"password", TypeInfo{Type: "string", Format: "password"}},
		{"integer", TypeInfo{Type: "integer", Format: "int32"}},
		{"long", TypeInfo{Type: "integer", Format: "int64"}},
		{"float", TypeInfo{Type: "number", Format: "float"}},
		{"Double", TypeInfo{Type: "number", Format: "double"}},
		{"Number", TypeInfo{Type: "number"}},
		{"Boolean", TypeInfo{Type: "boolean"}},
		{"Mystery", TypeInfo{Type: "mystery"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, MapType(tt.input))
		})
	}
}

func TestTypeInfoSchema(t *testing.T) {
	s := MapType("long").Schema()
	assert.True(t, s.Type.Is("integer"))
	assert.Equal(t, "int64", s.Format)

	empty := TypeInfo{}.Schema()
	assert.Nil(t, empty.Type)
}
