// Package fieldpath splits dotted annotation field names into the object
// path that owns the field and the property name itself.
package fieldpath

import "strings"

// Path is a resolved dotted field name.
type Path struct {
	// Full is the field name as written, e.g. "profile.address.city"
	Full string
	// Leaf is the property name, e.g. "city"
	Leaf string
	// Object is the dot-joined owning object path, e.g. "profile.address".
	// Empty when the field belongs to the root schema.
	Object string
	// Segments are the owning object path segments, e.g. ["profile", "address"]
	Segments []string
}

// Resolve splits field on dots. A field without dots resolves to a root
// property.
func Resolve(field string) Path {
	parts := strings.Split(field, ".")
	if len(parts) == 1 {
		return Path{Full: field, Leaf: field}
	}
	segments := parts[:len(parts)-1]
	return Path{
		Full:     field,
		Leaf:     parts[len(parts)-1],
		Object:   strings.Join(segments, "."),
		Segments: segments,
	}
}

// Nested reports whether the field lives below the root schema.
func (p Path) Nested() bool {
	return len(p.Segments) > 0
}
