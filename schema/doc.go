// Package schema compiles flat, dotted annotation fields into a nested
// component schema graph.
//
// The pieces build on each other:
//
//   - [MapType] maps an annotation type name to an OpenAPI type and format.
//   - [ExtractAllowedValues], [ExtractDefaultValue] and [ParseSize] turn
//     annotation constraints into enum, pattern, default and range keywords.
//   - [Registry] holds the named component schemas of one compilation run.
//   - [Builder.Tree] attaches every field to the right object, creating
//     intermediate objects and array item schemas on demand.
//   - [Builder.Union] combines alternative schemas under a oneOf.
//
// Schemas are kin-openapi values, so the registry can be dropped straight
// into an openapi3.Components.
package schema
