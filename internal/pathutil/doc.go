// Package pathutil converts annotated route URLs into OpenAPI path templates
// and provides the reference and output-path helpers the compiler shares.
//
// Routes are written Express-style in annotations:
//
//	tmpl := pathutil.Template("/users/:id/posts/:postId?")
//	// tmpl.Path == "/users/{id}/posts/{postId}"
//	// tmpl.Keys == []string{"id", "postId"}
//
// Parameters already written with braces are kept and reported as keys.
//
// [SanitizeOutputPath] validates output file paths before the CLI writes to them.
package pathutil
