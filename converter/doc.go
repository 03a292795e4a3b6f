// Package converter compiles apidoc annotation records into an OpenAPI 3.0.3
// document.
//
// Records are grouped by URL in input order. Express-style path parameters
// (":id", ":id?", ":id(\\d+)") become "{id}". For every (URL, verb) record the
// converter builds parameters, a request body, success and error responses,
// security requirements and x-permissions, writing shared schemas into
// components.schemas. A caller-supplied override document is then
// deep-merged on top, and the tag list is checked against the tags the
// operations use and against x-tagGroups.
//
// # Quick Start
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithRecordsFile("doc/api_data.json"),
//		converter.WithProjectFile("doc/api_project.json"),
//		converter.WithOverrideFile("swagger-init.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, _ := result.JSON()
//	os.Stdout.Write(data)
//
// Or use a reusable Converter instance:
//
//	c := converter.New()
//	c.Logger = converter.NewSlogAdapter(slog.Default())
//	result, err := c.Convert(records, project, override)
//
// # Conversion Issues
//
// Most annotation problems do not stop the run. They are collected in
// ConversionResult.Issues with a severity: Info for conversion choices,
// Warning for advisory findings such as a missing description, Error for
// problems visible in the output such as an example that is not valid JSON,
// and Critical for records that could not be converted at all, such as an
// unsupported HTTP method. With StrictMode any warning or worse fails the
// run.
//
// A numeric range written as allowed values ("{Number{1..10}}") is refused
// outright: Convert returns an error wrapping *oaserrors.ConfigError.
//
// # Schema Naming
//
// The request body schema is named after the operation id, the success
// schema after the operation id plus "Success" (or the status code for a
// non-default group), and arrays of objects get an item schema named after
// the owning schema and the full field path.
package converter
