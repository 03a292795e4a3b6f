// Package apidocswagger compiles apidoc endpoint annotations into an
// OpenAPI 3.0.3 document.
//
// apidoc writes the annotations it finds in source comments to
// api_data.json (one record per endpoint) and the project metadata to
// api_project.json. apidoc-swagger reads both, turns every parameter,
// success and error group into operations, parameters, request bodies,
// responses and component schemas, and deep-merges an optional override
// document (tags, x-tagGroups, x-servers) on top of the result.
//
// # Packages
//
//   - apidoc: decode records, project metadata and override documents
//   - schema: build JSON schemas from dotted field paths and register them
//     under stable component names
//   - converter: compile records into the final document and report issues
//   - oaserrors: typed errors shared by the packages above
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
//	for _, issue := range result.Issues {
//		fmt.Println(issue.String())
//	}
//	path, err := converter.WriteResult(result, "out", converter.FormatJSON)
//
// # Command Line
//
// The apidoc-swagger binary wraps the same pipeline:
//
//	apidoc-swagger convert --data doc/api_data.json --project doc/api_project.json -o out
//	apidoc-swagger mcp
//	apidoc-swagger version
//
// The mcp subcommand serves the convert and list_records tools over stdio
// for Model Context Protocol clients.
package apidocswagger
