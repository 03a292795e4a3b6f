// Package apidoc models the annotation records produced by the apidoc
// comment parser (api_data.json and api_project.json) and loads them.
//
// Records are decoded with yaml.v4, which reads both the JSON files apidoc
// emits and hand-written YAML. Field group maps are decoded into ordered
// [FieldGroups] so compilation follows the order of the input.
//
// Ingestion classifies every field once through [ClassifyGroup]. Later
// stages switch on the resulting [Placement] instead of inspecting group
// strings:
//
//	records, err := apidoc.ParseRecordsFile("doc/api_data.json")
//	if err != nil {
//	    return err
//	}
//	prepared, rejected := apidoc.Prepare(records)
package apidoc
