package apidoc

import (
	"bytes"
	"io"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/ALE-Rainbow/apidoc-swagger/oaserrors"
)

// ParseRecords decodes an api_data document (JSON or YAML) from r.
// source names the input in errors.
func ParseRecords(r io.Reader, source string) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: source, Message: "failed to read records", Cause: err}
	}
	var records []Record
	if err := decode(data, &records); err != nil {
		return nil, &oaserrors.ParseError{Path: source, Message: "invalid records document", Cause: err}
	}
	return records, nil
}

// ParseRecordsFile reads and decodes an api_data file.
func ParseRecordsFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "failed to open records", Cause: err}
	}
	defer func() { _ = f.Close() }()
	return ParseRecords(f, path)
}

// ParseProject decodes an api_project document from r.
func ParseProject(r io.Reader, source string) (*Project, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: source, Message: "failed to read project", Cause: err}
	}
	var project Project
	if err := decode(data, &project); err != nil {
		return nil, &oaserrors.ParseError{Path: source, Message: "invalid project document", Cause: err}
	}
	return &project, nil
}

// ParseProjectFile reads and decodes an api_project file.
func ParseProjectFile(path string) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "failed to open project", Cause: err}
	}
	defer func() { _ = f.Close() }()
	return ParseProject(f, path)
}

// ParseOverride decodes the base document merged over the generated one.
// An empty input yields an empty map.
func ParseOverride(r io.Reader, source string) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: source, Message: "failed to read override", Cause: err}
	}
	doc := map[string]any{}
	if err := decode(data, &doc); err != nil {
		return nil, &oaserrors.ParseError{Path: source, Message: "override must be a mapping", Cause: err}
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// ParseOverrideFile reads and decodes an override file.
func ParseOverrideFile(path string) (map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "failed to open override", Cause: err}
	}
	defer func() { _ = f.Close() }()
	return ParseOverride(f, path)
}

func decode(data []byte, out any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return yaml.Unmarshal(data, out)
}
