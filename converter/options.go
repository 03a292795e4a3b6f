package converter

import (
	"fmt"
	"io"

	"github.com/ALE-Rainbow/apidoc-swagger/apidoc"
	"github.com/ALE-Rainbow/apidoc-swagger/internal/options"
)

// Option is a function that configures a conversion operation
type Option func(*convertConfig) error

// convertConfig holds configuration for a conversion operation
type convertConfig struct {
	// Records source (exactly one must be set)
	records       []apidoc.Record
	hasRecords    bool
	recordsFile   *string
	recordsReader io.Reader

	// Project source (at most one)
	project     *apidoc.Project
	projectFile *string

	// Override source (at most one)
	override     map[string]any
	overrideFile *string

	// Configuration options
	logger      Logger
	describe    func(string) string
	strictMode  bool
	includeInfo bool
}

// ConvertWithOptions compiles annotation records using functional options.
//
// Example:
//
//	result, err := converter.ConvertWithOptions(
//	    converter.WithRecordsFile("doc/api_data.json"),
//	    converter.WithProjectFile("doc/api_project.json"),
//	    converter.WithOverrideFile("swagger-init.json"),
//	)
func ConvertWithOptions(opts ...Option) (*ConversionResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("converter: invalid options: %w", err)
	}

	records := cfg.records
	switch {
	case cfg.recordsFile != nil:
		if records, err = apidoc.ParseRecordsFile(*cfg.recordsFile); err != nil {
			return nil, err
		}
	case cfg.recordsReader != nil:
		if records, err = apidoc.ParseRecords(cfg.recordsReader, "records"); err != nil {
			return nil, err
		}
	}

	project := cfg.project
	if cfg.projectFile != nil {
		if project, err = apidoc.ParseProjectFile(*cfg.projectFile); err != nil {
			return nil, err
		}
	}

	override := cfg.override
	if cfg.overrideFile != nil {
		if override, err = apidoc.ParseOverrideFile(*cfg.overrideFile); err != nil {
			return nil, err
		}
	}

	c := &Converter{
		StrictMode:           cfg.strictMode,
		IncludeInfo:          cfg.includeInfo,
		Logger:               cfg.logger,
		DescriptionFormatter: cfg.describe,
	}
	return c.Convert(records, project, override)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{
		strictMode:  false,
		includeInfo: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"must specify a records source (use WithRecords, WithRecordsFile or WithRecordsReader)",
		"must specify exactly one records source",
		cfg.hasRecords, cfg.recordsFile != nil, cfg.recordsReader != nil,
	); err != nil {
		return nil, err
	}
	if err := options.ValidateAtMostOneSource(
		"must specify at most one project source",
		cfg.project != nil, cfg.projectFile != nil,
	); err != nil {
		return nil, err
	}
	if err := options.ValidateAtMostOneSource(
		"must specify at most one override source",
		cfg.override != nil, cfg.overrideFile != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithRecords specifies already decoded records as the input
func WithRecords(records []apidoc.Record) Option {
	return func(cfg *convertConfig) error {
		cfg.records = records
		cfg.hasRecords = true
		return nil
	}
}

// WithRecordsFile specifies an api_data.json (or YAML) file as the input
func WithRecordsFile(path string) Option {
	return func(cfg *convertConfig) error {
		cfg.recordsFile = &path
		return nil
	}
}

// WithRecordsReader specifies a reader producing the records document
func WithRecordsReader(r io.Reader) Option {
	return func(cfg *convertConfig) error {
		if r == nil {
			return fmt.Errorf("records reader is nil")
		}
		cfg.recordsReader = r
		return nil
	}
}

// WithProject sets the project metadata used for the info section
func WithProject(p *apidoc.Project) Option {
	return func(cfg *convertConfig) error {
		cfg.project = p
		return nil
	}
}

// WithProjectFile reads the project metadata from an api_project.json file.
// An empty path is ignored.
func WithProjectFile(path string) Option {
	return func(cfg *convertConfig) error {
		if path == "" {
			return nil
		}
		cfg.projectFile = &path
		return nil
	}
}

// WithOverride sets the document deep-merged on top of the generated one
func WithOverride(doc map[string]any) Option {
	return func(cfg *convertConfig) error {
		cfg.override = doc
		return nil
	}
}

// WithOverrideFile reads the override document from a file.
// An empty path is ignored.
func WithOverrideFile(path string) Option {
	return func(cfg *convertConfig) error {
		if path == "" {
			return nil
		}
		cfg.overrideFile = &path
		return nil
	}
}

// WithLogger sets the logger that receives conversion issues
// Default: NopLogger
func WithLogger(l Logger) Option {
	return func(cfg *convertConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithDescriptionFormatter sets the function applied to descriptions,
// for example an HTML to Markdown renderer
func WithDescriptionFormatter(fn func(string) string) Option {
	return func(cfg *convertConfig) error {
		cfg.describe = fn
		return nil
	}
}

// WithStrictMode makes any warning or error issue fail the conversion
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithIncludeInfo enables or disables informational messages
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}
