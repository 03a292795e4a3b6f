package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates an input document or example could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrConversion indicates a record could not be compiled.
	ErrConversion = errors.New("conversion error")

	// ErrConfig indicates an invalid option or a refused annotation value.
	ErrConfig = errors.New("configuration error")
)

// ParseError reports a record, project, override or example that could not
// be decoded. Line and Column are 1-based and zero when unknown.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	var b errorText
	b.start(ErrParse)
	b.add(" in ", e.Path)
	if e.Line > 0 {
		b.add(" at line ", fmt.Sprint(e.Line))
		if e.Column > 0 {
			b.add(", column ", fmt.Sprint(e.Column))
		}
	}
	return b.finish(e.Message, e.Cause)
}

func (e *ParseError) Unwrap() error        { return e.Cause }
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ConversionError reports an annotated verb that could not be compiled.
// Operation reads "METHOD url" as written in the annotation; Path is the
// location in the output document when one was reached.
type ConversionError struct {
	Operation string
	Path      string
	Message   string
	Cause     error
}

func (e *ConversionError) Error() string {
	var b errorText
	b.start(ErrConversion)
	b.add(" in ", e.Operation)
	b.add(" at ", e.Path)
	return b.finish(e.Message, e.Cause)
}

func (e *ConversionError) Unwrap() error        { return e.Cause }
func (e *ConversionError) Is(target error) bool { return target == ErrConversion }

// ConfigError reports an invalid option, or an annotation value the compiler
// refuses to interpret, such as a numeric range written as allowed values.
// Option names the option or annotation attribute.
type ConfigError struct {
	Option  string
	Value   any
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	var b errorText
	b.start(ErrConfig)
	b.add(" for ", e.Option)
	if e.Value != nil {
		b.add(" (value: ", fmt.Sprintf("%v)", e.Value))
	}
	return b.finish(e.Message, e.Cause)
}

func (e *ConfigError) Unwrap() error        { return e.Cause }
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// errorText assembles "<kind>[ location...][: message][: cause]".
type errorText struct {
	strings.Builder
}

func (b *errorText) start(kind error) {
	b.WriteString(kind.Error())
}

// add appends prefix+value when value is set.
func (b *errorText) add(prefix, value string) {
	if value == "" {
		return
	}
	b.WriteString(prefix)
	b.WriteString(value)
}

func (b *errorText) finish(message string, cause error) string {
	b.add(": ", message)
	if cause != nil {
		b.add(": ", cause.Error())
	}
	return b.String()
}
