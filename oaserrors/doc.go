// Package oaserrors provides structured error types for apidoc-swagger.
//
// Import path: github.com/ALE-Rainbow/apidoc-swagger/oaserrors
//
// The types support [errors.Is] and [errors.As], so callers can tell malformed
// input apart from a record that cannot be compiled.
//
// # Error Types
//
//   - [ParseError]: malformed records, project or override documents
//   - [ConversionError]: a record that cannot be compiled into an operation
//   - [ConfigError]: invalid options, or annotation values the compiler refuses
//     (a numeric range written inside the allowed-values list of a number field)
//
// # Sentinel Errors
//
//   - [ErrParse]: matches any [ParseError]
//   - [ErrConversion]: matches any [ConversionError]
//   - [ErrConfig]: matches any [ConfigError]
//
// # Usage
//
//	result, err := converter.ConvertWithOptions(converter.WithRecordsFile("api_data.json"))
//	if errors.Is(err, oaserrors.ErrConfig) {
//	    var cfgErr *oaserrors.ConfigError
//	    if errors.As(err, &cfgErr) {
//	        fmt.Println("bad value for", cfgErr.Option)
//	    }
//	}
package oaserrors
