package converter

import (
	"log/slog"

	"github.com/ALE-Rainbow/apidoc-swagger/internal/severity"
)

// Logger is the interface the converter uses for structured logging.
//
// Attributes are alternating key-value pairs, following log/slog:
//
//	logger.Debug("schema registered", "name", "getUserSuccess")
//
// Use [NewSlogAdapter] to plug in a *slog.Logger:
//
//	logger := converter.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, nil)))
//	result, err := converter.ConvertWithOptions(
//	    converter.WithRecordsFile("api_data.json"),
//	    converter.WithLogger(logger),
//	)
type Logger interface {
	// Debug logs at debug level.
	Debug(msg string, attrs ...any)

	// Info logs at info level.
	Info(msg string, attrs ...any)

	// Warn logs at warn level.
	Warn(msg string, attrs ...any)

	// Error logs at error level.
	Error(msg string, attrs ...any)

	// With returns a Logger that adds attrs to every record.
	With(attrs ...any) Logger
}

// NopLogger discards all output. It is the default.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(_ string, _ ...any) {}

// Info implements Logger.
func (NopLogger) Info(_ string, _ ...any) {}

// Warn implements Logger.
func (NopLogger) Warn(_ string, _ ...any) {}

// Error implements Logger.
func (NopLogger) Error(_ string, _ ...any) {}

// With implements Logger.
func (n NopLogger) With(_ ...any) Logger { return n }

var _ Logger = NopLogger{}

// SlogAdapter wraps a *slog.Logger to implement Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter. A nil logger means slog.Default().
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Debug implements Logger.
func (s *SlogAdapter) Debug(msg string, attrs ...any) {
	s.logger.Debug(msg, attrs...)
}

// Info implements Logger.
func (s *SlogAdapter) Info(msg string, attrs ...any) {
	s.logger.Info(msg, attrs...)
}

// Warn implements Logger.
func (s *SlogAdapter) Warn(msg string, attrs ...any) {
	s.logger.Warn(msg, attrs...)
}

// Error implements Logger.
func (s *SlogAdapter) Error(msg string, attrs ...any) {
	s.logger.Error(msg, attrs...)
}

// With implements Logger.
func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var _ Logger = (*SlogAdapter)(nil)

// logIssue writes an issue at the level matching its severity.
func logIssue(l Logger, issue ConversionIssue) {
	attrs := []any{"path", issue.Path}
	if issue.Operation != "" {
		attrs = append(attrs, "operation", issue.Operation)
	}
	if issue.Field != "" {
		attrs = append(attrs, "field", issue.Field)
	}
	if issue.Context != "" {
		attrs = append(attrs, "context", issue.Context)
	}

	switch issue.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		l.Error(issue.Message, attrs...)
	case severity.SeverityWarning:
		l.Warn(issue.Message, attrs...)
	default:
		l.Debug(issue.Message, attrs...)
	}
}
