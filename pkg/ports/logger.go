// Package ports defines the interfaces that adapters implement.
package ports

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LevelDebug is for detailed debugging information.
	// Used for component-level internal processing logs.
	LevelDebug LogLevel = iota
	// LevelInfo is for informational messages.
	// Used for command-level progress logs.
	LevelInfo
	// LevelWarn is for warning messages.
	// Used for recoverable problems that don't stop processing.
	LevelWarn
	// LevelError is for error messages.
	// Used for unrecoverable problems that stop processing.
	LevelError
	// LevelQuiet suppresses all log output.
	LevelQuiet
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelQuiet:
		return "quiet"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a string into a LogLevel.
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	case "quiet":
		return LevelQuiet
	default:
		return LevelInfo
	}
}

// Logger abstracts logging. The msg parameter is a printf-style format
// string that also serves as the translation key.
type Logger interface {
	// Debug logs internal processing details (decode steps, seeks).
	Debug(msg string, args ...interface{})

	// Info logs command-level progress.
	Info(msg string, args ...interface{})

	// Warn logs recoverable problems.
	Warn(msg string, args ...interface{})

	// Error logs unrecoverable problems.
	Error(msg string, args ...interface{})

	// WithComponent returns a Logger that prefixes messages with the
	// component name (e.g. "webp", "extract").
	WithComponent(component string) Logger
}
