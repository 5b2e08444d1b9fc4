package logger

// Logger provides a high-level interface for structured logging.
// It wraps Uber's Zap logger with a simplified API and scope naming.
//
// This interface is implemented by the concrete *LoggerClient type.
type Logger interface {
	// Debug logs a debug-level message, useful for development and troubleshooting.
	Debug(msg string, err error, fields ...map[string]interface{})

	// Info logs an informational message about general application progress.
	Info(msg string, err error, fields ...map[string]interface{})

	// Warn logs a warning message, indicating potential issues.
	Warn(msg string, err error, fields ...map[string]interface{})

	// Error logs an error message with details of the error.
	Error(msg string, err error, fields ...map[string]interface{})

	// Fatal logs a critical error message and terminates the application.
	Fatal(msg string, err error, fields ...map[string]interface{})

	// Named returns a child logger scoped to name. Entries written through it
	// carry name as their logger name.
	Named(name string) Logger

	// WithCallerSkip returns a logger that skips skip more stack frames when
	// reporting the caller. Wrappers that log on behalf of their caller use it
	// so the caller field points at their caller instead of themselves.
	WithCallerSkip(skip int) Logger
}
