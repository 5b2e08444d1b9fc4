package logger

import (
	"go.uber.org/zap"
)

// convertToZapFields converts error and additional field maps into Zap's structured logging fields.
// If multiple fields maps contain the same key, the later maps will override earlier ones
// in the rendered output.
func (l *LoggerClient) convertToZapFields(err error, fields ...map[string]interface{}) []zap.Field {
	var zapFields []zap.Field
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}

	for _, fieldMap := range fields {
		for key, value := range fieldMap {
			zapFields = append(zapFields, zap.Any(key, value))
		}
	}
	return zapFields
}

// Named returns a child logger whose entries carry name as the logger name.
// The child shares the parent's core, level and file sink.
//
// Example:
//
//	accountLog := log.Named("bank.Account")
//	accountLog.Info("opened", nil)
func (l *LoggerClient) Named(name string) Logger {
	return &LoggerClient{
		Zap:     l.Zap.Named(name),
		rotator: l.rotator,
	}
}

// WithCallerSkip returns a child logger that reports the caller skip frames
// further up the stack. The child shares the parent's core and file sink.
func (l *LoggerClient) WithCallerSkip(skip int) Logger {
	return &LoggerClient{
		Zap:     l.Zap.WithOptions(zap.AddCallerSkip(skip)),
		rotator: l.rotator,
	}
}

// Info logs an informational message, along with an optional error and structured fields.
//
// Example:
//
//	logger.Info("User logged in successfully", nil, map[string]interface{}{
//	    "user_id": 12345,
//	})
func (l *LoggerClient) Info(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, l.convertToZapFields(err, fields...)...)
}

// Debug logs a debug-level message, useful for development and troubleshooting.
func (l *LoggerClient) Debug(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, l.convertToZapFields(err, fields...)...)
}

// Warn logs a warning message, indicating potential issues that aren't necessarily errors.
func (l *LoggerClient) Warn(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, l.convertToZapFields(err, fields...)...)
}

// Error logs an error message, including details of the error and additional context fields.
//
// Example:
//
//	if err := database.Connect(); err != nil {
//	    logger.Error("Failed to connect to database", err, map[string]interface{}{
//	        "retry_count": 3,
//	    })
//	}
func (l *LoggerClient) Error(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, l.convertToZapFields(err, fields...)...)
}

// Fatal logs a critical error message and terminates the application.
// This method will call os.Exit(1) after logging the message.
func (l *LoggerClient) Fatal(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Fatal(msg, l.convertToZapFields(err, fields...)...)
}
