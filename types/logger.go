package types

// Logger defines the logging interface used throughout sqlgate.
//
// Methods accept a message followed by alternating key/value pairs, matching
// the sugared style of popular structured loggers. Implementations must be
// safe for concurrent use.
//
// The default logger discards all messages; see contrib/logging/zaplog for a
// production implementation backed by go.uber.org/zap.
type Logger interface {
	// Debug logs a debug-level message.
	Debug(msg string, keysAndValues ...any)

	// Info logs an info-level message.
	Info(msg string, keysAndValues ...any)

	// Warn logs a warning-level message.
	Warn(msg string, keysAndValues ...any)

	// Error logs an error-level message.
	Error(msg string, keysAndValues ...any)

	// Fatal logs a fatal-level message. Implementations decide whether it
	// terminates the process.
	Fatal(msg string, keysAndValues ...any)
}
