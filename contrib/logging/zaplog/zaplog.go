// Package zaplog provides a zap-backed implementation of types.Logger.
package zaplog

import (
	"go.uber.org/zap"

	"github.com/sqlgate/sqlgate/types"
)

// Logger adapts a zap.SugaredLogger to the types.Logger interface.
type Logger struct {
	sugar *zap.SugaredLogger
}

// Compile-time assertion that Logger implements types.Logger.
var _ types.Logger = (*Logger)(nil)

// New wraps an existing zap logger.
//
// Parameters:
//   - l: The zap logger to wrap
//
// Returns:
//   - *Logger: A types.Logger backed by zap
func New(l *zap.Logger) *Logger {
	// Skip the adapter frame so call sites are attributed correctly.
	return &Logger{sugar: l.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

// NewDevelopment creates a logger with zap's development configuration
// (human-readable console output, debug level enabled).
func NewDevelopment() (*Logger, error) {
	l, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return New(l), nil
}

// NewProduction creates a logger with zap's production configuration
// (JSON output, info level and above).
func NewProduction() (*Logger, error) {
	l, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return New(l), nil
}

// Debug logs a debug-level message.
func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.sugar.Debugw(msg, keysAndValues...)
}

// Info logs an info-level message.
func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.sugar.Infow(msg, keysAndValues...)
}

// Warn logs a warning-level message.
func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.sugar.Warnw(msg, keysAndValues...)
}

// Error logs an error-level message.
func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.sugar.Errorw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message and exits via zap's Fatal semantics.
func (l *Logger) Fatal(msg string, keysAndValues ...any) {
	l.sugar.Fatalw(msg, keysAndValues...)
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}
