// Package types provides shared types and errors for the sqlgate library.
//
// This is a "leaf" package with no imports from other sqlgate packages,
// allowing it to be imported by any package without causing import cycles.
package types

import "errors"

// Backend identifies one of the supported database engines.
type Backend string

// String returns the string representation of the Backend.
func (b Backend) String() string {
	return string(b)
}

const (
	// BackendSQLite is a file-backed or in-memory SQLite database.
	BackendSQLite Backend = "sqlite"
	// BackendMySQL is a MySQL (or compatible) server.
	BackendMySQL Backend = "mysql"
	// BackendPostgres is a PostgreSQL server.
	BackendPostgres Backend = "postgres"
)

// Sentinel errors for common failure scenarios.
var (
	// ErrDatabaseNotLoaded indicates the supplied connection handle has no
	// live pool (never connected, or malformed handle).
	ErrDatabaseNotLoaded = errors.New("sqlgate: database is not loaded")

	// ErrTransactionNotFound indicates the supplied transaction identifier
	// has no active handle (never begun, or already finished).
	ErrTransactionNotFound = errors.New("sqlgate: transaction not found")

	// ErrUnsupportedScheme indicates the connection URL scheme is not one of
	// sqlite, mysql, postgres or postgresql.
	ErrUnsupportedScheme = errors.New("sqlgate: unsupported database scheme")

	// ErrInvalidURL indicates the connection URL could not be parsed at all
	// (for example, it contains no scheme separator).
	ErrInvalidURL = errors.New("sqlgate: invalid connection URL")

	// ErrGatewayClosed indicates an operation was attempted after Close.
	ErrGatewayClosed = errors.New("sqlgate: gateway is closed")
)

// NotFoundError reports a lookup miss for a connection handle or a
// transaction identifier. The offending identifier is carried verbatim.
type NotFoundError struct {
	// Resource is "database" or "transaction".
	Resource string

	// ID is the identifier supplied by the caller.
	ID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Resource == "transaction" {
		return "sqlgate: transaction not found: " + e.ID
	}
	return "sqlgate: database is not loaded: " + e.ID
}

// Unwrap returns the matching sentinel for errors.Is compatibility.
func (e *NotFoundError) Unwrap() error {
	if e.Resource == "transaction" {
		return ErrTransactionNotFound
	}
	return ErrDatabaseNotLoaded
}

// ConfigError reports an unusable connection URL or a failure to prepare
// local resources (such as the SQLite data directory). Configuration errors
// are raised before any database I/O is attempted and are not retryable.
type ConfigError struct {
	// URL is the connection URL supplied by the caller.
	URL string

	// Reason is a short description of what is wrong.
	Reason string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	msg := "sqlgate: " + e.Reason + ": " + e.URL
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// DriverError wraps a failure reported by the underlying database engine.
// The engine's message is preserved verbatim; sqlgate performs no retries
// or reclassification.
type DriverError struct {
	// Backend identifies which engine reported the error.
	Backend Backend

	// Operation describes what operation failed (connect, execute, select,
	// begin, commit, rollback).
	Operation string

	// Cause is the error from the driver.
	Cause error
}

// Error implements the error interface.
func (e *DriverError) Error() string {
	return "sqlgate: " + string(e.Backend) + " " + e.Operation + " failed: " + e.Cause.Error()
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *DriverError) Unwrap() error {
	return e.Cause
}
