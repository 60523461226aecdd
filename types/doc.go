// Package types provides the shared vocabulary of the sqlgate library:
// backend tags, the dynamic Value and ordered Row representations, error
// types, and the Logger and MetricsCollector interfaces.
//
// # Design Philosophy
//
// This package is intentionally dependency-free (standard library only) so
// that adapters, the gateway, and external integrations can all import it
// without cycles.
//
// # Dynamic Values
//
// Value models the backend-agnostic representation of bound parameters and
// decoded columns: null, string, 64-bit integer, 64-bit float, boolean, or
// an opaque textual fallback for anything else. Classification order is part
// of the contract; see Value.UnmarshalJSON.
//
// # Errors
//
// Sentinel errors (ErrDatabaseNotLoaded, ErrTransactionNotFound, ...) support
// errors.Is checks, while NotFoundError, ConfigError and DriverError carry
// structured context and support errors.As.
package types
