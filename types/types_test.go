package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotFoundErrorDatabase(t *testing.T) {
	err := &NotFoundError{Resource: "database", ID: "sqlite:app.db"}

	require.EqualError(t, err, "sqlgate: database is not loaded: sqlite:app.db")
	require.ErrorIs(t, err, ErrDatabaseNotLoaded)
	require.NotErrorIs(t, err, ErrTransactionNotFound)
}

func TestNotFoundErrorTransaction(t *testing.T) {
	err := &NotFoundError{Resource: "transaction", ID: "deadbeef"}

	require.EqualError(t, err, "sqlgate: transaction not found: deadbeef")
	require.ErrorIs(t, err, ErrTransactionNotFound)
	require.NotErrorIs(t, err, ErrDatabaseNotLoaded)
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{
		URL:    "redis://localhost",
		Reason: "unsupported database scheme redis",
		Cause:  ErrUnsupportedScheme,
	}

	require.ErrorIs(t, err, ErrUnsupportedScheme)
	require.Contains(t, err.Error(), "redis://localhost")
	require.Contains(t, err.Error(), "unsupported database scheme")
}

func TestDriverErrorUnwrap(t *testing.T) {
	cause := errors.New("syntax error near SELCT")
	err := &DriverError{Backend: BackendPostgres, Operation: "select", Cause: cause}

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "postgres select failed")
	require.Contains(t, err.Error(), "syntax error near SELCT")

	var de *DriverError
	require.ErrorAs(t, err, &de)
	require.Equal(t, BackendPostgres, de.Backend)
}
