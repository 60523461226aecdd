package sqlite

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sqlgate/sqlgate/types"
)

func TestDataSourceNameMemory(t *testing.T) {
	a := New(t.TempDir())

	dsn, err := a.DataSourceName("sqlite::memory:")
	require.NoError(t, err)

	// The in-memory form must be shared-cache so every connection in the
	// pool reaches the same database.
	require.True(t, strings.HasPrefix(dsn, "file:"), dsn)
	require.Contains(t, dsn, "mode=memory")
	require.Contains(t, dsn, "cache=shared")

	// Each connect gets a private database, not the process-wide one.
	dsn2, err := a.DataSourceName("sqlite::memory:")
	require.NoError(t, err)
	require.NotEqual(t, dsn, dsn2)
}

func TestDataSourceNameResolvesUnderDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	a := New(dir)

	dsn, err := a.DataSourceName("sqlite:app.db")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "app.db"), dsn)

	// The data directory is created on demand.
	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestDataSourceNameDirFailureIsConfigError(t *testing.T) {
	// A file where the data directory should be makes MkdirAll fail.
	base := t.TempDir()
	blocker := filepath.Join(base, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	a := New(blocker)
	_, err := a.DataSourceName("sqlite:app.db")

	var ce *types.ConfigError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "sqlite:app.db", ce.URL)
}

func TestDecodeValueNativeTypes(t *testing.T) {
	a := New(t.TempDir())

	require.Equal(t, types.Null(), a.DecodeValue(nil, nil))
	require.Equal(t, types.Int(7), a.DecodeValue(nil, int64(7)))
	require.Equal(t, types.Float(1.5), a.DecodeValue(nil, 1.5))
	require.Equal(t, types.String("Alice"), a.DecodeValue(nil, "Alice"))

	// The driver reads declared BOOLEAN columns as bool, but the stored form
	// is an integer and the integer probe runs first.
	require.Equal(t, types.Int(1), a.DecodeValue(nil, true))
	require.Equal(t, types.Int(0), a.DecodeValue(nil, false))

	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.Equal(t, types.String("2024-03-01T12:00:00Z"), a.DecodeValue(nil, ts))
}

func TestDecodeValueTextWithoutDeclaredTypeStaysText(t *testing.T) {
	a := New(t.TempDir())

	// With no column type information, numeric-looking text is not
	// reclassified.
	require.Equal(t, types.String("42"), a.DecodeValue(nil, "42"))
	require.Equal(t, types.String("42"), a.DecodeValue(nil, []byte("42")))
}

type fakeResult struct {
	id  int64
	err error
}

func (r fakeResult) LastInsertId() (int64, error) { return r.id, r.err }
func (r fakeResult) RowsAffected() (int64, error) { return 1, nil }

func TestLastInsertID(t *testing.T) {
	a := New(t.TempDir())

	id, ok := a.LastInsertID(fakeResult{id: 41})
	require.True(t, ok)
	require.Equal(t, "41", id)

	_, ok = a.LastInsertID(fakeResult{err: errors.New("unsupported")})
	require.False(t, ok)
}
