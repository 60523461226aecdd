// Package sqlite implements the sqlgate adapter for SQLite databases via
// github.com/mattn/go-sqlite3.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	// Registers the "sqlite3" driver.
	_ "github.com/mattn/go-sqlite3"

	"github.com/sqlgate/sqlgate/adapter"
	"github.com/sqlgate/sqlgate/types"
)

// MemoryPath is the reserved in-memory database marker. It is never resolved
// against the data directory.
const MemoryPath = ":memory:"

// memorySeq numbers in-memory databases so each connect gets its own.
var memorySeq atomic.Int64

// Adapter implements adapter.Adapter for SQLite.
type Adapter struct {
	dataDir string
}

// Compile-time assertion that Adapter implements adapter.Adapter.
var _ adapter.Adapter = (*Adapter)(nil)

// New creates a SQLite adapter. Relative database paths resolve under
// dataDir, which is created on demand at connect time.
func New(dataDir string) *Adapter {
	return &Adapter{dataDir: dataDir}
}

// Backend returns types.BackendSQLite.
func (a *Adapter) Backend() types.Backend {
	return types.BackendSQLite
}

// DriverName returns "sqlite3".
func (a *Adapter) DriverName() string {
	return "sqlite3"
}

// DataSourceName maps a "sqlite:" URL to a driver DSN.
//
// The ":memory:" marker maps to a freshly named in-memory database with a
// shared cache, so every connection in the pool sees the same database and a
// transaction never has to wait for "the" connection. A plain ":memory:" DSN
// would exist per physical connection instead. Any other path is treated as
// relative to the adapter's data directory, which is created on demand;
// failure to create it is a configuration error, not a driver error.
func (a *Adapter) DataSourceName(url string) (string, error) {
	path := strings.TrimPrefix(url, "sqlite:")
	if path == MemoryPath {
		return fmt.Sprintf("file:sqlgate_mem_%d?mode=memory&cache=shared", memorySeq.Add(1)), nil
	}

	if err := os.MkdirAll(a.dataDir, 0o755); err != nil {
		return "", &types.ConfigError{
			URL:    url,
			Reason: "failed to create data directory",
			Cause:  err,
		}
	}
	return filepath.Join(a.dataDir, path), nil
}

// DecodeValue converts one scanned SQLite column into a dynamic value.
//
// SQLite is dynamically typed, so the driver already hands back int64,
// float64, bool, string or nil for most columns; the declared-type probe
// only runs for text payloads.
func (a *Adapter) DecodeValue(ct *sql.ColumnType, v any) types.Value {
	switch v := v.(type) {
	case nil:
		return types.Null()
	case int64:
		return types.Int(v)
	case float64:
		return types.Float(v)
	case bool:
		// The driver converts declared BOOLEAN columns to bool, but SQLite
		// stores them as integers and the integer probe runs before the
		// boolean one. Surface the stored form.
		if v {
			return types.Int(1)
		}
		return types.Int(0)
	case time.Time:
		return types.String(v.Format(time.RFC3339))
	case string:
		return adapter.DecodeDeclaredText(v, a.declaredInt(ct), a.declaredFloat(ct), a.declaredBool(ct))
	case []byte:
		return adapter.DecodeDeclaredText(string(v), a.declaredInt(ct), a.declaredFloat(ct), a.declaredBool(ct))
	default:
		return types.Null()
	}
}

// LastInsertID reports the rowid of the last insert on the connection.
func (a *Adapter) LastInsertID(res sql.Result) (string, bool) {
	return adapter.FormatLastInsertID(res)
}

func (a *Adapter) declaredInt(ct *sql.ColumnType) bool {
	name := declaredType(ct)
	return strings.Contains(name, "INT")
}

func (a *Adapter) declaredFloat(ct *sql.ColumnType) bool {
	switch name := declaredType(ct); {
	case strings.Contains(name, "REAL"),
		strings.Contains(name, "FLOA"),
		strings.Contains(name, "DOUB"),
		strings.Contains(name, "NUMERIC"),
		strings.Contains(name, "DECIMAL"):
		return true
	default:
		return false
	}
}

func (a *Adapter) declaredBool(ct *sql.ColumnType) bool {
	name := declaredType(ct)
	return strings.Contains(name, "BOOL")
}

func declaredType(ct *sql.ColumnType) string {
	if ct == nil {
		return ""
	}
	return strings.ToUpper(ct.DatabaseTypeName())
}
