// Package postgres implements the sqlgate adapter for PostgreSQL databases
// via github.com/lib/pq.
package postgres

import (
	"database/sql"
	"strings"
	"time"

	// Registers the "postgres" driver.
	_ "github.com/lib/pq"

	"github.com/sqlgate/sqlgate/adapter"
	"github.com/sqlgate/sqlgate/types"
)

// Adapter implements adapter.Adapter for PostgreSQL.
type Adapter struct{}

// Compile-time assertion that Adapter implements adapter.Adapter.
var _ adapter.Adapter = (*Adapter)(nil)

// New creates a PostgreSQL adapter.
func New() *Adapter {
	return &Adapter{}
}

// Backend returns types.BackendPostgres.
func (a *Adapter) Backend() types.Backend {
	return types.BackendPostgres
}

// DriverName returns "postgres".
func (a *Adapter) DriverName() string {
	return "postgres"
}

// DataSourceName passes the URL to the driver verbatim; lib/pq accepts
// postgres:// and postgresql:// URLs natively.
func (a *Adapter) DataSourceName(rawURL string) (string, error) {
	return rawURL, nil
}

// DecodeValue converts one scanned PostgreSQL column into a dynamic value.
//
// Narrow integer columns (int2/int4) arrive as int32 from some paths and
// are probed between int64 and float, widening to the dynamic integer kind.
// NUMERIC values arrive as text and take the declared-type probe.
func (a *Adapter) DecodeValue(ct *sql.ColumnType, v any) types.Value {
	switch v := v.(type) {
	case nil:
		return types.Null()
	case int64:
		return types.Int(v)
	case int32:
		return types.Int(int64(v))
	case float64:
		return types.Float(v)
	case float32:
		return types.Float(float64(v))
	case bool:
		return types.Bool(v)
	case time.Time:
		return types.String(v.Format(time.RFC3339))
	case string:
		return a.decodeText(ct, v)
	case []byte:
		return a.decodeText(ct, string(v))
	default:
		return types.Null()
	}
}

// LastInsertID always reports none; PostgreSQL has no portable equivalent
// (use RETURNING in the statement instead).
func (a *Adapter) LastInsertID(_ sql.Result) (string, bool) {
	return "", false
}

func (a *Adapter) decodeText(ct *sql.ColumnType, s string) types.Value {
	name := ""
	if ct != nil {
		name = strings.ToUpper(ct.DatabaseTypeName())
	}

	var integer, float, boolean bool
	switch name {
	case "INT2", "INT4", "INT8", "SMALLINT", "INTEGER", "BIGINT":
		integer = true
	case "FLOAT4", "FLOAT8", "NUMERIC", "DECIMAL", "REAL", "DOUBLE PRECISION":
		float = true
	case "BOOL", "BOOLEAN":
		boolean = true
	}
	return adapter.DecodeDeclaredText(s, integer, float, boolean)
}
