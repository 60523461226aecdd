// Package adapter defines the backend adapter interface that hides the
// differences between the supported database drivers behind one dynamic
// value model.
//
// The set of backends is closed and known at build time: SQLite, MySQL and
// PostgreSQL. Each backend package implements [Adapter] once; the gateway
// dispatches on the adapter attached to a pool or transaction and never
// inspects driver types itself.
package adapter

import (
	"database/sql"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/sqlgate/sqlgate/types"
)

// Adapter hides one backend's native parameter and column representations.
//
// Implementations are stateless (except for construction-time configuration
// such as the SQLite data directory) and safe for concurrent use.
type Adapter interface {
	// Backend returns the backend tag.
	Backend() types.Backend

	// DriverName returns the database/sql driver name to open pools with.
	DriverName() string

	// DataSourceName maps a caller-supplied connection URL to the driver's
	// DSN form. It must not perform any network I/O; local filesystem
	// preparation (the SQLite data directory) is allowed and reported as a
	// configuration error on failure.
	DataSourceName(url string) (string, error)

	// DecodeValue converts one scanned column into a dynamic value using the
	// backend's probe order. It must not panic; unclassifiable values decode
	// as null.
	DecodeValue(ct *sql.ColumnType, v any) types.Value

	// LastInsertID reports the backend's last-insert identifier for an exec
	// result, if the backend has a portable notion of one.
	LastInsertID(res sql.Result) (string, bool)
}

// BindValues converts dynamic values to positional driver arguments.
//
// The classification order is fixed and identical for all backends: null
// binds as SQL NULL, strings as text, integers as int64, floats as float64,
// booleans as bool, and the opaque fallback as its canonical textual
// serialization. Binding is strictly positional; argument order must match
// the statement's placeholder order.
func BindValues(values []types.Value) []any {
	if len(values) == 0 {
		return nil
	}
	args := make([]any, len(values))
	for i, v := range values {
		switch v.Kind() {
		case types.KindNull:
			args[i] = nil
		case types.KindString:
			args[i] = v.StringValue()
		case types.KindInt:
			args[i] = v.IntValue()
		case types.KindFloat:
			args[i] = v.FloatValue()
		case types.KindBool:
			args[i] = v.BoolValue()
		default:
			args[i] = v.StringValue()
		}
	}
	return args
}

// CollectRows drains rows into ordered dynamic rows using the adapter's
// decode routine, materializing the full result set eagerly.
func CollectRows(rows *sqlx.Rows, a Adapter) ([]*types.Row, error) {
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	out := make([]*types.Row, 0, 8)
	for rows.Next() {
		vals, err := rows.SliceScan()
		if err != nil {
			return nil, err
		}
		row := types.NewRow()
		for i, name := range names {
			var ct *sql.ColumnType
			if i < len(colTypes) {
				ct = colTypes[i]
			}
			row.Set(name, a.DecodeValue(ct, vals[i]))
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeDeclaredText classifies raw column text by the column's declared
// type, probing in the fixed order integer, float, boolean, text.
//
// A probe only runs when the declared type admits it, mirroring drivers that
// refuse to read a text column as a number: for a plain text column every
// numeric probe "fails" immediately and the value stays a string, while a
// numeric column whose text cannot be parsed falls through to the next probe.
func DecodeDeclaredText(s string, integer, float, boolean bool) types.Value {
	if integer {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return types.Int(i)
		}
	}
	if integer || float {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return types.Float(f)
		}
	}
	if boolean {
		switch s {
		case "1", "t", "true", "TRUE", "True":
			return types.Bool(true)
		case "0", "f", "false", "FALSE", "False":
			return types.Bool(false)
		}
	}
	return types.String(s)
}

// FormatLastInsertID renders a driver last-insert id for the wire.
func FormatLastInsertID(res sql.Result) (string, bool) {
	id, err := res.LastInsertId()
	if err != nil {
		return "", false
	}
	return strconv.FormatInt(id, 10), true
}
