package sqlgate

import "github.com/sqlgate/sqlgate/types"

// Request and response structs mirror the gateway's wire contract. An outer
// transport can decode operation payloads into the request types and encode
// the response types unchanged; all field names are camelCase on the wire.

// PingRequest is the payload of the ping operation.
type PingRequest struct {
	Value string `json:"value,omitempty"`
}

// PingResponse echoes the ping payload.
type PingResponse struct {
	Value string `json:"value,omitempty"`
}

// ConnectRequest opens (or replaces) a connection pool for a database URL.
type ConnectRequest struct {
	URL string `json:"url"`
}

// ConnectResponse returns the durable handle for the connection. The handle
// equals the input URL.
type ConnectResponse struct {
	Handle string `json:"handle"`
}

// ExecuteRequest runs a statement against a pool.
type ExecuteRequest struct {
	DB     string        `json:"db"`
	Query  string        `json:"query"`
	Values []types.Value `json:"values,omitempty"`
}

// ExecuteResponse reports the outcome of a statement.
type ExecuteResponse struct {
	RowsAffected uint64 `json:"rowsAffected"`

	// LastInsertID is set for SQLite (rowid of the last insert) and MySQL
	// (auto-increment value). PostgreSQL has no portable equivalent and
	// always reports none.
	LastInsertID *string `json:"lastInsertId,omitempty"`
}

// SelectRequest runs a query against a pool and materializes all rows.
type SelectRequest struct {
	DB     string        `json:"db"`
	Query  string        `json:"query"`
	Values []types.Value `json:"values,omitempty"`
}

// SelectResponse carries the materialized result rows in database order.
type SelectResponse struct {
	Rows []*types.Row `json:"rows"`
}

// BeginTransactionRequest opens a transaction on a connected database.
type BeginTransactionRequest struct {
	DB string `json:"db"`
}

// BeginTransactionResponse returns the minted transaction identifier.
type BeginTransactionResponse struct {
	TxID string `json:"txId"`
}

// TransactionExecuteRequest runs a statement inside an active transaction.
type TransactionExecuteRequest struct {
	TxID   string        `json:"txId"`
	Query  string        `json:"query"`
	Values []types.Value `json:"values,omitempty"`
}

// CommitRequest finishes a transaction as a commit.
type CommitRequest struct {
	TxID string `json:"txId"`
}

// RollbackRequest finishes a transaction as a rollback.
type RollbackRequest struct {
	TxID string `json:"txId"`
}

// AckResponse acknowledges commit and rollback operations.
type AckResponse struct {
	OK bool `json:"ok"`
}
