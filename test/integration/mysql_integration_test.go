package integration_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlgate/sqlgate"
	"github.com/sqlgate/sqlgate/types"
)

func TestMySQLRoundTrip(t *testing.T) {
	gw := newGateway(t)
	db := connectMySQL(t, gw)
	ctx := t.Context()

	_, err := gw.Execute(ctx, sqlgate.ExecuteRequest{
		DB: db,
		Query: `CREATE TABLE users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(64) NOT NULL,
			score DOUBLE,
			active BOOLEAN,
			note TEXT
		)`,
	})
	require.NoError(t, err)

	exec, err := gw.Execute(ctx, sqlgate.ExecuteRequest{
		DB:    db,
		Query: "INSERT INTO users(name, score, active, note) VALUES (?, ?, ?, ?)",
		Values: []types.Value{
			types.String("Alice"),
			types.Float(97.5),
			types.Bool(true),
			types.Null(),
		},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), exec.RowsAffected)
	require.NotNil(t, exec.LastInsertID)
	require.Equal(t, "1", *exec.LastInsertID)

	sel, err := gw.Select(ctx, sqlgate.SelectRequest{
		DB:    db,
		Query: "SELECT id, name, score, active, note FROM users WHERE id = ?",
		Values: []types.Value{
			types.Int(1),
		},
	})
	require.NoError(t, err)
	require.Len(t, sel.Rows, 1)

	row := sel.Rows[0]
	require.Equal(t, []string{"id", "name", "score", "active", "note"}, row.Columns())

	get := func(col string) types.Value {
		v, ok := row.Get(col)
		require.True(t, ok)
		return v
	}

	require.Equal(t, types.Int(1), get("id"))
	require.Equal(t, types.String("Alice"), get("name"))
	require.Equal(t, types.Float(97.5), get("score"))
	// MySQL booleans are TINYINT(1) and come back through the integer probe.
	require.Equal(t, types.Int(1), get("active"))
	require.Equal(t, types.Null(), get("note"))
}

func TestMySQLTransactions(t *testing.T) {
	gw := newGateway(t)
	db := connectMySQL(t, gw)
	ctx := t.Context()

	_, err := gw.Execute(ctx, sqlgate.ExecuteRequest{
		DB:    db,
		Query: "CREATE TABLE accounts (id BIGINT PRIMARY KEY, balance BIGINT)",
	})
	require.NoError(t, err)

	_, err = gw.Execute(ctx, sqlgate.ExecuteRequest{
		DB:     db,
		Query:  "INSERT INTO accounts(id, balance) VALUES (?, ?)",
		Values: []types.Value{types.Int(1), types.Int(1000)},
	})
	require.NoError(t, err)

	// Rollback path.
	begin, err := gw.BeginTransaction(ctx, sqlgate.BeginTransactionRequest{DB: db})
	require.NoError(t, err)

	_, err = gw.ExecuteInTransaction(ctx, sqlgate.TransactionExecuteRequest{
		TxID:  begin.TxID,
		Query: "UPDATE accounts SET balance = 0 WHERE id = 1",
	})
	require.NoError(t, err)

	_, err = gw.Rollback(ctx, sqlgate.RollbackRequest{TxID: begin.TxID})
	require.NoError(t, err)

	// Commit path.
	begin, err = gw.BeginTransaction(ctx, sqlgate.BeginTransactionRequest{DB: db})
	require.NoError(t, err)

	_, err = gw.ExecuteInTransaction(ctx, sqlgate.TransactionExecuteRequest{
		TxID:   begin.TxID,
		Query:  "UPDATE accounts SET balance = balance - ? WHERE id = 1",
		Values: []types.Value{types.Int(250)},
	})
	require.NoError(t, err)

	ack, err := gw.Commit(ctx, sqlgate.CommitRequest{TxID: begin.TxID})
	require.NoError(t, err)
	require.True(t, ack.OK)

	sel, err := gw.Select(ctx, sqlgate.SelectRequest{
		DB:    db,
		Query: "SELECT balance FROM accounts WHERE id = 1",
	})
	require.NoError(t, err)
	require.Len(t, sel.Rows, 1)

	v, ok := sel.Rows[0].Get("balance")
	require.True(t, ok)
	require.Equal(t, types.Int(750), v)
}
