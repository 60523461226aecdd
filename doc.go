// Package sqlgate provides a multi-backend SQL gateway: callers open
// connections to SQLite, MySQL or PostgreSQL by URL, run ad-hoc statements
// and queries against them, and manage explicit handle-addressed
// transactions that span multiple independent calls.
//
// # Key Features
//
//   - One uniform execute/select/transaction API across three backends
//   - Dynamic, self-describing values: no static per-query schemas
//   - Handle-addressed transactions decoupled from any request cycle
//   - Ordered result rows that preserve database column order
//
// # Basic Usage
//
//	gw := sqlgate.New(sqlgate.WithDataDir("/var/lib/myapp"))
//	defer gw.Close()
//
//	conn, err := gw.Connect(ctx, sqlgate.ConnectRequest{URL: "sqlite:app.db"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_, err = gw.Execute(ctx, sqlgate.ExecuteRequest{
//	    DB:     conn.Handle,
//	    Query:  "INSERT INTO users (name) VALUES (?)",
//	    Values: []types.Value{types.String("Alice")},
//	})
//
// # Transactions
//
// A transaction lives in the gateway's registry under a minted identifier
// until it is finished exactly once:
//
//	begin, _ := gw.BeginTransaction(ctx, sqlgate.BeginTransactionRequest{DB: conn.Handle})
//	_, _ = gw.ExecuteInTransaction(ctx, sqlgate.TransactionExecuteRequest{
//	    TxID:  begin.TxID,
//	    Query: "UPDATE accounts SET balance = balance - 100 WHERE id = 1",
//	})
//	_, err = gw.Commit(ctx, sqlgate.CommitRequest{TxID: begin.TxID})
//
// Commit and rollback consume the handle whether or not the driver call
// succeeds; the identifier is never valid again afterwards. A transaction
// that is never finished holds its connection indefinitely.
//
// # Error Handling
//
// Errors follow a small taxonomy in the types package: configuration errors
// (bad URLs, data-directory failures) surface before any I/O, not-found
// errors carry the offending identifier, and driver errors wrap the engine's
// message verbatim. All support errors.Is/As:
//
//	_, err := gw.Commit(ctx, sqlgate.CommitRequest{TxID: id})
//	if errors.Is(err, types.ErrTransactionNotFound) {
//	    // already finished, or never begun
//	}
package sqlgate
