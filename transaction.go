package sqlgate

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sqlgate/sqlgate/adapter"
	"github.com/sqlgate/sqlgate/types"
)

// txHandle is one transaction-registry entry: a live, backend-tagged
// transaction. The registry is the sole owner of the *sqlx.Tx between begin
// and finish.
//
// The per-handle mutex serializes statements and the finish step for this
// transaction only; statements on different transactions run concurrently.
// done flips once, under mu, when the handle is consumed: a caller that
// fetched the handle just before its removal observes done and gets the
// same not-found answer as a caller that missed the map entirely.
type txHandle struct {
	mu      sync.Mutex
	adapter adapter.Adapter
	tx      *sqlx.Tx
	done    bool
}

// BeginTransaction opens a transaction on a connected database and registers
// it under a fresh random identifier, decoupling the transaction's lifetime
// from any single request/response cycle.
//
// The identifier is a v4 UUID (128-bit, collision-negligible), unrelated to
// the connection handle. A failed begin registers nothing.
//
// There is no timeout or automatic reclamation: a transaction that is never
// committed or rolled back holds its underlying connection indefinitely.
func (g *Gateway) BeginTransaction(ctx context.Context, req BeginTransactionRequest) (BeginTransactionResponse, error) {
	p, err := g.lookupPool(req.DB)
	if err != nil {
		return BeginTransactionResponse{}, err
	}

	backend := p.adapter.Backend()
	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return BeginTransactionResponse{}, &types.DriverError{
			Backend:   backend,
			Operation: "begin",
			Cause:     err,
		}
	}

	id := uuid.NewString()
	g.txMu.Lock()
	g.txs[id] = &txHandle{adapter: p.adapter, tx: tx}
	active := len(g.txs)
	g.txMu.Unlock()

	g.config.Metrics.IncTxBegin(backend)
	g.config.Metrics.SetActiveTransactions(active)
	g.config.Logger.Debug("transaction begun", "db", req.DB, "txId", id)

	return BeginTransactionResponse{TxID: id}, nil
}

// ExecuteInTransaction runs a statement against an active transaction. The
// handle stays registered and may be executed against any number of times
// before commit or rollback.
func (g *Gateway) ExecuteInTransaction(ctx context.Context, req TransactionExecuteRequest) (ExecuteResponse, error) {
	h, err := g.lookupTx(req.TxID)
	if err != nil {
		return ExecuteResponse{}, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.done {
		return ExecuteResponse{}, &types.NotFoundError{Resource: "transaction", ID: req.TxID}
	}

	backend := h.adapter.Backend()
	if g.config.LogQueries {
		g.config.Logger.Debug("execute in transaction", "txId", req.TxID, "query", req.Query)
	}

	start := time.Now()
	res, err := h.tx.ExecContext(ctx, req.Query, adapter.BindValues(req.Values)...)
	g.config.Metrics.ObserveExecuteDuration(backend, time.Since(start).Seconds())
	g.config.Metrics.IncExecuteTotal(backend)
	if err != nil {
		g.config.Metrics.IncExecuteError(backend)
		return ExecuteResponse{}, &types.DriverError{
			Backend:   backend,
			Operation: "execute",
			Cause:     err,
		}
	}

	return execResponse(h.adapter, res), nil
}

// Commit finishes a transaction as a commit.
//
// The handle is removed from the registry whether or not the driver commit
// succeeds; the identifier is never valid again afterwards, so callers must
// not retry commit or rollback on the same identifier after a failure.
func (g *Gateway) Commit(ctx context.Context, req CommitRequest) (AckResponse, error) {
	return g.finish(ctx, req.TxID, true)
}

// Rollback finishes a transaction as a rollback, undoing every statement
// executed through it. Removal semantics match Commit.
func (g *Gateway) Rollback(ctx context.Context, req RollbackRequest) (AckResponse, error) {
	return g.finish(ctx, req.TxID, false)
}

func (g *Gateway) finish(_ context.Context, txID string, commit bool) (AckResponse, error) {
	if g.closed.Load() {
		return AckResponse{}, types.ErrGatewayClosed
	}

	g.txMu.Lock()
	h, ok := g.txs[txID]
	delete(g.txs, txID)
	active := len(g.txs)
	g.txMu.Unlock()
	if !ok {
		return AckResponse{}, &types.NotFoundError{Resource: "transaction", ID: txID}
	}
	g.config.Metrics.SetActiveTransactions(active)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.done {
		return AckResponse{}, &types.NotFoundError{Resource: "transaction", ID: txID}
	}
	h.done = true

	backend := h.adapter.Backend()
	var opErr error
	if commit {
		g.config.Metrics.IncTxCommit(backend)
		opErr = h.tx.Commit()
	} else {
		g.config.Metrics.IncTxRollback(backend)
		opErr = h.tx.Rollback()
	}
	if opErr != nil {
		op := "rollback"
		if commit {
			op = "commit"
		}
		return AckResponse{}, &types.DriverError{
			Backend:   backend,
			Operation: op,
			Cause:     opErr,
		}
	}

	g.config.Logger.Debug("transaction finished", "txId", txID, "commit", commit)
	return AckResponse{OK: true}, nil
}

// lookupTx resolves a transaction identifier under the registry lock.
func (g *Gateway) lookupTx(txID string) (*txHandle, error) {
	if g.closed.Load() {
		return nil, types.ErrGatewayClosed
	}

	g.txMu.Lock()
	h, ok := g.txs[txID]
	g.txMu.Unlock()
	if !ok {
		return nil, &types.NotFoundError{Resource: "transaction", ID: txID}
	}
	return h, nil
}
