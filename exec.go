package sqlgate

import (
	"context"
	"database/sql"
	"time"

	"github.com/sqlgate/sqlgate/adapter"
	"github.com/sqlgate/sqlgate/types"
)

// Execute runs a statement against a pool (non-transactional) and reports
// the affected row count plus, where the backend supports it, the last
// insert identifier.
//
// Parameter binding is strictly positional: values are bound in order to the
// statement's placeholders using the backend's native placeholder syntax.
// No SQL rewriting or dialect translation is performed.
func (g *Gateway) Execute(ctx context.Context, req ExecuteRequest) (ExecuteResponse, error) {
	p, err := g.lookupPool(req.DB)
	if err != nil {
		return ExecuteResponse{}, err
	}

	backend := p.adapter.Backend()
	if g.config.LogQueries {
		g.config.Logger.Debug("execute", "db", req.DB, "query", req.Query)
	}

	start := time.Now()
	res, err := p.db.ExecContext(ctx, req.Query, adapter.BindValues(req.Values)...)
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

	return execResponse(p.adapter, res), nil
}

// Select runs a query against a pool and materializes every result row
// eagerly as an ordered column-name to dynamic-value mapping.
func (g *Gateway) Select(ctx context.Context, req SelectRequest) (SelectResponse, error) {
	p, err := g.lookupPool(req.DB)
	if err != nil {
		return SelectResponse{}, err
	}

	backend := p.adapter.Backend()
	if g.config.LogQueries {
		g.config.Logger.Debug("select", "db", req.DB, "query", req.Query)
	}

	start := time.Now()
	rows, err := p.db.QueryxContext(ctx, req.Query, adapter.BindValues(req.Values)...)
	if err == nil {
		var collected []*types.Row
		collected, err = adapter.CollectRows(rows, p.adapter)
		if err == nil {
			g.config.Metrics.ObserveSelectDuration(backend, time.Since(start).Seconds())
			g.config.Metrics.IncSelectTotal(backend)
			return SelectResponse{Rows: collected}, nil
		}
	}

	g.config.Metrics.IncSelectTotal(backend)
	g.config.Metrics.IncSelectError(backend)
	return SelectResponse{}, &types.DriverError{
		Backend:   backend,
		Operation: "select",
		Cause:     err,
	}
}

// execResponse converts a driver result into the wire response.
func execResponse(ad adapter.Adapter, res sql.Result) ExecuteResponse {
	var out ExecuteResponse
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		out.RowsAffected = uint64(n)
	}
	if id, ok := ad.LastInsertID(res); ok {
		out.LastInsertID = &id
	}
	return out
}
