package sqlgate

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sqlgate/sqlgate/adapter"
	"github.com/sqlgate/sqlgate/types"
)

// pool is one registry entry: a backend-tagged connection pool. The entry is
// the sole owner of its *sqlx.DB; nothing retains a reference after the
// entry is replaced or the gateway closes.
type pool struct {
	adapter adapter.Adapter
	db      *sqlx.DB
}

// Connect opens a connection pool for the given URL and registers it under
// the URL itself, which is returned as the durable handle for subsequent
// operations.
//
// The scheme prefix (text before the first ':') selects the backend;
// unsupported or malformed schemes fail with a configuration error before
// any I/O is attempted. Reconnecting with the same URL unconditionally
// replaces the prior pool: in-flight operations on the old pool finish
// against it, new operations use the new pool, and the old pool object is
// dropped without an explicit drain.
func (g *Gateway) Connect(ctx context.Context, req ConnectRequest) (ConnectResponse, error) {
	if g.closed.Load() {
		return ConnectResponse{}, types.ErrGatewayClosed
	}

	ad, err := g.adapterForURL(req.URL)
	if err != nil {
		return ConnectResponse{}, err
	}

	dsn, err := ad.DataSourceName(req.URL)
	if err != nil {
		g.config.Metrics.IncConnectError(ad.Backend())
		return ConnectResponse{}, err
	}

	db, err := sqlx.ConnectContext(ctx, ad.DriverName(), dsn)
	if err != nil {
		g.config.Metrics.IncConnectError(ad.Backend())
		return ConnectResponse{}, &types.DriverError{
			Backend:   ad.Backend(),
			Operation: "connect",
			Cause:     err,
		}
	}

	g.poolMu.Lock()
	if old, ok := g.pools[req.URL]; ok {
		g.config.Logger.Info("replacing existing pool", "url", req.URL, "backend", old.adapter.Backend())
	}
	g.pools[req.URL] = &pool{adapter: ad, db: db}
	g.poolMu.Unlock()

	g.config.Metrics.IncConnectTotal(ad.Backend())
	g.config.Logger.Debug("connected", "url", req.URL, "backend", ad.Backend())

	return ConnectResponse{Handle: req.URL}, nil
}

// adapterForURL resolves the backend adapter from the URL's scheme prefix.
func (g *Gateway) adapterForURL(url string) (adapter.Adapter, error) {
	scheme, _, ok := strings.Cut(url, ":")
	if !ok {
		return nil, &types.ConfigError{
			URL:    url,
			Reason: "invalid connection URL",
			Cause:  types.ErrInvalidURL,
		}
	}

	switch scheme {
	case "sqlite":
		return g.sqlite, nil
	case "mysql":
		return g.mysql, nil
	case "postgres", "postgresql":
		return g.postgres, nil
	default:
		return nil, &types.ConfigError{
			URL:    url,
			Reason: "unsupported database scheme " + scheme,
			Cause:  types.ErrUnsupportedScheme,
		}
	}
}

// lookupPool resolves a connection handle under the shared read lock.
func (g *Gateway) lookupPool(handle string) (*pool, error) {
	if g.closed.Load() {
		return nil, types.ErrGatewayClosed
	}

	g.poolMu.RLock()
	p, ok := g.pools[handle]
	g.poolMu.RUnlock()
	if !ok {
		return nil, &types.NotFoundError{Resource: "database", ID: handle}
	}
	return p, nil
}
