package sqlgate

import (
	"sync"
	"sync/atomic"

	"github.com/sqlgate/sqlgate/adapter/mysql"
	"github.com/sqlgate/sqlgate/adapter/postgres"
	"github.com/sqlgate/sqlgate/adapter/sqlite"
)

// Gateway is the multi-backend SQL gateway.
//
// It owns two registries: a pool registry mapping connection URLs to open
// backend pools, and a transaction registry mapping opaque identifiers to
// live transactions that span multiple independent calls (begin, N executes,
// commit or rollback).
//
// All methods are safe for concurrent use. Operations against different
// pools or transactions proceed independently; statements within one
// transaction are strictly serialized.
type Gateway struct {
	config *Config

	sqlite   *sqlite.Adapter
	mysql    *mysql.Adapter
	postgres *postgres.Adapter

	// poolMu guards pools. Connect takes the write lock only for the
	// insertion step; queries share the read lock.
	poolMu sync.RWMutex
	pools  map[string]*pool

	// txMu guards the transaction map only. Each handle carries its own
	// mutex, so statements on different transactions do not serialize
	// against each other.
	txMu sync.Mutex
	txs  map[string]*txHandle

	closed atomic.Bool
}

// New creates a Gateway.
//
// Parameters:
//   - opts: Optional configuration (data directory, logger, metrics)
//
// Returns:
//   - *Gateway: A gateway with empty registries, ready for Connect
func New(opts ...Option) *Gateway {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	// Ensure logger and metrics are never nil so call sites skip nil checks.
	if config.Logger == nil {
		defaults := DefaultConfig()
		config.Logger = defaults.Logger
	}
	if config.Metrics == nil {
		defaults := DefaultConfig()
		config.Metrics = defaults.Metrics
	}

	return &Gateway{
		config:   config,
		sqlite:   sqlite.New(config.DataDir),
		mysql:    mysql.New(),
		postgres: postgres.New(),
		pools:    make(map[string]*pool),
		txs:      make(map[string]*txHandle),
	}
}

// Ping is a no-op identity echo used for liveness checks.
func (g *Gateway) Ping(req PingRequest) PingResponse {
	return PingResponse{Value: req.Value}
}

// Close shuts the gateway down: any still-active transactions are rolled
// back and all pools are closed. In-flight operations may fail with driver
// errors once their underlying connections close.
//
// Close exists for orderly process shutdown only; under normal operation
// commit and rollback are the only ways a transaction finishes.
func (g *Gateway) Close() error {
	if g.closed.Swap(true) {
		return nil
	}

	g.txMu.Lock()
	handles := make([]*txHandle, 0, len(g.txs))
	for id, h := range g.txs {
		handles = append(handles, h)
		delete(g.txs, id)
	}
	g.txMu.Unlock()

	for _, h := range handles {
		h.mu.Lock()
		if !h.done {
			h.done = true
			if err := h.tx.Rollback(); err != nil {
				g.config.Logger.Warn("rollback on close failed",
					"backend", h.adapter.Backend(), "error", err)
			}
		}
		h.mu.Unlock()
	}

	var firstErr error
	g.poolMu.Lock()
	for url, p := range g.pools {
		if err := p.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(g.pools, url)
	}
	g.poolMu.Unlock()

	return firstErr
}
