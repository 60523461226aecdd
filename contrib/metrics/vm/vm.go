// Package vm provides a VictoriaMetrics-backed implementation of
// types.MetricsCollector.
package vm

import (
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/VictoriaMetrics/metrics"

	"github.com/sqlgate/sqlgate/types"
)

// backends is the closed set of labels metrics are pre-created for.
var backends = []types.Backend{
	types.BackendSQLite,
	types.BackendMySQL,
	types.BackendPostgres,
}

// Option configures a Collector.
type Option func(*Collector)

// WithPrefix sets the metric name prefix.
//
// Default: "sqlgate"
//
// Parameters:
//   - prefix: The prefix to use for all metric names
//
// Returns:
//   - Option: A configuration option
func WithPrefix(prefix string) Option {
	return func(c *Collector) {
		c.prefix = prefix
	}
}

// WithMetricsSet sets the metrics set to use.
//
// If provided, the collector will register metrics with this set instead of
// creating a new one. The caller is responsible for exposing this set
// (e.g., via metrics.WritePrometheus or a custom handler).
//
// Parameters:
//   - set: The metrics set to use
//
// Returns:
//   - Option: A configuration option
func WithMetricsSet(set *metrics.Set) Option {
	return func(c *Collector) {
		c.set = set
	}
}

// Collector implements types.MetricsCollector using VictoriaMetrics.
//
// All metrics are pre-created at initialization time for optimal
// performance. Thread-safe for concurrent use.
type Collector struct {
	set    *metrics.Set
	prefix string

	selectTotal     map[types.Backend]*metrics.Counter
	selectErrors    map[types.Backend]*metrics.Counter
	selectDuration  map[types.Backend]*metrics.Histogram
	executeTotal    map[types.Backend]*metrics.Counter
	executeErrors   map[types.Backend]*metrics.Counter
	executeDuration map[types.Backend]*metrics.Histogram

	txBegin    map[types.Backend]*metrics.Counter
	txCommit   map[types.Backend]*metrics.Counter
	txRollback map[types.Backend]*metrics.Counter
	activeTx   atomic.Int64

	connectTotal  map[types.Backend]*metrics.Counter
	connectErrors map[types.Backend]*metrics.Counter
}

// Compile-time assertion that Collector implements types.MetricsCollector.
var _ types.MetricsCollector = (*Collector)(nil)

// New creates a new VictoriaMetrics-based metrics collector.
//
// The collector creates its own metrics.Set and registers it globally
// unless WithMetricsSet is provided.
//
// Parameters:
//   - opts: Configuration options (e.g., WithPrefix)
//
// Returns:
//   - *Collector: A new metrics collector ready for use
//
// Example:
//
//	collector := vm.New(vm.WithPrefix("myapp"))
//	gw := sqlgate.New(sqlgate.WithMetrics(collector))
func New(opts ...Option) *Collector {
	c := &Collector{prefix: "sqlgate"}

	for _, opt := range opts {
		opt(c)
	}

	// If no set is provided, create a new one and register it globally.
	// If a set is provided, we assume the caller manages it.
	if c.set == nil {
		c.set = metrics.NewSet()
		metrics.RegisterSet(c.set)
	}

	c.initMetrics()

	return c
}

// initMetrics pre-creates all metrics with the configured prefix.
func (c *Collector) initMetrics() {
	p := c.prefix

	c.selectTotal = make(map[types.Backend]*metrics.Counter, len(backends))
	c.selectErrors = make(map[types.Backend]*metrics.Counter, len(backends))
	c.selectDuration = make(map[types.Backend]*metrics.Histogram, len(backends))
	c.executeTotal = make(map[types.Backend]*metrics.Counter, len(backends))
	c.executeErrors = make(map[types.Backend]*metrics.Counter, len(backends))
	c.executeDuration = make(map[types.Backend]*metrics.Histogram, len(backends))
	c.txBegin = make(map[types.Backend]*metrics.Counter, len(backends))
	c.txCommit = make(map[types.Backend]*metrics.Counter, len(backends))
	c.txRollback = make(map[types.Backend]*metrics.Counter, len(backends))
	c.connectTotal = make(map[types.Backend]*metrics.Counter, len(backends))
	c.connectErrors = make(map[types.Backend]*metrics.Counter, len(backends))

	for _, b := range backends {
		c.selectTotal[b] = c.set.NewCounter(fmt.Sprintf(`%s_select_total{backend=%q}`, p, b))
		c.selectErrors[b] = c.set.NewCounter(fmt.Sprintf(`%s_select_errors_total{backend=%q}`, p, b))
		c.selectDuration[b] = c.set.NewHistogram(fmt.Sprintf(`%s_select_duration_seconds{backend=%q}`, p, b))
		c.executeTotal[b] = c.set.NewCounter(fmt.Sprintf(`%s_execute_total{backend=%q}`, p, b))
		c.executeErrors[b] = c.set.NewCounter(fmt.Sprintf(`%s_execute_errors_total{backend=%q}`, p, b))
		c.executeDuration[b] = c.set.NewHistogram(fmt.Sprintf(`%s_execute_duration_seconds{backend=%q}`, p, b))
		c.txBegin[b] = c.set.NewCounter(fmt.Sprintf(`%s_transactions_begun_total{backend=%q}`, p, b))
		c.txCommit[b] = c.set.NewCounter(fmt.Sprintf(`%s_transactions_committed_total{backend=%q}`, p, b))
		c.txRollback[b] = c.set.NewCounter(fmt.Sprintf(`%s_transactions_rolled_back_total{backend=%q}`, p, b))
		c.connectTotal[b] = c.set.NewCounter(fmt.Sprintf(`%s_connects_total{backend=%q}`, p, b))
		c.connectErrors[b] = c.set.NewCounter(fmt.Sprintf(`%s_connect_errors_total{backend=%q}`, p, b))
	}

	c.set.NewGauge(p+"_active_transactions", func() float64 {
		return float64(c.activeTx.Load())
	})
}

// Handler is an http.HandlerFunc that exposes the collector's metrics in
// Prometheus text format.
func (c *Collector) Handler(w http.ResponseWriter, _ *http.Request) {
	c.set.WritePrometheus(w)
}

// IncSelectTotal increments the total select operations counter.
func (c *Collector) IncSelectTotal(backend types.Backend) {
	if m, ok := c.selectTotal[backend]; ok {
		m.Inc()
	}
}

// IncSelectError increments the select error counter.
func (c *Collector) IncSelectError(backend types.Backend) {
	if m, ok := c.selectErrors[backend]; ok {
		m.Inc()
	}
}

// ObserveSelectDuration records a select operation duration in seconds.
func (c *Collector) ObserveSelectDuration(backend types.Backend, seconds float64) {
	if m, ok := c.selectDuration[backend]; ok {
		m.Update(seconds)
	}
}

// IncExecuteTotal increments the total execute operations counter.
func (c *Collector) IncExecuteTotal(backend types.Backend) {
	if m, ok := c.executeTotal[backend]; ok {
		m.Inc()
	}
}

// IncExecuteError increments the execute error counter.
func (c *Collector) IncExecuteError(backend types.Backend) {
	if m, ok := c.executeErrors[backend]; ok {
		m.Inc()
	}
}

// ObserveExecuteDuration records an execute operation duration in seconds.
func (c *Collector) ObserveExecuteDuration(backend types.Backend, seconds float64) {
	if m, ok := c.executeDuration[backend]; ok {
		m.Update(seconds)
	}
}

// IncTxBegin increments the transactions-begun counter.
func (c *Collector) IncTxBegin(backend types.Backend) {
	if m, ok := c.txBegin[backend]; ok {
		m.Inc()
	}
}

// IncTxCommit increments the transactions-committed counter.
func (c *Collector) IncTxCommit(backend types.Backend) {
	if m, ok := c.txCommit[backend]; ok {
		m.Inc()
	}
}

// IncTxRollback increments the transactions-rolled-back counter.
func (c *Collector) IncTxRollback(backend types.Backend) {
	if m, ok := c.txRollback[backend]; ok {
		m.Inc()
	}
}

// SetActiveTransactions sets the active-transaction gauge.
func (c *Collector) SetActiveTransactions(count int) {
	c.activeTx.Store(int64(count))
}

// IncConnectTotal increments the connect counter.
func (c *Collector) IncConnectTotal(backend types.Backend) {
	if m, ok := c.connectTotal[backend]; ok {
		m.Inc()
	}
}

// IncConnectError increments the connect error counter.
func (c *Collector) IncConnectError(backend types.Backend) {
	if m, ok := c.connectErrors[backend]; ok {
		m.Inc()
	}
}
