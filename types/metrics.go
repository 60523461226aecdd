package types

// MetricsCollector defines methods for collecting operational metrics.
//
// All query-scoped methods accept a Backend parameter for labeling.
// Implementations should be thread-safe as methods may be called concurrently.
//
// Example usage with VictoriaMetrics (via contrib/metrics/vm):
//
//	collector := vm.New(vm.WithPrefix("myapp"))
//	gw := sqlgate.New(sqlgate.WithMetrics(collector))
//
//	// Expose metrics via HTTP
//	http.HandleFunc("/metrics", collector.Handler)
type MetricsCollector interface {
	// ----------------------
	// Select Operations
	// ----------------------

	// IncSelectTotal increments the total select operations counter.
	IncSelectTotal(backend Backend)

	// IncSelectError increments the select error counter.
	IncSelectError(backend Backend)

	// ObserveSelectDuration records a select operation duration in seconds.
	ObserveSelectDuration(backend Backend, seconds float64)

	// ----------------------
	// Execute Operations
	// ----------------------

	// IncExecuteTotal increments the total execute operations counter.
	// Statements executed inside a transaction are counted here as well.
	IncExecuteTotal(backend Backend)

	// IncExecuteError increments the execute error counter.
	IncExecuteError(backend Backend)

	// ObserveExecuteDuration records an execute operation duration in seconds.
	ObserveExecuteDuration(backend Backend, seconds float64)

	// ----------------------
	// Transactions
	// ----------------------

	// IncTxBegin increments the transactions-begun counter.
	IncTxBegin(backend Backend)

	// IncTxCommit increments the transactions-committed counter.
	IncTxCommit(backend Backend)

	// IncTxRollback increments the transactions-rolled-back counter.
	IncTxRollback(backend Backend)

	// SetActiveTransactions sets the active-transaction gauge. Transactions
	// have no expiry, so a steadily growing gauge is the operator's signal
	// for leaked handles.
	SetActiveTransactions(count int)

	// ----------------------
	// Connections
	// ----------------------

	// IncConnectTotal increments the connect counter.
	IncConnectTotal(backend Backend)

	// IncConnectError increments the connect error counter.
	IncConnectError(backend Backend)
}
