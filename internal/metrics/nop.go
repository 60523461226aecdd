// Package metrics provides internal metrics utilities for sqlgate.
package metrics

import "github.com/sqlgate/sqlgate/types"

// NopMetrics is a no-op metrics collector that discards all metrics.
//
// This is used as the default metrics collector when no collector is
// configured, avoiding nil checks throughout the codebase.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements types.MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNopMetrics creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A collector that discards all metrics
func NewNopMetrics() *NopMetrics {
	return &NopMetrics{}
}

// ----------------------
// Select Operations
// ----------------------

// IncSelectTotal discards the metric.
func (m *NopMetrics) IncSelectTotal(_ types.Backend) {}

// IncSelectError discards the metric.
func (m *NopMetrics) IncSelectError(_ types.Backend) {}

// ObserveSelectDuration discards the metric.
func (m *NopMetrics) ObserveSelectDuration(_ types.Backend, _ float64) {}

// ----------------------
// Execute Operations
// ----------------------

// IncExecuteTotal discards the metric.
func (m *NopMetrics) IncExecuteTotal(_ types.Backend) {}

// IncExecuteError discards the metric.
func (m *NopMetrics) IncExecuteError(_ types.Backend) {}

// ObserveExecuteDuration discards the metric.
func (m *NopMetrics) ObserveExecuteDuration(_ types.Backend, _ float64) {}

// ----------------------
// Transactions
// ----------------------

// IncTxBegin discards the metric.
func (m *NopMetrics) IncTxBegin(_ types.Backend) {}

// IncTxCommit discards the metric.
func (m *NopMetrics) IncTxCommit(_ types.Backend) {}

// IncTxRollback discards the metric.
func (m *NopMetrics) IncTxRollback(_ types.Backend) {}

// SetActiveTransactions discards the metric.
func (m *NopMetrics) SetActiveTransactions(_ int) {}

// ----------------------
// Connections
// ----------------------

// IncConnectTotal discards the metric.
func (m *NopMetrics) IncConnectTotal(_ types.Backend) {}

// IncConnectError discards the metric.
func (m *NopMetrics) IncConnectError(_ types.Backend) {}
