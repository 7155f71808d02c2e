// Package observability provides structured logging and metrics for the
// authentication gate.
//
// This package implements:
//   - zap logger construction from level/format settings
//   - Prometheus counters for gate decisions by outcome
package observability
