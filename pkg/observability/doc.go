/*
Package observability exports Prometheus metrics for the cast layer.

Metrics implements signal.Observer, so passing it to signal.WithObserver
counts every textual operation by type key, operation and outcome. The
registered-types gauge is refreshed from a registry on demand.
*/
package observability
