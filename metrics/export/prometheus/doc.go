// Package prometheus renders role table gauges in Prometheus text exposition
// format.
//
// [NewPrometheusExporter] accepts a [goRoles.Table] and exposes an [http.Handler].
// Table-wide gauges are named goroles_*; per-role gauges carry a role label.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry. Callers mount the Handler.
package prometheus
