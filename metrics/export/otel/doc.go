// Package otel publishes role table gauges through an OpenTelemetry meter.
//
// [NewOTelExporter] registers one Int64ObservableGauge per table gauge and per
// role gauge. A single callback reads [goRoles.Table.Report] on each collection
// cycle; per-role gauges carry a "role" attribute.
//
// # What this package must NOT do
//
//   - Own the MeterProvider. Callers supply the Meter.
package otel
