// Package internaldefs holds the gauge names and value extractors shared by the
// Prometheus and OTel exporters, so both publish identical metrics.
//
// # What this package must NOT do
//
//   - Import an exporter package.
//   - Perform I/O.
package internaldefs
