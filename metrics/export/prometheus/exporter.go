package prometheus

import (
	"net/http"
	"strconv"
	"strings"

	goRoles "github.com/MrEthical07/goRoles"
	"github.com/MrEthical07/goRoles/metrics/export/internaldefs"
)

type reportSource interface {
	Report() goRoles.TableReport
}

// PrometheusExporter renders role table gauges in Prometheus text exposition format.
type PrometheusExporter struct {
	source reportSource
}

// NewPrometheusExporter creates an exporter that reads from table.
func NewPrometheusExporter(table *goRoles.Table) *PrometheusExporter {
	return &PrometheusExporter{source: table}
}

// NewPrometheusExporterFromSource creates an exporter from any report source.
func NewPrometheusExporterFromSource(source reportSource) *PrometheusExporter {
	return &PrometheusExporter{source: source}
}

// Handler returns an http.Handler that serves the gauges.
func (p *PrometheusExporter) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		_, _ = w.Write([]byte(p.Render()))
	})
}

// Render returns the current gauges. Output order is fixed: table gauges in
// definition order, then per-role gauges with roles in declaration order.
func (p *PrometheusExporter) Render() string {
	if p == nil || p.source == nil {
		return ""
	}

	report := p.source.Report()
	if report.RoleCount == 0 && report.PermissionCount == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(4096)

	for _, def := range internaldefs.GaugeDefs {
		writeHeader(&b, def.Name, def.Help)
		writeSample(&b, def.Name, "", def.Value(report))
	}

	for _, def := range internaldefs.RoleGaugeDefs {
		writeHeader(&b, def.Name, def.Help)
		for _, role := range report.Roles {
			writeSample(&b, def.Name, role.Name, def.Value(role))
		}
	}

	return b.String()
}

func writeHeader(b *strings.Builder, name, help string) {
	b.WriteString("# HELP ")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(escapeHelp(help))
	b.WriteByte('\n')
	b.WriteString("# TYPE ")
	b.WriteString(name)
	b.WriteString(" gauge\n")
}

func writeSample(b *strings.Builder, name, role string, value int64) {
	b.WriteString(name)
	if role != "" {
		b.WriteByte('{')
		b.WriteString(internaldefs.RoleLabel)
		b.WriteString("=\"")
		b.WriteString(escapeLabel(role))
		b.WriteString("\"}")
	}
	b.WriteByte(' ')
	b.WriteString(strconv.FormatInt(value, 10))
	b.WriteByte('\n')
}

func escapeHelp(help string) string {
	help = strings.ReplaceAll(help, "\\", "\\\\")
	help = strings.ReplaceAll(help, "\n", "\\n")
	return help
}

func escapeLabel(v string) string {
	v = strings.ReplaceAll(v, "\\", "\\\\")
	v = strings.ReplaceAll(v, "\"", "\\\"")
	v = strings.ReplaceAll(v, "\n", "\\n")
	return v
}
