package otel

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	goRoles "github.com/MrEthical07/goRoles"
	"github.com/MrEthical07/goRoles/metrics/export/internaldefs"
)

var (
	ErrNilMeter  = errors.New("nil meter")
	ErrNilSource = errors.New("nil report source")
)

type reportSource interface {
	Report() goRoles.TableReport
}

type observedGauge struct {
	def        internaldefs.GaugeDef
	instrument metric.Int64ObservableGauge
}

type observedRoleGauge struct {
	def        internaldefs.RoleGaugeDef
	instrument metric.Int64ObservableGauge
}

type OTelExporter struct {
	source       reportSource
	registration metric.Registration
	gauges       []observedGauge
	roleGauges   []observedRoleGauge
}

func NewOTelExporter(meter metric.Meter, table *goRoles.Table) (*OTelExporter, error) {
	if table == nil {
		return nil, ErrNilSource
	}
	return NewOTelExporterFromSource(meter, table)
}

func NewOTelExporterFromSource(meter metric.Meter, source reportSource) (*OTelExporter, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}
	if source == nil {
		return nil, ErrNilSource
	}

	exporter := &OTelExporter{
		source:     source,
		gauges:     make([]observedGauge, 0, len(internaldefs.GaugeDefs)),
		roleGauges: make([]observedRoleGauge, 0, len(internaldefs.RoleGaugeDefs)),
	}

	observables := make([]metric.Observable, 0, len(internaldefs.GaugeDefs)+len(internaldefs.RoleGaugeDefs))

	for _, def := range internaldefs.GaugeDefs {
		ins, err := meter.Int64ObservableGauge(def.Name, metric.WithDescription(def.Help))
		if err != nil {
			return nil, fmt.Errorf("create observable gauge %s: %w", def.Name, err)
		}
		exporter.gauges = append(exporter.gauges, observedGauge{def: def, instrument: ins})
		observables = append(observables, ins)
	}

	for _, def := range internaldefs.RoleGaugeDefs {
		ins, err := meter.Int64ObservableGauge(def.Name, metric.WithDescription(def.Help))
		if err != nil {
			return nil, fmt.Errorf("create observable gauge %s: %w", def.Name, err)
		}
		exporter.roleGauges = append(exporter.roleGauges, observedRoleGauge{def: def, instrument: ins})
		observables = append(observables, ins)
	}

	registration, err := meter.RegisterCallback(func(_ context.Context, observer metric.Observer) error {
		report := exporter.source.Report()
		for _, g := range exporter.gauges {
			observer.ObserveInt64(g.instrument, g.def.Value(report))
		}
		for _, role := range report.Roles {
			attrs := metric.WithAttributes(attribute.String(internaldefs.RoleLabel, role.Name))
			for _, g := range exporter.roleGauges {
				observer.ObserveInt64(g.instrument, g.def.Value(role), attrs)
			}
		}
		return nil
	}, observables...)
	if err != nil {
		return nil, fmt.Errorf("register callback: %w", err)
	}

	exporter.registration = registration
	return exporter, nil
}

func (e *OTelExporter) Close() error {
	if e == nil || e.registration == nil {
		return nil
	}
	return e.registration.Unregister()
}
