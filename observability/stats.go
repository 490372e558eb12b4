package observability

import (
	"context"
	"time"

	otelruntime "go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	EngineMeterName   = "xds/engine"
	EngineOpsMetric   = "xds.engine.ops"
	EngineSizeMetric  = "xds.engine.size"
	AttrKind          = attribute.Key("xds.kind")
	AttrOp            = attribute.Key("xds.op")
	minReadMemStatsIv = 15 * time.Second
)

// EngineStats counts the container operations of the engine.
// A nil *EngineStats records nothing.
type EngineStats struct {
	ops  metric.Int64Counter
	size metric.Int64UpDownCounter
}

// Record counts one op on the container kind. The delta is the
// change of the container size and may be 0.
func (stats *EngineStats) Record(ctx context.Context, kind, op string, delta int64) {
	if stats == nil {
		return
	}
	stats.ops.Add(ctx, 1, metric.WithAttributes(AttrKind.String(kind), AttrOp.String(op)))
	if delta != 0 {
		stats.size.Add(ctx, delta, metric.WithAttributes(AttrKind.String(kind)))
	}
}

// NewEngineStats uses the global meter if meter is nil. The global meter
// is a no-op until a provider is installed.
func NewEngineStats(meter metric.Meter) (*EngineStats, error) {
	if meter == nil {
		meter = otel.Meter(EngineMeterName)
	}
	ops, err := meter.Int64Counter(
		EngineOpsMetric,
		metric.WithDescription(`The container operations of the engine.`),
	)
	if err != nil {
		return nil, err
	}
	size, err := meter.Int64UpDownCounter(
		EngineSizeMetric,
		metric.WithDescription(`The element count of each container.`),
	)
	if err != nil {
		return nil, err
	}
	return &EngineStats{
		ops:  ops,
		size: size,
	}, nil
}

// StartRuntimeStats reports the Go runtime metrics of the hosting process
// to the provider. A nil provider means the global one.
func StartRuntimeStats(provider metric.MeterProvider) error {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	return otelruntime.Start(
		otelruntime.WithMeterProvider(provider),
		otelruntime.WithMinimumReadMemStatsInterval(minReadMemStatsIv),
	)
}
