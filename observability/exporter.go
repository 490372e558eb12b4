package observability

// https://opentelemetry.io/docs/languages/go/exporters/

import (
	"fmt"
	"io"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// NewConsoleMeterProvider serves for test/dev environment. The metrics are
// written to w every interval and once more on shutdown.
func NewConsoleMeterProvider(w io.Writer, interval, timeout time.Duration) (*metric.MeterProvider, error) {
	exporter, err := stdoutmetric.New(stdoutmetric.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("create console exporter: %w", err)
	}
	return metric.NewMeterProvider(metric.WithReader(metric.NewPeriodicReader(
		exporter,
		metric.WithInterval(interval),
		metric.WithTimeout(timeout),
	))), nil
}

// NewPrometheusMeterProvider serves for the product environment. The
// metrics are fetched by HTTP from the registerer, the default one if nil.
func NewPrometheusMeterProvider(registerer prom.Registerer) (*metric.MeterProvider, error) {
	if registerer == nil {
		registerer = prom.DefaultRegisterer
	}
	exporter, err := prometheus.New(prometheus.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}
	return metric.NewMeterProvider(metric.WithReader(exporter)), nil
}
