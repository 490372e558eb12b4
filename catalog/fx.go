package catalog

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/fx"

	"github.com/benz9527/xds/xlog"
)

type FxParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Logger    xlog.XLogger `optional:"true"`
	Meter     metric.Meter `optional:"true"`
}

// NewFxCatalog provides a seeded catalog of int64, the element type of
// the reference data. The nodes are released on stop.
func NewFxCatalog(p FxParams) *Catalog[int64] {
	c := New[int64](
		WithCatalogLogger(p.Logger),
		WithCatalogMeter(p.Meter),
	)
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			c.Seed()
			return c.SelfCheck()
		},
		OnStop: func(ctx context.Context) error {
			c.Release()
			return nil
		},
	})
	return c
}

var Module = fx.Module("catalog",
	fx.Provide(NewFxCatalog),
)
