package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/dennisxing/garden/internal/ports"
)

const (
	serviceName    = "garden"
	serviceVersion = "1.0.0"
)

// Config holds OTEL exporter configuration.
type Config struct {
	Endpoint string
	Enabled  bool
	Insecure bool
}

// Exporter exports gallery render metrics to an OTEL Collector.
type Exporter struct {
	provider     *sdkmetric.MeterProvider
	pagesTotal   metric.Int64Counter
	cardsTotal   metric.Int64Counter
	cardsPerPage metric.Int64Histogram
}

// NewExporter creates an exporter pushing over OTLP gRPC.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	return newExporter(provider)
}

func newExporter(provider *sdkmetric.MeterProvider) (*Exporter, error) {
	meter := provider.Meter(serviceName)

	pagesTotal, err := meter.Int64Counter(
		"garden_page_renders_total",
		metric.WithDescription("Total gallery pages and fragments rendered"),
		metric.WithUnit("{render}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating page counter: %w", err)
	}

	cardsTotal, err := meter.Int64Counter(
		"garden_cards_rendered_total",
		metric.WithDescription("Total cards rendered, by visual kind"),
		metric.WithUnit("{card}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating card counter: %w", err)
	}

	cardsPerPage, err := meter.Int64Histogram(
		"garden_cards_per_page",
		metric.WithDescription("Number of cards in each rendered grid"),
		metric.WithUnit("{card}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cards histogram: %w", err)
	}

	return &Exporter{
		provider:     provider,
		pagesTotal:   pagesTotal,
		cardsTotal:   cardsTotal,
		cardsPerPage: cardsPerPage,
	}, nil
}

// RecordPageRender records one rendered grid.
func (e *Exporter) RecordPageRender(ctx context.Context, r ports.PageRender) error {
	kind := "page"
	if r.Fragment {
		kind = "fragment"
	}
	e.pagesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))

	var total int64
	for visual, n := range r.Visuals {
		if n == 0 {
			continue
		}
		total += int64(n)
		e.cardsTotal.Add(ctx, int64(n), metric.WithAttributes(attribute.String("visual", visual.String())))
	}
	e.cardsPerPage.Record(ctx, total)
	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
