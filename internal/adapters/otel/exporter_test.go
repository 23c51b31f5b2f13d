package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/dennisxing/garden/internal/domain"
	"github.com/dennisxing/garden/internal/ports"
)

func TestNewExporter_Disabled(t *testing.T) {
	_, err := NewExporter(context.Background(), Config{Enabled: false, Endpoint: "localhost:4317"})
	assert.Error(t, err)

	_, err = NewExporter(context.Background(), Config{Enabled: true})
	assert.Error(t, err)
}

func TestExporter_RecordPageRender(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	exp, err := newExporter(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, exp.RecordPageRender(ctx, ports.PageRender{
		Visuals: map[domain.VisualKind]int{domain.VisualImage: 2, domain.VisualQuote: 1, domain.VisualVideo: 0},
	}))
	require.NoError(t, exp.RecordPageRender(ctx, ports.PageRender{Fragment: true}))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := map[string]metricdata.Metrics{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		byName[m.Name] = m
	}

	pages, ok := byName["garden_page_renders_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	assert.Len(t, pages.DataPoints, 2)

	cards, ok := byName["garden_cards_rendered_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	var total int64
	for _, dp := range cards.DataPoints {
		total += dp.Value
	}
	assert.Equal(t, int64(3), total)
	assert.Len(t, cards.DataPoints, 2)

	require.NoError(t, exp.Close(ctx))
}

func TestNoOpExporter(t *testing.T) {
	exp := NewNoOpExporter()
	assert.NoError(t, exp.RecordPageRender(context.Background(), ports.PageRender{}))
	assert.NoError(t, exp.Close(context.Background()))
}
