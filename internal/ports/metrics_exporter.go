package ports

import (
	"context"

	"github.com/dennisxing/garden/internal/domain"
)

// MetricsExporter exports gallery render metrics to an external observability system.
type MetricsExporter interface {
	// RecordPageRender records one rendered gallery page or fragment.
	RecordPageRender(ctx context.Context, r PageRender) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// PageRender describes a single render of the gallery grid.
type PageRender struct {
	Fragment bool
	Visuals  map[domain.VisualKind]int
}
