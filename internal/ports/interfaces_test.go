package ports_test

import (
	"testing"

	"github.com/dennisxing/garden/internal/adapters/catalog"
	"github.com/dennisxing/garden/internal/adapters/otel"
	"github.com/dennisxing/garden/internal/ports"
)

// Compile-time interface conformance checks.

func TestProjectRepositoryConformance(t *testing.T) {
	var _ ports.ProjectRepository = (*catalog.Repository)(nil)
}

func TestMetricsExporterConformance(t *testing.T) {
	var _ ports.MetricsExporter = (*otel.Exporter)(nil)
	var _ ports.MetricsExporter = (*otel.NoOpExporter)(nil)
}
