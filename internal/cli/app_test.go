package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dennisxing/garden/internal/adapters/otel"
	"github.com/dennisxing/garden/internal/infrastructure/config"
	"github.com/dennisxing/garden/internal/media"
)

const cabinJSON = `[{"id":"a","title":"Cabin","date":"2023","image":"/cabin.jpg","description":"A small cabin.","tags":[],"link":"/garden/cabin"}]`

// withProjects points the persistent --projects flag at a temp file for one test.
func withProjects(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	prev := projectsPath
	projectsPath = path
	t.Cleanup(func() { projectsPath = prev })
	return path
}

func TestNewAppContext(t *testing.T) {
	withProjects(t, cabinJSON)

	app, err := NewAppContext(context.Background())
	require.NoError(t, err)
	defer app.Close(context.Background())

	assert.Equal(t, 1, app.Projects.Len())
	assert.IsType(t, &otel.NoOpExporter{}, app.Exporter)
	assert.NotNil(t, app.Gallery)
}

func TestNewAppContext_MotionFromConfig(t *testing.T) {
	withProjects(t, cabinJSON)
	t.Setenv("GARDEN_MOTION_DURATION", "450ms")
	t.Setenv("GARDEN_MOTION_EASING", "linear")

	app, err := NewAppContext(context.Background())
	require.NoError(t, err)
	defer app.Close(context.Background())

	assert.Contains(t, app.Gallery.StylesheetCSS(), "opacity 450ms linear")
}

func TestNewAppContext_InvalidMediaWidths(t *testing.T) {
	withProjects(t, cabinJSON)
	t.Setenv("GARDEN_MEDIA_WIDTHS", "-1,640")

	_, err := NewAppContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid media width")
}

func TestNewAppContext_InvalidProjects(t *testing.T) {
	withProjects(t, `[{"id":"a"}]`)

	_, err := NewAppContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load projects")
}

func TestNewResolver(t *testing.T) {
	assert.IsType(t, media.Passthrough{}, newResolver(config.Media{}))
	assert.IsType(t, &media.WidthQuery{}, newResolver(config.Media{Widths: []int{640}}))
	assert.IsType(t, &media.WidthQuery{}, newResolver(config.Media{BaseURL: "https://cdn.example.com"}))
}
