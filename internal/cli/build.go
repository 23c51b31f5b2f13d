package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dennisxing/garden/internal/gallery"
	"github.com/dennisxing/garden/internal/web"
)

var buildCmd = &cobra.Command{
	Use:   "build <output-dir>",
	Short: "Render the gallery to static files",
	Long: `Render the gallery page and its assets into a directory that any static
file host can serve.

Writes:
  <output-dir>/garden/index.html
  <output-dir>/garden/styles.css
  <output-dir>/static/...`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer app.Close(context.Background())

	written, err := buildSite(ctx, app.Gallery, args[0])
	if err != nil {
		return err
	}
	app.Logger.Info("static build complete",
		zap.String("dir", args[0]),
		zap.Int("files", written),
		zap.Int("projects", app.Projects.Len()),
	)
	return nil
}

// buildSite writes the page, the motion stylesheet and the embedded assets under dir.
func buildSite(ctx context.Context, gh *gallery.Handler, dir string) (int, error) {
	pageDir := filepath.Join(dir, "garden")
	if err := os.MkdirAll(pageDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(pageDir, "index.html"))
	if err != nil {
		return 0, fmt.Errorf("failed to create index.html: %w", err)
	}
	if err := gh.RenderPage(ctx, f); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("failed to write index.html: %w", err)
	}
	written := 1

	if err := os.WriteFile(filepath.Join(pageDir, "styles.css"), []byte(gh.StylesheetCSS()), 0o644); err != nil {
		return written, fmt.Errorf("failed to write styles.css: %w", err)
	}
	written++

	staticDir := filepath.Join(dir, "static")
	err = fs.WalkDir(web.StaticFS(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(staticDir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(web.StaticFS(), path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return err
		}
		written++
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("failed to copy static assets: %w", err)
	}
	return written, nil
}
