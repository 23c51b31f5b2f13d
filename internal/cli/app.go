package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dennisxing/garden/internal/adapters/catalog"
	"github.com/dennisxing/garden/internal/adapters/otel"
	"github.com/dennisxing/garden/internal/gallery"
	"github.com/dennisxing/garden/internal/infrastructure/config"
	"github.com/dennisxing/garden/internal/logging"
	"github.com/dennisxing/garden/internal/media"
	"github.com/dennisxing/garden/internal/motion"
	"github.com/dennisxing/garden/internal/ports"
)

const version = "1.0.0"

// AppContext holds all shared dependencies for CLI commands.
type AppContext struct {
	Config   *config.Server
	Logger   *zap.Logger
	Projects *catalog.Repository
	Exporter ports.MetricsExporter
	Gallery  *gallery.Handler
}

// NewAppContext loads configuration and the collection and builds the gallery handler.
func NewAppContext(ctx context.Context) (*AppContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if projectsPath != "" {
		cfg.ProjectsPath = projectsPath
	}

	logger := logging.New(logging.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		ServiceName: "garden",
		Version:     version,
	})

	repo, err := catalog.Load(cfg.ProjectsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	exporter := newExporter(ctx, cfg.OTel, logger)

	gh := gallery.NewHandler(repo,
		gallery.WithSite(gallery.Site{
			Owner:        cfg.Site.Owner,
			HeroTitle:    cfg.Site.HeroTitle,
			HeroSubtitle: cfg.Site.HeroSubtitle,
		}),
		gallery.WithResolver(newResolver(cfg.Media)),
		gallery.WithAnimator(motion.New(motion.Transition{
			Duration: cfg.Motion.Duration,
			Easing:   cfg.Motion.Easing,
		})),
		gallery.WithExporter(exporter),
		gallery.WithLogger(logger),
	)

	return &AppContext{
		Config:   cfg,
		Logger:   logger,
		Projects: repo,
		Exporter: exporter,
		Gallery:  gh,
	}, nil
}

// Close flushes the exporter and the logger.
func (a *AppContext) Close(ctx context.Context) error {
	err := a.Exporter.Close(ctx)
	_ = a.Logger.Sync()
	return err
}

func newResolver(cfg config.Media) media.Resolver {
	if cfg.BaseURL == "" && len(cfg.Widths) == 0 {
		return media.Passthrough{}
	}
	return media.NewWidthQuery(cfg.BaseURL, cfg.Widths)
}

// newExporter falls back to the no-op exporter when OTEL is off or unreachable.
func newExporter(ctx context.Context, cfg config.OTel, logger *zap.Logger) ports.MetricsExporter {
	if !cfg.Enabled {
		return otel.NewNoOpExporter()
	}
	exp, err := otel.NewExporter(ctx, otel.Config{
		Endpoint: cfg.Endpoint,
		Enabled:  cfg.Enabled,
		Insecure: cfg.Insecure,
	})
	if err != nil {
		logger.Warn("otel exporter unavailable, metrics disabled", zap.Error(err))
		return otel.NewNoOpExporter()
	}
	return exp
}
