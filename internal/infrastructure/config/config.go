package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/dennisxing/garden/internal/media"
)

// Site holds what the page shows around the collection.
type Site struct {
	Owner        string `envconfig:"GARDEN_SITE_OWNER" default:"Dennis Xing"`
	HeroTitle    string `envconfig:"GARDEN_HERO_TITLE" default:"The Garden"`
	HeroSubtitle string `envconfig:"GARDEN_HERO_SUBTITLE" default:"A collection of places, notes, sketches, and builds."`
}

// Widths is a srcset ladder such as "640,1080,1920". Non-positive widths are rejected.
type Widths []int

// Decode implements envconfig.Decoder.
func (w *Widths) Decode(value string) error {
	parsed, err := media.ParseWidths(value)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// Media configures how image and video URIs are resolved.
type Media struct {
	BaseURL string `envconfig:"GARDEN_MEDIA_BASE_URL"`
	// Widths is the srcset ladder; empty serves images unchanged.
	Widths Widths `envconfig:"GARDEN_MEDIA_WIDTHS"`
}

// Motion sets the timing of the card description reveal.
type Motion struct {
	Duration time.Duration `envconfig:"GARDEN_MOTION_DURATION" default:"300ms"`
	Easing   string        `envconfig:"GARDEN_MOTION_EASING" default:"ease-in-out"`
}

// Log holds logger settings.
type Log struct {
	Level  string `envconfig:"GARDEN_LOG_LEVEL" default:"info"`
	Format string `envconfig:"GARDEN_LOG_FORMAT" default:"console"`
}

// OTel holds the metrics exporter settings.
type OTel struct {
	Enabled  bool   `envconfig:"GARDEN_OTEL_ENABLED" default:"false"`
	Endpoint string `envconfig:"GARDEN_OTEL_ENDPOINT"`
	Insecure bool   `envconfig:"GARDEN_OTEL_INSECURE" default:"false"`
}

// Server holds configuration for serving and building the gallery.
type Server struct {
	Addr            string        `envconfig:"GARDEN_ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"GARDEN_SHUTDOWN_TIMEOUT" default:"10s"`
	// ProjectsPath overrides the embedded collection when set.
	ProjectsPath string `envconfig:"GARDEN_PROJECTS_PATH"`

	Site   Site   `ignored:"true"`
	Media  Media  `ignored:"true"`
	Motion Motion `ignored:"true"`
	Log    Log    `ignored:"true"`
	OTel   OTel   `ignored:"true"`
}

// Load loads server configuration from environment variables.
func Load() (*Server, error) {
	var cfg Server
	for _, target := range []any{&cfg, &cfg.Site, &cfg.Media, &cfg.Motion, &cfg.Log, &cfg.OTel} {
		if err := envconfig.Process("", target); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	if cfg.Motion.Duration < 0 {
		return nil, fmt.Errorf("load config: GARDEN_MOTION_DURATION must not be negative")
	}
	return &cfg, nil
}
