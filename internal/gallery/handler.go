package gallery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dennisxing/garden/internal/adapters/catalog"
	"github.com/dennisxing/garden/internal/adapters/otel"
	"github.com/dennisxing/garden/internal/domain"
	"github.com/dennisxing/garden/internal/media"
	"github.com/dennisxing/garden/internal/motion"
	"github.com/dennisxing/garden/internal/ports"
	"github.com/dennisxing/garden/internal/shared/middleware"
	"github.com/dennisxing/garden/internal/web/templates"
)

type Handler struct {
	repo     ports.ProjectRepository
	resolver media.Resolver
	animator motion.Animator
	exporter ports.MetricsExporter
	site     Site
	logger   *zap.Logger
	nonce    func() string
}

type Option func(*Handler)

func WithSite(s Site) Option { return func(h *Handler) { h.site = s } }

func WithResolver(r media.Resolver) Option { return func(h *Handler) { h.resolver = r } }

func WithAnimator(a motion.Animator) Option { return func(h *Handler) { h.animator = a } }

func WithExporter(e ports.MetricsExporter) Option { return func(h *Handler) { h.exporter = e } }

func WithLogger(l *zap.Logger) Option { return func(h *Handler) { h.logger = l } }

func NewHandler(repo ports.ProjectRepository, opts ...Option) *Handler {
	h := &Handler{
		repo:     repo,
		resolver: media.Passthrough{},
		animator: motion.Default(),
		site:     DefaultSite,
		logger:   zap.NewNop(),
		nonce:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.exporter == nil {
		h.exporter = otel.NewNoOpExporter()
	}
	return h
}

// Page serves the gallery. htmx requests get the grid fragment only.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	fragment := middleware.IsHTMX(r)

	projects, err := h.repo.List(ctx)
	if err != nil {
		h.logger.Error("list projects", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	cards := buildCards(projects, h.resolver)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if fragment {
		err = templates.Grid(cards).Render(ctx, w)
	} else {
		nonce := h.nonce()
		w.Header().Set("Content-Security-Policy", contentSecurityPolicy(nonce))
		err = templates.Page(buildPage(h.site, cards, nonce)).Render(ctx, w)
	}
	if err != nil {
		h.logger.Error("render gallery", zap.Error(err), zap.Bool("fragment", fragment))
		return
	}

	h.record(ctx, ports.PageRender{Fragment: fragment, Visuals: countVisuals(cards)})
}

// Stylesheet serves the description transition rules.
func (h *Handler) Stylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = io.WriteString(w, h.StylesheetCSS())
}

func (h *Handler) StylesheetCSS() string {
	return motion.Stylesheet(h.animator, motion.DefaultSelectors)
}

// RenderPage writes the full page without a nonce, for static builds.
func (h *Handler) RenderPage(ctx context.Context, w io.Writer) error {
	projects, err := h.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list projects: %w", err)
	}
	if err := templates.Page(buildPage(h.site, buildCards(projects, h.resolver), "")).Render(ctx, w); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// ListProjects handles GET /api/projects
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("list projects", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to list projects")
		return
	}
	h.respondJSON(w, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{id}
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.repo.GetByID(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		h.respondError(w, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		h.logger.Error("get project", zap.String("id", id), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to get project")
		return
	}
	h.respondJSON(w, http.StatusOK, project)
}

func (h *Handler) record(ctx context.Context, pr ports.PageRender) {
	if err := h.exporter.RecordPageRender(ctx, pr); err != nil {
		h.logger.Warn("record page render", zap.Error(err))
	}
}

// countVisuals tallies what each card shows after media resolution.
func countVisuals(cards []templates.CardView) map[domain.VisualKind]int {
	counts := make(map[domain.VisualKind]int, 4)
	for _, c := range cards {
		counts[c.Visual]++
	}
	return counts
}

// contentSecurityPolicy pins scripts to the nonce. Project media may live on any
// http or https origin, including a configured media base URL.
func contentSecurityPolicy(nonce string) string {
	return "default-src 'self'; script-src 'self' 'nonce-" + nonce + "'; style-src 'self'; " +
		"img-src 'self' http: https: data:; media-src 'self' http: https:"
}
