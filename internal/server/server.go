package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/dennisxing/garden/internal/gallery"
	"github.com/dennisxing/garden/internal/logging"
	"github.com/dennisxing/garden/internal/metrics"
	"github.com/dennisxing/garden/internal/routepath"
	sharedmw "github.com/dennisxing/garden/internal/shared/middleware"
	"github.com/dennisxing/garden/internal/web"
)

// NewRouter wires middleware, static assets and the gallery routes.
func NewRouter(gh *gallery.Handler, m *metrics.HTTP, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware(logger))
	r.Use(m.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(sharedmw.HTMX)

	r.Handle(routepath.Static+"/*", http.StripPrefix(routepath.Static+"/", web.StaticHandler()))

	r.Get(routepath.Root, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, routepath.Garden, http.StatusFound)
	})

	r.Get(routepath.Health, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, routepath.Metrics, m.Handler())

	gallery.RegisterRoutes(r, gh)

	return r
}
