package gallery

import (
	"github.com/go-chi/chi/v5"

	"github.com/dennisxing/garden/internal/routepath"
)

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get(routepath.Garden, h.Page)
	r.Get(routepath.Stylesheet, h.Stylesheet)
	r.Route(routepath.APIProjects, func(r chi.Router) {
		r.Get("/", h.ListProjects)
		r.Get("/{id}", h.GetProject)
	})
}
