package gallery

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// respondJSON writes a JSON response
func (h *Handler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("encode json", zap.Error(err))
	}
}

// respondError writes an error JSON response
func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
