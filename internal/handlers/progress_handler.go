package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mindsetlab/growth-tracker/internal/services"
	"github.com/mindsetlab/growth-tracker/pkg/middleware"
)

// ProgressHandler handles HTTP requests for the progress tracker.
type ProgressHandler struct {
	Service *services.ProgressService
}

// NewProgressHandler creates a new instance of ProgressHandler.
func NewProgressHandler(service *services.ProgressService) *ProgressHandler {
	return &ProgressHandler{Service: service}
}

// SummaryHandler returns total completions, current streak and the
// weekly per-day counts for the logged-in user.
func (h *ProgressHandler) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	summary := h.Service.Summary(r.Context(), claims.Username)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}
