package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mindsetlab/growth-tracker/internal/catalog"
)

// DashboardHandler serves the dashboard content.
type DashboardHandler struct{}

// NewDashboardHandler creates a new instance of DashboardHandler.
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// QuoteHandler returns a random growth quote for the daily
// inspiration panel.
func (h *DashboardHandler) QuoteHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"quote": catalog.RandomQuote()})
}
