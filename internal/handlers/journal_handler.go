package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mindsetlab/growth-tracker/internal/models"
	"github.com/mindsetlab/growth-tracker/internal/services"
	"github.com/mindsetlab/growth-tracker/pkg/middleware"
	log "github.com/sirupsen/logrus"
)

// JournalHandler handles HTTP requests related to the reflection
// journal.
type JournalHandler struct {
	Service *services.JournalService
}

// NewJournalHandler creates a new instance of JournalHandler.
func NewJournalHandler(service *services.JournalService) *JournalHandler {
	return &JournalHandler{Service: service}
}

// CreateEntryHandler saves a new journal entry for the logged-in user.
func (h *JournalHandler) CreateEntryHandler(w http.ResponseWriter, r *http.Request) {
	log.Info("CreateEntryHandler called")
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Date       models.Date `json:"date"`
		Reflection string      `json:"reflection"`
		Lessons    string      `json:"lessons"`
		Mood       string      `json:"mood"`
		Tags       []string    `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Warn("Failed to decode journal entry request")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	entry, err := h.Service.CreateEntry(r.Context(), claims.Username, payload.Date, payload.Reflection, payload.Lessons, payload.Mood, payload.Tags)
	if err != nil {
		log.WithError(err).Error("Failed to create journal entry")
		http.Error(w, "Failed to save entry", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(entry)
}

// ListEntriesHandler returns the logged-in user's entries, newest
// first, optionally filtered by ?search=.
func (h *JournalHandler) ListEntriesHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entries := h.Service.ListEntries(r.Context(), claims.Username, r.URL.Query().Get("search"))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

// DeleteEntryHandler removes one of the user's entries by ID. An
// already-deleted entry is a no-op, not an error.
func (h *JournalHandler) DeleteEntryHandler(w http.ResponseWriter, r *http.Request) {
	log.Info("DeleteEntryHandler called")
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.Service.DeleteEntry(r.Context(), claims.Username, id); err != nil {
		log.WithField("entryID", id).WithError(err).Warn("Failed to delete journal entry")
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
