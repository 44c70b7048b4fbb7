package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mindsetlab/growth-tracker/internal/catalog"
	"github.com/mindsetlab/growth-tracker/internal/models"
	"github.com/mindsetlab/growth-tracker/internal/services"
	"github.com/mindsetlab/growth-tracker/pkg/middleware"
	log "github.com/sirupsen/logrus"
)

// ChallengeHandler handles HTTP requests related to daily challenges.
type ChallengeHandler struct {
	Service *services.ChallengeService
}

// NewChallengeHandler creates a new instance of ChallengeHandler.
func NewChallengeHandler(service *services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{Service: service}
}

// AssignChallengeHandler picks a random challenge. ?tier= selects the
// difficulty; without it a random tier is used, like the dashboard
// quick action.
func (h *ChallengeHandler) AssignChallengeHandler(w http.ResponseWriter, r *http.Request) {
	assigned, err := h.Service.AssignChallenge(r.Context(), r.URL.Query().Get("tier"))
	if err != nil {
		log.WithError(err).Warn("Failed to assign challenge")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(assigned)
}

// TiersHandler lists the available difficulty tiers.
func (h *ChallengeHandler) TiersHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(catalog.Tiers())
}

// CompleteChallengeHandler records a challenge as done for the
// logged-in user. The date defaults to today.
func (h *ChallengeHandler) CompleteChallengeHandler(w http.ResponseWriter, r *http.Request) {
	log.Info("CompleteChallengeHandler called")
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Challenge string      `json:"challenge"`
		Date      models.Date `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Warn("Failed to decode completion request")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	completion, err := h.Service.CompleteChallenge(r.Context(), claims.Username, payload.Challenge, payload.Date)
	if err != nil {
		log.WithError(err).Error("Failed to record completion")
		http.Error(w, "Failed to record completion", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(completion)
}

// RemoveCompletionHandler deletes a recorded completion by value
// match. A missing record is a no-op.
func (h *ChallengeHandler) RemoveCompletionHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Challenge string      `json:"challenge"`
		Date      models.Date `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Warn("Failed to decode removal request")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := h.Service.RemoveCompletion(r.Context(), claims.Username, payload.Challenge, payload.Date); err != nil {
		log.WithError(err).Error("Failed to remove completion")
		http.Error(w, "Failed to remove completion", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListCompletionsHandler returns the user's completion history.
func (h *ChallengeHandler) ListCompletionsHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.ListCompletions(r.Context(), claims.Username))
}
