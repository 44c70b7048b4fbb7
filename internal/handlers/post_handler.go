package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mindsetlab/growth-tracker/internal/repository"
	"github.com/mindsetlab/growth-tracker/internal/services"
	"github.com/mindsetlab/growth-tracker/pkg/middleware"
	log "github.com/sirupsen/logrus"
)

// PostHandler handles HTTP requests related to the community wall.
type PostHandler struct {
	Service *services.PostService
}

// NewPostHandler creates a new instance of PostHandler.
func NewPostHandler(service *services.PostService) *PostHandler {
	return &PostHandler{Service: service}
}

// CreatePostHandler publishes a post from the logged-in user.
func (h *PostHandler) CreatePostHandler(w http.ResponseWriter, r *http.Request) {
	log.Info("CreatePostHandler called")
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Warn("Failed to decode post request")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	post, err := h.Service.CreatePost(r.Context(), claims.Username, payload.Content)
	if err != nil {
		log.WithError(err).Error("Failed to create post")
		http.Error(w, "Failed to create post", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(post)
}

// ListPostsHandler returns all posts, newest first, optionally
// filtered by ?search=.
func (h *PostHandler) ListPostsHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	posts := h.Service.ListPosts(r.Context(), r.URL.Query().Get("search"))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(posts)
}

// LikePostHandler increments a post's like count.
func (h *PostHandler) LikePostHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.Service.LikePost(r.Context(), id); err != nil {
		log.WithField("postID", id).WithError(err).Error("Failed to like post")
		http.Error(w, "Failed to like post", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeletePostHandler removes a post; only its author may do so.
func (h *PostHandler) DeletePostHandler(w http.ResponseWriter, r *http.Request) {
	log.Info("DeletePostHandler called")
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	err := h.Service.DeletePost(r.Context(), id, claims.Username)
	if errors.Is(err, repository.ErrNotAuthor) {
		log.WithFields(log.Fields{
			"postID":   id,
			"username": claims.Username,
		}).Warn("Forbidden post deletion attempt")
		http.Error(w, "Forbidden: only the author can delete a post", http.StatusForbidden)
		return
	}
	if err != nil {
		log.WithField("postID", id).WithError(err).Error("Failed to delete post")
		http.Error(w, "Failed to delete post", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
