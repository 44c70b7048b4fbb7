package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/mindsetlab/growth-tracker/internal/config"
	"github.com/mindsetlab/growth-tracker/internal/models"
	"github.com/mindsetlab/growth-tracker/internal/repository"
	"github.com/mindsetlab/growth-tracker/internal/services"
	"github.com/mindsetlab/growth-tracker/internal/storage"
	"github.com/mindsetlab/growth-tracker/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:   "test-secret",
		TokenExpiry: time.Hour,
	}
	store := storage.Open(filepath.Join(t.TempDir(), "app_data.json"))

	userRepo := repository.NewUserRepository(store)
	journalRepo := repository.NewJournalRepository(store)
	challengeRepo := repository.NewChallengeRepository(store)
	postRepo := repository.NewPostRepository(store)

	userService := services.NewUserService(services.NewNameAuthenticator(userRepo), userRepo)
	journalService := services.NewJournalService(journalRepo)
	challengeService := services.NewChallengeService(challengeRepo)
	postService := services.NewPostService(postRepo)
	progressService := services.NewProgressService(challengeRepo)

	userHandler := NewUserHandler(userService, cfg)
	journalHandler := NewJournalHandler(journalService)
	challengeHandler := NewChallengeHandler(challengeService)
	postHandler := NewPostHandler(postService)
	progressHandler := NewProgressHandler(progressService)

	router := mux.NewRouter()
	router.HandleFunc("/users/login", userHandler.LoginHandler).Methods("POST")

	protected := router.NewRoute().Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protected.HandleFunc("/users/me", userHandler.MeHandler).Methods("GET")
	protected.HandleFunc("/journal", journalHandler.CreateEntryHandler).Methods("POST")
	protected.HandleFunc("/journal", journalHandler.ListEntriesHandler).Methods("GET")
	protected.HandleFunc("/journal/{id}", journalHandler.DeleteEntryHandler).Methods("DELETE")
	protected.HandleFunc("/challenges/new", challengeHandler.AssignChallengeHandler).Methods("GET")
	protected.HandleFunc("/challenges/complete", challengeHandler.CompleteChallengeHandler).Methods("POST")
	protected.HandleFunc("/posts", postHandler.CreatePostHandler).Methods("POST")
	protected.HandleFunc("/posts", postHandler.ListPostsHandler).Methods("GET")
	protected.HandleFunc("/posts/{id}/like", postHandler.LikePostHandler).Methods("POST")
	protected.HandleFunc("/posts/{id}", postHandler.DeletePostHandler).Methods("DELETE")
	protected.HandleFunc("/progress", progressHandler.SummaryHandler).Methods("GET")

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func login(t *testing.T, srv *httptest.Server, username string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"username": username})
	resp, err := http.Post(srv.URL+"/users/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Token string            `json:"token"`
		User  models.PublicUser `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.NotEmpty(t, payload.Token)
	require.Equal(t, username, payload.User.Username)
	return payload.Token
}

func doJSON(t *testing.T, srv *httptest.Server, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestLoginAndMe(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "alice")

	resp := doJSON(t, srv, http.MethodGet, "/users/me", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.PublicUser
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, models.Today().String(), user.Joined.String())
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodGet, "/journal", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJournalFlow(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "alice")

	resp := doJSON(t, srv, http.MethodPost, "/journal", token, map[string]interface{}{
		"reflection": "stuck on pointers, then it clicked",
		"lessons":    "draw the memory",
		"mood":       "😁",
		"tags":       []string{"Breakthrough"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var entry models.JournalEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entry))
	resp.Body.Close()
	require.NotEmpty(t, entry.ID)

	resp = doJSON(t, srv, http.MethodGet, "/journal?search=POINTERS", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var entries []models.JournalEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	resp.Body.Close()
	require.Len(t, entries, 1)

	resp = doJSON(t, srv, http.MethodDelete, "/journal/"+entry.ID, token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Deleting again is still a no-op success.
	resp = doJSON(t, srv, http.MethodDelete, "/journal/"+entry.ID, token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestChallengeAndProgressFlow(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "alice")

	resp := doJSON(t, srv, http.MethodGet, "/challenges/new?tier=Beginner", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var assigned services.AssignedChallenge
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&assigned))
	resp.Body.Close()
	assert.Equal(t, "Beginner", assigned.Tier)
	require.NotEmpty(t, assigned.Challenge)

	resp = doJSON(t, srv, http.MethodPost, "/challenges/complete", token, map[string]string{
		"challenge": assigned.Challenge,
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, srv, http.MethodGet, "/progress", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary services.ProgressSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	resp.Body.Close()
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, summary.Streak)
	assert.Equal(t, 1, summary.Weekly[models.Today().String()])
}

func TestChallengeUnknownTier(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "alice")

	resp := doJSON(t, srv, http.MethodGet, "/challenges/new?tier=Expert", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCommunityWallFlow(t *testing.T) {
	srv := newTestServer(t)
	alice := login(t, srv, "alice")
	bob := login(t, srv, "bob")

	resp := doJSON(t, srv, http.MethodPost, "/posts", alice, map[string]string{
		"content": "failed twice today and learned twice",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var post models.CommunityPost
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&post))
	resp.Body.Close()

	resp = doJSON(t, srv, http.MethodPost, "/posts/"+post.ID+"/like", bob, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Only the author may delete.
	resp = doJSON(t, srv, http.MethodDelete, "/posts/"+post.ID, bob, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, srv, http.MethodGet, "/posts", bob, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var posts []models.CommunityPost
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&posts))
	resp.Body.Close()
	require.Len(t, posts, 1)
	assert.Equal(t, 1, posts[0].Likes)

	resp = doJSON(t, srv, http.MethodDelete, "/posts/"+post.ID, alice, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
