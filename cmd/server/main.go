package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/mindsetlab/growth-tracker/internal/config"
	"github.com/mindsetlab/growth-tracker/internal/handlers"
	"github.com/mindsetlab/growth-tracker/internal/jobs"
	"github.com/mindsetlab/growth-tracker/internal/repository"
	cronjobs "github.com/mindsetlab/growth-tracker/internal/scheduler"
	"github.com/mindsetlab/growth-tracker/internal/services"
	"github.com/mindsetlab/growth-tracker/internal/storage"
	"github.com/mindsetlab/growth-tracker/pkg/logger"
	"github.com/mindsetlab/growth-tracker/pkg/middleware"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Open the data store once; it lives for the whole process
	store := storage.Open(cfg.DataFile)

	// --- Repositories ---
	userRepo := repository.NewUserRepository(store)
	journalRepo := repository.NewJournalRepository(store)
	challengeRepo := repository.NewChallengeRepository(store)
	postRepo := repository.NewPostRepository(store)

	// --- Services ---
	var auth services.Authenticator
	if cfg.AuthScheme == "password" {
		auth = services.NewPasswordAuthenticator(userRepo)
	} else {
		auth = services.NewNameAuthenticator(userRepo)
	}
	userService := services.NewUserService(auth, userRepo)
	journalService := services.NewJournalService(journalRepo)
	challengeService := services.NewChallengeService(challengeRepo)
	postService := services.NewPostService(postRepo)
	progressService := services.NewProgressService(challengeRepo)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, cfg)
	journalHandler := handlers.NewJournalHandler(journalService)
	challengeHandler := handlers.NewChallengeHandler(challengeService)
	postHandler := handlers.NewPostHandler(postService)
	progressHandler := handlers.NewProgressHandler(progressService)
	dashboardHandler := handlers.NewDashboardHandler()

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	// Public routes
	router.HandleFunc("/users/login", userHandler.LoginHandler).Methods("POST")

	// Protected user routes
	protectedUserRoutes := router.PathPrefix("/users").Subrouter()
	protectedUserRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedUserRoutes.HandleFunc("/me", userHandler.MeHandler).Methods("GET")

	// Dashboard routes
	protectedDashboardRoutes := router.PathPrefix("/dashboard").Subrouter()
	protectedDashboardRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedDashboardRoutes.HandleFunc("/quote", dashboardHandler.QuoteHandler).Methods("GET")

	// Challenge routes
	protectedChallengeRoutes := router.PathPrefix("/challenges").Subrouter()
	protectedChallengeRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedChallengeRoutes.HandleFunc("/new", challengeHandler.AssignChallengeHandler).Methods("GET")
	protectedChallengeRoutes.HandleFunc("/tiers", challengeHandler.TiersHandler).Methods("GET")
	protectedChallengeRoutes.HandleFunc("/complete", challengeHandler.CompleteChallengeHandler).Methods("POST")
	protectedChallengeRoutes.HandleFunc("/complete", challengeHandler.RemoveCompletionHandler).Methods("DELETE")
	protectedChallengeRoutes.HandleFunc("/completed", challengeHandler.ListCompletionsHandler).Methods("GET")

	// Journal routes
	protectedJournalRoutes := router.PathPrefix("/journal").Subrouter()
	protectedJournalRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedJournalRoutes.HandleFunc("", journalHandler.CreateEntryHandler).Methods("POST")
	protectedJournalRoutes.HandleFunc("", journalHandler.ListEntriesHandler).Methods("GET")
	protectedJournalRoutes.HandleFunc("/{id}", journalHandler.DeleteEntryHandler).Methods("DELETE")

	// Community wall routes
	protectedPostRoutes := router.PathPrefix("/posts").Subrouter()
	protectedPostRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedPostRoutes.HandleFunc("", postHandler.CreatePostHandler).Methods("POST")
	protectedPostRoutes.HandleFunc("", postHandler.ListPostsHandler).Methods("GET")
	protectedPostRoutes.HandleFunc("/{id}/like", postHandler.LikePostHandler).Methods("POST")
	protectedPostRoutes.HandleFunc("/{id}", postHandler.DeletePostHandler).Methods("DELETE")

	// Progress routes
	protectedProgressRoutes := router.PathPrefix("/progress").Subrouter()
	protectedProgressRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedProgressRoutes.HandleFunc("", progressHandler.SummaryHandler).Methods("GET")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	// Background jobs
	reminder := jobs.NewStreakReminder(userRepo, challengeRepo)
	cronRunner := cronjobs.StartJobs(reminder)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // adjust to frontend origin
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := gorillahandlers.RecoveryHandler()(c.Handler(router))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		fmt.Printf("Server running on port %s\n", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Flush the store and stop the server on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Error("Server shutdown failed")
	}
	cronRunner.Stop()
	if err := store.Close(); err != nil {
		logger.Log.WithError(err).Error("Store close failed")
	}
}
