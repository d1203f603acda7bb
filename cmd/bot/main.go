package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/viralops/viral-content-bot/internal/ai"
	"github.com/viralops/viral-content-bot/internal/config"
	"github.com/viralops/viral-content-bot/internal/models"
	"github.com/viralops/viral-content-bot/internal/notifications"
	"github.com/viralops/viral-content-bot/internal/pipeline"
	"github.com/viralops/viral-content-bot/internal/scheduler"
	"github.com/viralops/viral-content-bot/internal/sources"
	"github.com/viralops/viral-content-bot/internal/storage"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging
	logrus.SetLevel(logrus.InfoLevel)
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})

	logrus.Info("Starting Viral Content Bot")

	// Initialize persistence
	store, err := storage.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		logrus.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	// Initialize the Gemini client when a key is configured; without one the
	// analyzer and generator run on their mock fallbacks
	var textGen ai.TextGenerator
	if cfg.GeminiAPIKey != "" {
		client, err := ai.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logrus.Fatalf("Failed to initialize Gemini client: %v", err)
		}
		defer client.Close()
		textGen = client
	} else {
		logrus.Info("GEMINI_API_KEY not set, using heuristic sentiment and static content")
	}

	// Initialize notification services (nil when no channel is configured)
	var notifier notifications.NotificationInterface
	if cfg.WebhookURL != "" || cfg.NotificationEmail != "" {
		notifier = notifications.NewService(cfg)
	}

	// Initialize pipeline service
	pipelineService := pipeline.NewService(
		cfg,
		store,
		sources.NewProvider(cfg.ApifyToken),
		ai.NewAnalyzer(textGen),
		ai.NewGenerator(textGen),
		notifier,
	)

	// Initialize scheduler
	schedulerService := scheduler.NewService(cfg, pipelineService)
	if err := schedulerService.Start(); err != nil {
		logrus.Fatalf("Failed to start scheduler: %v", err)
	}
	defer schedulerService.Stop()

	// Set up HTTP server
	router := mux.NewRouter()

	router.HandleFunc("/health", healthCheckHandler).Methods("GET")
	router.HandleFunc("/metrics", metricsHandler(pipelineService)).Methods("GET")
	router.HandleFunc("/api/run", runHandler(pipelineService)).Methods("POST")
	router.HandleFunc("/api/history", historyHandler(store)).Methods("GET")
	router.HandleFunc("/api/history", clearHistoryHandler(store)).Methods("DELETE")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute, // a run blocks on remote AI calls
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server in a goroutine
	go func() {
		logrus.Infof("HTTP server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","timestamp":"` + time.Now().Format(time.RFC3339) + `"}`))
}

func metricsHandler(pipelineService *pipeline.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(pipelineService.GetMetrics()))
	}
}

// decodeRunRequest decodes a run request body. use_mock defaults to true when
// the field is absent, so a configured scraper token alone never triggers a
// paid scrape.
func decodeRunRequest(body io.Reader) (models.RunRequest, error) {
	req := models.RunRequest{UseMock: true}
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return models.RunRequest{}, err
	}
	return req, nil
}

func runHandler(pipelineService *pipeline.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeRunRequest(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
			return
		}

		result, err := pipelineService.Run(r.Context(), req)
		if err != nil {
			if errors.Is(err, pipeline.ErrNoPosts) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			logrus.Errorf("Pipeline run failed: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func historyHandler(store storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		analyses, err := store.RecentAnalyses(50)
		if err != nil {
			logrus.Errorf("Failed to list analyses: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to load history")
			return
		}

		generated, err := store.RecentGenerated(20)
		if err != nil {
			logrus.Errorf("Failed to list generated posts: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to load history")
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"analyses":  analyses,
			"generated": generated,
		})
	}
}

func clearHistoryHandler(store storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.ClearHistory(); err != nil {
			logrus.Errorf("Failed to clear history: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to clear history")
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "History cleared",
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Errorf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
