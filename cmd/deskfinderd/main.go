package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workspace-finder-backend/config"
	"workspace-finder-backend/internal/api"
	"workspace-finder-backend/internal/db"
	"workspace-finder-backend/internal/nlp"
	"workspace-finder-backend/internal/store"
	"workspace-finder-backend/internal/watch"

	"github.com/SherClockHolmes/webpush-go"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "deskfinder ", log.LstdFlags)

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	webpushOptions := webpush.Options{
		VAPIDPublicKey:  cfg.Push.PublicKey,
		VAPIDPrivateKey: cfg.Push.PrivateKey,
		Subscriber:      cfg.Push.Subject,
		TTL:             cfg.Push.TTL,
	}
	if cfg.Push.PublicKey == "" || cfg.Push.PrivateKey == "" {
		logger.Println("VAPID keys are not configured; desk availability notifications are disabled")
	}

	// Initialize database
	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appStore := store.NewGormStore(gormDB)
	logger.Println("data store initialized")

	// Check the Ollama connection once at startup; an unreachable server
	// disables the natural-language endpoint but not the rest of the API.
	var parser api.QueryParser
	if cfg.NLP.Enabled {
		client := nlp.NewClient(&cfg.NLP)
		if err := client.Check(ctx); err != nil {
			logger.Printf("could not connect to Ollama at %s: %v; natural-language queries are disabled", cfg.NLP.URL, err)
		} else {
			logger.Printf("Ollama connection successful (model %s)", cfg.NLP.Model)
			parser = client
		}
	} else {
		logger.Println("NLP is disabled by configuration")
	}

	// Load datasets and keep them fresh in the background
	watcher := watch.NewWatcher(cfg, appStore)
	go watcher.Run(ctx)

	// Initialize router
	router := api.NewRouter(&cfg.Server, appStore, &webpushOptions, watcher, parser)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
