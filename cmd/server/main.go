package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/meagherphilip/blogsmith/internal/ai"
	"github.com/meagherphilip/blogsmith/internal/api"
	"github.com/meagherphilip/blogsmith/internal/auth"
	"github.com/meagherphilip/blogsmith/internal/config"
	"github.com/meagherphilip/blogsmith/internal/database"
	"github.com/meagherphilip/blogsmith/internal/repository"
	"github.com/meagherphilip/blogsmith/internal/research"
	"github.com/meagherphilip/blogsmith/internal/service"
	"github.com/meagherphilip/blogsmith/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting blogsmith server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	// Run migrations
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize repositories
	repos := repository.New(db)

	// Initialize auth and seed the admin account
	authService := auth.NewService(repos.User, cfg.Auth.SessionSecret, cfg.Auth.TokenTTL, log)
	if err := authService.SeedAdmin(context.Background(), cfg.Auth.AdminEmail, cfg.Auth.AdminPassword, cfg.Auth.AdminName, cfg.Auth.AdminRole); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed admin user")
	}

	// Initialize the model client and research collector
	aiClient, err := ai.NewGemini(context.Background(), &cfg.AI)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create model client")
	}
	var collector *research.Collector
	if cfg.ResearchEnabled() {
		collector = research.New(research.Config{
			APIKey:   cfg.Research.APIKey,
			Endpoint: cfg.Research.Endpoint,
		}, log)
	} else {
		log.Warn().Msg("No search API key configured, research disabled")
	}

	// Initialize services
	services := service.NewServices(repos, cfg, aiClient, collector, log)

	// Start background generation processor
	go services.Generation.StartProcessor(context.Background())
	log.Info().Msg("Background generation processor started")

	// Initialize router
	router := api.NewRouter(services, authService, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop generation processor
	services.Generation.StopProcessor()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
