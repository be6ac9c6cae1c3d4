package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/crowdship-app/crowdship-api/internal/api"
	"github.com/crowdship-app/crowdship-api/internal/bootstrap"
	"github.com/crowdship-app/crowdship-api/internal/config"
	"github.com/crowdship-app/crowdship-api/internal/repository"
	"github.com/crowdship-app/crowdship-api/internal/repository/memory"
	"github.com/crowdship-app/crowdship-api/internal/repository/postgres"
	"github.com/crowdship-app/crowdship-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize the storage medium
	var repos *repository.Repositories
	switch cfg.Storage {
	case "memory":
		repos = memory.NewRepositories()
	default:
		db, err := postgres.NewConnection(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		repos = postgres.NewRepositories(db)
	}

	if cfg.SeedDemoData {
		if err := bootstrap.SeedDemoData(context.Background(), repos); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
	}

	// Initialize services
	services := service.NewServices(repos, cfg)

	// Initialize router
	router := api.NewRouter(services, cfg)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s (storage: %s)", cfg.Port, cfg.Storage)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
