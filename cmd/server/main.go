// Package main implements the entry point for the tasknest API server:
// JWT-authenticated task management with password recovery over Postgres.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/tasknest/tasknest-api/internal/config"
	"github.com/tasknest/tasknest-api/internal/platform/logger"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		app.logger.Error("Server exited with error", "error", err)
	}
}

// initializeApp loads configuration and sets up application components:
// logging, the database pool, migrations, and the dependency graph.
// Misconfiguration (including a missing or weak JWT secret) fails here,
// before the server accepts a single request.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, err
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, appLogger); err != nil {
		return nil, err
	}

	return newApplication(cfg, appLogger, db)
}
