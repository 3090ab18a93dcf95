// Package main implements the entry point for the trends.earth-schemas
// service, which validates and converts land degradation report documents
// and serves the built-in classification legends.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ConservationInternational/trends.earth-schemas/internal/classification"
	"github.com/ConservationInternational/trends.earth-schemas/internal/config"
	"github.com/ConservationInternational/trends.earth-schemas/internal/platform/logger"
)

// application holds the shared dependencies for the HTTP handlers.
type application struct {
	config *config.Config
	logger *slog.Logger
}

// main is the entry point for the schemas server.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.run(); err != nil {
		app.logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up application components.
// Returns the assembled application and any initialization error.
func initializeApp() (*application, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set up structured logging using the configured log level
	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	// Log configuration details using structured logging
	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	// Register any extra legends configured alongside the built-in ones
	if cfg.Legends.Dir != "" {
		if err := registerExtraLegends(cfg.Legends.Dir); err != nil {
			return nil, fmt.Errorf("failed to load extra legends: %w", err)
		}
	}

	return &application{config: cfg, logger: appLogger}, nil
}

// registerExtraLegends loads every YAML legend file in dir into the
// classification registry under a dimension named after the file.
func registerExtraLegends(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		legend, err := classification.LoadLegend(filepath.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("legend file %q: %w", entry.Name(), err)
		}
		dim := classification.Dimension(entry.Name()[:len(entry.Name())-len(ext)])
		if err := classification.Register(dim, legend); err != nil {
			return err
		}
		slog.Info("registered legend", "dimension", dim, "classes", len(legend.Key))
	}
	return nil
}

// run starts the HTTP server and blocks until shutdown completes.
func (app *application) run() error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           app.setupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Shut down cleanly on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down",
		"timeout_seconds", app.config.Server.ShutdownTimeoutSeconds)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(app.config.Server.ShutdownTimeoutSeconds)*time.Second,
	)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
