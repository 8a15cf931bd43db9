package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ritu748888/boxcourt/internal/app"
	"github.com/ritu748888/boxcourt/internal/config"
	"github.com/ritu748888/boxcourt/internal/container"
)

func main() {
	// Load environment variables
	_ = godotenv.Load(".env.local")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup logger
	logger := setupLogger(cfg)
	logger.Info("Starting boxcourt client", "environment", cfg.Environment, "api", cfg.APIBaseURL)

	// Initialize dependency container
	appContainer, err := container.NewContainer(logger, cfg)
	if err != nil {
		logger.Error("Failed to initialize dependencies", "error", err)
		os.Exit(1)
	}

	// Cancel the run context on interrupt so in-flight requests stop cleanly
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		cancel()
	}()

	client := app.New(appContainer.Client, appContainer.SessionStore, logger, os.Stdin, os.Stdout)
	if err := client.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("Client exited with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Goodbye")
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	if cfg.IsProduction() {
		// JSON logging for production
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		// Human-readable logging for development
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})
	}

	return slog.New(handler)
}
