package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/config"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/database"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/logging"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/server"
)

func main() {
	// Structured logging (JSON to stdout) at info until the config is read
	logging.Setup(slog.LevelInfo)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	stdout := logging.NewStdoutHandler(logging.ParseLevel(cfg.LogLevel))
	slog.SetDefault(slog.New(stdout))

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// Database log handler (ERROR+ async batch)
	dbLogHandler := logging.NewDBHandler(db)
	slog.SetDefault(slog.New(logging.NewMultiHandler(stdout, dbLogHandler)))

	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cfg.LogRetentionDays, cleanupDone)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		}
	}

	app := server.New(cfg, db)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	close(cleanupDone)
	dbLogHandler.Stop()
	slog.SetDefault(slog.New(stdout))
	sentry.Flush(2 * time.Second)

	if err := database.Close(db); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}
