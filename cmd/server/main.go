package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/sis-intake-server/internal/api"
	"github.com/sis-intake-server/internal/catalog"
	"github.com/sis-intake-server/internal/config"
	"github.com/sis-intake-server/internal/service"
	"github.com/sis-intake-server/internal/session"
	"github.com/sis-intake-server/pkg/textgen"
)

func main() {
	// Load configuration
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}
	cfg := configManager.GetConfig()

	logger := newLogger(cfg.Logging.Level, cfg.Logging.Format)
	logger.WithFields(logrus.Fields{
		"host": cfg.Server.Host,
		"port": cfg.Server.Port,
	}).Info("Starting SIS intake server")

	// Session snapshot store
	var store session.Store
	switch cfg.Database.Driver {
	case "postgres":
		store, err = session.NewPostgresStoreFromURL(cfg.Database.URL)
	default:
		store, err = session.NewSQLiteStore(cfg.Database.Path)
	}
	if err != nil {
		logger.WithError(err).Fatal("Failed to open session store")
	}
	defer store.Close()

	// Text generation is optional; without a base URL the document
	// endpoints fall back to raw assembly only.
	var generator textgen.Generator
	if cfg.TextGen.BaseURL != "" {
		client, err := textgen.NewClient(cfg.TextGen, logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to create text generation client")
		}
		generator = client
	} else {
		logger.Warn("Text generation is not configured; document enhancement disabled")
	}

	cat := catalog.Default()
	sessions := session.NewManager(store, logger)
	intake := service.NewIntakeService(logger, cat)
	docs := service.NewDocumentService(logger, cat, generator)

	server := api.NewServer(cfg, logger, sessions, intake, docs)

	// Graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down")
		cancel()
	}()

	if err := server.Start(ctx); err != nil {
		logger.WithError(err).Fatal("Server failed")
	}
	logger.Info("Server stopped")
}

func newLogger(level, format string) *logrus.Logger {
	logger := logrus.New()

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
