package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"github.com/notinrange/blackrose-task-backend/internal/config"
	"github.com/notinrange/blackrose-task-backend/internal/db"
	"github.com/notinrange/blackrose-task-backend/internal/feed"
	"github.com/notinrange/blackrose-task-backend/internal/handlers"
	"github.com/notinrange/blackrose-task-backend/internal/records"
	"github.com/notinrange/blackrose-task-backend/internal/store"
)

func main() {
	cfg := config.Load()
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	database, err := db.Connect(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	if err := db.Migrate(database, cfg.MigrationsDir); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	users := store.NewUserStore(database)
	sessions := store.NewSessionStore(database)
	numbers := store.NewNumberStore(database)
	recordStore, err := records.NewStore(cfg.CSVPath, &sync.Mutex{}, records.SampleRecords)
	if err != nil {
		logger.Error("failed to open record store", "error", err)
		os.Exit(1)
	}
	txRunner := db.NewTxRunner(database)

	handler := handlers.New(txRunner, cfg, users, sessions, numbers, recordStore, logger)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// The producer lives as long as the process; only shutdown stops it.
	producerCtx, stopProducer := context.WithCancel(context.Background())
	defer stopProducer()
	producer := feed.NewProducer(numbers, cfg.FeedInterval, logger)
	go producer.Run(producerCtx)

	go func() {
		logger.Info("API listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	stopProducer()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}
