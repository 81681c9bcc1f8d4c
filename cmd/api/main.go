package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/workshoppro/joborder-system/internal/api"
	"github.com/workshoppro/joborder-system/internal/infrastructure/db/mongo"
	"github.com/workshoppro/joborder-system/internal/infrastructure/db/redis"
	"github.com/workshoppro/joborder-system/internal/infrastructure/queue"
	"github.com/workshoppro/joborder-system/internal/pkg/config"
	"github.com/workshoppro/joborder-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Job-Order System API
// @version      1.0
// @description  Identity, session and audit core of the workshop job-order system.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Audit pipeline ---
	// Writes run on a background context so buffered entries still flush
	// after the signal context is cancelled.
	auditStore := mongo.NewAuditRepository(db)
	dispatcher := queue.NewAuditDispatcher(cfg.AuditWorkers, auditStore, log)
	dispatcher.Start(context.Background())

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, dispatcher, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	// Drain whatever the request path already enqueued.
	dispatcher.Close()
	log.Info().Msg("audit queue drained, bye")
}
