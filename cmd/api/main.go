package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"bigmanpc/api/internal/cache"
	"bigmanpc/api/internal/config"
	"bigmanpc/api/internal/database"
	"bigmanpc/api/internal/handlers"
	"bigmanpc/api/internal/jobs"
	"bigmanpc/api/internal/log"
	"bigmanpc/api/internal/server"
	"bigmanpc/api/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment)

	ctx := context.Background()

	dbPool, err := database.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect postgres")
	}

	if err := database.Migrate(ctx, dbPool); err != nil {
		logger.Fatal().Err(err).Msg("migrations failed")
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect redis")
	}

	// The object store is optional. Without it product uploads are skipped
	// and products fall back to the stock image path.
	var objectStore *storage.ObjectStore
	if cfg.Storage.Endpoint != "" {
		objectStore, err = storage.NewObjectStore(cfg.Storage)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to init object store")
		}
		if err := objectStore.EnsureBucket(ctx); err != nil {
			logger.Warn().Err(err).Msg("ensure bucket failed")
		}
	}

	handlerSet := handlers.NewHandlerSet(logger, dbPool, redisClient, objectStore, cfg)
	httpServer := server.NewHTTPServer(cfg, logger, handlerSet)

	scheduler := jobs.NewScheduler(handlerSet.Catalog(), handlerSet.Sales(), logger)
	if err := scheduler.Start(); err != nil {
		logger.Error().Err(err).Msg("scheduler start failed")
	}

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(logger, httpServer, scheduler, dbPool, redisClient)
}

func waitForShutdown(logger zerolog.Logger, srv *server.HTTPServer, scheduler *jobs.Scheduler, db *pgxpool.Pool, redisClient *redis.Client) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	scheduler.Stop()

	db.Close()
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error().Err(err).Msg("redis close error")
		}
	}

	logger.Info().Msg("server exited cleanly")
}
