package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopsphere/user-system/internal/api"
	mongodb "github.com/shopsphere/user-system/internal/infrastructure/db/mongo"
	redisdb "github.com/shopsphere/user-system/internal/infrastructure/db/redis"
	"github.com/shopsphere/user-system/internal/pkg/config"
	"github.com/shopsphere/user-system/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Missing signing config is fatal here, never per request.
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	client, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	// The unique username index must exist before the first registration.
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	e, err := api.NewRouter(db, rdb, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
