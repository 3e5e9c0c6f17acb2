package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/casetrack/case-management/internal/api"
	"github.com/casetrack/case-management/internal/infrastructure/config"
	"github.com/casetrack/case-management/internal/infrastructure/db/postgres"
	"github.com/casetrack/case-management/internal/infrastructure/db/redis"
	"github.com/casetrack/case-management/internal/infrastructure/storage"
	"github.com/casetrack/case-management/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger is not up yet when config fails; panic carries the cause.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	pool, err := postgres.Connect(ctx, postgres.Config{
		URL:      cfg.Postgres.URL,
		MaxConns: cfg.Postgres.MaxConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	if err := postgres.InitSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("failed to initialise database schema")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	files, err := storage.New(cfg.UploadsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise upload storage")
	}

	e := api.NewRouter(api.Deps{
		Pool:        pool,
		Redis:       rdb,
		Files:       files,
		JWTSecret:   cfg.JWTSecret,
		FrontendURL: cfg.FrontendURL,
		Log:         log,
	})

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
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
