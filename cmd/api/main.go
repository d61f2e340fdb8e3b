package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/classikwoods/site-backend/config"
	"github.com/classikwoods/site-backend/internal/bootstrap"
)

const serviceName = "site-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	setupLogging(cfg.App)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	db, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{
		DSN:      cfg.Database.DSN,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("database unavailable")
	}
	defer db.Close()

	uploader, err := bootstrap.NewUploader(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("object storage unavailable")
	}

	sessions, err := bootstrap.NewSessions(ctx, cfg.Auth.CredentialsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("identity provider unavailable")
	}

	rdb := bootstrap.NewRedis(ctx, cfg.Redis)
	if rdb != nil {
		defer rdb.Close()
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Environment: cfg.App.Environment,
		DB:          db,
		Redis:       rdb,
		CacheTTL:    cfg.Redis.CacheTTL,
		Uploader:    uploader,
		Sessions:    sessions,
		SessionTTL:  cfg.Auth.SessionTTL,
	})

	log.Info().
		Str("port", cfg.Server.Port).
		Str("env", cfg.App.Environment).
		Bool("cache", rdb != nil).
		Msg("server starting")

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogging(app config.AppConfig) {
	level, err := zerolog.ParseLevel(app.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if app.Environment != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
