// @title organ-match API
// @version 1.0
// @description Matching de donantes y receptores de órganos: perfiles, motor local de compatibilidad, scorer remoto y solicitudes de match.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jwtauth "organ-match/internal/adapters/auth/jwt"
	"organ-match/internal/adapters/scoring/predictor"
	pg "organ-match/internal/adapters/storage/postgres"
	rds "organ-match/internal/adapters/storage/redis"
	"organ-match/internal/platform/config"
	"organ-match/internal/platform/logger"
	"organ-match/internal/platform/metrics"
	"organ-match/internal/router"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("invalid configuration", map[string]any{"error": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	defer func() { _ = log.Sync() }()

	m := metrics.New(prometheus.DefaultRegisterer)

	opts := router.Options{
		Logger:         log,
		Metrics:        m,
		SeedSampleData: cfg.SeedSampleData,
	}

	// Storage: Postgres > Redis > memoria
	var db *sql.DB
	if cfg.DB.DSN != "" {
		db, err = pg.Open(cfg.DB.DSN)
		if err != nil {
			log.Error("postgres connection failed", map[string]any{"error": err})
			os.Exit(1)
		}
		defer db.Close()
		opts.DB = db
	}

	var rdb *redis.Client
	if db == nil && cfg.Redis.URL != "" {
		rdb, err = rds.Open(cfg.Redis.URL)
		if err != nil {
			log.Error("redis connection failed", map[string]any{"error": err})
			os.Exit(1)
		}
		defer rdb.Close()
		opts.Redis = rdb
	}

	// Auth: sin JWT_SIGNING_KEY queda en modo dev (X-Debug-User-ID)
	if cfg.JWT.SigningKey != "" {
		tokens, err := jwtauth.NewService(cfg.JWT.SigningKey, cfg.JWT.TTL)
		if err != nil {
			log.Error("jwt setup failed", map[string]any{"error": err})
			os.Exit(1)
		}
		opts.AuthVerifier = tokens
		opts.Tokens = tokens
	} else {
		log.Warn("JWT_SIGNING_KEY not set, running in dev auth mode", nil)
	}

	// Scorer remoto opcional
	if cfg.Scorer.BaseURL != "" {
		client, err := predictor.NewClient(predictor.Config{
			BaseURL: cfg.Scorer.BaseURL,
			APIKey:  cfg.Scorer.APIKey,
			Timeout: cfg.Scorer.Timeout,
		})
		if err != nil {
			log.Error("scorer setup failed", map[string]any{"error": err})
			os.Exit(1)
		}
		opts.Scorer = predictor.NewScorer(client)
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		log.Info("shutting down", map[string]any{"signal": sig.String()})
	case err := <-errCh:
		log.Error("server error", map[string]any{"error": err})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", map[string]any{"error": err})
	}
}
