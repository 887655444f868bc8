package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "organ-match/docs"
	mem "organ-match/internal/adapters/storage/memory"
	pg "organ-match/internal/adapters/storage/postgres"
	rds "organ-match/internal/adapters/storage/redis"
	"organ-match/internal/domain/matching"
	"organ-match/internal/domain/profiles"
	"organ-match/internal/domain/requests"
	"organ-match/internal/middleware"
	"organ-match/internal/platform/logger"
	"organ-match/internal/platform/metrics"
	"organ-match/internal/ports/auth"
	"organ-match/internal/ports/scoring"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier    // puede ser nil (modo dev: X-Debug-User-ID)
	Tokens       profiles.TokenIssuer // puede ser nil (login sin token)

	// Backend de perfiles: Postgres si viene DB, si no Redis, si no in-memory.
	DB    *sql.DB
	Redis *redis.Client

	// Scorer remoto opcional. nil => /matches/predict responde 503.
	Scorer scoring.Scorer

	Logger  logger.Logger
	Metrics *metrics.Metrics

	// Carga los perfiles de ejemplo al arrancar (no pisa emails existentes).
	SeedSampleData bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AccessLog(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", opts.Metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		profileRepo profiles.Repository
		requestRepo requests.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back", map[string]any{"error": err})
			}
		}
	}

	switch {
	case db != nil:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := pg.EnsureSchema(ctx, db); err != nil {
			log.Error("ensure schema failed", map[string]any{"error": err})
		}
		cancel()
		profileRepo = pg.NewProfilesRepo(db)
		requestRepo = pg.NewRequestsRepo(db)
		log.Info("storage backend", map[string]any{"backend": "postgres"})
	case opts.Redis != nil:
		// Redis guarda perfiles; las solicitudes quedan en memoria.
		profileRepo = rds.NewProfilesRepo(opts.Redis)
		requestRepo = mem.NewRequestsRepo()
		log.Info("storage backend", map[string]any{"backend": "redis"})
	default:
		profileRepo = mem.NewProfilesRepo()
		requestRepo = mem.NewRequestsRepo()
		log.Info("storage backend", map[string]any{"backend": "memory"})
	}

	// Services por módulo
	profilesSvc := profiles.NewService(profileRepo, log, opts.Metrics)
	matchingSvc := matching.NewService(profileRepo, opts.Scorer, log, opts.Metrics)
	requestsSvc := requests.NewService(requestRepo, profileRepo, log, opts.Metrics)

	if opts.SeedSampleData {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		n, err := profilesSvc.Seed(ctx, profiles.SampleProfiles())
		cancel()
		if err != nil {
			log.Error("seed sample data failed", map[string]any{"error": err})
		} else {
			log.Info("sample data seeded", map[string]any{"profiles": n})
		}
	}

	// Rutas por módulo
	profiles.RegisterRoutes(r, profilesSvc, opts.Tokens, log)
	matching.RegisterRoutes(r, matchingSvc)
	requests.RegisterRoutes(r, requestsSvc)

	return r
}
