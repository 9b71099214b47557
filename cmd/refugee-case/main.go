package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/YusovID/refugee-case-service/internal/auth"
	"github.com/YusovID/refugee-case-service/internal/capacity"
	"github.com/YusovID/refugee-case-service/internal/config"
	"github.com/YusovID/refugee-case-service/internal/observability"
	"github.com/YusovID/refugee-case-service/internal/ratelimit"
	"github.com/YusovID/refugee-case-service/internal/repository/postgres"
	"github.com/YusovID/refugee-case-service/internal/service"
	myhttp "github.com/YusovID/refugee-case-service/internal/transport/http"
	"github.com/YusovID/refugee-case-service/pkg/logger/sl"
	"github.com/YusovID/refugee-case-service/pkg/logger/slogpretty"
	"github.com/redis/go-redis/v9"
)

const serviceName = "refugee-case-service"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.MustLoad()
	log := slogpretty.SetupLogger(cfg.Env)

	log.Info("starting "+serviceName, slog.String("env", cfg.Env))

	shutdownTracing, err := observability.InitTracing(ctx, cfg.Tracing, serviceName, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to init tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Error("tracing shutdown failed", sl.Err(err))
		}
	}()

	if err := postgres.Migrate(cfg.Postgres.DSN(), cfg.Postgres.MigrationsTable, postgres.Up); err != nil {
		return fmt.Errorf("failed to migrate db: %w", err)
	}

	pg, err := postgres.NewDB(cfg.Postgres, log)
	if err != nil {
		return fmt.Errorf("failed to init db: %w", err)
	}
	defer func() {
		if err := pg.Close(); err != nil {
			log.Error("db close failed", sl.Err(err))
		}
	}()

	limiter, closeLimiter := newLimiter(ctx, cfg, log)
	defer closeLimiter()

	srv := myhttp.NewServer(log, newServices(pg, log), auth.NewTokens(cfg.Auth.Secret, cfg.Auth.TokenTTL, cfg.Auth.Issuer), limiter)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      srv.Routes(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errChan := make(chan error, 1)

	go startServer(log, httpServer, errChan)

	select {
	case err, ok := <-errChan:
		if ok {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil

	case <-ctx.Done():
		log.Info("stopping server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down http server: %w", err)
	}

	return nil
}

func newServices(pg *postgres.Postgres, log *slog.Logger) myhttp.Services {
	db := pg.DB()

	actors := postgres.NewActorRepository(log)
	profiles := postgres.NewProfileRepository(log)
	listings := postgres.NewListingRepository(log)
	apps := postgres.NewApplicationRepository(log)

	tracker := capacity.NewTracker(listings, log)

	return myhttp.Services{
		Actors:      service.NewActorService(db, log, actors),
		Profiles:    service.NewProfileService(db, log, actors, profiles),
		Listings:    service.NewListingService(db, log, actors, listings),
		HousingApps: service.NewHousingApplicationService(db, log, actors, listings, apps, tracker),
		JobApps:     service.NewJobApplicationService(db, log, actors, listings, apps),
	}
}

// newLimiter prefers Redis so limits hold across replicas. An unreachable
// Redis at startup falls back to the in-process limiter.
func newLimiter(ctx context.Context, cfg *config.Config, log *slog.Logger) (ratelimit.Limiter, func()) {
	if cfg.Redis.Addr == "" {
		log.Info("rate limiting in memory")
		return ratelimit.NewMemoryLimiter(cfg.RateLimit.Submissions, cfg.RateLimit.Window), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn("redis unavailable, rate limiting in memory", slog.String("addr", cfg.Redis.Addr), sl.Err(err))
		_ = client.Close()

		return ratelimit.NewMemoryLimiter(cfg.RateLimit.Submissions, cfg.RateLimit.Window), func() {}
	}

	log.Info("rate limiting in redis", slog.String("addr", cfg.Redis.Addr))

	limiter := ratelimit.NewRedisLimiter(client, cfg.RateLimit.Submissions, cfg.RateLimit.Window, "ratelimit:submissions", log)

	return limiter, func() {
		if err := client.Close(); err != nil {
			log.Error("redis close failed", sl.Err(err))
		}
	}
}

func startServer(log *slog.Logger, httpServer *http.Server, errChan chan error) {
	defer close(errChan)

	log.Info("service started", slog.String("addr", httpServer.Addr))

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		errChan <- fmt.Errorf("error listening and serving: %w", err)
	}
}
