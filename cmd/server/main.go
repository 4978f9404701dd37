package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mergington/activities/internal/app"
	"github.com/mergington/activities/internal/auth"
	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/domain"
	"github.com/mergington/activities/internal/logging"
	"github.com/mergington/activities/internal/redis"
	"github.com/mergington/activities/internal/roster"
	"github.com/mergington/activities/internal/server"
	"github.com/mergington/activities/internal/session"
	goredis "github.com/redis/go-redis/v9"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupAuthenticator(cfg *config.Config) *auth.Authenticator {
	teachers, err := auth.LoadTeachers(cfg.TeachersFile)
	if err != nil {
		slog.Error("Failed to load teacher credentials", "file", cfg.TeachersFile, "error", err)
		os.Exit(1)
	}
	if len(teachers) == 0 {
		slog.Warn("No teacher credentials loaded, all logins will fail", "file", cfg.TeachersFile)
	}
	return auth.NewAuthenticator(teachers)
}

func setupSessions(cfg *config.Config, clock clockwork.Clock) (domain.SessionRepository, *goredis.Client) {
	if cfg.SessionBackend != config.SessionBackendRedis {
		return session.NewMemoryStore(clock), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	return redis.NewSessionRepo(client, clock), client
}

func runGracefulShutdown(srv *server.Server, redisClient *goredis.Client) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				slog.Error("Failed to close Redis client", "error", err)
			}
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port, "session_backend", cfg.SessionBackend)

	authn := setupAuthenticator(cfg)
	sessions, redisClient := setupSessions(cfg, clock)
	store := roster.NewStore(roster.Seed())

	appSvc := app.NewService(authn, sessions, store)
	srv := server.NewServer(cfg, appSvc, redisClient)

	done := runGracefulShutdown(srv, redisClient)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
