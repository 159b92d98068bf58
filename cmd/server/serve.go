package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cx-tal-miterani/flight-search-system/internal/auth"
	"github.com/cx-tal-miterani/flight-search-system/internal/cache"
	"github.com/cx-tal-miterani/flight-search-system/internal/config"
	"github.com/cx-tal-miterani/flight-search-system/internal/handlers"
	"github.com/cx-tal-miterani/flight-search-system/internal/logger"
	"github.com/cx-tal-miterani/flight-search-system/internal/random"
	"github.com/cx-tal-miterani/flight-search-system/internal/router"
	"github.com/cx-tal-miterani/flight-search-system/internal/service"
	"github.com/cx-tal-miterani/flight-search-system/internal/store"
	"github.com/cx-tal-miterani/flight-search-system/internal/sweeper"
	"github.com/cx-tal-miterani/flight-search-system/internal/worker"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			log, err := logger.New(cfg.Env, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	// Flight cache
	flightCache, closeCache, err := newFlightCache(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeCache()

	// Initialize services
	flightService := service.NewFlightService(random.Global(), flightCache, log,
		service.WithLatency(cfg.SearchLatencyMin, cfg.SearchLatencyMax))

	authService := service.NewAuthService(
		store.New(),
		auth.NewPasswordHasher(cfg.BcryptCost),
		auth.NewTokenIssuer(cfg.SessionSecret, cfg.SessionTTL, nil),
		log,
	)
	if cfg.SeedDemoUsers {
		if err := service.SeedDemoUsers(ctx, authService); err != nil {
			return err
		}
		log.Info("Demo users seeded")
	}

	// Session sweep
	stopSweep, err := startSessionSweep(ctx, cfg, authService, log)
	if err != nil {
		return err
	}
	defer stopSweep()

	// Initialize handlers
	h := handlers.NewHandler(flightService, authService, log, cfg.IsProduction())

	// Create router
	r := router.NewRouter(h, router.Options{
		AllowedOrigin: cfg.CORSAllowedOrigin,
		LoginLimiter:  handlers.NewRateLimiter(cfg.LoginRatePerMin, cfg.LoginRateBurst, log),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		log.Info("API Server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for interrupt signal
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped")
	return nil
}

// newFlightCache returns the Redis cache when REDIS_ADDR is set and the
// in-memory cache otherwise
func newFlightCache(ctx context.Context, cfg *config.Config, log *zap.Logger) (cache.FlightCache, func(), error) {
	if cfg.RedisAddr == "" {
		log.Info("Using in-memory flight cache", zap.Int("size", cfg.FlightCacheSize), zap.Duration("ttl", cfg.FlightCacheTTL))
		return cache.NewMemory(cfg.FlightCacheSize, cfg.FlightCacheTTL), func() {}, nil
	}

	rc, err := cache.DialRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.FlightCacheTTL)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Connected to Redis flight cache", zap.String("addr", cfg.RedisAddr))
	return rc, func() {
		if err := rc.Close(); err != nil {
			log.Warn("Failed to close Redis", zap.Error(err))
		}
	}, nil
}

// startSessionSweep runs the sweep on Temporal when TEMPORAL_HOST is set and
// on an in-process cron schedule otherwise
func startSessionSweep(ctx context.Context, cfg *config.Config, target sweeper.SessionSweeper, log *zap.Logger) (func(), error) {
	if cfg.TemporalHost != "" {
		runner, err := worker.Start(ctx, worker.Options{
			HostPort:      cfg.TemporalHost,
			Namespace:     cfg.TemporalNamespace,
			SweepInterval: cfg.SessionSweepInterval,
		}, target, log)
		if err != nil {
			return nil, err
		}
		return runner.Stop, nil
	}

	s, err := sweeper.New(target, cfg.SessionSweepInterval, log)
	if err != nil {
		return nil, err
	}
	s.Start()
	return func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.Stop(stopCtx)
	}, nil
}
