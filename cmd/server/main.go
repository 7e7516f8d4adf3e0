package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"student_portal/internal/app/di"
	"student_portal/internal/app/router"
	"student_portal/internal/platform/logger"
	"student_portal/internal/shared/ratelimiter"
)

// purgeInterval is how often expired tokens are removed from the store.
const purgeInterval = time.Hour

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := di.LoadConfig(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("startup failed")
		os.Exit(1)
	}
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	gdb, err := di.OpenDatabase(cfg, cfg.Database.RunMigrations)
	if err != nil {
		logger.Error().Err(err).Msg("database unavailable")
		os.Exit(1)
	}

	// Redis
	rdb := di.OpenRedis(ctx, cfg)
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				logger.Error().Err(err).Msg("failed to close Redis client")
			}
		}()
	}

	c := di.NewContainer(gdb, rdb, di.Options{
		TokenTTL:       cfg.TokenTTL(),
		CacheTTL:       cfg.CacheTTL(),
		CacheNamespace: cfg.Cache.Namespace,
	})
	limiter := ratelimiter.NewRateLimiter(cfg.Auth.LoginRateLimit, cfg.LoginRateWindow())

	go purgeTokens(ctx, c)

	engine, err := router.NewRouter(c, limiter, cfg.Server.TrustedProxies)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build router")
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("server failed")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// purgeTokens deletes expired tokens until ctx is cancelled.
func purgeTokens(ctx context.Context, c *di.Container) {
	t := time.NewTicker(purgeInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := c.Tokens.PurgeExpired(ctx)
			if err != nil {
				logger.Warn().Err(err).Msg("token purge failed")
				continue
			}
			logger.Debug().Int64("purged", n).Msg("expired tokens purged")
		}
	}
}
