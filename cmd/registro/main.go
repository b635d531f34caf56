package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrymomot/registro/internal/httpapi"
	"github.com/dmitrymomot/registro/internal/metrics"
	"github.com/dmitrymomot/registro/pkg/clientip"
	"github.com/dmitrymomot/registro/pkg/config"
	"github.com/dmitrymomot/registro/pkg/httpserver"
	"github.com/dmitrymomot/registro/pkg/logger"
	"github.com/dmitrymomot/registro/pkg/ratelimiter"
	"github.com/dmitrymomot/registro/pkg/requestid"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.ErrorContext(ctx, "failed to open user store", logger.Error(err))
		return err
	}
	defer closeStore()
	log.InfoContext(ctx, "user store ready", "driver", cfg.StoreDriver)

	limiter, err := ratelimiter.New(cfg.RateLimit)
	if err != nil {
		return err
	}

	opts := []httpapi.Option{
		httpapi.WithLogger(log),
		httpapi.WithHomeRoute(cfg.HomeRoute),
		httpapi.WithReadinessChecks(store.Ping),
		httpapi.WithConfig(cfg.API),
		httpapi.WithRateLimiter(limiter),
	}
	if cfg.Metrics {
		opts = append(opts, httpapi.WithMetrics(metrics.New()))
	}
	api := httpapi.New(store, opts...)

	return httpserver.New(cfg.HTTP, log).Run(ctx, api.Handler())
}
