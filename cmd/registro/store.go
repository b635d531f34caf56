package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/registro/internal/registration"
	"github.com/dmitrymomot/registro/internal/userstore"
	"github.com/dmitrymomot/registro/pkg/config"
	"github.com/dmitrymomot/registro/pkg/pg"
	"github.com/dmitrymomot/registro/pkg/redis"
)

var ErrUnknownDriver = errors.New("unknown store driver")

// backend is a user store that can report its readiness.
type backend interface {
	registration.UserStore
	Ping(ctx context.Context) error
}

// openStore connects the configured backend. The returned func releases it.
func openStore(ctx context.Context, cfg appConfig, log *slog.Logger) (backend, func(), error) {
	opts := []userstore.Option{
		userstore.WithLogger(log),
		userstore.WithBcryptCost(cfg.BcryptCost),
	}

	switch cfg.StoreDriver {
	case DriverMemory, "":
		return userstore.NewMemory(opts...), func() {}, nil

	case DriverPostgres:
		var pgCfg pg.Config
		if err := config.Load(&pgCfg); err != nil {
			return nil, nil, err
		}
		pool, err := pg.Connect(ctx, pgCfg)
		if err != nil {
			return nil, nil, err
		}
		if err := pg.Migrate(ctx, pool, userstore.Migrations, userstore.MigrationsDir, pgCfg, log); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return userstore.NewPostgres(pool, opts...), pool.Close, nil

	case DriverRedis:
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return nil, nil, err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				log.Error("failed to close redis client", "error", err)
			}
		}
		return userstore.NewRedis(client, redisCfg.KeyPrefix, opts...), cleanup, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.StoreDriver)
}
