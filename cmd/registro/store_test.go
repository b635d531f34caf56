package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/registro/internal/userstore"
	"github.com/dmitrymomot/registro/pkg/config"
	"github.com/dmitrymomot/registro/pkg/logger"
)

func TestAppConfigDefaults(t *testing.T) {
	var cfg appConfig
	require.NoError(t, config.Parse(&cfg, config.WithEnvironment(map[string]string{
		"STORE_DRIVER": "redis",
		"HTTP_ADDR":    ":9090",
		"SESSION_TTL":  "5m",
	})))

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, DriverRedis, cfg.StoreDriver)
	assert.Equal(t, "/home", cfg.HomeRoute)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, 5*time.Minute, cfg.API.SessionTTL)
	assert.EqualValues(t, 65536, cfg.API.MaxBodyBytes)
	assert.Equal(t, 10000, cfg.API.MaxSessions)
	assert.False(t, cfg.API.ExposeUsers)
	assert.True(t, cfg.Metrics)
	assert.Equal(t, 20, cfg.RateLimit.Capacity)
	assert.Equal(t, 3*time.Second, cfg.RateLimit.RefillInterval)
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	store, closeStore, err := openStore(ctx, appConfig{StoreDriver: DriverMemory}, logger.Discard())
	require.NoError(t, err)
	defer closeStore()
	assert.IsType(t, &userstore.Memory{}, store)
	assert.NoError(t, store.Ping(ctx))

	_, _, err = openStore(ctx, appConfig{StoreDriver: "cassandra"}, logger.Discard())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
