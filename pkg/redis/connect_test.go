package redis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/registro/pkg/redis"
)

func TestConnectValidatesConfig(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{})
	assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)

	_, err = redis.Connect(context.Background(), redis.Config{ConnectionURL: "http://localhost:6379"})
	assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
}

func TestConnectHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := redis.Connect(ctx, redis.Config{ConnectionURL: "redis://127.0.0.1:1/0", RetryAttempts: 5})
	assert.ErrorIs(t, err, redis.ErrRedisNotReady)
}
