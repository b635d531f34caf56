package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/registro/pkg/logger"
)

type ctxKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestNewDefaultsToJSONInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Debug("hidden")
	assert.Zero(t, buf.Len())

	log.Info("shown", slog.String("k", "v"))
	rec := decode(t, &buf)
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "v", rec["k"])
}

func TestWithEnvironment(t *testing.T) {
	t.Run("production is json with service attrs", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithEnvironment("production", "registro"))
		log.Info("hello")

		rec := decode(t, &buf)
		assert.Equal(t, "registro", rec["service"])
		assert.Equal(t, "production", rec["env"])
	})

	t.Run("unknown env falls back to development text", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithEnvironment("local", "registro"))
		log.Debug("hello")

		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "env=development")
	})
}

func TestWithLevelName(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevelName("warn"))
	log.Info("hidden")
	assert.Zero(t, buf.Len())
	log.Warn("shown")
	assert.NotZero(t, buf.Len())

	buf.Reset()
	log = logger.New(logger.WithOutput(&buf), logger.WithLevelName("nonsense"))
	log.Info("kept default level")
	assert.NotZero(t, buf.Len())
}

func TestWithFormatPanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
}

func TestWithContextExtractors(t *testing.T) {
	var buf bytes.Buffer
	extractor := func(ctx context.Context) (slog.Attr, bool) {
		if v, ok := ctx.Value(ctxKey{}).(string); ok {
			return slog.String("request_id", v), true
		}
		return slog.Attr{}, false
	}
	log := logger.New(logger.WithOutput(&buf), logger.WithContextExtractors(nil, extractor))

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	log.With("component", "test").InfoContext(ctx, "handled")
	rec := decode(t, &buf)
	assert.Equal(t, "req-1", rec["request_id"])
	assert.Equal(t, "test", rec["component"])

	buf.Reset()
	log.InfoContext(context.Background(), "no request")
	rec = decode(t, &buf)
	_, ok := rec["request_id"]
	assert.False(t, ok)
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}

func TestAttrs(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))

	assert.Equal(t, "field", logger.Field("name").Key)
	assert.Equal(t, "outcome", logger.Outcome("saved").Key)
	assert.Equal(t, "route", logger.Route("/home").Key)
	assert.Equal(t, "component", logger.Component("form").Key)
	assert.Equal(t, int64(3), logger.Count(3).Value.Int64())
	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
	assert.True(t, logger.SessionID(nil).Equal(slog.Attr{}))
	assert.Equal(t, "s1", logger.SessionID("s1").Value.Any())

	state := logger.State("idle", "submitting")
	require.Equal(t, slog.KindGroup, state.Value.Kind())
	g := state.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "idle", g[0].Value.String())
	assert.Equal(t, "submitting", g[1].Value.String())

	fields := logger.Fields([]string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, fields.Value.Any())
}
