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

	"github.com/dmitrymomot/blockmail/core/logger"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("service", "test")),
	)

	log.Info("rendered", logger.Blocks(3), logger.Error(nil))

	line := decodeLine(t, &buf)
	assert.Equal(t, "rendered", line["msg"])
	assert.Equal(t, "test", line["service"])
	assert.EqualValues(t, 3, line["blocks"])
	assert.NotContains(t, line, "error")
}

func TestNew_TextDefaultsToInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Debug("hidden")
	log.Info("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
}

func TestNew_Presets(t *testing.T) {
	t.Parallel()

	t.Run("development", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("blockmail"), logger.WithOutput(&buf))
		log.Debug("debugging")
		assert.Contains(t, buf.String(), "service=blockmail")
		assert.Contains(t, buf.String(), "env=development")
	})

	t.Run("production", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithProduction("blockmail"), logger.WithOutput(&buf))
		log.Debug("dropped")
		assert.Zero(t, buf.Len())

		log.Info("kept")
		line := decodeLine(t, &buf)
		assert.Equal(t, "production", line["env"])
	})
}

type requestIDKey struct{}

func TestNew_ContextValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(&buf),
		logger.WithContextValue("request_id", requestIDKey{}),
	)

	ctx := context.WithValue(context.Background(), requestIDKey{}, "req-1")
	log.With(logger.Component("api")).InfoContext(ctx, "handled")

	line := decodeLine(t, &buf)
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "api", line["component"])

	buf.Reset()
	log.InfoContext(context.Background(), "no id")
	assert.NotContains(t, decodeLine(t, &buf), "request_id")
}

func TestNew_WithHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	log := logger.New(logger.WithHandler(h), logger.WithLevel(slog.LevelError))

	log.Debug("custom handler decides")
	assert.Contains(t, buf.String(), "custom handler decides")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel(""))
}

func TestAttrHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "j***@example.com", logger.Recipient("jane@example.com").Value.String())
	assert.Equal(t, "***", logger.Recipient("broken").Value.String())
	assert.True(t, logger.Recipient("").Equal(slog.Attr{}))
	assert.True(t, logger.Tag("").Equal(slog.Attr{}))
	assert.True(t, logger.PreviewID("").Equal(slog.Attr{}))
	assert.Equal(t, "block_type", logger.BlockType("button").Key)

	errs := logger.Errors(nil, errors.New("a"), nil, errors.New("b"))
	assert.Equal(t, "errors", errs.Key)
	group := errs.Value.Group()
	require.Len(t, group, 2)
	assert.Equal(t, "1", group[0].Key)
	assert.Equal(t, "3", group[1].Key)
	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))

	assert.Equal(t, "elapsed", logger.Elapsed(time.Now()).Key)
}
