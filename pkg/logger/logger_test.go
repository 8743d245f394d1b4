package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"go-jobboard-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestInitLevel(t *testing.T) {
	ctx := context.Background()

	t.Run("usable before Init", func(t *testing.T) {
		assert.NotNil(t, logger.Log)
	})

	t.Run("error level suppresses warnings", func(t *testing.T) {
		logger.Init("error")
		assert.False(t, logger.Log.Enabled(ctx, slog.LevelWarn))
		assert.True(t, logger.Log.Enabled(ctx, slog.LevelError))
	})

	t.Run("debug level enables everything", func(t *testing.T) {
		logger.Init("debug")
		assert.True(t, logger.Log.Enabled(ctx, slog.LevelDebug))
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		logger.Init("verbose")
		assert.False(t, logger.Log.Enabled(ctx, slog.LevelDebug))
		assert.True(t, logger.Log.Enabled(ctx, slog.LevelInfo))
	})
}
