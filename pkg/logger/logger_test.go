package logger_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"memhub/pkg/logger"
)

func observed(level zap.AtomicLevel) (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level.Level())
	return logger.NewFromZap(zap.New(core)), logs
}

func TestNewLogger(t *testing.T) {
	for _, env := range []logger.Environment{logger.Development, logger.Production} {
		for _, level := range []string{"debug", "info", "warning", "error", "unknown", ""} {
			t.Run(string(env)+"/"+level, func(t *testing.T) {
				log, err := logger.NewLogger(env, level)
				require.NoError(t, err)
				require.NotNil(t, log)
			})
		}
	}
}

func TestLoggerAddsRequestID(t *testing.T) {
	log, logs := observed(zap.NewAtomicLevelAt(zap.DebugLevel))
	ctx := logger.NewRequestIDContext(context.Background(), "req-1")

	log.Info(ctx, "with id")
	log.Debug(context.Background(), "without id")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "req-1", entries[0].ContextMap()[logger.RequestID])
	assert.NotContains(t, entries[1].ContextMap(), logger.RequestID)
}

func TestLoggerWith(t *testing.T) {
	log, logs := observed(zap.NewAtomicLevelAt(zap.InfoLevel))

	child := log.With(zap.String("method", "AddMem"))
	child.Warn(context.Background(), "child")
	log.Error(context.Background(), "parent")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "AddMem", entries[0].ContextMap()["method"])
	assert.NotContains(t, entries[1].ContextMap(), "method")
}

func TestContextHelpers(t *testing.T) {
	t.Run("logger stored in context", func(t *testing.T) {
		log, _ := observed(zap.NewAtomicLevelAt(zap.InfoLevel))
		ctx := logger.NewContext(context.Background(), log)

		got, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, log, got)
		assert.Same(t, log, logger.Log(ctx))
	})

	t.Run("missing logger", func(t *testing.T) {
		got, err := logger.FromContext(context.Background())
		require.ErrorIs(t, err, logger.ErrLoggerNotFound)
		assert.Nil(t, got)
		assert.NotNil(t, logger.Log(context.Background()))
	})

	t.Run("global logger", func(t *testing.T) {
		log, _ := observed(zap.NewAtomicLevelAt(zap.InfoLevel))
		logger.SetGlobalLogger(log)
		t.Cleanup(func() { logger.SetGlobalLogger(nil) })

		assert.Same(t, log, logger.Log(context.Background()))
	})
}

func TestRequestID(t *testing.T) {
	ctx := logger.NewRequestIDContext(context.Background(), "")
	id, ok := logger.GetRequestID(ctx)
	require.True(t, ok)
	assert.NotEmpty(t, id)

	_, ok = logger.GetRequestID(context.Background())
	assert.False(t, ok)

	ctx = logger.NewRequestIDContext(context.Background(), "req-42.retry_1")
	id, _ = logger.GetRequestID(ctx)
	assert.Equal(t, "req-42.retry_1", id)
}

func TestRequestIDReplacesUnsafeValues(t *testing.T) {
	for name, raw := range map[string]string{
		"перевод строки":  "req\nlevel=error",
		"пробел":          "req 42",
		"кириллица":       "запрос",
		"слишком длинный": strings.Repeat("a", logger.MaxRequestIDLength+1),
	} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, logger.ValidRequestID(raw))

			id, ok := logger.GetRequestID(logger.NewRequestIDContext(context.Background(), raw))
			require.True(t, ok)
			assert.NotEqual(t, raw, id)
			assert.True(t, logger.ValidRequestID(id))
		})
	}
}
