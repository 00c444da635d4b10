package database

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/go-qa/internal/config"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// steppingClock returns start on its first call and start+step afterwards.
func steppingClock(step time.Duration) func() time.Time {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	return func() time.Time {
		calls++
		if calls == 1 {
			return start
		}
		return start.Add(step)
	}
}

func runQuery(tracer *slowQueryTracer, sql string, err error) {
	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: sql})
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{Err: err})
}

func TestSlowQueryTracer(t *testing.T) {
	t.Run("slow statement is logged at warn", func(t *testing.T) {
		var logs bytes.Buffer
		log := zerolog.New(&logs)
		tracer := newSlowQueryTracer(100*time.Millisecond, &log)
		tracer.now = steppingClock(250 * time.Millisecond)

		runQuery(tracer, "SELECT * FROM questions", errors.New("canceled"))

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
		assert.Equal(t, "warn", entry["level"])
		assert.Equal(t, "slow query", entry["message"])
		assert.Equal(t, "SELECT * FROM questions", entry["sql"])
		assert.EqualValues(t, 250, entry["duration"])
		assert.EqualValues(t, 100, entry["threshold"])
		assert.Equal(t, "canceled", entry["error"])
	})

	t.Run("fast statement is not logged", func(t *testing.T) {
		var logs bytes.Buffer
		log := zerolog.New(&logs)
		tracer := newSlowQueryTracer(100*time.Millisecond, &log)
		tracer.now = steppingClock(5 * time.Millisecond)

		runQuery(tracer, "SELECT 1", nil)
		assert.Empty(t, logs.String())
	})

	t.Run("end without start is ignored", func(t *testing.T) {
		var logs bytes.Buffer
		log := zerolog.New(&logs)
		tracer := newSlowQueryTracer(time.Nanosecond, &log)

		tracer.TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})
		assert.Empty(t, logs.String())
	})
}

func TestPoolConfigAttachesSlowQueryTracer(t *testing.T) {
	log := zerolog.Nop()
	cfg := testConfig("development")
	cfg.Observability = config.DefaultObservabilityConfig()

	poolConfig, err := PoolConfig(cfg, &log, nil)
	require.NoError(t, err)

	tracer, ok := poolConfig.ConnConfig.Tracer.(*slowQueryTracer)
	require.True(t, ok, "expected a slow query tracer, got %T", poolConfig.ConnConfig.Tracer)
	assert.Equal(t, 100*time.Millisecond, tracer.threshold)

	cfg.Observability.Logging.SlowQueryThreshold = 0
	poolConfig, err = PoolConfig(cfg, &log, nil)
	require.NoError(t, err)
	assert.Nil(t, poolConfig.ConnConfig.Tracer)
}

func TestPoolConfigChainsTracersLocally(t *testing.T) {
	log := zerolog.Nop()
	cfg := testConfig("local")
	cfg.Observability = config.DefaultObservabilityConfig()

	poolConfig, err := PoolConfig(cfg, &log, nil)
	require.NoError(t, err)

	chained, ok := poolConfig.ConnConfig.Tracer.(*multiTracer)
	require.True(t, ok, "expected a multi tracer, got %T", poolConfig.ConnConfig.Tracer)
	assert.Len(t, chained.tracers, 2)
}
