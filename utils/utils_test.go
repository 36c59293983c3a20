package utils

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterWaitsFixedDelay(t *testing.T) {
	var slept []time.Duration
	r := NewRateLimiter(4 * time.Second)
	r.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}

	for i := 0; i < 3; i++ {
		require.NoError(t, r.Wait(context.Background()))
	}

	require.Equal(t, []time.Duration{4 * time.Second, 4 * time.Second, 4 * time.Second}, slept)
	require.Equal(t, 4*time.Second, r.Delay())
}

func TestRateLimiterZeroDelay(t *testing.T) {
	r := NewRateLimiter(0)
	r.sleep = func(context.Context, time.Duration) error {
		t.Fatal("sleep must not be called")
		return nil
	}
	require.NoError(t, r.Wait(context.Background()))
}

func TestRateLimiterCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewRateLimiter(time.Hour).Wait(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRateLimiterRealSleep(t *testing.T) {
	start := time.Now()
	require.NoError(t, NewRateLimiter(20*time.Millisecond).Wait(context.Background()))
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, "info")

	logger.Debug("hidden %d", 1)
	logger.Info("rated %s as %d", "deal", 7)
	logger.Error("failed: %v", "timeout")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "rated deal as 7")
	assert.Contains(t, out, "failed: timeout")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLevel(""))
	require.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", Truncate("short", 50))
	require.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	require.Equal(t, "ab", Truncate("abcdef", 2))
}
