package sememeval

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sememeval/codec"
	"github.com/hupe1980/sememeval/scoring"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var m map[string]any
		require.NoError(t, codec.Default.Unmarshal(line, &m))
		out = append(out, m)
	}
	return out
}

func TestLogger(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	logger := NewJSONLoggerTo(&buf, slog.LevelInfo).WithRunID("run-1").WithK(5)

	logger.LogLoad(ctx, "word-vec.en", 10, 8, time.Millisecond, nil)
	logger.LogLoad(ctx, "vocab.en", 0, 0, 0, errors.New("boom"))
	logger.LogEvaluate(ctx, &Record{Word: "cat", AP: 1}, nil)
	logger.LogEvaluate(ctx, &Record{
		Word:       "rock",
		Gold:       []string{"STONE|石头"},
		Scores:     []scoring.LabelScore{{Label: "ANIMAL|动物", Score: 1}},
		Degenerate: true,
	}, nil)
	logger.LogCheckpoint(ctx, Checkpoint{Done: 100, Total: 200})
	logger.LogSummary(ctx, &Summary{Words: 2, MAP: 0.5})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 5, "successful evaluations log at debug")

	assert.Equal(t, "load completed", lines[0]["msg"])
	assert.Equal(t, "run-1", lines[0]["run_id"])
	assert.Equal(t, float64(5), lines[0]["k"])
	assert.Equal(t, "ERROR", lines[1]["level"])
	assert.Equal(t, "WARN", lines[2]["level"])
	assert.Equal(t, "rock", lines[2]["word"])
	assert.Equal(t, "checkpoint", lines[3]["msg"])
	assert.Equal(t, float64(0.5), lines[4]["map"])
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	logger.LogSummary(context.Background(), &Summary{})
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}
	mc.RecordLoad("a", 10, time.Millisecond, nil)
	mc.RecordLoad("b", 0, time.Millisecond, errors.New("x"))
	mc.RecordSearch(5, 100, 2*time.Microsecond)
	mc.RecordEvaluate(&Record{Degenerate: true}, 4*time.Microsecond, nil)
	mc.RecordEvaluate(&Record{}, 2*time.Microsecond, errors.New("x"))

	s := mc.GetStats()
	assert.Equal(t, int64(2), s.LoadCount)
	assert.Equal(t, int64(1), s.LoadErrors)
	assert.Equal(t, int64(10), s.LoadedItems)
	assert.Equal(t, int64(100), s.SearchCandidates)
	assert.Equal(t, int64(2000), s.SearchAvgNanos)
	assert.Equal(t, int64(2), s.EvaluateCount)
	assert.Equal(t, int64(1), s.EvaluateErrors)
	assert.Equal(t, int64(1), s.EvaluateDegenerate)
	assert.Equal(t, int64(3000), s.EvaluateAvgNanos)
}
