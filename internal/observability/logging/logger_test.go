package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseLevel tests level name parsing
func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{name: "empty defaults to info", input: "", expected: slog.LevelInfo},
		{name: "debug", input: "debug", expected: slog.LevelDebug},
		{name: "upper case", input: "DEBUG", expected: slog.LevelDebug},
		{name: "warn", input: "warn", expected: slog.LevelWarn},
		{name: "warning alias", input: "warning", expected: slog.LevelWarn},
		{name: "error", input: "error", expected: slog.LevelError},
		{name: "invalid falls back to info", input: "verbose", expected: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, level)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestNew_Formats tests JSON and text output
func TestNew_Formats(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		logger := New(&buf, FormatJSON, slog.LevelInfo)

		// Act
		logger.Info("graph seeded", "articles", 4)

		// Assert
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "output should be valid JSON")
		assert.Equal(t, "graph seeded", entry["msg"])
		assert.Equal(t, float64(4), entry["articles"])
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, FormatText, slog.LevelInfo)

		logger.Info("graph seeded", "articles", 4)

		output := buf.String()
		assert.Contains(t, output, "msg=\"graph seeded\"")
		assert.Contains(t, output, "articles=4")
	})

	t.Run("unknown format falls back to json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "xml", slog.LevelInfo)

		logger.Info("hello")

		assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
	})
}

// TestNew_LevelFiltering tests that debug messages are filtered when not enabled
func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatJSON, slog.LevelInfo)

	logger.Debug("this should not appear")
	logger.Info("this should appear")

	output := buf.String()
	assert.NotContains(t, output, "this should not appear")
	assert.Contains(t, output, "this should appear")
}

// TestRunID tests run ID propagation through context and logger
func TestRunID(t *testing.T) {
	id := NewRunID()
	_, err := uuid.Parse(id)
	require.NoError(t, err, "run ID should be a UUID")

	ctx := WithRunID(context.Background(), id)
	assert.Equal(t, id, RunIDFromContext(ctx))
	assert.Equal(t, "", RunIDFromContext(context.Background()))

	var buf bytes.Buffer
	logger := WithRunIDField(ctx, New(&buf, FormatJSON, slog.LevelInfo))
	logger.Info("with run id")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, id, entry["run_id"])
}

func TestWithRunIDField_NoRunID(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf, FormatJSON, slog.LevelInfo)

	logger := WithRunIDField(context.Background(), base)
	logger.Info("test message")

	assert.Same(t, base, logger)
	assert.NotContains(t, buf.String(), "run_id")
}

// TestWithFields tests adding structured fields to logger
func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf, FormatJSON, slog.LevelInfo)

	logger := WithFields(base, map[string]interface{}{
		"magazine": "Daily Nation",
		"count":    3,
	})
	logger.Info("test message")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Daily Nation", entry["magazine"])
	assert.Equal(t, float64(3), entry["count"])
}

// TestFromContext tests retrieving logger from context
func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatJSON, slog.LevelInfo)

	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Info("from context")
	assert.Contains(t, buf.String(), "from context")

	assert.Equal(t, slog.Default(), FromContext(context.Background()))
	bad := context.WithValue(context.Background(), loggerContextKey, "not a logger")
	assert.Equal(t, slog.Default(), FromContext(bad))
}

// TestLogger_MultipleLogEntries tests logging multiple entries
func TestLogger_MultipleLogEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatJSON, slog.LevelInfo)

	logger.Info("first message")
	logger.Warn("second message")
	logger.Error("third message")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, 3, len(lines), "should have 3 log entries")
}

// BenchmarkLogger_WithFields benchmarks logging with fields
func BenchmarkLogger_WithFields(b *testing.B) {
	var buf bytes.Buffer
	base := New(&buf, FormatJSON, slog.LevelInfo)
	fields := map[string]interface{}{"magazine": "Daily Nation", "count": 100}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		WithFields(base, fields).Info("benchmark message")
	}
}
