package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Config{
		Level:  "warn",
		Format: "json",
		Attrs:  []slog.Attr{slog.String("run_id", "r1")},
	})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", slog.Int("words", 3))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "shown", entry["msg"])
	require.Equal(t, "WARN", entry["level"])
	require.Equal(t, "r1", entry["run_id"])
	require.Equal(t, float64(3), entry["words"])
}

func TestNew_Errors(t *testing.T) {
	var buf bytes.Buffer
	_, err := New(&buf, Config{Level: "nope"})
	require.Error(t, err)
	_, err = New(&buf, Config{Format: "xml"})
	require.Error(t, err)

	logger, err := New(&buf, Config{})
	require.NoError(t, err)
	logger.Info("text line")
	require.Contains(t, buf.String(), "msg=\"text line\"")
}
