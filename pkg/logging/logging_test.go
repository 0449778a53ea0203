package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tc := range testCases {
		level, err := ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, level, tc.in)
	}

	_, err := ParseLevel("trace")
	assert.Error(t, err)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, slog.LevelDebug, FormatJSON)
	require.NoError(t, err)

	logger.Debug("dbc: read table blocks", "table", "SpellIcon", "records", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dbc: read table blocks", entry["msg"])
	assert.Equal(t, "SpellIcon", entry["table"])
	assert.Equal(t, float64(3), entry["records"])

	_, err = time.Parse(time.RFC3339, entry["time"].(string))
	assert.NoError(t, err)
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, slog.LevelInfo, FormatText)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown", "table", "Faction")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown table=Faction")
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, slog.LevelInfo, Format("xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown log format "xml"`)
}
