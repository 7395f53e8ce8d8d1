package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapterWithLogger(zerolog.New(&buf))

	logger.Info("sending request",
		String("method", "POST"),
		Int("attempt", 1),
		Bool("form", false),
		Duration("took", 2*time.Millisecond),
		Any("headers", map[string]string{"X": "1"}),
		Err(errors.New("boom")),
	)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "sending request", entry["message"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, float64(1), entry["attempt"])
	assert.Equal(t, false, entry["form"])
	assert.Equal(t, map[string]any{"X": "1"}, entry["headers"])
	assert.Equal(t, "boom", entry["error"])
}

func TestZerologAdapter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapterWithLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))

	logger.Debug("hidden")
	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestZapAdapter_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapAdapter(zap.New(core))

	logger.Debug("received response", Int("status", 404), Err(errors.New("nope")))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "received response", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, int64(404), ctx["status"])
	assert.Equal(t, "nope", ctx["error"])
}

func TestNoopLogger(t *testing.T) {
	logger := NewNoopLogger()
	assert.NotPanics(t, func() {
		logger.Debug("x")
		logger.Info("x", String("k", "v"))
		logger.Warn("x")
		logger.Error("x", Err(errors.New("e")))
	})
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		level   string
		format  string
		wantErr string
	}{
		{name: "default zerolog", backend: "", level: "", format: ""},
		{name: "zerolog json", backend: "zerolog", level: "debug", format: "json"},
		{name: "zap console", backend: "zap", level: "warn", format: "console"},
		{name: "zap json", backend: "ZAP", level: "info", format: "json"},
		{name: "none", backend: "none"},
		{name: "unknown backend", backend: "logrus", wantErr: "unknown log backend"},
		{name: "bad level", backend: "zerolog", level: "loud", wantErr: "invalid log level"},
		{name: "bad zap level", backend: "zap", level: "loud", wantErr: "invalid log level"},
		{name: "bad format", backend: "zap", format: "xml", wantErr: "unknown log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := NewLogger(tt.backend, tt.level, tt.format, &buf)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestNewLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(BackendZerolog, "info", FormatJSON, &buf)
	require.NoError(t, err)

	logger.Debug("filtered")
	logger.Info("kept", String("url", "http://example.com"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "http://example.com", entry["url"])
}
