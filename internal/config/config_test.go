package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpulse/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "v21.0", cfg.Graph.Version)
	assert.Equal(t, time.Second, cfg.Pipeline.PacingDelay)
	assert.Equal(t, "creative_refresh", cfg.AMQP.Queue)
	assert.Empty(t, cfg.AMQP.URL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("PIPELINE_PACING_DELAY", "250ms")
	t.Setenv("STORAGE_USE_PATH_STYLE", "true")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 250*time.Millisecond, cfg.Pipeline.PacingDelay)
	assert.True(t, cfg.Storage.UsePathStyle)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}

func TestLoggerOptions(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, configs.Logger{Level: tt.level}.SlogLevel(), tt.level)
	}
	assert.Equal(t, "text", configs.Logger{Format: "yaml"}.SlogFormat())
}
