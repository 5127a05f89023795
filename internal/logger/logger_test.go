package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/ipfresh/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultConfig(t *testing.T) {
	logger, err := New(config.NewDefaultLogConfig())

	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNew_LevelParsing(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"WARNING", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := config.NewDefaultLogConfig()
			cfg.LogLevel = tt.level

			logger, err := New(cfg)

			require.NoError(t, err)
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogLevel = "chatty"

	_, err := New(cfg)

	assert.Error(t, err)
}

func TestNew_FileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "ipfresh.log")
	cfg := config.NewDefaultLogConfig()
	cfg.LogFile = logFile
	cfg.LogFormat = "json"

	logger, err := New(cfg)
	require.NoError(t, err)

	logger.Info().Str("key", "value").Msg("file output test")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "file output test")
}
