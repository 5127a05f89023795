package logger

import (
	stdlog "log"
	"strings"

	"github.com/aleister1102/ipfresh/internal/config"
	"github.com/rs/zerolog"
)

// New creates a new zerolog logger from the application log configuration.
// Console output is always enabled; file output with rotation is enabled
// when a log file path is configured.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Logger{}, err
	}

	writers := createWriters(cfg)

	multiWriter := zerolog.MultiLevelWriter(writers...)
	logger := zerolog.New(multiWriter).
		Level(level).
		With().
		Timestamp().
		Logger()

	zerolog.SetGlobalLevel(level)

	// Route standard library log output through zerolog
	stdlog.SetOutput(logger)
	stdlog.SetFlags(0)

	return logger, nil
}

// parseLevel parses a string log level to zerolog.Level
func parseLevel(levelStr string) (zerolog.Level, error) {
	if strings.EqualFold(levelStr, "warning") {
		levelStr = "warn"
	}
	level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		return zerolog.InfoLevel, err
	}
	return level, nil
}
