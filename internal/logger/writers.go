package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aleister1102/ipfresh/internal/config"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// createWriters creates the appropriate writers based on configuration
func createWriters(cfg config.LogConfig) []io.Writer {
	writers := []io.Writer{createConsoleWriter(cfg.LogFormat)}

	if cfg.LogFile != "" {
		writers = append(writers, createFileWriter(cfg))
	}

	return writers
}

// createConsoleWriter creates the stderr writer for the configured format
func createConsoleWriter(format string) io.Writer {
	if strings.ToLower(format) == "json" {
		return os.Stderr
	}
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

// createFileWriter creates a rotating file writer
func createFileWriter(cfg config.LogConfig) io.Writer {
	// If directory creation fails, lumberjack surfaces the error on first write
	_ = os.MkdirAll(filepath.Dir(cfg.LogFile), 0755)

	fileWriter := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxLogSizeMB,
		MaxBackups: cfg.MaxLogBackups,
		LocalTime:  true,
	}

	// File output stays machine-readable regardless of console format
	return fileWriter
}
