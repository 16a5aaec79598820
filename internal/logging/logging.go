// Package logging builds the zap loggers used by the CLI, the TUI and the web
// server. Console output goes to a writer (usually stderr); file output goes
// through a size-rotated lumberjack file.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects the level and destinations of a logger
type Config struct {
	Level   string    // "debug", "info", "warn", "error" or "none" (default: info)
	File    string    // Rotated log file; empty disables file logging
	Console io.Writer // Console destination; nil disables console logging
	Color   bool      // Colored level names on the console

	MaxSizeMB  int // Rotate after this many megabytes (default: 10)
	MaxAgeDays int // Delete rotated files older than this (default: 28)
}

// New builds a logger from config. The returned cleanup flushes buffered
// entries and closes the log file; it is safe to call more than once.
func New(config Config) (*zap.Logger, func(), error) {
	levelText := strings.ToLower(strings.TrimSpace(config.Level))
	if levelText == "none" {
		return zap.NewNop(), func() {}, nil
	}
	if levelText == "" {
		levelText = "info"
	}
	level, err := zapcore.ParseLevel(levelText)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", config.Level, err)
	}

	var (
		cores   []zapcore.Core
		rotator *lumberjack.Logger
	)

	if config.Console != nil {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeCaller = nil
		ec.TimeKey = zapcore.OmitKey
		if config.Color {
			ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			ec.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(config.Console)), level))
	}

	if config.File != "" {
		rotator = &lumberjack.Logger{
			Filename: config.File,
			MaxSize:  orDefault(config.MaxSizeMB, 10),
			MaxAge:   orDefault(config.MaxAgeDays, 28),
		}
		ec := zap.NewProductionEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(ec), zapcore.AddSync(rotator), level))
	}

	if len(cores) == 0 {
		return zap.NewNop(), func() {}, nil
	}

	logger := zap.New(zapcore.NewTee(cores...))
	cleanup := func() {
		_ = logger.Sync()
		if rotator != nil {
			_ = rotator.Close()
		}
	}
	return logger, cleanup, nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
