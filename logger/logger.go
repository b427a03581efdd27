// Package logger bootstraps the zap logger used by the engine and by wgpu
// diagnostics. Applications create one logger at startup and hand it to the
// engine via engine.WithLogger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds configuration for the engine logger.
type Config struct {
	// Environment selects the encoder: "development" gets a human-readable
	// console encoder, anything else gets JSON.
	Environment string

	// LogLevel is one of debug, info, warn, error. Defaults to info.
	LogLevel string

	// AppName is attached to every entry as the "app" field.
	AppName string
}

// New creates a logger with the given configuration. It never returns nil;
// configuration problems fall back to safe defaults rather than failing
// application startup over a log setting.
func New(cfg Config) *zap.Logger {
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoding := "json"
	if cfg.Environment == "development" {
		encoding = "console"
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config := zap.Config{
		Level:            ParseLevel(cfg.LogLevel),
		Development:      cfg.Environment == "development",
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	log, err := config.Build()
	if err != nil {
		log = zap.NewNop()
	}

	if cfg.AppName != "" {
		log = log.With(zap.String("app", cfg.AppName))
	}
	return log
}

// ParseLevel maps a level name to a zap atomic level, defaulting to info for
// anything unrecognized.
func ParseLevel(level string) zap.AtomicLevel {
	switch level {
	case "debug":
		return zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "warn":
		return zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "error":
		return zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
}
