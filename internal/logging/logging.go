// Package logging configures the process-wide zap logger for the CLI
// layer. The calculation packages stay pure and never log.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger instance.
	Logger = zap.NewNop()

	// Sugar is the sugared form of Logger.
	Sugar = Logger.Sugar()
)

// Config controls logger construction.
type Config struct {
	// Level is the minimum level ("debug", "info", "warn", "error").
	Level string
	// Format selects the encoder: "console" or "json".
	Format string
}

// DefaultConfig returns the CLI defaults: console output at info level.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "console"}
}

// Initialize builds the global logger from cfg. Diagnostics go to stderr
// so formatted calculation output on stdout stays machine-readable.
func Initialize(cfg Config) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level)
	Logger = zap.New(core)
	Sugar = Logger.Sugar()
	return nil
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Logger.Sync()
}
