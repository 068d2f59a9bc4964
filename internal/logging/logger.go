// Package logging builds the zap loggers used across vitalog.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns the application logger. Verbose mode lowers the level to
// debug and switches to the development encoder for readable CLI output.
func New(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Nop returns a logger that discards everything. Used by tests and as the
// default when a constructor receives nil.
func Nop() *zap.Logger {
	return zap.NewNop()
}
