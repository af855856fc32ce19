// Package logging builds the application's structured logger. The terminal
// belongs to the TUI, so log lines go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects where and how much to log.
type Config struct {
	// File is the log file path. Empty means DefaultPath().
	File string

	// Level is a zap level name: debug, info, warn, error.
	Level string

	// Disabled returns a no-op logger.
	Disabled bool
}

// ConfigFromEnv reads LEVELUP_LOG_FILE and LEVELUP_LOG_LEVEL.
// LEVELUP_LOG_FILE=off disables logging.
func ConfigFromEnv() Config {
	cfg := Config{
		File:  os.Getenv("LEVELUP_LOG_FILE"),
		Level: os.Getenv("LEVELUP_LOG_LEVEL"),
	}
	if cfg.File == "off" {
		cfg.File = ""
		cfg.Disabled = true
	}
	return cfg
}

// New creates a JSON file logger from cfg.
func New(cfg Config) (*zap.Logger, error) {
	if cfg.Disabled {
		return zap.NewNop(), nil
	}

	level := zapcore.InfoLevel
	if cfg.Level != "" {
		l, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		level = l
	}

	path := cfg.File
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// DefaultPath returns $XDG_STATE_HOME/levelup/levelup.log, falling back to
// ~/.local/state.
func DefaultPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "levelup", "levelup.log"), nil
}
