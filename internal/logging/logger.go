// Package logging provides config-driven, categorized zap logging for Lumina.
// Each subsystem asks for a named logger by category; categories switched off
// in config get a no-op logger. Until Initialize is called every category logs
// nowhere, which keeps tests and library use quiet.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"lumina/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot      Category = "boot"      // Startup, config and catalogue loading
	CategoryCatalog   Category = "catalog"   // Catalogue loaders and seeding
	CategoryCart      Category = "cart"      // Cart mutations
	CategoryAssistant Category = "assistant" // Assistant gateway calls
	CategoryUI        Category = "ui"        // Terminal UI events
)

var (
	mu     sync.RWMutex
	base   = zap.NewNop()
	cfg    config.LoggingConfig
	closer func() error
)

// Initialize builds the base logger from cfg. verbose forces debug level.
// Calling Initialize again replaces the previous logger.
func Initialize(lc config.LoggingConfig, verbose bool) error {
	logger, closeFn, err := New(lc, verbose)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		_ = closer()
	}
	base = logger
	cfg = lc
	closer = closeFn
	return nil
}

// New builds a standalone zap logger from lc. The returned func syncs and
// closes any log file that was opened.
func New(lc config.LoggingConfig, verbose bool) (*zap.Logger, func() error, error) {
	level, err := parseLevel(lc)
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	var encoder zapcore.Encoder
	if lc.Format == "console" {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	var (
		sink    zapcore.WriteSyncer
		closeFn = func() error { return nil }
	)
	if lc.File == "" {
		sink = zapcore.Lock(os.Stderr)
	} else {
		if err := os.MkdirAll(filepath.Dir(lc.File), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
		}
		f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		sink = zapcore.AddSync(f)
		closeFn = func() error {
			_ = f.Sync()
			return f.Close()
		}
	}

	logger := zap.New(zapcore.NewCore(encoder, sink, level), zap.AddCaller())
	return logger, closeFn, nil
}

// parseLevel maps the config level onto zap. Accepted names are owned by
// config.LoggingConfig.LevelName so Validate and the logger never disagree.
func parseLevel(lc config.LoggingConfig) (zapcore.Level, error) {
	name, err := lc.LevelName()
	if err != nil {
		return zapcore.InfoLevel, err
	}
	return zapcore.ParseLevel(name)
}

// Get returns the named logger for category, or a no-op logger when the
// category is disabled.
func Get(category Category) *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()

	if !cfg.IsCategoryEnabled(string(category)) {
		return zap.NewNop()
	}
	return base.Named(string(category))
}

// Sync flushes and closes the current logger.
func Sync() {
	mu.Lock()
	defer mu.Unlock()

	_ = base.Sync()
	if closer != nil {
		_ = closer()
		closer = nil
	}
	base = zap.NewNop()
}
