package utils

import (
	"log"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global logger instance
var Logger *zap.Logger

// InitializeLogger sets up the logging configuration
func InitializeLogger() {
	var cfg zap.Config

	if config.IsProduction() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(logLevel())

	// Create logger
	var err error
	Logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

// logLevel resolves the configured LOG_LEVEL, falling back to info in
// production and debug otherwise when the value is empty or unparseable.
func logLevel() zapcore.Level {
	if config.AppConfig.LogLevel != "" {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(config.AppConfig.LogLevel)); err == nil {
			return lvl
		}
		log.Printf("Unknown LOG_LEVEL %q, using default", config.AppConfig.LogLevel)
	}
	if config.IsProduction() {
		return zap.InfoLevel
	}
	return zap.DebugLevel
}

// GetLogger retrieves the global logger
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}
