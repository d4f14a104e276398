package utils

import (
	"testing"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogLevelHonorsConfiguredValue(t *testing.T) {
	orig := config.AppConfig
	defer func() { config.AppConfig = orig }()

	config.AppConfig.Env = "development"
	config.AppConfig.LogLevel = "warn"
	assert.Equal(t, zapcore.WarnLevel, logLevel())

	config.AppConfig.LogLevel = "error"
	assert.Equal(t, zapcore.ErrorLevel, logLevel())
}

func TestLogLevelFallsBackPerEnvironment(t *testing.T) {
	orig := config.AppConfig
	defer func() { config.AppConfig = orig }()

	config.AppConfig.LogLevel = ""
	config.AppConfig.Env = "production"
	assert.Equal(t, zapcore.InfoLevel, logLevel())

	config.AppConfig.Env = "development"
	assert.Equal(t, zapcore.DebugLevel, logLevel())

	// Garbage values fall back the same way.
	config.AppConfig.LogLevel = "loudest"
	config.AppConfig.Env = "production"
	assert.Equal(t, zapcore.InfoLevel, logLevel())
}

func TestInitializeLoggerBuildsAtConfiguredLevel(t *testing.T) {
	orig := config.AppConfig
	origLogger := Logger
	defer func() {
		config.AppConfig = orig
		Logger = origLogger
	}()

	config.AppConfig.Env = "development"
	config.AppConfig.LogLevel = "warn"
	InitializeLogger()

	assert.False(t, Logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, Logger.Core().Enabled(zap.WarnLevel))
}
