package logger

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

// Initialize sets up the global logger. Production gets the JSON encoder,
// everything else the human-readable development config.
func Initialize(env string) {
	var err error
	var logger *zap.Logger
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	Logger = logger
}

// Close flushes the logger buffers (important for production to avoid losing log entries)
func Close() {
	if err := Logger.Sync(); err != nil {
		log.Printf("failed to flush log entries: %v", err)
	}
}

func GetLogger() *zap.Logger {
	if Logger == nil {
		Initialize("")
	}
	return Logger
}

// Global logging methods to avoid `logger.Logger` repetition

func Info(msg string, args ...zapcore.Field) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...zapcore.Field) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...zapcore.Field) {
	GetLogger().Error(msg, args...)
}

func Fatal(msg string, args ...zapcore.Field) {
	GetLogger().Fatal(msg, args...)
}

func Debug(msg string, args ...zapcore.Field) {
	GetLogger().Debug(msg, args...)
}
