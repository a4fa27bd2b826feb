// Package logger wraps a process-wide zerolog instance behind a sync.Once
// so every package logs through the same configured writer.
package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// EnvLogLevel overrides the default log level when set to a value
// zerolog.ParseLevel accepts ("debug", "info", "warn", ...).
const EnvLogLevel = "LIFTSIM_LOG_LEVEL"

var once sync.Once
var Log zerolog.Logger

func configureLogger() {
	customTimeFormat := "2006-01-02T15:04:05.000Z07:00"
	zerolog.TimeFieldFormat = customTimeFormat

	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: customTimeFormat,
	}

	Log = zerolog.New(output).With().Timestamp().Logger()
}

// GetLoggerConfigured initialises the logger at the given level. Only the
// first call configures anything; later calls just hand back the logger.
func GetLoggerConfigured(level zerolog.Level) *zerolog.Logger {
	once.Do(func() {
		configureLogger()
		zerolog.SetGlobalLevel(level)
	})
	return &Log
}

func GetLogger() *zerolog.Logger {
	once.Do(func() {
		configureLogger()
	})
	return &Log
}

// LevelFromEnv reads EnvLogLevel and falls back to the given default when
// the variable is unset or unparseable.
func LevelFromEnv(fallback zerolog.Level) zerolog.Level {
	raw, ok := os.LookupEnv(EnvLogLevel)
	if !ok {
		return fallback
	}
	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		return fallback
	}
	return level
}
