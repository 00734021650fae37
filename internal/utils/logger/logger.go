// Package logger provides a global logger for the application
package logger

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"go.uber.org/zap"
)

var zapLogger *zap.Logger

// Init initializes the global loggers from the environment. It sets up
// zerolog with console output and picks the level from ENVIRONMENT; a .env
// file is loaded when present. Call once from main before any logging.
func Init() {
	// A missing .env is fine; environment variables still apply.
	_ = godotenv.Load()

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

	environment := strings.ToLower(os.Getenv("ENVIRONMENT"))
	if environment == "" {
		environment = "prod"
	}

	var logLevel zerolog.Level
	switch environment {
	case "dev", "test":
		logLevel = zerolog.TraceLevel
		log.Info().Str("environment", environment).Msg("Development/Test environment detected - enabling all log levels")
	case "prod":
		logLevel = zerolog.InfoLevel
	default:
		logLevel = zerolog.InfoLevel
		log.Warn().Str("environment", environment).Msg("Unknown environment - defaulting to production log level (info and above)")
	}
	zerolog.SetGlobalLevel(logLevel)

	if environment == "prod" {
		zapLogger = zap.Must(zap.NewProduction())
	} else {
		zapLogger = zap.Must(zap.NewDevelopment())
	}
}

// SetLevel overrides the global level, for CLI flags like --debug.
func SetLevel(level string) {
	switch strings.ToLower(level) {
	case "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		log.Trace().Msg("Trace logging enabled")
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("Debug logging enabled")
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		log.Warn().Str("level", level).Msg("Unknown log level - keeping current level")
	}
}

// Sugar returns a sugared logger for easier use
func Sugar() *zap.SugaredLogger {
	if zapLogger == nil {
		zapLogger = zap.NewNop()
	}
	return zapLogger.Sugar()
}
