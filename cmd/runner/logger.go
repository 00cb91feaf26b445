package runner

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/sagarsuperuser/todos/server/settings"
)

const defaultServiceName = "todos-api"

// SetupLogger configures the global zerolog logger from settings.
func SetupLogger(settings *settings.Settings) error {
	log.Logger = newLogger(settings, os.Stdout)

	zerolog.SetGlobalLevel(log.Logger.GetLevel())
	zerolog.DefaultContextLogger = &log.Logger
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	return nil
}

func newLogger(settings *settings.Settings, out io.Writer) zerolog.Logger {
	w := getLogWriter(settings, out)
	logLevel := getLogLevel(settings)

	service := settings.ServiceName
	if service == "" {
		service = defaultServiceName
	}
	logger := zerolog.New(w).With().Timestamp().Str("service", service)
	if logLevel <= zerolog.DebugLevel {
		logger = logger.Caller()
	}

	return logger.Logger().Level(logLevel)
}

func getLogLevel(settings *settings.Settings) zerolog.Level {
	levelStr := strings.ToLower(strings.TrimSpace(settings.LogLevel))

	logLevel, err := zerolog.ParseLevel(levelStr)
	if err != nil || levelStr == "" {
		log.Error().Err(err).
			Str("logLevel", levelStr).
			Msg("Unspecified or invalid log level, setting the level to default (INFO)...")

		logLevel = zerolog.InfoLevel
	}

	return logLevel
}

// getLogWriter returns a console writer for text format or non-prod modes,
// raw JSON otherwise.
func getLogWriter(settings *settings.Settings, out io.Writer) io.Writer {
	useConsole := strings.ToLower(settings.LogFormat) == "text" || settings.Mode != "prod"
	if useConsole {
		return zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
	}

	return out
}
