package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init installs the global logger. Development logs to the console at debug
// level, every other environment writes JSON lines at info level.
func Init(env, service, version string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if env == "development" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = newLogger(zerolog.ConsoleWriter{Out: os.Stderr}, service, version)
		return
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = newLogger(os.Stdout, service, version)
}

func newLogger(w io.Writer, service, version string) zerolog.Logger {
	return zerolog.New(w).With().
		Timestamp().
		Str("service", service).
		Str("version", version).
		Logger()
}

func Info(msg string, fields map[string]interface{}) {
	log.Info().Fields(fields).Msg(msg)
}

func Error(msg string, err error) {
	log.Error().Err(err).Msg(msg)
}
