package logger

import (
	"os"
	"time"

	"CreditCtrl/config"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	// Usable before Init for early startup paths; Init re-configures from config.
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// Init configures the package logger. Outside production the output is a
// human-readable console writer at debug level.
func Init(cfg *config.Config) {
	level := zerolog.InfoLevel
	if cfg.App.Environment != "production" {
		level = zerolog.DebugLevel
	}

	var out = zerolog.New(os.Stdout)
	if cfg.App.Environment != "production" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	log = out.Level(level).With().Timestamp().Logger()
}

func Debug() *zerolog.Event { return log.Debug() }

func Info() *zerolog.Event { return log.Info() }

func Warn() *zerolog.Event { return log.Warn() }

func Error() *zerolog.Event { return log.Error() }

func Fatal() *zerolog.Event { return log.Fatal() }
