// Package logging holds the process-wide structured logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the shared logger. Systems log through it directly.
var Logger = newLogger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

// SetLevel parses a level name ("debug", "info", "warn", ...) and applies it.
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	Logger = Logger.Level(lvl)
	return nil
}

// SetOutput redirects the logger, keeping the current level.
func SetOutput(w io.Writer) {
	lvl := Logger.GetLevel()
	Logger = newLogger(w).Level(lvl)
}

// Disable silences all output. Used by tests.
func Disable() {
	Logger = zerolog.Nop()
}
