// Package logger configures the process-wide zerolog logger.
// Request access lines are written by Fiber's logger middleware; everything else
// (startup, backend failures) goes through zerolog so it can carry structured fields.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sets the global zerolog level and output.
// In development the output is a human-friendly console writer; in every other
// environment it is one JSON object per line, which log collectors can parse.
// An unknown level name falls back to info.
func Init(level string, development bool) zerolog.Logger {
	return InitWithWriter(os.Stdout, level, development)
}

// InitWithWriter is Init with an explicit destination, used by tests.
func InitWithWriter(w io.Writer, level string, development bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	out := w
	if development {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	log.Logger = zerolog.New(out).With().Timestamp().Str("service", "kyp-backend").Logger()
	return log.Logger
}
