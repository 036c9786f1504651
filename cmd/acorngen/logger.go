package main

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// newLogger returns a console logger for the generator. Unknown levels fall
// back to info.
func newLogger(level string, out io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}).Level(lvl).With().Timestamp().Str("component", "acorngen").Logger()
}
