package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// logTimeFormat is the timestamp layout used on every console line.
const logTimeFormat = "2006-01-02 15:04:05"

// newLogger returns a console logger writing unbuffered, timestamped lines to
// out. Lines are prefixed with the timestamp in brackets.
func newLogger(out io.Writer, debug bool) zerolog.Logger {
	zerolog.TimeFieldFormat = logTimeFormat
	cw := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: logTimeFormat,
		FormatTimestamp: func(i interface{}) string {
			return fmt.Sprintf("[%v]", i)
		},
	}

	lvl := zerolog.InfoLevel
	if debug {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
}
