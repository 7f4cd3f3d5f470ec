package config

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger builds a console zerolog.Logger writing to stderr at Logging.Level.
// Unknown levels fall back to info.
func (c *Context) Logger() zerolog.Logger {
	return c.LoggerTo(os.Stderr)
}

// LoggerTo is Logger with an explicit destination.
func (c *Context) LoggerTo(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "hypart").Logger()
}
