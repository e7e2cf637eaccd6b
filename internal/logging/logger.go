// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing to stderr so stdout stays free for results.
// format "console" selects human-readable output; anything else is JSON.
func New(format, level string) (zerolog.Logger, error) {
	return NewWithWriter(os.Stderr, format, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(out io.Writer, format, level string) (zerolog.Logger, error) {
	parsedLevel, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("parse log level %q: %w", level, err)
	}

	writer := out
	if strings.EqualFold(strings.TrimSpace(format), "console") {
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(writer).
		Level(parsedLevel).
		With().
		Timestamp().
		Str("service", "mtcompare").
		Logger(), nil
}
