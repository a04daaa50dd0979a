package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const consoleTimeFormat = "15:04:05"

// New constructs a zerolog logger according to the runtime environment.
// Development environments receive human readable console logs; other
// environments emit JSON.
func New(env, level string, writers ...io.Writer) (*zerolog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.DurationFieldUnit = time.Millisecond

	var output io.Writer
	switch {
	case len(writers) > 0:
		output = io.MultiWriter(writers...)
	case isDevelopment(env):
		output = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: consoleTimeFormat}
	default:
		output = os.Stderr
	}

	log := zerolog.New(output).With().Timestamp().Logger().Level(lvl)
	return &log, nil
}

func isDevelopment(env string) bool {
	return strings.EqualFold(env, "development") || strings.EqualFold(env, "dev")
}

func parseLevel(level string) (zerolog.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, err
	}
	return lvl, nil
}
