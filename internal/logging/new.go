package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rs/zerolog"
)

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

var (
	ErrUnknownLevel  = errors.New("unknown log level")
	ErrUnknownFormat = errors.New("unknown log format")
)

func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToLower(strings.TrimSpace(s))); l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return l, nil
	case "":
		return LevelInfo, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// New builds a Logger writing to w. The text and json formats use log/slog;
// console uses zerolog's human-readable writer.
func New(format, level string, w io.Writer) (Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	switch Format(strings.ToLower(format)) {
	case FormatText, "":
		h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel(lvl)})
		return NewSlogLogger(slog.New(h)), nil
	case FormatJSON:
		h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slogLevel(lvl)})
		return NewSlogLogger(slog.New(h)), nil
	case FormatConsole:
		zl := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
			Level(zerologLevel(lvl)).
			With().Timestamp().Logger()
		return NewZerologLogger(zl), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Nop discards everything. Handy for tests and for components built without
// a configured logger.
func Nop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
