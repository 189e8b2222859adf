package logging

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// NewLogger creates a configured logger.
//
// level: debug, info, warn, error
// format: "text" (human-readable) or "json" (structured)
//
// Output goes to stderr by default (stdout is reserved for reports).
func NewLogger(level log.Level, format string) *log.Logger {
	return NewLoggerWithWriter(level, format, os.Stderr)
}

// NewLoggerWithWriter creates a logger writing to the given writer.
func NewLoggerWithWriter(level log.Level, format string, w io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetLevel(level)

	switch strings.ToLower(format) {
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return logger
}

// ParseLevel converts a string log level to a logrus level.
// Returns InfoLevel for unrecognized values.
func ParseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(strings.TrimSpace(s))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
