// Package logger provides the process-wide structured logger.
//
// Components obtain a *slog.Logger through With and tag it with
// "component". Output goes through a charmbracelet/log handler so that
// terminal users get readable, coloured lines on stderr.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

var (
	handler = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           charmlog.WarnLevel,
	})
	base = slog.New(handler)
)

// With returns the base logger with the given attributes attached
func With(args ...any) *slog.Logger {
	return base.With(args...)
}

// SetLevel sets the minimum level by name: debug, info, warn or error
func SetLevel(level string) error {
	lvl, err := charmlog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	handler.SetLevel(lvl)
	return nil
}

// SetOutput redirects log output
func SetOutput(w io.Writer) {
	handler.SetOutput(w)
}
