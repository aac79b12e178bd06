// Package logging sets up the process logger. The TUI owns stdout, so all
// logs go to a file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lmittmann/tint"
)

// Setup opens the log file, installs a tint handler on it as the slog default
// and returns a closer for the file. An empty path discards all output.
func Setup(path, level string) (io.Closer, error) {
	var w io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)

	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("mkdir log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = f
	}

	logOpts := new(tint.Options)
	logOpts.Level = parseLevel(level)
	logOpts.NoColor = true // log files should stay grep-friendly
	logOpts.TimeFormat = "[15:04:05.000]"
	logger := slog.New(tint.NewHandler(w, logOpts))
	slog.SetDefault(logger)
	return closer, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
