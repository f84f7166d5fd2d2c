package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// LogConfig redirects the logger that the -loglevel and -logformat flags set
// up. Level and format carry over; only the destination changes.
type LogConfig struct {
	Path string `json:"path"`
}

func (c *LogConfig) validate() error {
	if c.Path == "" {
		return nil
	}
	if _, err := os.Stat(filepath.Dir(c.Path)); err != nil {
		return fmt.Errorf("log path: %w", err)
	}
	return nil
}

// Setup points the default logger at Path. Interactive games without a path
// log nowhere so log lines never land on the game screen. The returned file is
// nil unless one was opened.
func (c *LogConfig) Setup(interactive bool) (io.Closer, error) {
	if c.Path == "" && !interactive {
		return nil, nil
	}

	var (
		w    io.Writer = io.Discard
		file *os.File
	)
	if c.Path != "" {
		f, err := os.OpenFile(c.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		w, file = f, f
	}

	slog.SetDefault(slog.New(redirect(slog.Default().Handler(), w)))
	if file == nil {
		return nil, nil
	}
	return file, nil
}

// redirect builds a handler writing to w at the level and in the format of h.
func redirect(h slog.Handler, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: enabledLevel(h)}
	if _, ok := h.(*slog.TextHandler); ok {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

func enabledLevel(h slog.Handler) slog.Level {
	for _, l := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if h.Enabled(context.Background(), l) {
			return l
		}
	}
	return slog.LevelError
}
