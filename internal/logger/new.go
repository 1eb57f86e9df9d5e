package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures logger construction.
type Options struct {
	Level  string
	Format string // text or json
	// File, when set, receives a copy of every record and is rotated by size.
	File   string
	Output io.Writer
}

type implLogger struct {
	logger *slog.Logger
	level  string
}

// New creates a new Logger instance writing text records to stderr.
func New(level string) Logger {
	l, _ := NewWithOptions(Options{Level: level})
	return l
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	l, _ := NewWithOptions(Options{Level: "error", Output: io.Discard})
	return l
}

// NewWithOptions builds a Logger from opts.
func NewWithOptions(opts Options) (Logger, error) {
	level := strings.ToLower(strings.TrimSpace(opts.Level))
	if level == "warning" {
		level = "warn"
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	if file := strings.TrimSpace(opts.File); file != "" {
		out = io.MultiWriter(out, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28,
		})
	}

	// Filtering happens in shouldLog; the handler passes everything through.
	handlerOpts := &slog.HandlerOptions{Level: slog.LevelDebug}
	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", "text":
		handler = slog.NewTextHandler(out, handlerOpts)
	case "json":
		handler = slog.NewJSONHandler(out, handlerOpts)
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	return &implLogger{
		logger: slog.New(handler),
		level:  level,
	}, nil
}
