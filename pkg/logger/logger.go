// Package logger builds configured log/slog loggers for the catalog
// sample: JSON output for production log aggregation, text output for
// development, selected with functional options.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Format selects the logger output format.
type Format string

const (
	// FormatJSON emits structured records for log aggregation systems.
	FormatJSON Format = "json"
	// FormatText emits human-readable records for development.
	FormatText Format = "text"
)

type config struct {
	level  slog.Level
	format Format
	output io.Writer
	attrs  []slog.Attr
}

// Option configures logger creation.
type Option func(*config)

// WithLevel sets the minimum level records are emitted at.
func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithTextFormatter switches to human-readable text output.
func WithTextFormatter() Option {
	return func(c *config) { c.format = FormatText }
}

// WithJSONFormatter switches to structured JSON output.
func WithJSONFormatter() Option {
	return func(c *config) { c.format = FormatJSON }
}

// WithOutput sets a custom output destination; nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithService attaches a static service attribute to every record.
func WithService(name string) Option {
	return func(c *config) {
		if name != "" {
			c.attrs = append(c.attrs, slog.String("service", name))
		}
	}
}

// New returns a configured *slog.Logger. Defaults are production-safe:
// JSON format at info level on stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}
	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(handler)
}

// ParseLevel maps a configuration string to a slog.Level, defaulting to
// info for anything unrecognized.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
