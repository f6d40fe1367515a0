// Package logging builds the gookit/slog loggers handed to every component at construction time.
package logging

import (
	"io"
	"strings"

	"github.com/gookit/slog"
)

// Logger is the narrow logging surface the simulator components depend on.
// Both *slog.Logger and *slog.SugaredLogger satisfy it.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Config represents the logger configuration
type Config struct {
	Level       string `mapstructure:"level"`
	Format      string `mapstructure:"format"`
	PrettyPrint bool   `mapstructure:"pretty_print"`
}

// DefaultConfig returns the default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "text",
		PrettyPrint: false,
	}
}

// New creates a sugared gookit logger writing to w with the level and formatter from cfg.
// Unknown levels fall back to info, unknown formats to text.
func New(cfg Config, w io.Writer) *slog.SugaredLogger {
	level := slog.LevelByName(cfg.Level)
	return slog.NewSugaredLogger(w, level, func(sl *slog.SugaredLogger) {
		sl.Formatter = newFormatter(cfg)
	})
}

func newFormatter(cfg Config) slog.Formatter {
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
			f.PrettyPrint = cfg.PrettyPrint
		})
	}
	return slog.NewTextFormatter()
}

// Discard returns a Logger that drops every message.
func Discard() Logger { return discard{} }

type discard struct{}

func (discard) Debugf(string, ...any) {}
func (discard) Infof(string, ...any)  {}
func (discard) Warnf(string, ...any)  {}
func (discard) Errorf(string, ...any) {}
