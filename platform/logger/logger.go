// Package logger provides structured logging infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// New creates a new logger based on environment
func New(env string) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithLeadID returns a logger with lead ID
func (l *Logger) WithLeadID(leadID string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("lead_id", leadID)),
	}
}

// ScoringEvent logs a completed lead evaluation
func (l *Logger) ScoringEvent(score float64, tag string, signals int) {
	l.Info("lead_scored",
		slog.Float64("score", score),
		slog.String("tag", tag),
		slog.Int("signals", signals),
	)
}

// CatalogLoaded logs a catalog load
func (l *Logger) CatalogLoaded(path string, loaded, skipped int) {
	l.Info("catalog_loaded",
		slog.String("path", path),
		slog.Int("loaded", loaded),
		slog.Int("skipped", skipped),
	)
}

// CatalogRecordSkipped logs a listing record rejected during catalog load
func (l *Logger) CatalogRecordSkipped(path string, index int, err error) {
	l.Warn("catalog_record_skipped",
		slog.String("path", path),
		slog.Int("index", index),
		slog.String("error", err.Error()),
	)
}

// MatchEvent logs a listing match run
func (l *Logger) MatchEvent(catalogSize, matches int) {
	l.Info("listings_matched",
		slog.Int("catalog_size", catalogSize),
		slog.Int("matches", matches),
	)
}

// ConfigError logs configuration load errors
func (l *Logger) ConfigError(err error) {
	l.Error("config_error",
		slog.String("error", err.Error()),
	)
}
