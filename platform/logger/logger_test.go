package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func testLogger(buf *bytes.Buffer) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(buf, nil))}
}

func TestWithLeadIDCarriesAttribute(t *testing.T) {
	var buf bytes.Buffer
	log := testLogger(&buf)

	log.WithLeadID("lead-42").ScoringEvent(0.65, "hot", 3)

	out := buf.String()
	if !strings.Contains(out, "lead_id=lead-42") {
		t.Fatalf("expected lead_id attribute, got %q", out)
	}
	if !strings.Contains(out, "score=0.65") {
		t.Fatalf("expected score attribute, got %q", out)
	}
	if !strings.Contains(out, "tag=hot") {
		t.Fatalf("expected tag attribute, got %q", out)
	}
	if !strings.Contains(out, "signals=3") {
		t.Fatalf("expected signals attribute, got %q", out)
	}
}

func TestConfigErrorIncludesError(t *testing.T) {
	var buf bytes.Buffer
	log := testLogger(&buf)

	log.ConfigError(errors.New("warm threshold above hot"))

	out := buf.String()
	if !strings.Contains(out, "level=ERROR") {
		t.Fatalf("expected error level, got %q", out)
	}
	if !strings.Contains(out, "warm threshold above hot") {
		t.Fatalf("expected error detail, got %q", out)
	}
}

func TestNewDevelopmentUsesTextHandler(t *testing.T) {
	log := New("development")
	if log == nil || log.Logger == nil {
		t.Fatal("expected initialized logger")
	}
	if !log.Enabled(nil, slog.LevelDebug) {
		t.Fatal("expected debug level enabled in development")
	}
}
