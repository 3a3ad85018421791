package strata

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
	// Must not panic or produce output.
	l.Info("ignored", "key", "value")
}

func TestSetLoggerRoundTrip(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, nil))
	SetLogger(custom)
	if Logger() != custom {
		t.Error("Logger() did not return the configured logger")
	}

	Logger().Info("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Error("configured logger received no output")
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent default")
	}
}
