package logging

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{in: "debug", want: zapcore.DebugLevel},
		{in: " WARN ", want: zapcore.WarnLevel},
		{in: "warning", want: zapcore.WarnLevel},
		{in: "error", want: zapcore.ErrorLevel},
		{in: "info", want: zapcore.InfoLevel},
		{in: "", want: zapcore.InfoLevel},
		{in: "loud", want: zapcore.InfoLevel},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			if got := ParseLevel(tc.in); got != tc.want {
				t.Fatalf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNewWithWriterEmitsJSONFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewWithWriter("info", FormatJSON, &buf)
	logger.Info("request served", zap.String("path", "/up"), zap.Int("status", 200))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["msg"] != "request served" {
		t.Fatalf("msg = %v, want %q", entry["msg"], "request served")
	}
	if entry["path"] != "/up" {
		t.Fatalf("path = %v, want %q", entry["path"], "/up")
	}
	if entry["level"] != "info" {
		t.Fatalf("level = %v, want %q", entry["level"], "info")
	}
}

func TestNewWithWriterFiltersBelowLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewWithWriter("warn", FormatJSON, &buf)
	logger.Info("hidden")
	logger.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("log output = %q, want info entry filtered", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("log output = %q, want warn entry", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{Format: "xml"}); err == nil {
		t.Fatal("expected unsupported format error")
	}
}

func TestNewWritesToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "web.log")
	logger, err := New(Config{Level: "debug", Format: FormatConsole, Output: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Debug("to file")
	if err := logger.Sync(); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
}
