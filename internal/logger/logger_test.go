package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"verbose", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInitWithWriterFiltersByLevel(t *testing.T) {
	t.Cleanup(func() { Logger = nil })
	var buf bytes.Buffer
	InitWithWriter(&buf, "info", false)

	Debug("hidden message")
	Info("shown message", "path", "/tmp")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("debug record written at info level: %s", out)
	}
	if !strings.Contains(out, "shown message") || !strings.Contains(out, "path=/tmp") {
		t.Errorf("info record missing: %s", out)
	}
}

func TestInitWithWriterJSON(t *testing.T) {
	t.Cleanup(func() { Logger = nil })
	var buf bytes.Buffer
	InitWithWriter(&buf, "debug", true)

	Warn("skipping", "path", "/x")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if record["msg"] != "skipping" || record["path"] != "/x" || record["level"] != "WARN" {
		t.Errorf("record = %v", record)
	}
}

func TestHelpersWithoutInit(t *testing.T) {
	Logger = nil
	// must not panic before Init
	Debug("a")
	Info("b")
	Warn("c")
	Error("d")
	if err := Sync(); err != nil {
		t.Error(err)
	}
	if err := Close(); err != nil {
		t.Error(err)
	}
}
