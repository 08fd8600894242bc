package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, Options{Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "info", Format: "console"})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	logger.Info("alignment complete", "tokens", 12, "line", "footnote text")

	line := buf.String()
	if !strings.Contains(line, "INFO") {
		t.Errorf("missing level label in %q", line)
	}
	if !strings.Contains(line, "alignment complete") {
		t.Errorf("missing message in %q", line)
	}
	if !strings.Contains(line, "tokens=12") {
		t.Errorf("missing attr in %q", line)
	}
	if !strings.Contains(line, `line="footnote text"`) {
		t.Errorf("spaced value not quoted in %q", line)
	}
}

func TestConsoleLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "warn", Format: "console"})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info line leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestConsoleWithAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Format: "console"})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	logger.With("doc", "abc").WithGroup("search").Info("scored", "page", 3)

	line := buf.String()
	if !strings.Contains(line, "doc=abc") {
		t.Errorf("missing bound attr in %q", line)
	}
	if !strings.Contains(line, "search.page=3") {
		t.Errorf("missing grouped attr in %q", line)
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "debug", Format: "json"})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	logger.Debug("probe", "score", 0.75)

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if payload["msg"] != "probe" {
		t.Errorf("msg = %v", payload["msg"])
	}
	if payload["score"] != 0.75 {
		t.Errorf("score = %v", payload["score"])
	}
}

func TestNopLoggerIsSilent(t *testing.T) {
	logger := NewNop()
	logger.Error("should vanish")
}
