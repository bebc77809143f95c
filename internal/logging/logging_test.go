package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceWritesJSONWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})

	Trace("ignored.event", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file while tracing disabled, got %v", err)
	}

	SetTraceEnabled(true)
	Trace("filter.append", map[string]interface{}{"query": "ab"})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("decode trace %q: %v", data, err)
	}
	if entry.Event != "filter.append" {
		t.Fatalf("expected filter.append event, got %q", entry.Event)
	}
	if entry.Payload["query"] != "ab" {
		t.Fatalf("expected query payload, got %#v", entry.Payload)
	}
}

func TestErrorAppendsRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(nil)
	Error(errors.New("terminal went away"), "stage", "render")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "terminal went away") {
		t.Fatalf("expected error message in log, got %q", out)
	}
	if !strings.Contains(out, "stage=render") {
		t.Fatalf("expected key/value pair in log, got %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected a single record, got %q", out)
	}
}

func TestConfigureBlankUsesDefault(t *testing.T) {
	Configure("   ")
	if Path() != DefaultPath() {
		t.Fatalf("expected default path %q, got %q", DefaultPath(), Path())
	}
}
