package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const defaultLogName = "sdmenu.log"

var (
	traceMu      sync.Mutex
	traceEnabled bool
	logPath      = DefaultPath()
)

// DefaultPath returns the log location used when none is configured. The
// interactive surface owns stderr, so logs always go to a file.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), defaultLogName)
}

// Path reports the current log destination.
func Path() string {
	traceMu.Lock()
	defer traceMu.Unlock()
	return logPath
}

// Error appends err to the log file as a timestamped error record.
func Error(err error, keyvals ...interface{}) {
	if err == nil {
		return
	}

	f, ferr := os.OpenFile(Path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if ferr != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", ferr)
		return
	}
	defer f.Close()

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "sdmenu",
	})
	logger.Error(err, keyvals...)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	traceMu.Lock()
	traceEnabled = enabled
	traceMu.Unlock()
}

// TraceEnabled reports whether Trace currently writes entries.
func TraceEnabled() bool {
	traceMu.Lock()
	defer traceMu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the log when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}

	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}

	f, err := os.OpenFile(Path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	_ = json.NewEncoder(f).Encode(entry)
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	traceMu.Lock()
	defer traceMu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = DefaultPath()
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logPath = DefaultPath()
		return
	}
	logPath = path
}
