package logger

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// captureStdout runs f with os.Stdout redirected to a pipe and returns the output.
func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	f()

	_ = w.Close()
	b, _ := io.ReadAll(r)
	_ = r.Close()
	return string(b)
}

func TestNew_IncludesServiceAndStack(t *testing.T) {
	out := captureStdout(t, func() {
		log := New("travel-devserver", "")
		log.Error().Stack().Err(errors.New("boom")).Msg("something failed")
	})

	line := strings.TrimSpace(out)
	var m map[string]any
	if err := json.Unmarshal([]byte(line), &m); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", line, err)
	}
	if m["service"] != "travel-devserver" {
		t.Fatalf("service field missing: %v", m)
	}
	if m["error"] != "boom" {
		t.Fatalf("error field: %v", m["error"])
	}
	if _, ok := m["stack"]; !ok {
		t.Fatalf("stack missing: %v", m)
	}
}

func TestNew_WritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devserver.log")
	captureStdout(t, func() {
		log := New("svc", path)
		log.Info().Msg("hello file")
	})

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(b), "hello file") {
		t.Fatalf("log file missing record: %s", b)
	}
}

func TestNewConsole_Level(t *testing.T) {
	if got := NewConsole(false, "").GetLevel().String(); got != "info" {
		t.Fatalf("level = %s", got)
	}
	if got := NewConsole(true, "").GetLevel().String(); got != "debug" {
		t.Fatalf("level = %s", got)
	}
}
