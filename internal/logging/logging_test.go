package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func configureTemp(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "pathctl.log")
	Configure(path)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		mu.Lock()
		logPath = ""
		mu.Unlock()
	})
	return path
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := configureTemp(t)
	SetTraceEnabled(false)
	Trace("list.move", map[string]interface{}{"selected": 1})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file while tracing is disabled, got %v", err)
	}
}

func TestTraceWritesJSONLine(t *testing.T) {
	path := configureTemp(t)
	SetTraceEnabled(true)
	Trace("list.insert", map[string]interface{}{"path": "/opt/bin", "index": 2})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", data, err)
	}
	if entry["event"] != "list.insert" {
		t.Fatalf("expected event list.insert, got %v", entry["event"])
	}
	if entry["path"] != "/opt/bin" {
		t.Fatalf("expected path field, got %v", entry["path"])
	}
	if _, ok := entry["time"]; !ok {
		t.Fatalf("expected timestamp in entry %v", entry)
	}
}

func TestErrorAlwaysWrites(t *testing.T) {
	path := configureTemp(t)
	Error(nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected nil error to be ignored")
	}
	Error(errors.New("boom"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "boom") {
		t.Fatalf("expected error text in log, got %q", data)
	}
}

func TestConfigureFallsBackWhenDirectoryCannotBeCreated(t *testing.T) {
	configureTemp(t)
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	Configure(filepath.Join(blocker, "sub", "pathctl.log"))
	if got := Path(); strings.HasPrefix(got, blocker) {
		t.Fatalf("expected fallback path, got %q", got)
	}
}
