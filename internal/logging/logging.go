package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

const (
	appName        = "pathctl"
	defaultLogFile = appName + ".log"
)

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      string
)

// DefaultPath resolves the log file under the XDG state directory, falling back
// to the working directory when that cannot be created.
func DefaultPath() string {
	path, err := xdg.StateFile(filepath.Join(appName, defaultLogFile))
	if err != nil {
		return defaultLogFile
	}
	return path
}

// Error records err in the log file. The terminal belongs to the UI, so
// nothing is written to stdout or stderr unless the log itself fails.
func Error(err error) {
	if err == nil {
		return
	}
	write(func(l zerolog.Logger) {
		l.Error().Err(err).Msg("error")
	})
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace currently records anything.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured entry for event when tracing is enabled.
func Trace(event string, fields map[string]interface{}) {
	if !TraceEnabled() {
		return
	}
	write(func(l zerolog.Logger) {
		l.Debug().Str("event", event).Fields(fields).Msg("")
	})
}

// Configure sets the log destination. Empty values fall back to DefaultPath.
// Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = DefaultPath()
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = DefaultPath()
		return
	}
	logPath = path
}

// Path returns the active log destination.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	if logPath == "" {
		logPath = DefaultPath()
	}
	return logPath
}

func write(emit func(zerolog.Logger)) {
	path := Path()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	defer f.Close()
	emit(zerolog.New(f).With().Timestamp().Logger())
}
