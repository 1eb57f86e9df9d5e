package logger

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log, err := NewWithOptions(Options{Level: "info", Output: &buf})
	require.NoError(t, err)

	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")
	log.Info(ctx, "formatted message: %s %d", "test", 123)

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.Contains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
	assert.Contains(t, out, "formatted message: test 123")
}

func TestDebugLevelReachesHandler(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithOptions(Options{Level: "debug", Output: &buf})
	require.NoError(t, err)

	log.Debug(context.Background(), "state %s -> %s", "start", "configured")
	assert.Contains(t, buf.String(), "state start -> configured")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestShouldLog(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"debug logs at debug level", "debug", "debug", true},
		{"info logs at debug level", "debug", "info", true},
		{"debug doesn't log at info level", "info", "debug", false},
		{"info logs at info level", "info", "info", true},
		{"error always logs", "debug", "error", true},
		{"info doesn't log at warning level", "warning", "info", false},
		{"warn logs at warning level", "warning", "warn", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.configLevel).(*implLogger)
			result := log.shouldLog(tt.logLevel)
			if result != tt.shouldLog {
				t.Errorf("shouldLog() = %v, want %v", result, tt.shouldLog)
			}
		})
	}
}

func TestWithAddsAttribute(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithOptions(Options{Level: "debug", Format: "json", Output: &buf})
	require.NoError(t, err)

	log.With("run", "abc123").Info(context.Background(), "hello")
	assert.Contains(t, buf.String(), `"run":"abc123"`)
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestLogFileReceivesRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "transcribe.log")
	var buf bytes.Buffer
	log, err := NewWithOptions(Options{Level: "info", Output: &buf, File: path})
	require.NoError(t, err)

	log.Info(context.Background(), "written to %s", "file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "written to file"))
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := NewWithOptions(Options{Format: "xml"})
	assert.Error(t, err)
}
