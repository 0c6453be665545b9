package logger

import (
	"bytes"
	"strings"
	"testing"
)

// resetLogger resets the logger to default state for test isolation
func resetLogger() {
	Init(Options{})
}

func TestInit_DefaultLevel_Info(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	// Info should be logged
	Info("test info")
	if !strings.Contains(buf.String(), "test info") {
		t.Error("Info message should be logged at default level")
	}

	buf.Reset()

	// Debug should NOT be logged at default level
	Debug("test debug")
	if strings.Contains(buf.String(), "test debug") {
		t.Error("Debug message should not be logged at default level")
	}
}

func TestInit_DebugLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Debug: true, Output: buf})
	defer resetLogger()

	Debug("test debug message")
	if !strings.Contains(buf.String(), "test debug message") {
		t.Error("Debug message should be logged when Debug=true")
	}
}

func TestInit_QuietLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Quiet: true, Output: buf})
	defer resetLogger()

	Info("test info")
	if strings.Contains(buf.String(), "test info") {
		t.Error("Info message should not be logged when Quiet=true")
	}

	Warn("test warn")
	if strings.Contains(buf.String(), "test warn") {
		t.Error("Warn message should not be logged when Quiet=true")
	}

	Error("test error")
	if !strings.Contains(buf.String(), "test error") {
		t.Error("Error message should be logged when Quiet=true")
	}
}

func TestInit_JSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{JSON: true, Output: buf})
	defer resetLogger()

	Info("test message")

	output := buf.String()
	if !strings.Contains(output, "{") || !strings.Contains(output, "}") {
		t.Error("JSON format should produce JSON output")
	}
	if !strings.Contains(output, "test message") {
		t.Error("JSON output should contain the message")
	}
	if !strings.Contains(output, "level") {
		t.Error("JSON output should contain level field")
	}
}

func TestInit_TextFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{JSON: false, Output: buf})
	defer resetLogger()

	Info("test message")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Error("Text output should contain the message")
	}
	if !strings.Contains(strings.ToUpper(output), "INFO") {
		t.Error("Text output should contain level INFO")
	}
}

func TestWith_AddsAttributes(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	With("component", "collapse").Info("attributed message")

	output := buf.String()
	if !strings.Contains(output, "attributed message") {
		t.Error("expected message in output")
	}
	if !strings.Contains(output, "component") || !strings.Contains(output, "collapse") {
		t.Error("expected attribute in output")
	}
}
