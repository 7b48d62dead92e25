// File: format_test.go
// Title: Log Format Tests
// Description: Tests for the JSON, text, console and logfmt formatters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	perror "github.com/msto63/primarray/foundation/core/error"
)

func testEntry() *Entry {
	entry := NewEntry(LevelInfo, "round finished")
	entry.Timestamp = time.Date(2025, 3, 2, 10, 30, 0, 0, time.UTC)
	entry.Logger = "bench"
	entry.RunID = "run-1"
	entry.Fields["kind"] = "Int"
	entry.Fields["size"] = 1000
	return entry
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatText, FormatConsole, FormatLogfmt} {
		got, err := ParseFormat(strings.ToUpper(f.String()))
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %v, %v", f, got, err)
		}
	}
	if _, err := ParseFormat("xml"); !perror.HasCode(err, perror.CodeInvalidInput) {
		t.Errorf("ParseFormat(xml) error = %v", err)
	}
}

func TestJSONFormatter(t *testing.T) {
	entry := testEntry()
	entry.Duration = 1500 * time.Microsecond
	entry.Error = perror.New("boom").WithCode(perror.CodeInternal)

	out, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasSuffix(string(out), "\n") {
		t.Error("JSON output must end with a newline")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(out, &data); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}

	want := map[string]interface{}{
		"timestamp":   "2025-03-02T10:30:00Z",
		"level":       "info",
		"message":     "round finished",
		"logger":      "bench",
		"run_id":      "run-1",
		"kind":        "Int",
		"size":        float64(1000),
		"error":       "boom",
		"duration_ms": 1.5,
	}
	for k, v := range want {
		if data[k] != v {
			t.Errorf("%s = %v, want %v", k, data[k], v)
		}
	}
	details, ok := data["error_details"].(map[string]interface{})
	if !ok || details["code"] != string(perror.CodeInternal) {
		t.Errorf("error_details = %v", data["error_details"])
	}
}

func TestJSONFormatterReservedKeys(t *testing.T) {
	entry := testEntry()
	entry.Fields["level"] = "spoofed"

	out, _ := NewJSONFormatter().Format(entry)
	var data map[string]interface{}
	_ = json.Unmarshal(out, &data)
	if data["level"] != "info" {
		t.Errorf("level = %v, standard keys must win over fields", data["level"])
	}
}

func TestTextFormatter(t *testing.T) {
	entry := testEntry()
	entry.Error = errors.New("disk full")

	out, err := NewTextFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := `10:30:00 [INF] {bench} (run=run-1) round finished [kind=Int size=1000] error="disk full"` + "\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}

	f := NewTextFormatter()
	f.DisableTimestamp = true
	out, _ = f.Format(NewEntry(LevelWarn, "slow"))
	if string(out) != "[WRN] slow\n" {
		t.Errorf("Format() without timestamp = %q", out)
	}
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableColors = true
	f.DisableTimestamp = true

	out, err := f.Format(NewEntry(LevelError, "failed"))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if string(out) != "[ERR] failed\n" {
		t.Errorf("Format() = %q", out)
	}

	colored, _ := NewConsoleFormatter().Format(NewEntry(LevelError, "failed"))
	if !strings.Contains(string(colored), "failed") || !strings.Contains(string(colored), "ERR") {
		t.Errorf("colored output lost content: %q", colored)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	entry := testEntry()
	entry.Duration = 2 * time.Millisecond

	out, err := NewLogfmtFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := `timestamp=2025-03-02T10:30:00Z level=info message="round finished" logger=bench run_id=run-1 kind="Int" size=1000 duration_ms=2.000` + "\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestGetFormatter(t *testing.T) {
	if _, ok := GetFormatter(FormatLogfmt).(*LogfmtFormatter); !ok {
		t.Error("GetFormatter(logfmt) returned the wrong type")
	}
	if _, ok := GetFormatter(Format(99)).(*JSONFormatter); !ok {
		t.Error("unknown formats must fall back to JSON")
	}
}
