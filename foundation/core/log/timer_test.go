// File: timer_test.go
// Title: Performance Timer Tests
// Description: Tests for timer completion, failure, checkpoint and cancel
//              logging with a controlled clock.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02

package log

import (
	"errors"
	"testing"
	"time"
)

// fakeClock advances by step on every call
func fakeClock(start time.Time, step time.Duration) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(step)
		return current
	}
}

func newTestTimer(logger *Logger, operation string) *Timer {
	timer := logger.StartTimer(operation)
	start := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	timer.startTime = start
	timer.now = fakeClock(start, 10*time.Millisecond)
	return timer
}

func TestTimerStop(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)
	timer := newTestTimer(logger, "reverse").WithField("kind", "Int")

	if !timer.IsRunning() {
		t.Fatal("a new timer must be running")
	}
	if got := timer.Stop(); got != 10*time.Millisecond {
		t.Errorf("Stop() = %v, want 10ms", got)
	}
	if timer.IsRunning() {
		t.Error("Stop() must stop the timer")
	}
	if got := timer.Stop(); got != 0 {
		t.Errorf("second Stop() = %v, want 0", got)
	}

	entries := decodeLines(t, buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e["message"] != "reverse completed" || e["level"] != "debug" || e["operation"] != "reverse" || e["kind"] != "Int" {
		t.Errorf("entry = %v", e)
	}
	if e["duration_ms"] != float64(10) {
		t.Errorf("duration_ms = %v", e["duration_ms"])
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)
	timer := newTestTimer(logger, "sort")

	timer.StopWithError(errors.New("unsupported"))

	e := decodeLines(t, buf)[0]
	if e["message"] != "sort failed" || e["level"] != "error" || e["success"] != false || e["error"] != "unsupported" {
		t.Errorf("entry = %v", e)
	}
}

func TestTimerLevelAndCheckpoint(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)
	timer := newTestTimer(logger, "run").WithLevel(LevelInfo)

	timer.Checkpoint("kind done", Field("kind", "Long"))
	timer.Stop()

	entries := decodeLines(t, buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0]["message"] != "run checkpoint: kind done" || entries[0]["kind"] != "Long" {
		t.Errorf("checkpoint entry = %v", entries[0])
	}
	if entries[1]["level"] != "info" {
		t.Errorf("completion level = %v, want info", entries[1]["level"])
	}
}

func TestTimerCancelAndReset(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)
	timer := newTestTimer(logger, "shuffle")

	timer.Cancel()
	timer.Checkpoint("ignored")
	if timer.Stop() != 0 || buf.Len() != 0 {
		t.Error("a cancelled timer must not log")
	}

	timer.Reset()
	if !timer.IsRunning() {
		t.Error("Reset() must restart the timer")
	}
	if timer.Stop() <= 0 {
		t.Error("Stop() after Reset() must report a duration")
	}
}

func TestTimerWithoutLogger(t *testing.T) {
	timer := NewTimer(nil, "noop")
	timer.Checkpoint("x")
	if timer.Stop() < 0 {
		t.Error("Stop() must not report a negative duration")
	}
}
