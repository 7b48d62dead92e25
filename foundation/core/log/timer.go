// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation and logs it when the
//              timer stops.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2025-03-02 v0.2.0: Durations travel on the entry; injectable clock for tests

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
	now       func() time.Time
}

// NewTimer creates and starts a timer for operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
		now:       time.Now,
	}
}

// WithLevel sets the log level for the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.startTime)
}

// Stop stops the timer, logs "<operation> completed" and returns the elapsed
// time. Stopping twice returns 0 and logs nothing.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	if t.logger != nil {
		fields := t.fields.Merge(Fields{"operation": t.operation})
		t.logger.log(t.level, t.operation+" completed", nil, elapsed, fields)
	}
	return elapsed
}

// StopWithError stops the timer and logs "<operation> failed" at error level
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	if t.logger != nil {
		fields := t.fields.Merge(Fields{"operation": t.operation, "success": false})
		t.logger.log(LevelError, t.operation+" failed", err, elapsed, fields)
	}
	return elapsed
}

// Checkpoint logs an intermediate timing at debug level
func (t *Timer) Checkpoint(name string, fields ...Fields) {
	if t.stopped || t.logger == nil {
		return
	}
	elapsed := t.Elapsed()
	combined := t.fields.Merge(Fields{
		"operation":  t.operation,
		"checkpoint": name,
		"elapsed_ms": durationMillis(elapsed),
	})
	for _, f := range fields {
		combined = combined.Merge(f)
	}
	t.logger.Debug(t.operation+" checkpoint: "+name, combined)
}

// Cancel stops the timer without logging
func (t *Timer) Cancel() {
	t.stopped = true
}

// IsRunning returns true if the timer is still running
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

// Reset restarts the timer from now
func (t *Timer) Reset() {
	t.startTime = t.now()
	t.stopped = false
}
