// Package log provides structured logging for the primarray tooling.
//
// Package: log
// Title: primarray Structured Logging
// Description: This package implements a small structured logger with levels,
// persistent context fields, a run identifier, four output formats
// and a timer for measuring operations. It integrates with the core
// error package so structured failures are logged with their code,
// severity and details. The array library itself never logs; the
// benchmark runner and the primbench command do.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-03-02 v0.2.0: Run identifiers, sorted field output, lipgloss console colors;
// dropped async delivery and request/user context
//
// Features:
// - JSON, text, console and logfmt formats with deterministic field order
// - Levels from trace to fatal with filtering
// - Immutable With* derivation: every With call returns a new logger
// - LogError picks the level from the severity of a structured error
// - Timers that log the duration of an operation when stopped
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatConsole).
//		WithName("bench").
//		WithRunID(runID)
//
//	logger.Info("run started", log.Fields{"kinds": 8, "size": 100000})
//
//	timer := logger.StartTimer("reverse")
//	// ... measured work
//	timer.Stop()
package log
