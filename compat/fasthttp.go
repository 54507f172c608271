// FILE: compat/fasthttp.go

// Package compat adapts logix emit handles to the logger interfaces of
// third-party frameworks.
package compat

import (
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/logix-io/logix"
)

// Interface compliance check against the real fasthttp contract.
var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// FastHTTPAdapter wraps a logix.Logger to implement fasthttp's Logger
// interface (a single Printf method).
type FastHTTPAdapter struct {
	logger        *logix.Logger
	defaultLevel  logix.Level
	levelDetector func(string) (logix.Level, bool) // Detect log level from message content
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter.
func NewFastHTTPAdapter(logger *logix.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  logix.LevelInfo,
		levelDetector: DetectLogLevel,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior.
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the level used when detection finds nothing.
func WithDefaultLevel(level logix.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content.
func WithLevelDetector(detector func(string) (logix.Level, bool)) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface.
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected, ok := a.levelDetector(msg); ok {
			level = detected
		}
	}

	switch level {
	case logix.LevelTrace:
		a.logger.Trace(msg)
	case logix.LevelDebug:
		a.logger.Debug(msg)
	case logix.LevelWarn:
		a.logger.Warn(msg)
	case logix.LevelError:
		a.logger.Error(msg)
	case logix.LevelCritical:
		a.logger.Critical(msg)
	default:
		a.logger.Info(msg)
	}
}

// DetectLogLevel attempts to detect log level from message content.
func DetectLogLevel(msg string) (logix.Level, bool) {
	msgLower := strings.ToLower(msg)

	if strings.Contains(msgLower, "panic") ||
		strings.Contains(msgLower, "fatal") {
		return logix.LevelCritical, true
	}

	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") {
		return logix.LevelError, true
	}

	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated") {
		return logix.LevelWarn, true
	}

	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return logix.LevelDebug, true
	}

	return logix.LevelInfo, false
}
