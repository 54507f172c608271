// FILE: default.go
package logix

import (
	"time"
)

// Package-level facade for applications that want a single process-wide
// handle. Its lifecycle rules are the same as any explicitly constructed
// Facade: Initialize before use, Shutdown when done, restartable.
var defaultFacade = New()

// Default returns the package-level facade, for call sites that prefer
// injecting an instance.
func Default() *Facade {
	return defaultFacade
}

// Initialize initializes the package-level facade.
func Initialize(cfg *Config) error {
	return defaultFacade.Initialize(cfg)
}

// InitializeFromEnv initializes the package-level facade from LOG_*
// environment variables.
func InitializeFromEnv() error {
	return defaultFacade.InitializeFromEnv()
}

// GetLogger returns a named emit handle from the package-level facade.
func GetLogger(name ...string) (*Logger, error) {
	return defaultFacade.GetLogger(name...)
}

// SetLogLevel changes the level of the package-level facade and all its
// sinks uniformly.
func SetLogLevel(level Level) error {
	return defaultFacade.SetLogLevel(level)
}

// Shutdown drains and stops the package-level facade.
func Shutdown(timeout ...time.Duration) error {
	return defaultFacade.Shutdown(timeout...)
}

// Flush blocks until the package-level facade has flushed every sink.
func Flush(timeout time.Duration) error {
	return defaultFacade.Flush(timeout)
}
