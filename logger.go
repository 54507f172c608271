// FILE: logger.go
package logix

import (
	"fmt"
	"time"
)

// Logger is a named emit handle bound to a facade. Handles are cheap and
// safe for concurrent use; the only call that may block is the enqueue
// itself, under queue backpressure. All formatting of the pattern template
// and all sink I/O happen on the worker, never on the caller's stack.
type Logger struct {
	facade *Facade
	name   string
}

// Name returns the logger name carried by every record this handle emits.
func (lg *Logger) Name() string {
	return lg.name
}

// Trace logs a message at trace level.
func (lg *Logger) Trace(args ...any) {
	lg.log(LevelTrace, args)
}

// Debug logs a message at debug level.
func (lg *Logger) Debug(args ...any) {
	lg.log(LevelDebug, args)
}

// Info logs a message at info level.
func (lg *Logger) Info(args ...any) {
	lg.log(LevelInfo, args)
}

// Warn logs a message at warning level.
func (lg *Logger) Warn(args ...any) {
	lg.log(LevelWarn, args)
}

// Error logs a message at error level.
func (lg *Logger) Error(args ...any) {
	lg.log(LevelError, args)
}

// Critical logs a message at critical level.
func (lg *Logger) Critical(args ...any) {
	lg.log(LevelCritical, args)
}

// Tracef logs a printf-formatted message at trace level.
func (lg *Logger) Tracef(format string, args ...any) {
	lg.logf(LevelTrace, format, args)
}

// Debugf logs a printf-formatted message at debug level.
func (lg *Logger) Debugf(format string, args ...any) {
	lg.logf(LevelDebug, format, args)
}

// Infof logs a printf-formatted message at info level.
func (lg *Logger) Infof(format string, args ...any) {
	lg.logf(LevelInfo, format, args)
}

// Warnf logs a printf-formatted message at warning level.
func (lg *Logger) Warnf(format string, args ...any) {
	lg.logf(LevelWarn, format, args)
}

// Errorf logs a printf-formatted message at error level.
func (lg *Logger) Errorf(format string, args ...any) {
	lg.logf(LevelError, format, args)
}

// Criticalf logs a printf-formatted message at critical level.
func (lg *Logger) Criticalf(format string, args ...any) {
	lg.logf(LevelCritical, format, args)
}

// log builds and enqueues one record, subject to the aggregate level filter.
func (lg *Logger) log(level Level, args []any) {
	f := lg.facade
	if !f.state.active.Load() {
		return
	}
	if level >= LevelOff || level < f.level() {
		return
	}
	f.enqueue(Record{
		Time:    time.Now(),
		Level:   level,
		Logger:  lg.name,
		Message: renderArgs(args),
	})
}

func (lg *Logger) logf(level Level, format string, args []any) {
	f := lg.facade
	if !f.state.active.Load() {
		return
	}
	if level >= LevelOff || level < f.level() {
		return
	}
	f.enqueue(Record{
		Time:    time.Now(),
		Level:   level,
		Logger:  lg.name,
		Message: fmt.Sprintf(format, args...),
	})
}
