// FILE: console.go
package logix

import (
	"io"
	"os"

	"github.com/logix-io/logix/formatter"
)

// ANSI escape sequences per level, indexed by Level.
var levelColors = [...]string{
	LevelTrace:    "\x1b[90m",
	LevelDebug:    "\x1b[36m",
	LevelInfo:     "\x1b[32m",
	LevelWarn:     "\x1b[33m",
	LevelError:    "\x1b[31m",
	LevelCritical: "\x1b[1;31m",
	LevelOff:      "",
}

const colorReset = "\x1b[0m"

// ConsoleSink writes rendered records to a terminal stream, colored by level.
// Construction cannot fail; the console sink is the one destination that is
// always available.
type ConsoleSink struct {
	levelGate
	w     io.Writer
	fm    *formatter.Formatter
	color bool
	buf   []byte
}

// ConsoleOption customizes a ConsoleSink.
type ConsoleOption func(*ConsoleSink)

// WithConsoleWriter redirects output to w and disables coloring, since w is
// usually not a terminal. Combine with WithConsoleColor to force colors.
func WithConsoleWriter(w io.Writer) ConsoleOption {
	return func(s *ConsoleSink) {
		s.w = w
		s.color = false
	}
}

// WithConsoleColor forces level coloring on or off.
func WithConsoleColor(enable bool) ConsoleOption {
	return func(s *ConsoleSink) {
		s.color = enable
	}
}

// NewConsoleSink creates a console sink writing to stdout by default.
func NewConsoleSink(cfg SinkConfig, opts ...ConsoleOption) *ConsoleSink {
	s := &ConsoleSink{
		w:     os.Stdout,
		fm:    formatter.New(cfg.Pattern),
		color: true,
		buf:   make([]byte, 0, 256),
	}
	s.SetLevel(cfg.Level)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ConsoleSink) Emit(rec Record) error {
	entry := entryFor(&rec)

	s.buf = s.buf[:0]
	if s.color {
		s.buf = append(s.buf, levelColors[rec.Level]...)
	}
	s.buf = s.fm.Append(s.buf, &entry)
	if s.color {
		s.buf = append(s.buf, colorReset...)
	}
	s.buf = append(s.buf, '\n')

	_, err := s.w.Write(s.buf)
	return err
}

// Flush is a no-op: console writes are unbuffered.
func (s *ConsoleSink) Flush() error { return nil }

func (s *ConsoleSink) Name() string { return "console" }

func (s *ConsoleSink) Close() error { return nil }
