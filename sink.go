// FILE: sink.go
package logix

import (
	"sync/atomic"

	"github.com/logix-io/logix/formatter"
)

// Sink is an independent log output destination with its own level filter
// and formatter. Emit and Flush are called only from the worker goroutine;
// SetLevel may be called concurrently from any goroutine.
type Sink interface {
	// Emit formats and writes one record.
	Emit(rec Record) error
	// Flush forces any buffered output to its destination.
	Flush() error
	// SetLevel updates the sink's own filter threshold.
	SetLevel(level Level)
	// Level returns the current filter threshold.
	Level() Level
	// Name identifies the sink in diagnostics.
	Name() string
	// Close releases the sink's resources. Called once, at shutdown.
	Close() error
}

// SinkConfig carries the per-sink slice of the process configuration.
type SinkConfig struct {
	Level   Level
	Pattern string

	// File sink
	FilePath    string
	FileSizeMB  int64
	MaxLogFiles int64

	// Network sink
	Host       string
	Port       int
	WireFormat string // "json" or "plain"
}

// levelGate is the atomic level filter embedded by every concrete sink.
type levelGate struct {
	level atomic.Int32
}

func (g *levelGate) SetLevel(level Level) {
	g.level.Store(int32(level))
}

func (g *levelGate) Level() Level {
	return Level(g.level.Load())
}

// entryFor builds the formatter view of a record.
func entryFor(rec *Record) formatter.Entry {
	return formatter.Entry{
		Time:       rec.Time,
		Level:      rec.Level.String(),
		LevelShort: rec.Level.Short(),
		Logger:     rec.Logger,
		Message:    rec.Message,
	}
}

// rotationCounter is implemented by sinks that rotate files; the facade uses
// it to aggregate rotation statistics.
type rotationCounter interface {
	Rotations() uint64
}
