// FILE: null.go
package logix

// NullSink discards everything. It is constructed only for the {none} mode
// set and as the degrade-to-silent fallback when building the real sink set
// fails unexpectedly. Its level is pinned to off so no record ever qualifies.
type NullSink struct{}

// NewNullSink creates a NullSink. Construction cannot fail.
func NewNullSink() *NullSink {
	return &NullSink{}
}

func (s *NullSink) Emit(Record) error { return nil }

func (s *NullSink) Flush() error { return nil }

// SetLevel is ignored: the null sink stays silent across uniform level
// changes applied by the facade.
func (s *NullSink) SetLevel(Level) {}

func (s *NullSink) Level() Level { return LevelOff }

func (s *NullSink) Name() string { return "null" }

func (s *NullSink) Close() error { return nil }
