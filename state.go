// FILE: state.go
package logix

import (
	"sync"
	"sync/atomic"
)

// state encapsulates the runtime state of the facade shared between
// producers, the worker, and the lifecycle methods.
type state struct {
	// Active is true between a successful Initialize and the next Shutdown.
	active atomic.Bool

	// ActiveQueue stores chan Record. It always holds a channel: a closed
	// one while Uninitialized, so racing producers panic-and-recover instead
	// of dereferencing nil.
	activeQueue atomic.Value

	flushRequest chan chan struct{} // Worker-serviced flush barrier
	flushMu      sync.Mutex         // Protect concurrent Flush calls

	// Counters surfaced through Stats.
	processed  atomic.Uint64 // Records fully dispatched by the worker
	emitErrors atomic.Uint64 // Per-sink emit failures (record still delivered elsewhere)
	dropped    atomic.Uint64 // Records lost on the abnormal path (emit racing shutdown)
	rotations  atomic.Uint64 // Rotations of sinks from finished lifecycle cycles
}

// Stats is a snapshot of the facade's dispatch counters.
type Stats struct {
	Processed  uint64
	EmitErrors uint64
	Dropped    uint64
	Rotations  uint64
}
