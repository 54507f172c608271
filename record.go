// FILE: record.go
package logix

import (
	"time"
)

// Record is a single log event. It is immutable once enqueued: created by a
// producer call, owned by the queue, consumed by the worker, then discarded
// after delivery to every qualifying sink.
type Record struct {
	Time    time.Time
	Level   Level
	Logger  string
	Message string
}
