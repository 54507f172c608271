// FILE: processor.go
package logix

// process is the worker loop, running in its own goroutine between
// Initialize and Shutdown. It is the single consumer of the queue: records
// are dispatched in FIFO order, and when the queue is closed every buffered
// record is drained and a final flush performed before exit.
func (f *Facade) process(queue <-chan Record, sinks []Sink, done chan struct{}) {
	defer close(done)

	for {
		select {
		case rec, ok := <-queue:
			if !ok {
				// Queue closed: buffered records have all been delivered
				// (a closed channel yields its backlog before !ok).
				f.flushAll(sinks)
				return
			}
			f.dispatch(sinks, rec)

		case confirm := <-f.state.flushRequest:
			f.flushAll(sinks)
			close(confirm)
		}
	}
}

// dispatch fans one record out to every sink passing its level filter.
func (f *Facade) dispatch(sinks []Sink, rec Record) {
	for _, s := range sinks {
		if rec.Level < s.Level() {
			continue
		}
		f.emitTo(s, rec)
	}
	f.state.processed.Add(1)
}

// emitTo delivers a record to one sink in isolation: an error or panic here
// must not prevent delivery to the remaining sinks for the same record.
func (f *Facade) emitTo(s Sink, rec Record) {
	defer func() {
		if r := recover(); r != nil {
			f.state.emitErrors.Add(1)
			f.internalLog("error - sink '%s' panicked during emit: %v\n", s.Name(), r)
		}
	}()

	if err := s.Emit(rec); err != nil {
		f.state.emitErrors.Add(1)
		f.internalLog("error - sink '%s' emit failed: %v\n", s.Name(), err)
	}
}

// flushAll flushes every sink, reporting failures through diagnostics.
func (f *Facade) flushAll(sinks []Sink) {
	for _, s := range sinks {
		if err := s.Flush(); err != nil {
			f.internalLog("warning - sink '%s' flush failed: %v\n", s.Name(), err)
		}
	}
}
