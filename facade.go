// FILE: facade.go
package logix

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Facade is the process-wide access point of the log distribution pipeline.
// It owns the bounded record queue, the background worker, and the sink set,
// and cycles between Uninitialized and Active: Initialize starts the
// pipeline, Shutdown drains and stops it, and the same Facade can then be
// initialized again.
type Facade struct {
	currentConfig atomic.Value // stores *Config
	state         state
	initMu        sync.Mutex
	aggLevel      atomic.Int32

	// Guarded by initMu.
	sinks      []Sink
	workerDone chan struct{}
}

// New creates an Uninitialized facade with default configuration.
func New() *Facade {
	f := &Facade{}
	f.currentConfig.Store(DefaultConfig())
	f.aggLevel.Store(int32(LevelInfo))

	// A closed channel from the start keeps racing producers on the
	// panic-recover path instead of a nil dereference.
	initialQueue := make(chan Record)
	close(initialQueue)
	f.state.activeQueue.Store(initialQueue)
	f.state.flushRequest = make(chan chan struct{}, 1)

	return f
}

// Initialize builds the sink set from cfg, starts the queue and worker, and
// marks the facade Active. It is idempotent: when already Active it logs a
// warning and returns without rebuilding. An unexpected failure while
// building the sink set degrades to a single null sink rather than failing
// the host application.
func (f *Facade) Initialize(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}

	f.initMu.Lock()
	defer f.initMu.Unlock()

	if f.state.active.Load() {
		f.internalLog("warning - already initialized, skipping re-initialization\n")
		return nil
	}

	cfg = cfg.Clone()
	warnings := cfg.normalize()
	f.currentConfig.Store(cfg)
	for _, w := range warnings {
		f.internalLog("warning - %v\n", w)
	}

	sinks := f.buildSinkSet(cfg)
	queue := make(chan Record, cfg.BufferSize)
	done := make(chan struct{})

	f.sinks = sinks
	f.workerDone = done
	f.aggLevel.Store(int32(cfg.baseLevel()))
	f.state.activeQueue.Store(queue)

	go f.process(queue, sinks, done)
	f.state.active.Store(true)

	// Initialization notice through the fresh pipeline itself.
	if !cfg.silent() {
		f.enqueue(Record{
			Time:    time.Now(),
			Level:   LevelInfo,
			Logger:  defaultLoggerName,
			Message: "logger initialized, modes: " + strings.Join(cfg.Modes, ","),
		})
	}
	return nil
}

// InitializeFromEnv builds the configuration from LOG_* environment
// variables and initializes with it. Malformed values are logged and
// defaulted, never fatal.
func (f *Facade) InitializeFromEnv() error {
	cfg, warnings := FromEnv()
	for _, w := range warnings {
		f.internalLog("warning - %v\n", w)
	}
	return f.Initialize(cfg)
}

// buildSinkSet constructs the sinks the mode list asks for. A sink whose
// construction fails is logged and omitted; the remaining sinks are still
// built. A panic anywhere in the build falls back to a lone null sink.
func (f *Facade) buildSinkSet(cfg *Config) (sinks []Sink) {
	defer func() {
		if r := recover(); r != nil {
			f.internalLog("error - unexpected failure building sink set: %v, falling back to null sink\n", r)
			sinks = []Sink{NewNullSink()}
		}
	}()

	if cfg.silent() {
		return []Sink{NewNullSink()}
	}

	base := SinkConfig{Level: cfg.baseLevel(), Pattern: cfg.Pattern}

	// Console sink is always included unless the mode set is {none}.
	var consoleOpts []ConsoleOption
	if cfg.ConsoleTarget == "stderr" {
		consoleOpts = append(consoleOpts, WithConsoleWriter(os.Stderr), WithConsoleColor(true))
	}
	out := []Sink{NewConsoleSink(base, consoleOpts...)}

	for _, mode := range cfg.Modes {
		switch mode {
		case ModeFile:
			if cfg.FilePath == "" {
				f.internalLog("warning - file_path not set for file mode, skipping file sink\n")
				continue
			}
			fileCfg := base
			fileCfg.FilePath = cfg.FilePath
			fileCfg.FileSizeMB = cfg.FileSizeMB
			fileCfg.MaxLogFiles = cfg.MaxLogFiles
			s, err := NewRotatingFileSink(fileCfg)
			if err != nil {
				f.internalLog("error - %v, skipping file sink\n", err)
				continue
			}
			out = append(out, s)

		case ModeNetwork:
			netCfg := base
			netCfg.Host = cfg.NetworkHost
			netCfg.Port = int(cfg.NetworkPort)
			netCfg.WireFormat = cfg.UDPFormat
			s, err := NewUDPSink(netCfg)
			if err != nil {
				f.internalLog("error - %v, skipping network sink\n", err)
				continue
			}
			out = append(out, s)
		}
	}
	return out
}

// GetLogger returns a named emit handle. It fails with a UsageError while
// the facade is Uninitialized.
func (f *Facade) GetLogger(name ...string) (*Logger, error) {
	if !f.state.active.Load() {
		return nil, &UsageError{Op: "GetLogger"}
	}
	loggerName := defaultLoggerName
	if len(name) > 0 && name[0] != "" {
		loggerName = name[0]
	}
	return &Logger{facade: f, name: loggerName}, nil
}

// SetLogLevel applies level uniformly to the aggregate filter and every
// active sink. There is no mechanism to diverge individual sink levels once
// this is called; that is a stated design limitation. Fails with a
// UsageError while Uninitialized.
func (f *Facade) SetLogLevel(level Level) error {
	if !f.state.active.Load() {
		return &UsageError{Op: "SetLogLevel"}
	}

	f.initMu.Lock()
	sinks := f.sinks
	f.initMu.Unlock()

	f.aggLevel.Store(int32(level))
	for _, s := range sinks {
		s.SetLevel(level)
	}

	f.enqueue(Record{
		Time:    time.Now(),
		Level:   LevelInfo,
		Logger:  defaultLoggerName,
		Message: "log level changed to " + level.String(),
	})
	return nil
}

// Shutdown drains the queue, flushes and closes every sink, stops the
// worker, and returns the facade to Uninitialized. It is a synchronous
// barrier: every record accepted before the call is delivered before it
// returns (bounded by the optional timeout, default 5s). Calling Shutdown
// while already Uninitialized is a safe no-op.
func (f *Facade) Shutdown(timeout ...time.Duration) error {
	f.initMu.Lock()
	defer f.initMu.Unlock()

	if !f.state.active.Load() {
		return nil
	}
	f.state.active.Store(false)

	// Swap in a closed channel for late producers, then close the real one
	// to signal the worker to drain and exit.
	queue := f.state.activeQueue.Load().(chan Record)
	closedQueue := make(chan Record)
	close(closedQueue)
	f.state.activeQueue.Store(closedQueue)
	close(queue)

	effectiveTimeout := defaultShutdownTimeout
	if len(timeout) > 0 {
		effectiveTimeout = timeout[0]
	}

	var finalErr error
	select {
	case <-f.workerDone:
	case <-time.After(effectiveTimeout):
		finalErr = multierr.Append(finalErr, fmtErrorf("worker did not drain the queue within %v", effectiveTimeout))
	}

	for _, s := range f.sinks {
		if err := s.Flush(); err != nil {
			finalErr = multierr.Append(finalErr, errors.Wrapf(err, "logix: flush of sink '%s' failed", s.Name()))
		}
		if err := s.Close(); err != nil {
			finalErr = multierr.Append(finalErr, errors.Wrapf(err, "logix: close of sink '%s' failed", s.Name()))
		}
		if rc, ok := s.(rotationCounter); ok {
			f.state.rotations.Add(rc.Rotations())
		}
	}
	f.sinks = nil
	f.workerDone = nil

	return finalErr
}

// Flush blocks until the worker has confirmed a flush of every sink, or the
// timeout elapses.
func (f *Facade) Flush(timeout time.Duration) error {
	f.state.flushMu.Lock()
	defer f.state.flushMu.Unlock()

	if !f.state.active.Load() {
		return &UsageError{Op: "Flush"}
	}

	confirm := make(chan struct{})
	select {
	case f.state.flushRequest <- confirm:
	case <-time.After(minWaitTime):
		return fmtErrorf("failed to send flush request to worker (possible overload)")
	}

	select {
	case <-confirm:
		return nil
	case <-time.After(timeout):
		return fmtErrorf("timeout waiting for flush confirmation (%v)", timeout)
	}
}

// Active reports whether the facade is between Initialize and Shutdown.
func (f *Facade) Active() bool {
	return f.state.active.Load()
}

// Stats returns a snapshot of the dispatch counters.
func (f *Facade) Stats() Stats {
	st := Stats{
		Processed:  f.state.processed.Load(),
		EmitErrors: f.state.emitErrors.Load(),
		Dropped:    f.state.dropped.Load(),
		Rotations:  f.state.rotations.Load(),
	}
	f.initMu.Lock()
	for _, s := range f.sinks {
		if rc, ok := s.(rotationCounter); ok {
			st.Rotations += rc.Rotations()
		}
	}
	f.initMu.Unlock()
	return st
}

// GetConfig returns a copy of the current configuration.
func (f *Facade) GetConfig() *Config {
	return f.getConfig().Clone()
}

// enqueue hands a record to the bounded queue. It blocks under backpressure
// and never drops on a full queue; the only loss path is the recover below,
// taken when a send races a Shutdown that closed the channel.
func (f *Facade) enqueue(rec Record) {
	defer func() {
		if recover() != nil {
			f.state.dropped.Add(1)
		}
	}()

	queue := f.state.activeQueue.Load().(chan Record)
	queue <- rec
}

// level returns the aggregate filter threshold.
func (f *Facade) level() Level {
	return Level(f.aggLevel.Load())
}

// getConfig returns the current configuration (thread-safe).
func (f *Facade) getConfig() *Config {
	return f.currentConfig.Load().(*Config)
}

// internalLog writes internal diagnostics to stderr, if enabled. This is the
// bootstrap path: it must work while the pipeline itself is down.
func (f *Facade) internalLog(format string, args ...any) {
	if !f.getConfig().InternalErrorsToStderr {
		return
	}
	if !strings.HasPrefix(format, "logix: ") {
		format = "logix: " + format
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
