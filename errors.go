// FILE: errors.go
package logix

import (
	"fmt"

	"github.com/pkg/errors"
)

// UsageError indicates a caller programming defect: an operation that
// requires an Active facade was invoked while Uninitialized. Unlike the
// recoverable conditions below, it is surfaced to the caller.
type UsageError struct {
	Op string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("logix: %s requires an initialized facade, call Initialize first", e.Op)
}

// SinkError reports that a sink could not be constructed. The facade logs
// it and omits the sink; the remaining sinks are still built.
type SinkError struct {
	Sink string
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("logix: failed to construct %s sink: %v", e.Sink, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}

// newSinkError wraps err with sink construction context.
func newSinkError(sink string, err error) *SinkError {
	return &SinkError{Sink: sink, Err: err}
}

// ConfigValueError reports a malformed configuration value. It is never
// fatal: the offending value is replaced with its default and the error is
// logged as a warning through the bootstrap diagnostics path.
type ConfigValueError struct {
	Key     string
	Value   string
	Default any
}

func (e *ConfigValueError) Error() string {
	return fmt.Sprintf("logix: invalid value '%s' for %s, using default %v", e.Value, e.Key, e.Default)
}

// IsUsageError reports whether err is (or wraps) a UsageError.
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
