// FILE: compat/gnet.go
package compat

import (
	"fmt"
	"os"
	"time"

	"github.com/panjf2000/gnet/v2/pkg/logging"

	"github.com/logix-io/logix"
)

// Interface compliance check against the real gnet contract.
var _ logging.Logger = (*GnetAdapter)(nil)

// GnetAdapter wraps a logix.Logger to implement gnet's logging.Logger
// interface.
type GnetAdapter struct {
	logger       *logix.Logger
	facade       *logix.Facade
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter. The facade is
// used to flush pending records before a fatal exit; pass nil to skip that.
func NewGnetAdapter(logger *logix.Logger, facade *logix.Facade, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
		facade: facade,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior.
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler.
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at debug level with printf-style formatting.
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logger.Debugf(format, args...)
}

// Infof logs at info level with printf-style formatting.
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logger.Infof(format, args...)
}

// Warnf logs at warn level with printf-style formatting.
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logger.Warnf(format, args...)
}

// Errorf logs at error level with printf-style formatting.
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logger.Errorf(format, args...)
}

// Fatalf logs at critical level and triggers the fatal handler.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.Critical(msg)

	// Ensure the record is flushed before exit
	if a.facade != nil {
		_ = a.facade.Flush(100 * time.Millisecond)
	}

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
