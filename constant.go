// FILE: constant.go
package logix

import (
	"time"
)

// Sink mode names accepted in Config.Modes.
const (
	ModeNone    = "none"
	ModeConsole = "console"
	ModeFile    = "file"
	ModeNetwork = "network"
)

// UDP wire formats.
const (
	UDPFormatJSON  = "json"
	UDPFormatPlain = "plain"
)

// Configuration defaults.
const (
	defaultLevel       = "debug"
	defaultPattern     = "%Y-%m-%d %H:%M:%S.%e [%n] [%l] %v"
	defaultFileSizeMB  = 1
	defaultMaxLogFiles = 3
	defaultBufferSize  = 8192
	defaultUDPFormat   = UDPFormatJSON
	defaultConsole     = "stdout"
	defaultLoggerName  = "logix"
)

// Timestamp layout used for the UDP JSON "time" field, millisecond precision.
const udpTimeLayout = "2006-01-02 15:04:05.000"

// Timers.
const (
	// Minimum wait time used throughout the package.
	minWaitTime = 10 * time.Millisecond
	// Default barrier timeout for Shutdown when none is provided.
	defaultShutdownTimeout = 5 * time.Second
)
