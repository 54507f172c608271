// FILE: level.go
package logix

import "strings"

// Level is a log severity. Records carry one, sinks and the aggregate filter
// hold one as a threshold: a record passes a threshold when its level is
// greater than or equal to it. LevelOff is a pure threshold value; no record
// is ever emitted at it.
type Level int32

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	LevelOff
)

var levelNames = [...]string{
	LevelTrace:    "trace",
	LevelDebug:    "debug",
	LevelInfo:     "info",
	LevelWarn:     "warning",
	LevelError:    "error",
	LevelCritical: "critical",
	LevelOff:      "off",
}

var levelShortNames = [...]string{
	LevelTrace:    "T",
	LevelDebug:    "D",
	LevelInfo:     "I",
	LevelWarn:     "W",
	LevelError:    "E",
	LevelCritical: "C",
	LevelOff:      "O",
}

// String returns the lowercase level name.
func (l Level) String() string {
	if l < LevelTrace || l > LevelOff {
		return "unknown"
	}
	return levelNames[l]
}

// Short returns the single-letter level tag used by the %L pattern token.
func (l Level) Short() string {
	if l < LevelTrace || l > LevelOff {
		return "?"
	}
	return levelShortNames[l]
}

// ParseLevel converts a level name to its Level. Matching is
// case-insensitive and accepts both "warn" and "warning".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "critical":
		return LevelCritical, nil
	case "off":
		return LevelOff, nil
	}
	return LevelInfo, fmtErrorf("invalid log level '%s'", s)
}
