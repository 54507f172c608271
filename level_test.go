// FILE: level_test.go
package logix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelOrdering(t *testing.T) {
	ordered := []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelCritical, LevelOff}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1], ordered[i])
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "trace", LevelTrace.String())
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "warning", LevelWarn.String())
	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "critical", LevelCritical.String())
	assert.Equal(t, "off", LevelOff.String())
	assert.Equal(t, "unknown", Level(42).String())
	assert.Equal(t, "unknown", Level(-1).String())
}

func TestLevelShort(t *testing.T) {
	assert.Equal(t, "T", LevelTrace.Short())
	assert.Equal(t, "W", LevelWarn.Short())
	assert.Equal(t, "C", LevelCritical.Short())
	assert.Equal(t, "?", Level(42).Short())
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"critical", LevelCritical},
		{"off", LevelOff},
		{"  INFO  ", LevelInfo},
		{"Warning", LevelWarn},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		require.NoErrorf(t, err, "input %q", tc.in)
		assert.Equalf(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseLevelInvalid(t *testing.T) {
	for _, in := range []string{"", "verbose", "fatal", "5"} {
		_, err := ParseLevel(in)
		assert.Errorf(t, err, "input %q must not parse", in)
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	for l := LevelTrace; l <= LevelOff; l++ {
		parsed, err := ParseLevel(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, parsed)
	}
}
