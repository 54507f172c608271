// FILE: utility_test.go
package logix

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestRenderArgs(t *testing.T) {
	cases := []struct {
		name string
		args []any
		want string
	}{
		{"single string fast path", []any{"hello"}, "hello"},
		{"mixed primitives", []any{"count:", 42, true}, "count: 42 true"},
		{"integers", []any{int64(-7), uint(9)}, "-7 9"},
		{"floats", []any{3.14}, "3.14"},
		{"nil", []any{nil}, "nil"},
		{"error value", []any{errors.New("broken pipe")}, "broken pipe"},
		{"empty", nil, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, renderArgs(tc.args))
		})
	}
}

func TestRenderArgsTime(t *testing.T) {
	ts := time.Date(2025, time.March, 7, 9, 4, 5, 0, time.UTC)
	assert.Equal(t, "2025-03-07T09:04:05Z", renderArgs([]any{ts}))
}

func TestRenderArgsStringer(t *testing.T) {
	assert.Equal(t, "level: warning", renderArgs([]any{"level:", LevelWarn}))
}

func TestRenderArgsStruct(t *testing.T) {
	type point struct {
		X int
		Y int
	}
	out := renderArgs([]any{point{X: 1, Y: 2}})
	assert.Contains(t, out, "X")
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "Y")
	assert.Contains(t, out, "2")
}

func TestFmtErrorfPrefix(t *testing.T) {
	err := fmtErrorf("something failed: %d", 7)
	assert.Equal(t, "logix: something failed: 7", err.Error())

	// Already-prefixed messages are not doubled.
	err = fmtErrorf("logix: direct")
	assert.Equal(t, "logix: direct", err.Error())
}
