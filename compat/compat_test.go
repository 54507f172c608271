// FILE: compat/compat_test.go
package compat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logix-io/logix"
)

// newCapturedFacade starts a file-backed facade and returns it with the
// log file path for assertions.
func newCapturedFacade(t *testing.T) (*logix.Facade, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "compat.log")
	f, err := logix.NewBuilder().
		Modes(logix.ModeFile).
		Level(logix.LevelTrace).
		Pattern("[%l] %v").
		FilePath(path).
		ConsoleTarget("stderr").
		InternalErrorsToStderr(false).
		Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Shutdown() })
	return f, path
}

func capturedLines(t *testing.T, f *logix.Facade, path string) []string {
	t.Helper()
	require.NoError(t, f.Flush(time.Second))
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Skip the facade's own initialization notice.
	var lines []string
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		if strings.Contains(line, "logger initialized") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func TestDetectLogLevel(t *testing.T) {
	cases := []struct {
		msg      string
		want     logix.Level
		detected bool
	}{
		{"panic: out of memory", logix.LevelCritical, true},
		{"fatal shutdown", logix.LevelCritical, true},
		{"error serving connection", logix.LevelError, true},
		{"handshake failed", logix.LevelError, true},
		{"warning: slow request", logix.LevelWarn, true},
		{"this API is deprecated", logix.LevelWarn, true},
		{"debug: connection state", logix.LevelDebug, true},
		{"trace dump follows", logix.LevelDebug, true},
		{"listening on :8080", logix.LevelInfo, false},
	}
	for _, tc := range cases {
		got, ok := DetectLogLevel(tc.msg)
		assert.Equalf(t, tc.want, got, "message %q", tc.msg)
		assert.Equalf(t, tc.detected, ok, "message %q", tc.msg)
	}
}

func TestFastHTTPAdapterPrintf(t *testing.T) {
	f, path := newCapturedFacade(t)
	logger, err := f.GetLogger("http")
	require.NoError(t, err)

	a := NewFastHTTPAdapter(logger)
	a.Printf("serving %s", "requests")
	a.Printf("request failed after %d retries", 3)

	lines := capturedLines(t, f, path)
	require.Len(t, lines, 2)
	assert.Equal(t, "[info] serving requests", lines[0])
	assert.Equal(t, "[error] request failed after 3 retries", lines[1])
}

func TestFastHTTPAdapterDefaultLevel(t *testing.T) {
	f, path := newCapturedFacade(t)
	logger, err := f.GetLogger("http")
	require.NoError(t, err)

	a := NewFastHTTPAdapter(logger,
		WithDefaultLevel(logix.LevelWarn),
		WithLevelDetector(nil),
	)
	a.Printf("anything at all")

	lines := capturedLines(t, f, path)
	require.Len(t, lines, 1)
	assert.Equal(t, "[warning] anything at all", lines[0])
}

func TestGnetAdapterLevels(t *testing.T) {
	f, path := newCapturedFacade(t)
	logger, err := f.GetLogger("gnet")
	require.NoError(t, err)

	a := NewGnetAdapter(logger, f)
	a.Debugf("conn %d opened", 1)
	a.Infof("listening")
	a.Warnf("slow consumer")
	a.Errorf("read failed")

	lines := capturedLines(t, f, path)
	require.Len(t, lines, 4)
	assert.Equal(t, "[debug] conn 1 opened", lines[0])
	assert.Equal(t, "[info] listening", lines[1])
	assert.Equal(t, "[warning] slow consumer", lines[2])
	assert.Equal(t, "[error] read failed", lines[3])
}

func TestGnetAdapterFatalf(t *testing.T) {
	f, path := newCapturedFacade(t)
	logger, err := f.GetLogger("gnet")
	require.NoError(t, err)

	var fatalMsg string
	a := NewGnetAdapter(logger, f, WithFatalHandler(func(msg string) {
		fatalMsg = msg
	}))
	a.Fatalf("unrecoverable: %v", "socket gone")

	assert.Equal(t, "unrecoverable: socket gone", fatalMsg)

	lines := capturedLines(t, f, path)
	require.Len(t, lines, 1)
	assert.Equal(t, "[critical] unrecoverable: socket gone", lines[0])
}
