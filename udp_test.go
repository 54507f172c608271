// FILE: udp_test.go
package logix

import (
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listenUDP opens a loopback datagram listener and returns it with its port.
func listenUDP(t *testing.T) (net.PacketConn, int) {
	t.Helper()
	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn, conn.LocalAddr().(*net.UDPAddr).Port
}

// readDatagram blocks for one datagram with a deadline.
func readDatagram(t *testing.T, conn net.PacketConn) []byte {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 64*1024)
	n, _, err := conn.ReadFrom(buf)
	require.NoError(t, err)
	return buf[:n]
}

func TestUDPSinkConstructionErrors(t *testing.T) {
	var se *SinkError

	_, err := NewUDPSink(SinkConfig{Port: 9999})
	require.Error(t, err)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "udp", se.Sink)

	_, err = NewUDPSink(SinkConfig{Host: "127.0.0.1"})
	require.Error(t, err)
	require.ErrorAs(t, err, &se)
}

func TestUDPSinkJSONDatagram(t *testing.T) {
	listener, port := listenUDP(t)

	s, err := NewUDPSink(SinkConfig{
		Level:      LevelTrace,
		Pattern:    "%v",
		Host:       "127.0.0.1",
		Port:       port,
		WireFormat: UDPFormatJSON,
	})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Emit(testRecord(LevelInfo, "hello")))

	var dg udpDatagram
	require.NoError(t, json.Unmarshal(readDatagram(t, listener), &dg))
	assert.Equal(t, "info", dg.Level)
	assert.Equal(t, "test", dg.Logger)
	assert.Equal(t, "hello", dg.Message)

	parsed, err := time.ParseInLocation(udpTimeLayout, dg.Time, time.Local)
	require.NoError(t, err, "time field must match the wire layout")
	assert.WithinDuration(t, testRecord(LevelInfo, "").Time, parsed, time.Millisecond)
}

func TestUDPSinkOneDatagramPerRecord(t *testing.T) {
	listener, port := listenUDP(t)

	s, err := NewUDPSink(SinkConfig{
		Level:   LevelTrace,
		Pattern: "%v",
		Host:    "127.0.0.1",
		Port:    port,
	})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Emit(testRecord(LevelWarn, "one")))
	require.NoError(t, s.Emit(testRecord(LevelError, "two")))

	var first, second udpDatagram
	require.NoError(t, json.Unmarshal(readDatagram(t, listener), &first))
	require.NoError(t, json.Unmarshal(readDatagram(t, listener), &second))
	assert.Equal(t, "one", first.Message)
	assert.Equal(t, "warning", first.Level)
	assert.Equal(t, "two", second.Message)
	assert.Equal(t, "error", second.Level)
}

func TestUDPSinkPlainDatagram(t *testing.T) {
	listener, port := listenUDP(t)

	s, err := NewUDPSink(SinkConfig{
		Level:      LevelTrace,
		Pattern:    "[%L] %v",
		Host:       "127.0.0.1",
		Port:       port,
		WireFormat: UDPFormatPlain,
	})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Emit(testRecord(LevelCritical, "meltdown")))

	assert.Equal(t, "[C] meltdown", string(readDatagram(t, listener)))
}

func TestUDPSinkUnknownFormatFallsBackToJSON(t *testing.T) {
	s, err := NewUDPSink(SinkConfig{Host: "127.0.0.1", Port: 1, WireFormat: "xml"})
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, UDPFormatJSON, s.wire)
}

func TestUDPSinkUnresolvableDestination(t *testing.T) {
	s, err := NewUDPSink(SinkConfig{Host: "host.invalid", Port: 9999})
	require.NoError(t, err, "an unreachable destination is not a construction error")
	defer s.Close()

	// The failure surfaces on emit instead, when the socket is dialed.
	err = s.Emit(testRecord(LevelInfo, "x"))
	assert.Error(t, err)
}
