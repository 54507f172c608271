// FILE: udp.go
package logix

import (
	"encoding/json"
	"net"
	"strconv"

	"github.com/logix-io/logix/formatter"
	"github.com/pkg/errors"
)

// udpDatagram is the JSON wire shape: one object per record, no trailing
// line terminator.
type udpDatagram struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Logger  string `json:"logger"`
	Message string `json:"message"`
}

// UDPSink sends each record as exactly one datagram to a fixed destination.
// Delivery is best-effort fire-and-forget: no fragmentation handling, no
// acknowledgment, no retry. The socket is created lazily on first emit, from
// the worker goroutine.
type UDPSink struct {
	levelGate
	fm   *formatter.Formatter
	addr string
	wire string
	conn net.Conn
}

// NewUDPSink validates the destination and builds the sink. The socket is
// not opened here; an unreachable destination is not a construction error,
// but a missing host or zero port is.
func NewUDPSink(cfg SinkConfig) (*UDPSink, error) {
	if cfg.Host == "" || cfg.Port == 0 {
		return nil, newSinkError("udp", errors.New("invalid configuration: host or port is empty"))
	}
	wire := cfg.WireFormat
	if wire != UDPFormatPlain {
		wire = UDPFormatJSON
	}
	s := &UDPSink{
		fm:   formatter.New(cfg.Pattern),
		addr: net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		wire: wire,
	}
	s.SetLevel(cfg.Level)
	return s, nil
}

func (s *UDPSink) Emit(rec Record) error {
	if s.conn == nil {
		conn, err := net.Dial("udp", s.addr)
		if err != nil {
			return errors.Wrapf(err, "cannot open datagram socket to %s", s.addr)
		}
		s.conn = conn
	}

	entry := entryFor(&rec)
	rendered := s.fm.Render(&entry)

	var payload []byte
	if s.wire == UDPFormatJSON {
		data, err := json.Marshal(udpDatagram{
			Time:    rec.Time.Local().Format(udpTimeLayout),
			Level:   rec.Level.String(),
			Logger:  rec.Logger,
			Message: string(rendered),
		})
		if err != nil {
			return errors.Wrap(err, "failed to encode datagram")
		}
		payload = data
	} else {
		payload = rendered
	}

	if _, err := s.conn.Write(payload); err != nil {
		return errors.Wrapf(err, "datagram send to %s failed", s.addr)
	}
	return nil
}

// Flush is a no-op: the sink holds no buffer.
func (s *UDPSink) Flush() error { return nil }

func (s *UDPSink) Name() string { return "udp" }

func (s *UDPSink) Close() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}
