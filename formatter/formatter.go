// FILE: formatter/formatter.go

// Package formatter renders log entries to text via pattern templates.
// Patterns use percent tokens: %Y-%m-%d date parts, %H:%M:%S.%e time parts
// with millisecond precision, %n logger name, %l level name, %L short level
// name, %v message body, and %% for a literal percent. Unknown tokens pass
// through verbatim.
package formatter

import (
	"strconv"
	"time"
)

// DefaultPattern matches the facade's default output shape.
const DefaultPattern = "%Y-%m-%d %H:%M:%S.%e [%n] [%l] %v"

// Entry is the renderable view of a log record.
type Entry struct {
	Time       time.Time
	Level      string
	LevelShort string
	Logger     string
	Message    string
}

// segment is one compiled pattern piece: either a literal or a token writer.
type segment struct {
	literal string
	write   func(buf []byte, e *Entry) []byte
}

// Formatter is a compiled pattern template. A Formatter is owned by exactly
// one sink and reuses its buffer across Render calls; it is not safe for
// concurrent use.
type Formatter struct {
	segs []segment
	buf  []byte
}

// New compiles pattern into a Formatter. An empty pattern compiles to
// DefaultPattern.
func New(pattern string) *Formatter {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return &Formatter{
		segs: compile(pattern),
		buf:  make([]byte, 0, 256),
	}
}

// Render formats e per the compiled pattern. The returned slice is reused by
// the next Render call; copy it if it must outlive the call.
func (f *Formatter) Render(e *Entry) []byte {
	f.buf = f.buf[:0]
	f.buf = f.Append(f.buf, e)
	return f.buf
}

// Append renders e into buf and returns the extended slice.
func (f *Formatter) Append(buf []byte, e *Entry) []byte {
	for i := range f.segs {
		seg := &f.segs[i]
		if seg.write != nil {
			buf = seg.write(buf, e)
		} else {
			buf = append(buf, seg.literal...)
		}
	}
	return buf
}

// compile splits pattern into literal and token segments.
func compile(pattern string) []segment {
	var segs []segment
	lit := make([]byte, 0, len(pattern))

	flushLiteral := func() {
		if len(lit) > 0 {
			segs = append(segs, segment{literal: string(lit)})
			lit = lit[:0]
		}
	}

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' || i+1 >= len(pattern) {
			lit = append(lit, c)
			continue
		}
		i++
		tok := tokenWriter(pattern[i])
		if tok == nil {
			// Unknown token passes through verbatim
			lit = append(lit, '%', pattern[i])
			continue
		}
		flushLiteral()
		segs = append(segs, segment{write: tok})
	}
	flushLiteral()
	return segs
}

// tokenWriter maps a token character to its writer, nil when unsupported.
func tokenWriter(c byte) func(buf []byte, e *Entry) []byte {
	switch c {
	case 'Y':
		return func(buf []byte, e *Entry) []byte {
			return appendPadded(buf, e.Time.Year(), 4)
		}
	case 'm':
		return func(buf []byte, e *Entry) []byte {
			return appendPadded(buf, int(e.Time.Month()), 2)
		}
	case 'd':
		return func(buf []byte, e *Entry) []byte {
			return appendPadded(buf, e.Time.Day(), 2)
		}
	case 'H':
		return func(buf []byte, e *Entry) []byte {
			return appendPadded(buf, e.Time.Hour(), 2)
		}
	case 'M':
		return func(buf []byte, e *Entry) []byte {
			return appendPadded(buf, e.Time.Minute(), 2)
		}
	case 'S':
		return func(buf []byte, e *Entry) []byte {
			return appendPadded(buf, e.Time.Second(), 2)
		}
	case 'e':
		return func(buf []byte, e *Entry) []byte {
			return appendPadded(buf, e.Time.Nanosecond()/int(time.Millisecond), 3)
		}
	case 'n':
		return func(buf []byte, e *Entry) []byte {
			return append(buf, e.Logger...)
		}
	case 'l':
		return func(buf []byte, e *Entry) []byte {
			return append(buf, e.Level...)
		}
	case 'L':
		return func(buf []byte, e *Entry) []byte {
			return append(buf, e.LevelShort...)
		}
	case 'v':
		return func(buf []byte, e *Entry) []byte {
			return append(buf, e.Message...)
		}
	case '%':
		return func(buf []byte, _ *Entry) []byte {
			return append(buf, '%')
		}
	default:
		return nil
	}
}

// appendPadded appends n as a zero-padded decimal of the given width.
func appendPadded(buf []byte, n, width int) []byte {
	s := strconv.Itoa(n)
	for pad := width - len(s); pad > 0; pad-- {
		buf = append(buf, '0')
	}
	return append(buf, s...)
}
