// FILE: builder.go
package logix

// Builder provides a fluent API for building facade configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Facade initialized with the built configuration.
func (b *Builder) Build() (*Facade, error) {
	if b.err != nil {
		return nil, b.err
	}

	f := New()
	if err := f.Initialize(b.cfg); err != nil {
		return nil, err
	}
	return f, nil
}

// Config returns the accumulated configuration without building a facade.
func (b *Builder) Config() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.cfg.Clone(), nil
}

// Modes sets the active sink modes.
func (b *Builder) Modes(modes ...string) *Builder {
	b.cfg.Modes = modes
	return b
}

// Level sets the base level.
func (b *Builder) Level(level Level) *Builder {
	b.cfg.Level = level.String()
	return b
}

// LevelString sets the base level from a string.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	if _, err := ParseLevel(level); err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = level
	return b
}

// Pattern sets the pattern template used by every sink's formatter.
func (b *Builder) Pattern(pattern string) *Builder {
	b.cfg.Pattern = pattern
	return b
}

// FilePath sets the active log file path for the file sink.
func (b *Builder) FilePath(path string) *Builder {
	b.cfg.FilePath = path
	return b
}

// FileSizeMB sets the rotation threshold per file.
func (b *Builder) FileSizeMB(size int64) *Builder {
	b.cfg.FileSizeMB = size
	return b
}

// MaxLogFiles sets the retained file count (1 active + N-1 archives).
func (b *Builder) MaxLogFiles(count int64) *Builder {
	b.cfg.MaxLogFiles = count
	return b
}

// Network sets the UDP sink destination.
func (b *Builder) Network(host string, port int) *Builder {
	b.cfg.NetworkHost = host
	b.cfg.NetworkPort = int64(port)
	return b
}

// UDPFormat sets the network wire format ("json" or "plain").
func (b *Builder) UDPFormat(format string) *Builder {
	b.cfg.UDPFormat = format
	return b
}

// BufferSize sets the queue capacity.
func (b *Builder) BufferSize(size int64) *Builder {
	b.cfg.BufferSize = size
	return b
}

// ConsoleTarget directs the console sink to "stdout" or "stderr".
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// InternalErrorsToStderr toggles bootstrap diagnostics on stderr.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}
