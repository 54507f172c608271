// FILE: file.go
package logix

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/logix-io/logix/formatter"
	"github.com/pkg/errors"
)

// RotatingFileSink appends rendered records to an active file and rotates by
// size. Archives carry numeric suffixes: path.1 is the newest archive,
// path.(maxFiles-1) the oldest. Total files on disk never exceed maxFiles.
type RotatingFileSink struct {
	levelGate
	fm       *formatter.Formatter
	path     string
	maxBytes int64
	maxFiles int64

	file      *os.File
	size      int64
	rotations atomic.Uint64
	buf       []byte
}

// NewRotatingFileSink opens (creating if needed) the active file at
// cfg.FilePath, creating the parent directory when missing. Writability is
// verified with a probe write that is truncated away afterwards; any failure
// is a SinkError and the sink is not constructed.
func NewRotatingFileSink(cfg SinkConfig) (*RotatingFileSink, error) {
	if cfg.FilePath == "" {
		return nil, newSinkError("file", errors.New("file path is empty"))
	}
	sizeMB := cfg.FileSizeMB
	if sizeMB <= 0 {
		sizeMB = defaultFileSizeMB
	}
	maxFiles := cfg.MaxLogFiles
	if maxFiles <= 0 {
		maxFiles = defaultMaxLogFiles
	}

	if dir := filepath.Dir(cfg.FilePath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, newSinkError("file", errors.Wrapf(err, "failed to create log directory '%s'", dir))
		}
	}

	file, size, err := openActiveFile(cfg.FilePath)
	if err != nil {
		return nil, newSinkError("file", err)
	}

	s := &RotatingFileSink{
		fm:       formatter.New(cfg.Pattern),
		path:     cfg.FilePath,
		maxBytes: sizeMB * 1024 * 1024,
		maxFiles: maxFiles,
		file:     file,
		size:     size,
		buf:      make([]byte, 0, 256),
	}
	s.SetLevel(cfg.Level)
	return s, nil
}

// openActiveFile opens path for append and verifies it accepts writes. The
// probe bytes are truncated away so the log itself stays clean.
func openActiveFile(path string) (*os.File, int64, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "cannot open '%s' for writing", path)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, 0, errors.Wrapf(err, "cannot stat '%s'", path)
	}
	size := info.Size()

	if _, err := file.Write([]byte("probe\n")); err != nil {
		_ = file.Close()
		return nil, 0, errors.Wrapf(err, "test write to '%s' failed", path)
	}
	if err := file.Truncate(size); err != nil {
		_ = file.Close()
		return nil, 0, errors.Wrapf(err, "cannot truncate probe from '%s'", path)
	}

	return file, size, nil
}

func (s *RotatingFileSink) Emit(rec Record) error {
	entry := entryFor(&rec)
	s.buf = s.buf[:0]
	s.buf = s.fm.Append(s.buf, &entry)
	s.buf = append(s.buf, '\n')

	// Rotate before the write that would cross the size threshold. A single
	// oversized record still goes to the fresh file whole.
	if s.size > 0 && s.size+int64(len(s.buf)) > s.maxBytes {
		if err := s.rotate(); err != nil {
			return err
		}
	}

	n, err := s.file.Write(s.buf)
	s.size += int64(n)
	if err != nil {
		return errors.Wrapf(err, "write to '%s' failed", s.path)
	}
	return nil
}

// rotate closes the active file, shifts archive suffixes upward (deleting
// the archive that would exceed the retention bound), renames the active
// file to suffix .1, and opens a fresh active file.
func (s *RotatingFileSink) rotate() error {
	if err := s.file.Close(); err != nil {
		return errors.Wrapf(err, "close of '%s' for rotation failed", s.path)
	}

	if s.maxFiles == 1 {
		// No archives retained: discard the full file.
		if err := os.Remove(s.path); err != nil {
			return errors.Wrapf(err, "failed to remove '%s' during rotation", s.path)
		}
	} else {
		oldest := s.archivePath(s.maxFiles - 1)
		if _, err := os.Stat(oldest); err == nil {
			if err := os.Remove(oldest); err != nil {
				return errors.Wrapf(err, "failed to delete oldest archive '%s'", oldest)
			}
		}
		for k := s.maxFiles - 2; k >= 1; k-- {
			from := s.archivePath(k)
			if _, err := os.Stat(from); err != nil {
				continue
			}
			if err := os.Rename(from, s.archivePath(k+1)); err != nil {
				return errors.Wrapf(err, "failed to shift archive '%s'", from)
			}
		}
		if err := os.Rename(s.path, s.archivePath(1)); err != nil {
			return errors.Wrapf(err, "failed to archive '%s'", s.path)
		}
	}

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrapf(err, "failed to open new active file '%s'", s.path)
	}
	s.file = file
	s.size = 0
	s.rotations.Add(1)
	return nil
}

func (s *RotatingFileSink) archivePath(k int64) string {
	return fmt.Sprintf("%s.%d", s.path, k)
}

func (s *RotatingFileSink) Flush() error {
	if s.file == nil {
		return nil
	}
	return s.file.Sync()
}

func (s *RotatingFileSink) Name() string { return "file" }

// Rotations returns the number of completed rotations.
func (s *RotatingFileSink) Rotations() uint64 {
	return s.rotations.Load()
}

func (s *RotatingFileSink) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Sync()
	if closeErr := s.file.Close(); err == nil {
		err = closeErr
	}
	s.file = nil
	return err
}
