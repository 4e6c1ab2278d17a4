package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// RotatingFile is an io.WriteCloser that appends to a log file and rotates
// it once it passes maxSize bytes. Backups are numbered path.1 (newest)
// through path.N (oldest).
type RotatingFile struct {
	mu sync.Mutex

	path       string
	maxSize    int64
	maxBackups int

	file *os.File
	size int64
}

// NewRotatingFile opens path for appending, creating parent directories as
// needed. maxSize is in bytes; maxBackups is the number of rotated files
// to keep, with 0 meaning the current file is simply truncated on
// rotation.
func NewRotatingFile(path string, maxSize int64, maxBackups int) (*RotatingFile, error) {
	rf := &RotatingFile{
		path:       path,
		maxSize:    maxSize,
		maxBackups: maxBackups,
	}
	if err := rf.open(); err != nil {
		return nil, err
	}
	return rf, nil
}

func (rf *RotatingFile) open() error {
	if err := os.MkdirAll(filepath.Dir(rf.path), 0750); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	// 0600: session tokens may end up in here despite redaction upstream.
	f, err := os.OpenFile(rf.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}

	rf.file = f
	rf.size = info.Size()
	return nil
}

// Write implements io.Writer, rotating first when the write would push the
// file past maxSize.
func (rf *RotatingFile) Write(p []byte) (n int, err error) {
	rf.mu.Lock()
	defer rf.mu.Unlock()

	// A failed rotation leaves no open file; retry the open rather than
	// dropping every subsequent record.
	if rf.file == nil {
		if err := rf.open(); err != nil {
			return 0, err
		}
	}

	if rf.size+int64(len(p)) > rf.maxSize {
		if err := rf.rotate(); err != nil {
			return 0, fmt.Errorf("rotate log: %w", err)
		}
	}

	n, err = rf.file.Write(p)
	rf.size += int64(n)
	return n, err
}

// rotate shifts path.i to path.i+1 for every kept backup, moves the live
// file to path.1, and reopens. Callers hold mu.
func (rf *RotatingFile) rotate() error {
	if rf.file != nil {
		if err := rf.file.Close(); err != nil {
			return err
		}
		rf.file = nil
	}

	if rf.maxBackups == 0 {
		if err := os.Remove(rf.path); err != nil && !os.IsNotExist(err) {
			return err
		}
		return rf.open()
	}

	if err := os.Remove(rf.backupPath(rf.maxBackups)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove oldest backup: %w", err)
	}
	for i := rf.maxBackups - 1; i >= 1; i-- {
		if err := renameIfExists(rf.backupPath(i), rf.backupPath(i+1)); err != nil {
			return fmt.Errorf("shift backup: %w", err)
		}
	}
	if err := renameIfExists(rf.path, rf.backupPath(1)); err != nil {
		return fmt.Errorf("archive current log: %w", err)
	}

	return rf.open()
}

func (rf *RotatingFile) backupPath(i int) string {
	return fmt.Sprintf("%s.%d", rf.path, i)
}

func renameIfExists(from, to string) error {
	if _, err := os.Stat(from); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return os.Rename(from, to)
}

// Close implements io.Closer.
func (rf *RotatingFile) Close() error {
	rf.mu.Lock()
	defer rf.mu.Unlock()

	if rf.file == nil {
		return nil
	}
	err := rf.file.Close()
	rf.file = nil
	return err
}
