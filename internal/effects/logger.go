package effects

import (
	"fmt"
	"os"
	"time"

	"github.com/clipscript/clipscript/internal/errs"
)

// FileLogger appends timestamped entries to a file opened in append mode,
// matching original_source/cpp/src/builtins/logger.cpp line for line: the
// exact wire format is "[YYYY-MM-DD HH:MM:SS:mmm] : [message]", one line
// per call, flushed immediately.
type FileLogger struct {
	file *os.File
}

// NewFileLogger creates a Logger with no log file open yet; SetLog must be
// called before the first Log.
func NewFileLogger() *FileLogger {
	return &FileLogger{}
}

// SetLog opens (or reopens) path in append mode, closing any previously
// open file first. It returns false rather than an error on failure,
// mirroring the C++ original's set_log.
func (l *FileLogger) SetLog(path string) bool {
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return false
	}
	l.file = f
	return true
}

// Log writes a timestamped line. It raises Runtime if no log file is
// currently open, per spec.md 6.
func (l *FileLogger) Log(message string) error {
	if l.file == nil {
		return errs.Unspanned(errs.Runtime, "No log file initialized. Call setLog() before logging.")
	}
	now := time.Now()
	line := fmt.Sprintf("[%s:%03d] : [%s]\n",
		now.Format("2006-01-02 15:04:05"), now.Nanosecond()/1_000_000, message)
	if _, err := l.file.WriteString(line); err != nil {
		return errs.Unspannedf(errs.Runtime, "failed to write log entry: %s", err)
	}
	return l.file.Sync()
}

// HasLogFile reports whether SetLog has successfully opened a file.
func (l *FileLogger) HasLogFile() bool {
	return l.file != nil
}

// Close releases the underlying file handle, if one is open. The CLI
// entrypoint calls this on every exit path, including Exit, so the handle
// is always released at interpreter teardown (spec.md 5).
func (l *FileLogger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
