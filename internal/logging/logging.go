// Package logging writes debug lines to a per-run log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mitchellh/go-homedir"
)

var (
	mu     sync.Mutex
	output io.Writer
	opened bool
)

// DefaultDir is where log files go unless SetOutput was called.
const DefaultDir = "~/.tempbar/logs"

// initLogging opens a timestamped log file under DefaultDir.
func initLogging() error {
	if output != nil {
		return nil
	}

	logDir, err := homedir.Expand(DefaultDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, fmt.Sprintf("tempbar_%s.log",
		time.Now().Format("2006-01-02_15-04-05")))

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	output = f
	opened = true
	return nil
}

// SetOutput redirects log lines to w. A nil writer discards them.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	if w == nil {
		w = io.Discard
	}
	output = w
}

// OpenFile sends log lines to the file at path, creating it if needed.
func OpenFile(path string) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	output = f
	opened = true
	return nil
}

// Close closes a log file opened by this package.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if c, ok := output.(io.Closer); ok && opened {
		c.Close()
	}
	output = nil
	opened = false
}

// Debug writes a debug-level message, if a log destination could be opened.
func Debug(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if err := initLogging(); err != nil {
		return
	}
	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(output, "[%s] %s\n", timestamp, msg)
}
