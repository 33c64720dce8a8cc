package logger

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileSink is a buffered log file that flushes periodically and on Sync.
// It satisfies zapcore.WriteSyncer.
type FileSink struct {
	mu     sync.Mutex
	writer *bufio.Writer
	file   *os.File
	ticker *time.Ticker
	done   chan struct{}
	closed bool

	// Stats
	writes  uint64
	flushes uint64
}

// NewFileSink opens path for appending, creating parent directories, and
// starts a background flush every flushInterval.
func NewFileSink(path string, flushInterval time.Duration) (*FileSink, error) {
	if flushInterval <= 0 {
		return nil, fmt.Errorf("flush interval must be positive, got %v", flushInterval)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	fs := &FileSink{
		writer: bufio.NewWriter(file),
		file:   file,
		ticker: time.NewTicker(flushInterval),
		done:   make(chan struct{}),
	}
	go fs.periodicFlush()

	return fs, nil
}

// Write buffers p.
func (fs *FileSink) Write(p []byte) (int, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.closed {
		return 0, os.ErrClosed
	}

	n, err := fs.writer.Write(p)
	if err != nil {
		return n, fmt.Errorf("failed to write log data: %w", err)
	}
	fs.writes++
	return n, nil
}

// Sync flushes buffered data and syncs the file to disk.
func (fs *FileSink) Sync() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.flushLocked()
}

func (fs *FileSink) flushLocked() error {
	if fs.closed {
		return nil
	}
	if err := fs.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush log file: %w", err)
	}
	if err := fs.file.Sync(); err != nil {
		return fmt.Errorf("failed to sync log file: %w", err)
	}
	fs.flushes++
	return nil
}

func (fs *FileSink) periodicFlush() {
	for {
		select {
		case <-fs.ticker.C:
			fs.mu.Lock()
			_ = fs.flushLocked()
			fs.mu.Unlock()
		case <-fs.done:
			return
		}
	}
}

// Close flushes and closes the file. Further writes fail with os.ErrClosed.
// The file is closed even when the final flush fails.
func (fs *FileSink) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.closed {
		return nil
	}

	fs.ticker.Stop()
	close(fs.done)

	flushErr := fs.flushLocked()
	fs.closed = true

	var closeErr error
	if err := fs.file.Close(); err != nil {
		closeErr = fmt.Errorf("failed to close log file: %w", err)
	}
	return errors.Join(flushErr, closeErr)
}

// GetStats returns the number of writes and completed flushes.
func (fs *FileSink) GetStats() (writes, flushes uint64) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.writes, fs.flushes
}
