// Package report provides the destinations inspection lines are written to.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Separator divides the sections of a report.
const Separator = "--------------------------------"

// Suffix is appended to the model's base file name to name its report.
const Suffix = ".txt"

// Sink accepts report lines in order. Lines are never rewritten once
// appended.
type Sink interface {
	Append(lines ...string) error
}

// Path returns the report file for modelPath inside dir.
func Path(modelPath, dir string) string {
	return filepath.Join(dir, filepath.Base(modelPath)+Suffix)
}

// FileSink writes every line to a report file and mirrors it to stdout.
type FileSink struct {
	mu     sync.Mutex
	path   string
	file   *os.File
	stdout io.Writer
}

// NewFileSink creates or truncates the report file for modelPath in dir.
func NewFileSink(modelPath, dir string, stdout io.Writer) (*FileSink, error) {
	path := Path(modelPath, dir)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to clear report file %s: %w", path, err)
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	return &FileSink{path: path, file: file, stdout: stdout}, nil
}

// Path returns the report file location.
func (s *FileSink) Path() string {
	return s.path
}

// Append writes lines to stdout and to the report file.
func (s *FileSink) Append(lines ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range lines {
		if _, err := fmt.Fprintln(s.stdout, line); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		if _, err := io.WriteString(s.file, line+"\n"); err != nil {
			return fmt.Errorf("failed to write report file %s: %w", s.path, err)
		}
	}
	return nil
}

// Close closes the report file.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}

// WriterSink writes lines to a single writer, such as stdout.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Append(lines ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, line := range lines {
		if _, err := fmt.Fprintln(s.w, line); err != nil {
			return err
		}
	}
	return nil
}

// MemorySink keeps lines in memory.
type MemorySink struct {
	mu    sync.Mutex
	lines []string
}

func (s *MemorySink) Append(lines ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, lines...)
	return nil
}

// Lines returns a copy of the lines appended so far.
func (s *MemorySink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}
