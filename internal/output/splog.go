package output

import (
	"fmt"
	"io"
	"os"
)

// Splog writes user-facing output lines.
type Splog struct {
	writer io.Writer
}

// NewSplog creates a new splog instance writing to stdout
func NewSplog() *Splog {
	return &Splog{
		writer: os.Stdout,
	}
}

// NewSplogTo creates a splog writing to w. Used by tests to capture output.
func NewSplogTo(w io.Writer) *Splog {
	return &Splog{writer: w}
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, format+"\n", args...)
}

// Line writes a single pre-formatted line
func (s *Splog) Line(line string) {
	fmt.Fprintln(s.writer, line)
}

// Newline writes a newline
func (s *Splog) Newline() {
	fmt.Fprintln(s.writer)
}
