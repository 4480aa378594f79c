// Package output provides terminal output helpers and the optional debug log file.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("1")).
	Bold(true)

// Splog provides structured logging and output
type Splog struct {
	out      io.Writer
	err      io.Writer
	colorize bool
}

// NewSplog creates a splog writing to stdout/stderr, with styling enabled
// only when stderr is a terminal.
func NewSplog() *Splog {
	return &Splog{
		out:      os.Stdout,
		err:      os.Stderr,
		colorize: isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()),
	}
}

// NewSplogWithWriters creates a splog with explicit writers and no styling,
// for callers that route output elsewhere (cobra commands, tests).
func NewSplogWithWriters(out, err io.Writer) *Splog {
	return &Splog{out: out, err: err}
}

// Info writes an info message to stdout
func (s *Splog) Info(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

// Error writes a fatal error message to stderr
func (s *Splog) Error(format string, args ...interface{}) {
	msg := "fatal: " + fmt.Sprintf(format, args...)
	if s.colorize {
		msg = errorStyle.Render(msg)
	}
	fmt.Fprintln(s.err, msg)
}
