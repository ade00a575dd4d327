package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// StderrSink is a DiagnosticSink writing to standard error. Debug output
// is suppressed unless verbose is set.
type StderrSink struct {
	out     io.Writer
	verbose bool
}

// NewStderrSink creates a sink writing to stderr.
func NewStderrSink(verbose bool) *StderrSink {
	return &StderrSink{out: os.Stderr, verbose: verbose}
}

// NewSinkWithOutput creates a sink writing to the given output. This
// variant allows testing or alternate destinations.
func NewSinkWithOutput(out io.Writer, verbose bool) *StderrSink {
	return &StderrSink{out: out, verbose: verbose}
}

// Debugf reports progress detail when verbose output is enabled.
func (s *StderrSink) Debugf(format string, args ...any) {
	if !s.verbose {
		return
	}
	fmt.Fprintf(s.out, "%s %s\n", color.New(color.FgCyan).Sprint("debug:"), fmt.Sprintf(format, args...))
}

// Errorf reports a failure line.
func (s *StderrSink) Errorf(format string, args ...any) {
	fmt.Fprintf(s.out, "%s %s\n", color.New(color.FgRed).Sprint("error:"), fmt.Sprintf(format, args...))
}
