// Package console prints the colored, human-facing progress lines of a run.
// Color is dropped automatically when the output is not a terminal.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	stepColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	noteColor    = color.New(color.FgCyan)
)

// Printer writes progress to out and failures to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
}

// New returns a Printer. Nil writers default to os.Stdout and os.Stderr.
func New(out, errOut io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Printer{out: out, errOut: errOut}
}

// Step announces a stage of the run.
func (p *Printer) Step(format string, args ...any) { line(p.out, stepColor, format, args...) }

// Success reports a completed action.
func (p *Printer) Success(format string, args ...any) { line(p.out, successColor, format, args...) }

// Warn reports something skipped or needing attention.
func (p *Printer) Warn(format string, args ...any) { line(p.out, warnColor, format, args...) }

// Note prints an informational hint.
func (p *Printer) Note(format string, args ...any) { line(p.out, noteColor, format, args...) }

// Plain prints an uncolored line.
func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Error reports a failure on the error stream.
func (p *Printer) Error(format string, args ...any) { line(p.errOut, errorColor, format, args...) }

func line(w io.Writer, c *color.Color, format string, args ...any) {
	c.Fprintf(w, format, args...)
	fmt.Fprintln(w)
}
