package errors

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Sink is the collaborator interface the core emits diagnostics to (spec
// §6). The driver/CLI owns the concrete Sink; the core only ever calls
// Emit.
type Sink interface {
	Emit(d *Diagnostic)
}

// WriterSink renders diagnostics to an io.Writer, colorizing the severity
// label when Color is set; the message and caret line are never colorized.
type WriterSink struct {
	w     io.Writer
	Color bool
}

// NewWriterSink creates a sink writing to w. Color defaults to whether w is
// a terminal, detected with golang.org/x/term the same way the broader pack
// (phroun-pawscript) gates terminal-only behavior, rather than a hand-rolled
// isatty check.
func NewWriterSink(w io.Writer) *WriterSink {
	color := false
	if f, ok := w.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	return &WriterSink{w: w, Color: color}
}

const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
	ansiReset  = "\x1b[0m"
)

// Emit writes d to the sink's writer, one diagnostic per call.
func (s *WriterSink) Emit(d *Diagnostic) {
	label := d.Severity.String()
	if s.Color {
		label = colorFor(d.Severity) + label + ansiReset
	}
	fmt.Fprintf(s.w, "[%s] %s", label, d.Error())
}

func colorFor(sev Severity) string {
	switch sev {
	case SeverityFatal:
		return ansiRed
	case SeverityWarning:
		return ansiYellow
	default:
		return ansiBlue
	}
}

// CollectingSink accumulates diagnostics in memory, for tests and for the
// consumer interface (spec §6) to inspect after a compile.
type CollectingSink struct {
	Diagnostics []*Diagnostic
}

// Emit appends d.
func (s *CollectingSink) Emit(d *Diagnostic) {
	s.Diagnostics = append(s.Diagnostics, d)
}

// HasFatal reports whether any collected diagnostic was fatal.
func (s *CollectingSink) HasFatal() bool {
	for _, d := range s.Diagnostics {
		if d.Severity == SeverityFatal {
			return true
		}
	}
	return false
}
