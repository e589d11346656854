// Package errors implements the compiler's single diagnostic channel (spec
// §7): every I/O, lexical, syntax, symbol-table, and type-completion failure
// is reported through one Diagnostic type and one Sink, and every kind
// listed in the taxonomy is fatal — there is no partial-result mode.
package errors

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind names a position in the error taxonomy (spec §7).
type Kind string

const (
	KindIO                Kind = "IOError"
	KindLexical           Kind = "LexicalError"
	KindSyntax            Kind = "SyntaxError"
	KindDuplicateSymbol   Kind = "DuplicateSymbol"
	KindUnresolvedSymbol  Kind = "UnresolvedSymbol"
	KindMismatch          Kind = "KindMismatch"
	KindIncompleteType    Kind = "IncompleteType"
	KindInternalInvariant Kind = "InternalInvariant"
)

// Severity distinguishes diagnostics that halt compilation from those that
// merely inform (phase tracing under -debug).
type Severity int

const (
	SeverityTrace Severity = iota
	SeverityWarning
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityTrace:
		return "trace"
	case SeverityWarning:
		return "warn"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Location pinpoints a diagnostic in source text.
type Location struct {
	File   string
	Offset int
	Line   int
	Column int
}

// Diagnostic is the compiler's sole error/trace record shape: a severity, a
// taxonomy Kind, a message, a source Location, and optionally the source
// line's text and an underlying cause (e.g. a wrapped os error from the
// Read phase).
type Diagnostic struct {
	Severity      Severity
	Kind          Kind
	Message       string
	Location      Location
	Source        string
	CompilationID uuid.UUID
	Cause         error
}

// New creates a fatal diagnostic of the given kind.
func New(kind Kind, message string, loc Location) *Diagnostic {
	return &Diagnostic{Severity: SeverityFatal, Kind: kind, Message: message, Location: loc}
}

// WithSource attaches the literal source line for caret rendering.
func (d *Diagnostic) WithSource(line string) *Diagnostic {
	d.Source = line
	return d
}

// WithCause attaches an underlying error (e.g. a wrapped I/O failure).
func (d *Diagnostic) WithCause(cause error) *Diagnostic {
	d.Cause = cause
	return d
}

// WithCompilation tags the diagnostic with the originating compilation's ID,
// so that diagnostics from concurrent/batched invocations can be told apart
// in aggregated logs.
func (d *Diagnostic) WithCompilation(id uuid.UUID) *Diagnostic {
	d.CompilationID = id
	return d
}

// Error implements the error interface, rendering the diagnostic the way
// the teacher's SentraError did: type, message, location, and a caret under
// the offending column when the source line is known.
func (d *Diagnostic) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s: %s\n", d.Kind, d.Message))

	if d.Location.File != "" {
		sb.WriteString(fmt.Sprintf("  at %s:%d:%d\n", d.Location.File, d.Location.Line, d.Location.Column))

		if d.Source != "" {
			prefix := fmt.Sprintf("  %d | ", d.Location.Line)
			sb.WriteString(fmt.Sprintf("\n%s%s\n", prefix, d.Source))
			sb.WriteString(strings.Repeat(" ", len(prefix)))
			if d.Location.Column > 0 {
				sb.WriteString(strings.Repeat(" ", d.Location.Column-1))
			}
			sb.WriteString("^\n")
		}
	}

	if d.Cause != nil {
		sb.WriteString(fmt.Sprintf("caused by: %v\n", d.Cause))
	}

	return sb.String()
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (d *Diagnostic) Unwrap() error { return d.Cause }

// Panic raises d as a panic value. Every fatal condition in the taxonomy
// (spec §7) is reported this way: lex/parse/resolve/complete never return a
// partial result on error, they unwind to the nearest phase boundary, which
// recovers via Recover and turns the panic back into a returned error.
func Panic(d *Diagnostic) {
	panic(d)
}

// Recover turns a panicking Diagnostic into a returned error; any other
// panic value is re-raised, since it indicates a genuine bug rather than a
// modeled fatal condition.
func Recover(errp *error) {
	if r := recover(); r != nil {
		if d, ok := r.(*Diagnostic); ok {
			*errp = d
			return
		}
		panic(r)
	}
}
