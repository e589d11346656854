package errors

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticRendersCaret(t *testing.T) {
	d := New(KindSyntax, "expected ';'", Location{File: "a.src", Offset: 12, Line: 2, Column: 5}).
		WithSource("data x int")

	text := d.Error()
	require.Contains(t, text, "SyntaxError: expected ';'")
	require.Contains(t, text, "at a.src:2:5")
	require.Contains(t, text, "data x int")
}

func TestPanicRecoverRoundTrip(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		Panic(New(KindUnresolvedSymbol, "undefined symbol `missing`", Location{File: "a.src"}))
	}()
	require.Error(t, err)
	var d *Diagnostic
	require.ErrorAs(t, err, &d)
	require.Equal(t, KindUnresolvedSymbol, d.Kind)
}

func TestRecoverRepanicsOnForeignPanic(t *testing.T) {
	require.Panics(t, func() {
		var err error
		defer Recover(&err)
		panic("not a diagnostic")
	})
}

func TestCollectingSink(t *testing.T) {
	sink := &CollectingSink{}
	id := uuid.New()
	sink.Emit(New(KindDuplicateSymbol, "duplicate symbol `x`", Location{}).WithCompilation(id))
	require.Len(t, sink.Diagnostics, 1)
	require.True(t, sink.HasFatal())
	require.Equal(t, id, sink.Diagnostics[0].CompilationID)
}

func TestWriterSinkEmit(t *testing.T) {
	var buf bytes.Buffer
	sink := &WriterSink{w: &buf}
	sink.Emit(New(KindLexical, "unrecognized byte", Location{File: "a.src", Line: 1, Column: 1}))
	require.Contains(t, buf.String(), "LexicalError")
}
