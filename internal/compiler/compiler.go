// Package compiler orchestrates a single compilation: Read, Lex, Parse,
// Resolve, and type-completion, in that order, with no partial-result mode
// (spec §7 "if any phase reports an error, subsequent phases are not run").
package compiler

import (
	"fmt"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"sourcecc/internal/ast"
	cerrors "sourcecc/internal/errors"
	"sourcecc/internal/intern"
	"sourcecc/internal/lexer"
	"sourcecc/internal/parser"
	"sourcecc/internal/resolve"
	"sourcecc/internal/source"
	"sourcecc/internal/symtab"
	"sourcecc/internal/token"
)

// Compilation is one invocation of the front-end over a single source file.
// Each Compilation gets its own uuid so diagnostics from batched or
// concurrent invocations can be told apart downstream.
type Compilation struct {
	ID    uuid.UUID
	Sink  cerrors.Sink
	Debug bool

	Files *source.Files
	Strs  *intern.Table
	Prog  *ast.Program
}

// New creates a Compilation reporting to sink. A nil sink discards
// diagnostics (tests that only care about the returned error).
func New(sink cerrors.Sink) *Compilation {
	if sink == nil {
		sink = &cerrors.CollectingSink{}
	}
	strs := intern.NewTable()
	return &Compilation{
		ID:    uuid.New(),
		Sink:  sink,
		Files: source.NewFiles(strs),
		Strs:  strs,
		Prog:  ast.NewProgram(),
	}
}

// trace emits a SeverityTrace diagnostic when Debug is enabled, tagged with
// this compilation's ID.
func (c *Compilation) trace(phase, message string) {
	if !c.Debug {
		return
	}
	d := &cerrors.Diagnostic{Severity: cerrors.SeverityTrace, Kind: cerrors.Kind(phase), Message: message}
	c.Sink.Emit(d.WithCompilation(c.ID))
}

// Run reads path from disk and drives it through every phase, mutating
// c.Prog in place. Any fatal diagnostic raised by a phase is recovered here,
// tagged with the compilation's ID, emitted to the sink, and returned; no
// later phase runs after a failure, and c.Prog then holds only what the
// failed phase and its predecessors had built.
func (c *Compilation) Run(path string) (err error) {
	defer func() {
		if err == nil {
			return
		}
		if d, ok := err.(*cerrors.Diagnostic); ok {
			c.Sink.Emit(d.WithCompilation(c.ID))
		}
	}()
	defer cerrors.Recover(&err)

	start := time.Now()

	f, readErr := c.Files.Read(path)
	if readErr != nil {
		cerrors.Panic(cerrors.New(cerrors.KindIO, readErr.Error(), cerrors.Location{File: path}))
	}
	c.trace("Read", fmt.Sprintf("%s: %s", path, humanize.Bytes(uint64(c.Files.Size(f)))))

	kw := intern.NewKeywords(c.Strs)
	tokens := token.NewTokens()
	stream := lexer.NewScanner(c.Files, f, c.Strs, kw, tokens).ScanAll()
	c.trace("Lex", fmt.Sprintf("%s tokens", humanize.Comma(int64(tokens.Len()))))

	p := parser.New(c.Files, f, c.Strs, kw, tokens, stream, c.Prog)
	p.Parse()
	c.trace("Parse", fmt.Sprintf("%s symbols, %s types", humanize.Comma(int64(c.Prog.Symbols.Len())), humanize.Comma(int64(c.Prog.Types.Len()))))

	resolve.Symrefs(c.Prog, c.Strs)
	c.trace("Resolve", fmt.Sprintf("%s symrefs bound", humanize.Comma(int64(c.Prog.Symrefs.Len()))))

	if typeErr := resolve.Types(c.Prog); typeErr != nil {
		cerrors.Panic(typeErr.(*cerrors.Diagnostic))
	}
	c.trace("Complete", fmt.Sprintf("finished in %s", time.Since(start)))

	return nil
}

// MaxScopeDepth is the nesting bound enforced by package symtab, exposed
// here so a driver reporting configuration can print it without importing
// symtab itself.
const MaxScopeDepth = symtab.MaxDepth
