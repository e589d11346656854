package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sourcecc/internal/ast"
	"sourcecc/internal/symtab"
)

// TestRoundTripSimpleProgram exercises spec §8's round-trip property: parse,
// pretty-print, re-parse, and compare declaration shape (modulo source
// offsets, which the printer does not reproduce).
func TestRoundTripSimpleProgram(t *testing.T) {
	src := "data x int;\nentity y int;\nproc add ( a int , b int ) int { return a + b; }\n"

	prog1, strs, _, _ := parseString(t, src)
	printed := ast.NewPrinter(prog1, strs).Print()

	prog2, strs2, _, _ := parseString(t, printed)

	sym1, ok := symtab.Lookup(prog1, prog1.Scopes.Root(), strs.InternString("add"))
	require.True(t, ok)
	sym2, ok := symtab.Lookup(prog2, prog2.Scopes.Root(), strs2.InternString("add"))
	require.True(t, ok)

	require.Equal(t, prog1.Symbols.Kind(sym1), prog2.Symbols.Kind(sym2))
	proc1 := prog1.Symbols.Proc(sym1)
	proc2 := prog2.Symbols.Proc(sym2)
	require.Equal(t, prog1.Procs.NParams(proc1), prog2.Procs.NParams(proc2))
}

// TestRoundTripForLoopAndUnaryExpr exercises the two printer cases that
// TestRoundTripSimpleProgram's source never reaches: a for-loop and a
// prefix unary expression. A program that fails to re-parse after printing
// means the printer emitted something the grammar can't read back.
func TestRoundTripForLoopAndUnaryExpr(t *testing.T) {
	src := "proc sum ( n int ) int {\n" +
		"    data total int;\n" +
		"    data i int;\n" +
		"    for ( i = 0 ; i == n ; i = i + 1 ) {\n" +
		"        total = total + -i;\n" +
		"    }\n" +
		"    return total;\n" +
		"}\n"

	prog1, strs, _, _ := parseString(t, src)
	printed := ast.NewPrinter(prog1, strs).Print()

	prog2, strs2, _, _ := parseString(t, printed)

	sym1, ok := symtab.Lookup(prog1, prog1.Scopes.Root(), strs.InternString("sum"))
	require.True(t, ok)
	sym2, ok := symtab.Lookup(prog2, prog2.Scopes.Root(), strs2.InternString("sum"))
	require.True(t, ok)

	proc1 := prog1.Symbols.Proc(sym1)
	proc2 := prog2.Symbols.Proc(sym2)
	require.Equal(t, prog1.Procs.NParams(proc1), prog2.Procs.NParams(proc2))
}
