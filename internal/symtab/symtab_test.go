package symtab

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sourcecc/internal/ast"
	cerrors "sourcecc/internal/errors"
	"sourcecc/internal/intern"
)

func TestDefineAndLookupAcrossScopes(t *testing.T) {
	strs := intern.NewTable()
	prog := ast.NewProgram()
	stack := New(prog)

	outer := strs.InternString("outer")
	inner := strs.InternString("inner")

	tp := prog.Types.NewBase(strs.InternString("int"), 8)
	Define(prog, strs, stack.Current(), ast.NewDataSymbol(outer, stack.Current(), prog.Datas.New(outer, tp, stack.Current(), 0)), cerrors.Location{})

	child := stack.Push(ast.ScopeProc, 0)
	Define(prog, strs, child, ast.NewDataSymbol(inner, child, prog.Datas.New(inner, tp, child, 0)), cerrors.Location{})

	sym, ok := Lookup(prog, child, outer)
	require.True(t, ok)
	require.Equal(t, outer, prog.Symbols.Name(sym))

	_, ok = Lookup(prog, stack.Current(), inner)
	require.True(t, ok)

	stack.Pop()
	_, ok = Lookup(prog, stack.Current(), inner)
	require.False(t, ok)
}

func TestRedefinitionInSameScopeIsFatal(t *testing.T) {
	strs := intern.NewTable()
	prog := ast.NewProgram()
	stack := New(prog)
	name := strs.InternString("x")
	tp := prog.Types.NewBase(strs.InternString("int"), 8)

	Define(prog, strs, stack.Current(), ast.NewDataSymbol(name, stack.Current(), prog.Datas.New(name, tp, stack.Current(), 0)), cerrors.Location{})

	require.Panics(t, func() {
		Define(prog, strs, stack.Current(), ast.NewDataSymbol(name, stack.Current(), prog.Datas.New(name, tp, stack.Current(), 0)), cerrors.Location{})
	})
}

func TestScopeNestingOverflowIsFatal(t *testing.T) {
	prog := ast.NewProgram()
	stack := New(prog)

	require.Panics(t, func() {
		for i := 0; i < MaxDepth+1; i++ {
			stack.Push(ast.ScopeProc, 0)
		}
	})
}

// TestDeclarationAfterNestedBlockIsVisibleAndNestedLocalIsNot traces the
// scenario a maintainer review caught: declare x in a scope, open and close
// a nested block that declares its own y, then declare z back in the
// original scope. z must resolve, and y must not leak into the outer
// scope's visibility.
func TestDeclarationAfterNestedBlockIsVisibleAndNestedLocalIsNot(t *testing.T) {
	strs := intern.NewTable()
	prog := ast.NewProgram()
	stack := New(prog)
	tp := prog.Types.NewBase(strs.InternString("int"), 8)

	outer := stack.Current()
	x := strs.InternString("x")
	Define(prog, strs, outer, ast.NewDataSymbol(x, outer, prog.Datas.New(x, tp, outer, 0)), cerrors.Location{})

	nested := stack.Push(ast.ScopeProc, 0)
	y := strs.InternString("y")
	Define(prog, strs, nested, ast.NewDataSymbol(y, nested, prog.Datas.New(y, tp, nested, 0)), cerrors.Location{})
	stack.Pop()

	z := strs.InternString("z")
	Define(prog, strs, stack.Current(), ast.NewDataSymbol(z, stack.Current(), prog.Datas.New(z, tp, stack.Current(), 0)), cerrors.Location{})

	_, ok := Lookup(prog, stack.Current(), z)
	require.True(t, ok, "z, declared after the nested block closed, must resolve")

	_, ok = lookupLocal(prog, outer, y)
	require.False(t, ok, "y, declared in the nested block, must not be visible directly in the outer scope")
}

func TestSameNameDistinctScopesDoesNotShadowIncorrectly(t *testing.T) {
	strs := intern.NewTable()
	prog := ast.NewProgram()
	stack := New(prog)
	name := strs.InternString("x")
	tp := prog.Types.NewBase(strs.InternString("int"), 8)

	outerSym := Define(prog, strs, stack.Current(), ast.NewDataSymbol(name, stack.Current(), prog.Datas.New(name, tp, stack.Current(), 0)), cerrors.Location{})

	child := stack.Push(ast.ScopeProc, 0)
	innerSym := Define(prog, strs, child, ast.NewDataSymbol(name, child, prog.Datas.New(name, tp, child, 0)), cerrors.Location{})
	require.NotEqual(t, outerSym, innerSym)

	resolved, ok := Lookup(prog, child, name)
	require.True(t, ok)
	require.Equal(t, innerSym, resolved)
}
