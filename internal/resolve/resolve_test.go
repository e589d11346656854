package resolve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sourcecc/internal/ast"
	cerrors "sourcecc/internal/errors"
	"sourcecc/internal/intern"
	"sourcecc/internal/symtab"
	"sourcecc/internal/token"
)

func TestSymrefsResolvesUpwardThroughScopeChain(t *testing.T) {
	strs := intern.NewTable()
	prog := ast.NewProgram()
	stack := symtab.New(prog)

	name := strs.InternString("counter")
	intType := prog.Types.NewBase(strs.InternString("int"), 8)
	symtab.Define(prog, strs, stack.Current(), ast.NewDataSymbol(name, stack.Current(), prog.Datas.New(name, intType, stack.Current(), 0)), cerrors.Location{})

	child := stack.Push(ast.ScopeProc, 0)
	ref := prog.Symrefs.New(name, child, token.Token(0))

	Symrefs(prog, strs)

	require.True(t, prog.Symrefs.Resolved(ref))
	sym := prog.Symrefs.Sym(ref)
	require.Equal(t, name, prog.Symbols.Name(sym))
}

func TestSymrefsUnresolvedIsFatal(t *testing.T) {
	strs := intern.NewTable()
	prog := ast.NewProgram()
	stack := symtab.New(prog)
	prog.Symrefs.New(strs.InternString("ghost"), stack.Current(), token.Token(0))

	require.Panics(t, func() {
		Symrefs(prog, strs)
	})
}

func TestTypesCompletionFixedPoint(t *testing.T) {
	strs := intern.NewTable()
	prog := ast.NewProgram()
	_ = symtab.New(prog)

	intType := prog.Types.NewBase(strs.InternString("int"), 8)
	arrType := prog.Types.NewArray(intType, intType)
	entType := prog.Types.NewEntity(strs.InternString("wrapper"), arrType)

	require.NoError(t, Types(prog))
	require.True(t, prog.Types.IsComplete(intType))
	require.True(t, prog.Types.IsComplete(arrType))
	require.True(t, prog.Types.IsComplete(entType))
}

func TestTypesSelfReferenceThroughReferenceIsComplete(t *testing.T) {
	strs := intern.NewTable()
	prog := ast.NewProgram()
	stack := symtab.New(prog)

	name := strs.InternString("Node")
	placeholder := prog.Types.NewBase(strs.InternString("__placeholder"), 0)
	typeSym := symtab.Define(prog, strs, stack.Current(), ast.NewTypeSymbol(name, stack.Current(), placeholder), cerrors.Location{})

	ref := prog.Symrefs.New(name, stack.Current(), token.Token(0))
	refType := prog.Types.NewReference(ref)
	entType := prog.Types.NewEntity(name, refType)
	_ = typeSym

	Symrefs(prog, strs)
	require.NoError(t, Types(prog))
	require.True(t, prog.Types.IsComplete(refType))
	require.True(t, prog.Types.IsComplete(entType))
}

func TestTypesDirectSelfContainmentNeverCompletes(t *testing.T) {
	prog := ast.NewProgram()
	self := ast.Type(prog.Types.Len() + 1) // the handle NewArray is about to return
	arrType := prog.Types.NewArray(self, self)
	require.Equal(t, self, arrType)
	// An array referencing itself directly (not through a reference level)
	// can never complete since its own completeness depends on itself.
	err := Types(prog)
	require.Error(t, err)
}
