package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"sourcecc/internal/ast"
	"sourcecc/internal/intern"
	"sourcecc/internal/lexer"
	"sourcecc/internal/resolve"
	"sourcecc/internal/source"
	"sourcecc/internal/symtab"
	"sourcecc/internal/token"
)

func parseString(t *testing.T, src string) (*ast.Program, *intern.Table, *source.Files, source.File) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "a.src")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	strs := intern.NewTable()
	kw := intern.NewKeywords(strs)
	files := source.NewFiles(strs)
	f, err := files.Read(path)
	require.NoError(t, err)

	tokens := token.NewTokens()
	stream := lexer.NewScanner(files, f, strs, kw, tokens).ScanAll()

	prog := ast.NewProgram()
	p := New(files, f, strs, kw, tokens, stream, prog)
	p.Parse()
	return prog, strs, files, f
}

func TestS1SimpleDeclaration(t *testing.T) {
	prog, strs, _, _ := parseString(t, "data x int;")
	sym, ok := symtab.Lookup(prog, prog.Scopes.Root(), strs.InternString("x"))
	require.True(t, ok)
	require.Equal(t, ast.SymbolData, prog.Symbols.Kind(sym))
	tp := prog.Datas.Type(prog.Symbols.Data(sym))
	require.Equal(t, ast.TypeBase, prog.Types.Kind(tp))
	require.Equal(t, "int", strs.String(prog.Types.Name(tp)))
}

func TestS2ForwardTypeReference(t *testing.T) {
	prog, strs, _, _ := parseString(t, "data a ^b; entity b int;")

	resolve.Symrefs(prog, strs)
	require.NoError(t, resolve.Types(prog))

	aSym, ok := symtab.Lookup(prog, prog.Scopes.Root(), strs.InternString("a"))
	require.True(t, ok)
	aType := prog.Datas.Type(prog.Symbols.Data(aSym))
	require.Equal(t, ast.TypeReference, prog.Types.Kind(aType))
	require.True(t, prog.Types.IsComplete(aType))
}

func TestS3Unresolved(t *testing.T) {
	prog, strs, _, _ := parseString(t, "data a ^missing;")
	require.Panics(t, func() {
		resolve.Symrefs(prog, strs)
	})
}

func TestS4Redefinition(t *testing.T) {
	require.Panics(t, func() {
		parseString(t, "data x int; data x int;")
	})
}

func TestS5ExpressionPrecedence(t *testing.T) {
	prog, _, _, _ := parseString(t, "proc f ( ) int { return 1 + 2 * 3; }")
	proc := ast.Proc(1)
	body := prog.Procs.Body(proc)
	children := prog.Stmts.Children(body)
	require.Len(t, children, 1)
	retStmt := prog.Stmts.ChildStmt(children[0])
	require.Equal(t, ast.StmtReturn, prog.Stmts.Kind(retStmt))

	value := prog.Stmts.Value(retStmt)
	require.Equal(t, ast.ExprBinop, prog.Exprs.Kind(value))
	require.Equal(t, ast.BinopAdd, prog.Exprs.BinKind(value))

	right := prog.Exprs.Right(value)
	require.Equal(t, ast.ExprBinop, prog.Exprs.Kind(right))
	require.Equal(t, ast.BinopMul, prog.Exprs.BinKind(right))
}

func TestS6CallWithArgs(t *testing.T) {
	prog, _, _, _ := parseString(t, "proc f ( a int , b int ) int { return f(a, b+a); }")
	proc := ast.Proc(1)
	body := prog.Procs.Body(proc)
	children := prog.Stmts.Children(body)
	retStmt := prog.Stmts.ChildStmt(children[0])
	value := prog.Stmts.Value(retStmt)
	require.Equal(t, ast.ExprCall, prog.Exprs.Kind(value))

	args := prog.Exprs.Args(value)
	require.Len(t, args, 2)
	require.Equal(t, int32(0), prog.Exprs.ArgRank(args[0]))
	require.Equal(t, int32(1), prog.Exprs.ArgRank(args[1]))

	secondArg := prog.Exprs.ArgExpr(args[1])
	require.Equal(t, ast.ExprBinop, prog.Exprs.Kind(secondArg))
}

func TestEmptyFileProducesNoDeclarations(t *testing.T) {
	prog, _, _, _ := parseString(t, "")
	// Only the builtin base-type symbols (int, bool, byte) are present; the
	// source itself contributed none.
	require.Equal(t, len(builtinBase), prog.Symbols.Len())
}

func TestTrailingTokenWithoutSemicolonIsFatal(t *testing.T) {
	require.Panics(t, func() {
		parseString(t, "data x int")
	})
}

func TestProcParamsAndScopeNesting(t *testing.T) {
	prog, strs, _, _ := parseString(t, "proc add ( a int , b int ) int { return a + b; }")
	proc := ast.Proc(1)
	require.Equal(t, int32(2), prog.Procs.NParams(proc))
	params := prog.Procs.Params(proc)
	require.Equal(t, "a", strs.String(prog.Params.Name(params[0])))
	require.Equal(t, "b", strs.String(prog.Params.Name(params[1])))

	bodyScope := prog.Procs.BodyScope(proc)
	require.Equal(t, prog.Scopes.Root(), prog.Scopes.Parent(bodyScope))
	_, ok := symtab.Lookup(prog, bodyScope, strs.InternString("a"))
	require.True(t, ok)
	_, ok = symtab.Lookup(prog, prog.Scopes.Root(), strs.InternString("a"))
	require.False(t, ok)
}
