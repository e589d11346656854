// Package symtab owns the scope-stack discipline and the per-scope symbol
// membership for Scope→Symbols (spec §4.4): it is the only package allowed
// to call ast.Symbols.Alloc and ast.Scopes.AppendSymbol directly, so that
// every symbol that ever enters the arena has already passed the
// redefinition check and been recorded against its declaring scope.
package symtab

import (
	"sourcecc/internal/ast"
	cerrors "sourcecc/internal/errors"
	"sourcecc/internal/intern"
)

// MaxDepth is the deepest a scope stack may nest (spec §4.3: "Maximum
// nesting is bounded (16 levels); exceeding it is fatal").
const MaxDepth = 16

// Stack tracks the currently-open scope chain while the parser descends
// into proc bodies and compound statements. It does not duplicate the
// parent-chain information already in ast.Scopes; it only adds the nesting
// depth counter that ast.Scopes has no need to track once parsing is done.
type Stack struct {
	prog  *ast.Program
	stack []ast.Scope
}

// New creates a Stack rooted at prog's global scope.
func New(prog *ast.Program) *Stack {
	return &Stack{prog: prog, stack: []ast.Scope{prog.Scopes.Root()}}
}

// Current returns the innermost open scope.
func (s *Stack) Current() ast.Scope { return s.stack[len(s.stack)-1] }

// Depth returns the current nesting depth (the root scope is depth 1).
func (s *Stack) Depth() int { return len(s.stack) }

// Push opens a new child scope of Current and returns its handle. It is
// fatal to push past MaxDepth.
func (s *Stack) Push(kind ast.ScopeKind, owner ast.Proc) ast.Scope {
	if len(s.stack) >= MaxDepth {
		cerrors.Panic(cerrors.New(cerrors.KindSyntax, "scope nesting overflow", cerrors.Location{}))
	}
	child := s.prog.Scopes.Push(s.Current(), kind, owner)
	s.stack = append(s.stack, child)
	return child
}

// Pop closes the innermost open scope.
func (s *Stack) Pop() {
	s.stack = s.stack[:len(s.stack)-1]
}

// Define allocates a symbol in scope, enforcing per-(scope,name) uniqueness
// (spec §4.4 "Redefinition (same name, same scope) is fatal"), then records
// it as a member of scope. A nested block scope may open, declare its own
// symbols, and close again in between two calls to Define against an
// enclosing scope that is still current, so scope membership cannot be a
// shared contiguous arena range the way CompoundStmt's children can
// (Scopes.Symbols tracks it as a plain per-scope list instead).
func Define(prog *ast.Program, strs *intern.Table, scope ast.Scope, info ast.SymbolInfo, loc cerrors.Location) ast.Symbol {
	name := info.Name
	if _, ok := lookupLocal(prog, scope, name); ok {
		cerrors.Panic(cerrors.New(cerrors.KindDuplicateSymbol,
			"redefinition of '"+strs.String(name)+"' in the same scope", loc))
	}
	sym := prog.Symbols.Alloc(info)
	prog.Scopes.AppendSymbol(scope, sym)
	return sym
}

// lookupLocal scans only scope's own members (not ancestors). The
// Symbols.Scope(sym) == scope check is defense-in-depth: Scopes.Symbols(h)
// should never contain a symbol recorded against a different scope, but
// checking costs nothing and catches a future bookkeeping bug immediately
// rather than as a silent misresolution.
func lookupLocal(prog *ast.Program, scope ast.Scope, name intern.String) (ast.Symbol, bool) {
	for _, sym := range prog.Scopes.Symbols(scope) {
		if prog.Symbols.Name(sym) == name && prog.Symbols.Scope(sym) == scope {
			return sym, true
		}
	}
	return ast.Symbol(0), false
}

// Lookup implements the resolution algorithm of spec §4.4: walk from scope
// up through parents, linearly scanning each scope's own members, until
// name is found or the root scope fails to contain it.
func Lookup(prog *ast.Program, scope ast.Scope, name intern.String) (ast.Symbol, bool) {
	s := scope
	for {
		if sym, ok := lookupLocal(prog, s, name); ok {
			return sym, true
		}
		if prog.Scopes.IsRoot(s) {
			return ast.Symbol(0), false
		}
		s = prog.Scopes.Parent(s)
	}
}
