// Package ast holds every entity arena produced by the Parse phase (spec
// §3): Scope, Symbol, Symref, Type (+ParamType), Data, Array, Proc, Param,
// Expr (+CallArg), and Stmt (+ChildStmt). All entity kinds live in one
// package because they are mutually referential (a Proc names a Type and a
// Scope and a Stmt; a Scope names a Proc; ...) — splitting them would force
// an import cycle.
package ast

import "sourcecc/internal/arena"

// Scope is a handle into the scope arena. The zero value is the sentinel
// "no scope"; the root (global) scope's own Parent equals itself per spec
// §3 ("parent handle (0 sentinel or self for the root)").
type Scope int32

// ScopeKind distinguishes the two kinds of lexical container.
type ScopeKind int

const (
	ScopeGlobal ScopeKind = iota
	ScopeProc
)

// scopeInfo is the per-scope record. Unlike the other dense-linked
// containers (CompoundStmt→children, Proc→Params, Call→args), a scope's
// symbol set cannot be reserved as one contiguous run in a shared arena: it
// grows across the scope's entire open lifetime, and a nested block scope
// can open and mint symbols of its own — into the very same shared Symbols
// arena — in between two declarations of an enclosing, still-open scope.
// Members holds the handles declared directly in this scope, in
// declaration order; it owns no shared arena range, so nothing a sibling
// or child scope does can disturb it.
type scopeInfo struct {
	Parent  Scope
	Kind    ScopeKind
	Members []Symbol
	Proc    Proc // the owning Proc for a proc's own scope and for every block scope nested in it; zero for the global scope
}

// Scopes is the scope arena.
type Scopes struct {
	infos *arena.Arena[Scope, scopeInfo]
}

// NewScopes creates an arena whose first allocation becomes the root scope
// (global, parent = itself).
func NewScopes() *Scopes {
	s := &Scopes{infos: arena.New[Scope, scopeInfo](32)}
	root := s.infos.Reserve()
	info := s.infos.Get(root)
	info.Parent = root
	info.Kind = ScopeGlobal
	return s
}

// Root returns the global scope's handle. It is always 1, the first
// allocation out of NewScopes, but callers should prefer this accessor over
// assuming the literal value.
func (s *Scopes) Root() Scope { return Scope(1) }

// Push allocates a child scope of parent. Proc scopes additionally record
// their owning Proc.
func (s *Scopes) Push(parent Scope, kind ScopeKind, owner Proc) Scope {
	return s.infos.Alloc(scopeInfo{Parent: parent, Kind: kind, Proc: owner})
}

func (s *Scopes) Parent(h Scope) Scope   { return s.infos.Get(h).Parent }
func (s *Scopes) Kind(h Scope) ScopeKind { return s.infos.Get(h).Kind }
func (s *Scopes) Proc(h Scope) Proc      { return s.infos.Get(h).Proc }
func (s *Scopes) IsRoot(h Scope) bool    { return h == s.Parent(h) }

// Symbols returns the symbols declared directly in h, in declaration order.
func (s *Scopes) Symbols(h Scope) []Symbol { return s.infos.Get(h).Members }

// AppendSymbol records sym as declared directly in scope h. Called only by
// package symtab, once per symbol, right after the symbol passes the
// redefinition check and is allocated.
func (s *Scopes) AppendSymbol(h Scope, sym Symbol) {
	info := s.infos.Get(h)
	info.Members = append(info.Members, sym)
}

func (s *Scopes) Len() int { return s.infos.Len() }
