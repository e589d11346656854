package ast

import (
	"sourcecc/internal/arena"
	"sourcecc/internal/intern"
	"sourcecc/internal/token"
)

// Symref is a handle into the symref arena: an unresolved name lookup
// recorded wherever the grammar expects a reference to an existing
// declaration (spec §3 "Symrefs").
type Symref int32

type symrefInfo struct {
	Name     intern.String
	RefScope Scope
	Tok      token.Token
	Sym      Symbol // zero (invalid) until the Resolve phase sets it
}

// Symrefs is the symref arena.
type Symrefs struct {
	infos *arena.Arena[Symref, symrefInfo]
}

// NewSymrefs creates an empty symref arena.
func NewSymrefs() *Symrefs {
	return &Symrefs{infos: arena.New[Symref, symrefInfo](64)}
}

// New records an unresolved reference to name, as seen from refScope at the
// given token.
func (s *Symrefs) New(name intern.String, refScope Scope, tok token.Token) Symref {
	return s.infos.Alloc(symrefInfo{Name: name, RefScope: refScope, Tok: tok})
}

func (s *Symrefs) Name(h Symref) intern.String  { return s.infos.Get(h).Name }
func (s *Symrefs) RefScope(h Symref) Scope      { return s.infos.Get(h).RefScope }
func (s *Symrefs) Tok(h Symref) token.Token     { return s.infos.Get(h).Tok }
func (s *Symrefs) Sym(h Symref) Symbol          { return s.infos.Get(h).Sym }
func (s *Symrefs) Resolved(h Symref) bool       { return s.infos.Get(h).Sym != 0 }

// Bind sets the resolved Symbol for h. Called exactly once per symref, by
// the Resolve phase (package resolve); writing it twice to different
// targets would violate resolution idempotence (spec §8 property 5).
func (s *Symrefs) Bind(h Symref, sym Symbol) { s.infos.Get(h).Sym = sym }

func (s *Symrefs) Len() int { return s.infos.Len() }

// All iterates every symref in allocation order, for the Resolve phase.
func (s *Symrefs) All(fn func(h Symref)) {
	for i := 1; i <= s.infos.Len(); i++ {
		fn(Symref(i))
	}
}
