package ast

import (
	"sourcecc/internal/arena"
	"sourcecc/internal/intern"
)

// Symbol is a handle into the symbol arena.
type Symbol int32

// SymbolKind tags which payload field of symbolInfo is meaningful.
type SymbolKind int

const (
	SymbolType SymbolKind = iota
	SymbolData
	SymbolArray
	SymbolProc
	SymbolParam
)

// symbolInfo is the per-symbol record: a name, the scope it was declared
// in, and a kind-tagged payload handle into the matching entity arena.
// Symbols are interned per (scope, name) pair by construction (package
// symtab refuses a redefinition before ever allocating here).
type symbolInfo struct {
	Name  intern.String
	Scope Scope
	Kind  SymbolKind
	Type  Type
	Data  Data
	Array Array
	Proc  Proc
	Param Param
}

// Symbols is the symbol arena.
type Symbols struct {
	infos *arena.Arena[Symbol, symbolInfo]
}

// NewSymbols creates an empty symbol arena.
func NewSymbols() *Symbols {
	return &Symbols{infos: arena.New[Symbol, symbolInfo](128)}
}

// Alloc appends a symbol record. Only package symtab is meant to call this
// directly, so that every symbol passes its redefinition check and is
// recorded as a member of its scope.
func (s *Symbols) Alloc(info SymbolInfo) Symbol {
	return s.infos.Alloc(info)
}

func (s *Symbols) Name(h Symbol) intern.String { return s.infos.Get(h).Name }
func (s *Symbols) Scope(h Symbol) Scope        { return s.infos.Get(h).Scope }
func (s *Symbols) Kind(h Symbol) SymbolKind    { return s.infos.Get(h).Kind }
func (s *Symbols) Type(h Symbol) Type          { return s.infos.Get(h).Type }
func (s *Symbols) Data(h Symbol) Data          { return s.infos.Get(h).Data }
func (s *Symbols) Array(h Symbol) Array        { return s.infos.Get(h).Array }
func (s *Symbols) Proc(h Symbol) Proc          { return s.infos.Get(h).Proc }
func (s *Symbols) Param(h Symbol) Param        { return s.infos.Get(h).Param }
func (s *Symbols) Len() int                    { return s.infos.Len() }

// NewTypeSymbol, NewDataSymbol, NewArraySymbol, NewProcSymbol and
// NewParamSymbol build the symbolInfo payload for each declaration kind.
// They are thin constructors whose result is handed to symtab.Define; kept
// here so the payload-field knowledge
// stays colocated with the struct it populates.
func NewTypeSymbol(name intern.String, scope Scope, tp Type) symbolInfo {
	return symbolInfo{Name: name, Scope: scope, Kind: SymbolType, Type: tp}
}
func NewDataSymbol(name intern.String, scope Scope, d Data) symbolInfo {
	return symbolInfo{Name: name, Scope: scope, Kind: SymbolData, Data: d}
}
func NewArraySymbol(name intern.String, scope Scope, a Array) symbolInfo {
	return symbolInfo{Name: name, Scope: scope, Kind: SymbolArray, Array: a}
}
func NewProcSymbol(name intern.String, scope Scope, p Proc) symbolInfo {
	return symbolInfo{Name: name, Scope: scope, Kind: SymbolProc, Proc: p}
}
func NewParamSymbol(name intern.String, scope Scope, p Param) symbolInfo {
	return symbolInfo{Name: name, Scope: scope, Kind: SymbolParam, Param: p}
}

// SymbolInfo is the exported alias package symtab uses to build a payload
// before calling Alloc.
type SymbolInfo = symbolInfo
