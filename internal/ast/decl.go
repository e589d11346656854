package ast

import (
	"sourcecc/internal/arena"
	"sourcecc/internal/intern"
)

// Data is a handle into the data-declaration arena ("data x T;").
type Data int32

type dataInfo struct {
	Name  intern.String
	Type  Type
	Scope Scope
	Init  Expr // zero (invalid) if uninitialized
}

// Datas is the data-declaration arena.
type Datas struct {
	infos *arena.Arena[Data, dataInfo]
}

func NewDatas() *Datas { return &Datas{infos: arena.New[Data, dataInfo](64)} }

func (d *Datas) New(name intern.String, tp Type, scope Scope, init Expr) Data {
	return d.infos.Alloc(dataInfo{Name: name, Type: tp, Scope: scope, Init: init})
}

func (d *Datas) Name(h Data) intern.String { return d.infos.Get(h).Name }
func (d *Datas) Type(h Data) Type          { return d.infos.Get(h).Type }
func (d *Datas) Scope(h Data) Scope        { return d.infos.Get(h).Scope }
func (d *Datas) Init(h Data) Expr          { return d.infos.Get(h).Init }
func (d *Datas) Len() int                  { return d.infos.Len() }

// Array is a handle into the array-declaration arena ("array x [T] U;").
type Array int32

type arrayInfo struct {
	Name  intern.String
	Type  Type // the array's own Type (TypeArray), not the element type
	Scope Scope
}

type Arrays struct {
	infos *arena.Arena[Array, arrayInfo]
}

func NewArrays() *Arrays { return &Arrays{infos: arena.New[Array, arrayInfo](32)} }

func (a *Arrays) New(name intern.String, tp Type, scope Scope) Array {
	return a.infos.Alloc(arrayInfo{Name: name, Type: tp, Scope: scope})
}

func (a *Arrays) Name(h Array) intern.String { return a.infos.Get(h).Name }
func (a *Arrays) Type(h Array) Type          { return a.infos.Get(h).Type }
func (a *Arrays) Scope(h Array) Scope        { return a.infos.Get(h).Scope }
func (a *Arrays) Len() int                   { return a.infos.Len() }

// Param is a handle into the proc-parameter arena. Parameters of a single
// proc occupy a dense, rank-ordered run, mirroring how a Call links its
// argument run (spec §3 "Proc→Params" dense linking).
type Param int32

type paramInfo struct {
	Name intern.String
	Type Type
	Proc Proc
	Rank int32
}

type Params struct {
	infos *arena.Arena[Param, paramInfo]
}

func NewParams() *Params { return &Params{infos: arena.New[Param, paramInfo](64)} }

func (p *Params) New(name intern.String, tp Type, proc Proc, rank int32) Param {
	return p.infos.Alloc(paramInfo{Name: name, Type: tp, Proc: proc, Rank: rank})
}

func (p *Params) Name(h Param) intern.String { return p.infos.Get(h).Name }
func (p *Params) Type(h Param) Type          { return p.infos.Get(h).Type }
func (p *Params) Proc(h Param) Proc          { return p.infos.Get(h).Proc }
func (p *Params) Rank(h Param) int32         { return p.infos.Get(h).Rank }
func (p *Params) Len() int                   { return p.infos.Len() }

// Proc is a handle into the proc-declaration arena.
type Proc int32

type procInfo struct {
	Name        intern.String
	Type        Type // TypeProc
	DeclScope   Scope
	BodyScope   Scope
	NParams     int32
	FirstParam  Param
	Body        Stmt // CompoundStmt, zero if this is a forward declaration only
}

type Procs struct {
	infos *arena.Arena[Proc, procInfo]
}

func NewProcs() *Procs { return &Procs{infos: arena.New[Proc, procInfo](32)} }

// New reserves a proc record before its body is parsed, so that recursive
// calls within the body can resolve against the proc's own symbol.
func (p *Procs) New(name intern.String, tp Type, declScope Scope, nparams int32) Proc {
	return p.infos.Alloc(procInfo{Name: name, Type: tp, DeclScope: declScope, NParams: nparams})
}

func (p *Procs) BindFirstParam(h Proc, first Param) { p.infos.Get(h).FirstParam = first }
func (p *Procs) BindBodyScope(h Proc, scope Scope)  { p.infos.Get(h).BodyScope = scope }
func (p *Procs) BindBody(h Proc, body Stmt)         { p.infos.Get(h).Body = body }

func (p *Procs) Name(h Proc) intern.String { return p.infos.Get(h).Name }
func (p *Procs) Type(h Proc) Type          { return p.infos.Get(h).Type }
func (p *Procs) DeclScope(h Proc) Scope    { return p.infos.Get(h).DeclScope }
func (p *Procs) BodyScope(h Proc) Scope    { return p.infos.Get(h).BodyScope }
func (p *Procs) NParams(h Proc) int32      { return p.infos.Get(h).NParams }
func (p *Procs) FirstParam(h Proc) Param   { return p.infos.Get(h).FirstParam }
func (p *Procs) Body(h Proc) Stmt          { return p.infos.Get(h).Body }
func (p *Procs) Len() int                  { return p.infos.Len() }

// Params returns the dense [first, first+n) parameter run in rank order.
func (p *Procs) Params(h Proc) []Param {
	n := int(p.NParams(h))
	if n == 0 {
		return nil
	}
	first := p.FirstParam(h)
	out := make([]Param, n)
	for i := 0; i < n; i++ {
		out[i] = first + Param(i)
	}
	return out
}
