package ast

import (
	"sourcecc/internal/arena"
	"sourcecc/internal/intern"
	"sourcecc/internal/token"
)

// ExprKind tags the payload fields of exprInfo that are meaningful. Go has
// no sum types, so every expression kind shares one flattened struct; this
// is a deliberate, acknowledged compromise (see SPEC_FULL.md §9) rather than
// an attempt to reproduce a real tagged union.
type ExprKind int

const (
	ExprInteger ExprKind = iota
	ExprName        // unresolved reference, carries a Symref
	ExprUnop
	ExprBinop
	ExprCall
	ExprIndex  // a[i]
	ExprMember // a.b
)

// UnopKind enumerates prefix/postfix unary operators, matching the
// original implementation's ten-member enum (api.h's UnopKind): every
// overloadable token that also has a binary meaning ('-', '&', '^', '+')
// gets both a prefix-unop entry here and a binop entry in BinopKind.
type UnopKind int

const (
	UnopNeg UnopKind = iota
	UnopNot
	UnopBitNot
	UnopAddr     // &x
	UnopDeref    // ^x
	UnopPositive // +x
	UnopPreIncr
	UnopPreDecr
	UnopPostIncr
	UnopPostDecr
)

// BinopKind enumerates binary operators, ordered by the precedence table
// the Pratt parser consults (spec §4.3 "Expression Parsing").
type BinopKind int

const (
	BinopAssign BinopKind = iota
	BinopBitOr
	BinopBitXor
	BinopBitAnd
	BinopEquals
	BinopAdd
	BinopSub
	BinopMul
	BinopDiv
)

// CallArg is a handle into the call-argument arena, a dense rank-ordered run
// per Call expression (spec §3 "Call→args" dense linking).
type CallArg int32

type callArgInfo struct {
	Call Expr
	Arg  Expr
	Rank int32
}

// Expr is a handle into the expression arena.
type Expr int32

type exprInfo struct {
	Kind ExprKind
	Tok  token.Token

	// ExprInteger
	IntValue int64

	// ExprName
	Ref Symref

	// ExprUnop
	UnKind  UnopKind
	Operand Expr

	// ExprBinop
	BinKind BinopKind
	Left    Expr
	Right   Expr

	// ExprCall
	Callee     Expr
	NArgs      int32
	FirstArg   CallArg

	// ExprIndex
	Base  Expr
	Index Expr

	// ExprMember
	Member intern.String

	// Not set by name resolution or type completion; zero unless a caller
	// sets it through SetType.
	Type Type
}

type Exprs struct {
	infos    *arena.Arena[Expr, exprInfo]
	argInfos *arena.Arena[CallArg, callArgInfo]
}

func NewExprs() *Exprs {
	return &Exprs{
		infos:    arena.New[Expr, exprInfo](128),
		argInfos: arena.New[CallArg, callArgInfo](64),
	}
}

func (e *Exprs) NewInteger(tok token.Token, v int64) Expr {
	return e.infos.Alloc(exprInfo{Kind: ExprInteger, Tok: tok, IntValue: v})
}

func (e *Exprs) NewName(tok token.Token, ref Symref) Expr {
	return e.infos.Alloc(exprInfo{Kind: ExprName, Tok: tok, Ref: ref})
}

func (e *Exprs) NewUnop(tok token.Token, kind UnopKind, operand Expr) Expr {
	return e.infos.Alloc(exprInfo{Kind: ExprUnop, Tok: tok, UnKind: kind, Operand: operand})
}

func (e *Exprs) NewBinop(tok token.Token, kind BinopKind, left, right Expr) Expr {
	return e.infos.Alloc(exprInfo{Kind: ExprBinop, Tok: tok, BinKind: kind, Left: left, Right: right})
}

func (e *Exprs) NewIndex(tok token.Token, base, index Expr) Expr {
	return e.infos.Alloc(exprInfo{Kind: ExprIndex, Tok: tok, Base: base, Index: index})
}

func (e *Exprs) NewMember(tok token.Token, base Expr, member intern.String) Expr {
	return e.infos.Alloc(exprInfo{Kind: ExprMember, Tok: tok, Base: base, Member: member})
}

// NewCall reserves a call record before its arguments are appended via
// AppendArg, the same reserve-then-append discipline NewProc/AppendParamType
// use for dense-linked parameter types.
func (e *Exprs) NewCall(tok token.Token, callee Expr, nargs int32) Expr {
	h := e.infos.Alloc(exprInfo{Kind: ExprCall, Tok: tok, Callee: callee, NArgs: nargs})
	if nargs > 0 {
		e.infos.Get(h).FirstArg = CallArg(e.argInfos.Len() + 1)
	}
	return h
}

func (e *Exprs) AppendArg(call Expr, arg Expr, rank int32) CallArg {
	return e.argInfos.Alloc(callArgInfo{Call: call, Arg: arg, Rank: rank})
}

func (e *Exprs) Kind(h Expr) ExprKind       { return e.infos.Get(h).Kind }
func (e *Exprs) Tok(h Expr) token.Token     { return e.infos.Get(h).Tok }
func (e *Exprs) IntValue(h Expr) int64      { return e.infos.Get(h).IntValue }
func (e *Exprs) Ref(h Expr) Symref          { return e.infos.Get(h).Ref }
func (e *Exprs) UnKind(h Expr) UnopKind     { return e.infos.Get(h).UnKind }
func (e *Exprs) Operand(h Expr) Expr        { return e.infos.Get(h).Operand }
func (e *Exprs) BinKind(h Expr) BinopKind   { return e.infos.Get(h).BinKind }
func (e *Exprs) Left(h Expr) Expr           { return e.infos.Get(h).Left }
func (e *Exprs) Right(h Expr) Expr          { return e.infos.Get(h).Right }
func (e *Exprs) Callee(h Expr) Expr         { return e.infos.Get(h).Callee }
func (e *Exprs) NArgs(h Expr) int32         { return e.infos.Get(h).NArgs }
func (e *Exprs) Base(h Expr) Expr           { return e.infos.Get(h).Base }
func (e *Exprs) Index(h Expr) Expr          { return e.infos.Get(h).Index }
func (e *Exprs) Member(h Expr) intern.String { return e.infos.Get(h).Member }
func (e *Exprs) Type(h Expr) Type           { return e.infos.Get(h).Type }
func (e *Exprs) SetType(h Expr, tp Type)    { e.infos.Get(h).Type = tp }
func (e *Exprs) Len() int                   { return e.infos.Len() }

func (e *Exprs) ArgCall(h CallArg) Expr { return e.argInfos.Get(h).Call }
func (e *Exprs) ArgExpr(h CallArg) Expr { return e.argInfos.Get(h).Arg }
func (e *Exprs) ArgRank(h CallArg) int32 { return e.argInfos.Get(h).Rank }

// Args returns the dense rank-ordered argument run of a call expression.
func (e *Exprs) Args(h Expr) []CallArg {
	n := int(e.NArgs(h))
	if n == 0 {
		return nil
	}
	first := e.infos.Get(h).FirstArg
	out := make([]CallArg, n)
	for i := 0; i < n; i++ {
		out[i] = first + CallArg(i)
	}
	return out
}
