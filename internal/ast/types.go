package ast

import (
	"sourcecc/internal/arena"
	"sourcecc/internal/intern"
)

// Type is a handle into the type arena.
type Type int32

// TypeKind tags which payload fields of typeInfo are meaningful.
type TypeKind int

const (
	TypeBase TypeKind = iota
	TypeEntity
	TypeArray
	TypeProc
	TypeReference
)

// typeInfo is the per-type record (spec §3 "Types"). Only the fields for
// Kind are meaningful; IsComplete is set at construction for base types and
// otherwise only by the Type-complete phase (package resolve) after parsing.
type typeInfo struct {
	Kind TypeKind

	// TypeBase
	Name intern.String
	Size int

	// TypeEntity
	Inner Type

	// TypeArray
	IndexType Type
	ValueType Type

	// TypeProc
	ReturnType     Type
	NParams        int32
	FirstParamType ParamType

	// TypeReference
	Ref          Symref
	ResolvedType Type

	IsComplete bool
}

// ParamType is a handle into the proc-parameter-type arena, kept separate
// from Type so that a proc type's parameter list is a dense, rank-ordered
// run (spec §3 "parameter types are stored in a separate arena with stable
// (proctp, rank) ordering").
type ParamType int32

type paramTypeInfo struct {
	ProcType Type
	ArgType  Type
	Rank     int32
}

// Types is the type arena plus its associated parameter-type arena.
type Types struct {
	infos      *arena.Arena[Type, typeInfo]
	paramInfos *arena.Arena[ParamType, paramTypeInfo]
}

// NewTypes creates an empty type arena.
func NewTypes() *Types {
	return &Types{
		infos:      arena.New[Type, typeInfo](64),
		paramInfos: arena.New[ParamType, paramTypeInfo](64),
	}
}

// NewBase allocates a base type. Base types are always complete.
func (t *Types) NewBase(name intern.String, size int) Type {
	return t.infos.Alloc(typeInfo{Kind: TypeBase, Name: name, Size: size, IsComplete: true})
}

// NewEntity allocates a named wrapper type around inner.
func (t *Types) NewEntity(name intern.String, inner Type) Type {
	return t.infos.Alloc(typeInfo{Kind: TypeEntity, Name: name, Inner: inner})
}

// NewArray allocates an array type over (indexType, valueType).
func (t *Types) NewArray(indexType, valueType Type) Type {
	return t.infos.Alloc(typeInfo{Kind: TypeArray, IndexType: indexType, ValueType: valueType})
}

// NewReference allocates a reference ("^T") type whose target is resolved
// during type completion via ref.
func (t *Types) NewReference(ref Symref) Type {
	return t.infos.Alloc(typeInfo{Kind: TypeReference, Ref: ref})
}

// NewProc allocates a proc type reserving room for nparams parameter types,
// appended immediately afterward via AppendParamType to preserve the dense
// (proctp, rank) ordering.
func (t *Types) NewProc(returnType Type, nparams int32) Type {
	h := t.infos.Alloc(typeInfo{Kind: TypeProc, ReturnType: returnType, NParams: nparams})
	if nparams > 0 {
		t.infos.Get(h).FirstParamType = ParamType(t.paramInfos.Len() + 1)
	}
	return h
}

// AppendParamType appends the rank-th parameter type of proctp. Must be
// called nparams times, in rank order, immediately after NewProc — the same
// discipline the parser already follows for every other dense-linked
// container (Proc→Params, Call→args, CompoundStmt→children).
func (t *Types) AppendParamType(proctp Type, argtp Type, rank int32) ParamType {
	return t.paramInfos.Alloc(paramTypeInfo{ProcType: proctp, ArgType: argtp, Rank: rank})
}

func (t *Types) Kind(h Type) TypeKind     { return t.infos.Get(h).Kind }
func (t *Types) Name(h Type) intern.String { return t.infos.Get(h).Name }
func (t *Types) Size(h Type) int          { return t.infos.Get(h).Size }
func (t *Types) Inner(h Type) Type        { return t.infos.Get(h).Inner }
func (t *Types) IndexType(h Type) Type    { return t.infos.Get(h).IndexType }
func (t *Types) ValueType(h Type) Type    { return t.infos.Get(h).ValueType }
func (t *Types) ReturnType(h Type) Type   { return t.infos.Get(h).ReturnType }
func (t *Types) NParams(h Type) int32     { return t.infos.Get(h).NParams }
func (t *Types) FirstParamType(h Type) ParamType { return t.infos.Get(h).FirstParamType }
func (t *Types) Ref(h Type) Symref        { return t.infos.Get(h).Ref }
func (t *Types) ResolvedType(h Type) Type { return t.infos.Get(h).ResolvedType }
func (t *Types) IsComplete(h Type) bool   { return t.infos.Get(h).IsComplete }

// SetComplete is called only by the Type-complete fixed point (package
// resolve); IsComplete only ever transitions false→true (spec §8 property 4).
func (t *Types) SetComplete(h Type) { t.infos.Get(h).IsComplete = true }

// BindResolved records the resolved target of a reference type, once, during
// type completion.
func (t *Types) BindResolved(h Type, target Type) { t.infos.Get(h).ResolvedType = target }

func (t *Types) ParamProcType(h ParamType) Type { return t.paramInfos.Get(h).ProcType }
func (t *Types) ParamArgType(h ParamType) Type  { return t.paramInfos.Get(h).ArgType }
func (t *Types) ParamRank(h ParamType) int32    { return t.paramInfos.Get(h).Rank }

func (t *Types) Len() int { return t.infos.Len() }

// All iterates every type in allocation order, for the completion fixed
// point and for the "report all incomplete types" diagnostic step.
func (t *Types) All(fn func(h Type)) {
	for i := 1; i <= t.infos.Len(); i++ {
		fn(Type(i))
	}
}

// Params iterates the dense [first, first+n) parameter-type run of a proc
// type in rank order.
func (t *Types) Params(h Type) []ParamType {
	n := int(t.NParams(h))
	if n == 0 {
		return nil
	}
	first := t.FirstParamType(h)
	out := make([]ParamType, n)
	for i := 0; i < n; i++ {
		out[i] = first + ParamType(i)
	}
	return out
}
