package resolve

import (
	"sourcecc/internal/ast"
	cerrors "sourcecc/internal/errors"
)

// Types runs the spec §4.5 fixed point over the type arena. It must run
// after Symrefs, since a reference type's completeness depends on its
// Symref having already been bound. IsComplete only ever transitions
// false→true; the loop stops the first round nothing flips.
func Types(prog *ast.Program) error {
	for {
		changed := false
		prog.Types.All(func(h ast.Type) {
			if prog.Types.IsComplete(h) {
				return
			}
			if typeCompleteNow(prog, h) {
				prog.Types.SetComplete(h)
				changed = true
			}
		})
		if !changed {
			break
		}
	}

	var incomplete []ast.Type
	prog.Types.All(func(h ast.Type) {
		if !prog.Types.IsComplete(h) {
			incomplete = append(incomplete, h)
		}
	})
	if len(incomplete) > 0 {
		return cerrors.New(cerrors.KindIncompleteType, "one or more types failed to complete", cerrors.Location{})
	}
	return nil
}

// typeCompleteNow evaluates the per-kind completeness rule against the
// arena's current state. For a reference type it also caches the resolved
// target type the first time completeness is established.
func typeCompleteNow(prog *ast.Program, h ast.Type) bool {
	switch prog.Types.Kind(h) {
	case ast.TypeBase:
		return true

	case ast.TypeEntity:
		return prog.Types.IsComplete(prog.Types.Inner(h))

	case ast.TypeArray:
		return prog.Types.IsComplete(prog.Types.IndexType(h)) && prog.Types.IsComplete(prog.Types.ValueType(h))

	case ast.TypeProc:
		if !prog.Types.IsComplete(prog.Types.ReturnType(h)) {
			return false
		}
		for _, pt := range prog.Types.Params(h) {
			if !prog.Types.IsComplete(prog.Types.ParamArgType(pt)) {
				return false
			}
		}
		return true

	case ast.TypeReference:
		ref := prog.Types.Ref(h)
		if !prog.Symrefs.Resolved(ref) {
			return false
		}
		sym := prog.Symrefs.Sym(ref)
		if prog.Symbols.Kind(sym) != ast.SymbolType {
			cerrors.Panic(cerrors.New(cerrors.KindMismatch,
				"reference type names a symbol that is not a type", cerrors.Location{}))
		}
		target := prog.Symbols.Type(sym)
		if !prog.Types.IsComplete(target) {
			return false
		}
		prog.Types.BindResolved(h, target)
		return true

	default:
		return false
	}
}
