// Package resolve implements the two passes that run after parsing
// completes (spec §4.4, §4.5): binding every Symref to its Symbol in a
// single pass, then propagating Type.isComplete to a fixed point.
package resolve

import (
	"sourcecc/internal/ast"
	cerrors "sourcecc/internal/errors"
	"sourcecc/internal/intern"
	"sourcecc/internal/symtab"
)

// Symrefs walks every symref in allocation order and binds it to the
// Symbol found by the spec §4.4 upward scope-chain scan. Processing order
// does not affect the outcome (all symbols exist before any symref is
// resolved), so a single pass suffices.
func Symrefs(prog *ast.Program, strs *intern.Table) {
	prog.Symrefs.All(func(h ast.Symref) {
		name := prog.Symrefs.Name(h)
		scope := prog.Symrefs.RefScope(h)
		sym, ok := symtab.Lookup(prog, scope, name)
		if !ok {
			cerrors.Panic(cerrors.New(cerrors.KindUnresolvedSymbol,
				"undefined symbol '"+strs.String(name)+"'", cerrors.Location{}))
		}
		prog.Symrefs.Bind(h, sym)
	})
}
