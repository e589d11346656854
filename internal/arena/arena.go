// Package arena implements the indexed-entity storage model used throughout
// the compiler: every phase allocates value-typed records into a
// homogeneously-typed, append-only slice and hands back a small integer
// handle instead of a pointer. Handles stay valid for the lifetime of the
// compilation even though the backing slice may be reallocated underneath
// them by append.
package arena

import (
	"fmt"
	"unsafe"
)

// Handle is satisfied by any nominal integer type used to index an Arena.
// Each entity kind (String, Token, Symbol, Scope, ...) defines its own
// distinct handle type so that, say, passing a Scope where a Symbol is
// expected is a compile error rather than a silently wrong array index.
type Handle interface {
	~int32
}

// Arena is an append-only, index-addressed store of T, addressed by handle
// H. Index 0 is reserved as the invalid/sentinel handle: a zero-valued H is
// never returned by Alloc, so the zero value of any handle type doubles as
// "no such entity" (e.g. Scope(0) for "no parent", Symbol(0) for "unresolved").
type Arena[H Handle, T any] struct {
	items []T
}

// New creates an empty arena with room for capacity entities before the
// first reallocation. The sentinel occupies slot 0.
func New[H Handle, T any](capacity int) *Arena[H, T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Arena[H, T]{items: make([]T, 1, capacity+1)}
}

// Alloc appends v and returns its handle.
func (a *Arena[H, T]) Alloc(v T) H {
	h := H(len(a.items))
	a.items = append(a.items, v)
	return h
}

// Reserve allocates a zero-valued slot and returns its handle, for callers
// that need the handle before the record's fields are all known (e.g. a
// container that must link back to its own handle).
func (a *Arena[H, T]) Reserve() H {
	var zero T
	return a.Alloc(zero)
}

// Get dereferences a handle. It panics on an invalid handle: handles are
// only ever minted by Alloc/Reserve, so an out-of-range handle reaching here
// indicates a bug upstream (a stray zero value used as a real reference, or
// cross-arena handle confusion), not a condition callers should recover from.
func (a *Arena[H, T]) Get(h H) *T {
	if !a.Valid(h) {
		panic(fmt.Sprintf("arena: invalid handle %d", int(h)))
	}
	return &a.items[int(h)]
}

// Valid reports whether h was actually minted by this arena (excludes the
// sentinel and anything out of range).
func (a *Arena[H, T]) Valid(h H) bool {
	return h > 0 && int(h) < len(a.items)
}

// Len reports the number of live entities, excluding the sentinel.
func (a *Arena[H, T]) Len() int {
	return len(a.items) - 1
}

// All iterates every live handle in allocation order.
func (a *Arena[H, T]) All(fn func(h H, v *T)) {
	for i := 1; i < len(a.items); i++ {
		fn(H(i), &a.items[i])
	}
}

// Bytes reports the storage occupied by the arena's backing slice, for
// debug-trace size reporting.
func (a *Arena[H, T]) Bytes() int {
	var zero T
	return cap(a.items) * int(unsafe.Sizeof(zero))
}
