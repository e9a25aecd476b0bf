// Package arena provides a typed, append-only slab allocator. It exists
// to replace the teacher C++ engine's single untyped `util::make<T>`
// arena (which hands back raw pointers into a shared block) with one
// arena per object kind, per spec §9's redesign note. Go's GC makes the
// manual free-at-shutdown step unnecessary, but keeping a dedicated Arena
// per kind still gives every tree/layout/PDF object a stable integer ID
// that is cheap to use as a map key for the interpreter's
// tree-node-to-layout-object back-pointer table (also called out in §9),
// and it keeps object pools from aliasing across unrelated kinds.
package arena

// ID identifies a value allocated from a specific Arena[T]. IDs are
// never reused within one Arena's lifetime.
type ID int

// Arena holds values of type T, handing out a stable ID for each and
// keeping them alive (and addressable via At) for the arena's lifetime.
// The zero value is ready to use.
type Arena[T any] struct {
	slabs []*T
}

// New allocates a fresh T, appends it to the arena and returns both the
// pointer (for immediate use) and its stable ID (for later lookup).
func (a *Arena[T]) New(v T) (*T, ID) {
	p := new(T)
	*p = v
	a.slabs = append(a.slabs, p)
	return p, ID(len(a.slabs) - 1)
}

// At retrieves the value previously allocated with the given ID.
func (a *Arena[T]) At(id ID) *T {
	if int(id) < 0 || int(id) >= len(a.slabs) {
		return nil
	}
	return a.slabs[id]
}

// Len reports how many values have been allocated.
func (a *Arena[T]) Len() int { return len(a.slabs) }

// All returns every value currently held by the arena, in allocation
// order. The returned slice aliases the arena's internal storage and
// must not be mutated in length.
func (a *Arena[T]) All() []*T { return a.slabs }
