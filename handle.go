package slotgo

import "fmt"

// noIndex terminates the free list and marks positions that are never
// handed out. It doubles as the upper bound of the index space.
const noIndex = ^uint32(0)

// maxGeneration is the generation at which a slot is retired. A slot
// that reaches it is never returned to the free list, so no handle can
// alias a later occupant.
const maxGeneration = ^uint32(0)

// Handle identifies an entry in an Arena. It pairs a slot position
// with the generation under which the entry was inserted, so a handle
// held across a remove/insert cycle of its slot is recognized as
// stale.
//
// Handles are pure values: copyable, comparable with ==, and usable as
// map keys. They carry no ownership; all access goes through the
// arena. The zero Handle is invalid against every arena.
type Handle struct {
	index      uint32
	generation uint32
}

// NewHandle constructs a handle from its raw parts. It exists for
// callers that persist or transport handle coordinates (for example
// handleset); a fabricated handle is still fully validated on every
// access.
func NewHandle(index, generation uint32) Handle {
	return Handle{index: index, generation: generation}
}

// Index returns the slot position the handle refers to.
func (h Handle) Index() uint32 { return h.index }

// Generation returns the generation recorded at insertion time.
func (h Handle) Generation() uint32 { return h.generation }

// IsZero reports whether h is the zero handle.
func (h Handle) IsZero() bool { return h == Handle{} }

func (h Handle) String() string {
	return fmt.Sprintf("I%d.%d", h.index, h.generation)
}

// PlainHandle identifies an entry in a PlainArena by position alone.
// It is the cheapest handle form (a single integer) but cannot
// distinguish a freed-then-reused position from its original
// occupant. See PlainArena for the implications.
type PlainHandle struct {
	index uint32
}

// NewPlainHandle constructs a plain handle for the given position.
func NewPlainHandle(index uint32) PlainHandle {
	return PlainHandle{index: index}
}

// Index returns the slot position the handle refers to.
func (h PlainHandle) Index() uint32 { return h.index }

func (h PlainHandle) String() string {
	return fmt.Sprintf("I%d", h.index)
}
