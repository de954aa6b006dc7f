// Package slotgo provides a slot arena: bulk storage for many
// same-typed values addressed through cheap, stable handles instead of
// pointers or raw indices.
//
// An arena keeps its values in one contiguous, growable slot store.
// Removed slots are threaded into an intrusive free list and reused by
// later inserts, so insertion and removal are O(1) and the backing
// storage never fragments. Handles are small comparable values; all
// access goes through the arena and is bounds- and occupancy-checked.
//
// # Handle Strategies
//
// Two arena types cover the two handle strategies:
//
//   - Arena[T] issues generational handles (position + generation).
//     A handle issued before a slot was freed and reused is detected
//     as stale and rejected, solving the ABA problem by value
//     comparison instead of pointer identity.
//   - PlainArena[T] issues bare positions. Cheaper, but a handle held
//     across a remove/insert cycle silently aliases the new occupant.
//     This is a deliberate opt-in trade-off; pick the strategy once
//     at construction.
//
// # Quick Start
//
//	arena := slotgo.New[string]()
//
//	hello := arena.Insert("Hello")
//	world := arena.Insert("World")
//
//	fmt.Println(*arena.At(hello), *arena.At(world)) // Hello World
//
//	arena.Remove(hello)
//	_, ok := arena.Get(hello) // ok == false, handle is gone
//
// # Access Semantics
//
// Get, Ref, Contains and Remove never panic: an out-of-range, vacant
// or stale handle reports absence, so they are safe to call
// speculatively, even with handles from another arena. At is the
// indexing-style accessor and the sole fatal path; it panics with
// *InvalidHandleError, mirroring what slice indexing does for an
// out-of-range position.
//
// # Concurrency
//
// An arena is an ordinary owned value with no internal locking.
// Callers enforce single-writer-or-multiple-readers access, for
// example with a sync.RWMutex or by confining the arena to one
// goroutine. No operation blocks or performs I/O.
//
// # Related Packages
//
//   - handleset: compressed sets of handles backed by Roaring bitmaps,
//     for tracking groups of live entries next to an arena.
package slotgo
