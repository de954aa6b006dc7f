package slotgo

import "slices"

// slot is one unit of backing storage in an Arena. A slot is born when
// the storage grows to include it and then cycles between occupied and
// vacant for the arena's lifetime; it is never deallocated.
//
// The free list is threaded through the slots themselves: next holds
// the position of the following vacant slot (noIndex terminates the
// chain), so reuse needs no auxiliary allocation.
type slot[T any] struct {
	value      T
	generation uint32 // bumped on every occupied -> vacant transition
	next       uint32 // next free position while vacant
	occupied   bool
}

// Arena is a slot arena issuing generational handles.
//
// Values live in one contiguous growable store. Insert and Remove are
// amortized O(1); positions are stable while an entry is live and get
// reused after removal, with the generation counter guarding against
// stale handles. The zero value is not usable; construct with New or
// NewWithCapacity.
type Arena[T any] struct {
	slots    []slot[T]
	freeHead uint32 // head of the vacant chain, noIndex when empty
	live     int
	counters counters
}

// New creates an empty Arena with no backing capacity reserved.
func New[T any]() *Arena[T] {
	return &Arena[T]{freeHead: noIndex}
}

// NewWithCapacity creates an empty Arena with storage pre-reserved for
// n entries.
func NewWithCapacity[T any](n int) *Arena[T] {
	return &Arena[T]{
		slots:    make([]slot[T], 0, n),
		freeHead: noIndex,
	}
}

// lookup resolves a handle to its slot, or nil when the handle is out
// of range, vacant, or stale.
func (a *Arena[T]) lookup(h Handle) *slot[T] {
	if uint64(h.index) >= uint64(len(a.slots)) {
		return nil
	}
	s := &a.slots[h.index]
	if !s.occupied || s.generation != h.generation {
		return nil
	}
	return s
}

// Insert adds a value to the arena and returns its handle. The most
// recently freed position is reused first; growth only happens when
// the free list is empty. Insert panics with ErrTooManySlots once the
// uint32 index space is exhausted.
func (a *Arena[T]) Insert(value T) Handle {
	if idx := a.freeHead; idx != noIndex {
		s := &a.slots[idx]
		a.freeHead = s.next
		s.value = value
		s.next = noIndex
		s.occupied = true
		a.live++
		a.counters.inserts++
		a.counters.reused++
		return Handle{index: idx, generation: s.generation}
	}

	if uint64(len(a.slots)) >= uint64(noIndex) {
		panic(ErrTooManySlots)
	}
	a.live++
	a.counters.inserts++
	a.slots = append(a.slots, slot[T]{
		value:      value,
		generation: 1, // generations start at 1 so the zero Handle never validates
		next:       noIndex,
		occupied:   true,
	})
	return Handle{index: uint32(len(a.slots) - 1), generation: 1}
}

// Remove takes the value for h out of the arena and frees its slot.
// It reports false without removing anything when the handle is
// invalid or stale, making repeated calls with the same handle
// harmless: the first one removes, the rest are no-ops.
func (a *Arena[T]) Remove(h Handle) (T, bool) {
	var zero T
	s := a.lookup(h)
	if s == nil {
		return zero, false
	}

	value := s.value
	s.value = zero
	s.occupied = false
	s.generation++
	if s.generation == maxGeneration {
		// Out of distinct generations for this position: retire the
		// slot instead of risking handle aliasing on reuse.
		s.next = noIndex
		a.counters.retired++
	} else {
		s.next = a.freeHead
		a.freeHead = h.index
	}

	a.live--
	a.counters.removes++
	return value, true
}

// Get returns a copy of the value for h.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	if s := a.lookup(h); s != nil {
		return s.value, true
	}
	var zero T
	return zero, false
}

// Ref returns a pointer to the value for h, for in-place mutation.
// The pointer stays valid until the slot is removed or the arena
// grows; do not hold it across inserts.
func (a *Arena[T]) Ref(h Handle) (*T, bool) {
	if s := a.lookup(h); s != nil {
		return &s.value, true
	}
	return nil, false
}

// At is the indexing-style accessor: it returns a pointer to the value
// for h and panics with *InvalidHandleError when the handle is
// invalid. Use Get or Ref for the non-fatal variants.
func (a *Arena[T]) At(h Handle) *T {
	s := a.lookup(h)
	if s == nil {
		panic(&InvalidHandleError{Index: h.index, Generation: h.generation})
	}
	return &s.value
}

// Contains reports whether h resolves to a live entry.
func (a *Arena[T]) Contains(h Handle) bool {
	return a.lookup(h) != nil
}

// Len returns the number of live entries.
func (a *Arena[T]) Len() int { return a.live }

// IsEmpty reports whether the arena holds no live entries.
func (a *Arena[T]) IsEmpty() bool { return a.live == 0 }

// Capacity returns the number of slots the arena can hold without
// growing the backing storage.
func (a *Arena[T]) Capacity() int { return cap(a.slots) }

// Reserve grows the backing storage so that at least additional more
// entries fit without reallocating, counting vacant slots as headroom.
func (a *Arena[T]) Reserve(additional int) {
	headroom := a.Capacity() - a.Len()
	if additional <= headroom {
		return
	}
	a.slots = slices.Grow(a.slots, additional-headroom)
}

// Clear removes all entries and resets the free list, keeping the
// allocated capacity. Handles issued before Clear are not detected as
// stale afterwards: generations restart with the storage, so a
// pre-Clear handle may alias a new entry. Treat Clear as invalidating
// every outstanding handle.
func (a *Arena[T]) Clear() {
	clear(a.slots) // release value references to the GC
	a.slots = a.slots[:0]
	a.freeHead = noIndex
	a.live = 0
}

// Retain removes every entry for which keep returns false, visiting
// live entries in storage order. keep must not mutate the arena.
func (a *Arena[T]) Retain(keep func(h Handle, value *T) bool) {
	remaining := a.live
	for i := range a.slots {
		if remaining == 0 {
			break
		}
		s := &a.slots[i]
		if !s.occupied {
			continue
		}
		remaining--
		h := Handle{index: uint32(i), generation: s.generation}
		if !keep(h, &s.value) {
			a.Remove(h)
		}
	}
}

// Stats returns a point-in-time snapshot of arena usage.
func (a *Arena[T]) Stats() Stats {
	return a.counters.snapshot(a.live, len(a.slots), cap(a.slots))
}
