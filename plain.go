package slotgo

import "slices"

// plainSlot is one unit of backing storage in a PlainArena. It is the
// generational slot minus the generation counter.
type plainSlot[T any] struct {
	value    T
	next     uint32 // next free position while vacant
	occupied bool
}

// PlainArena is a slot arena issuing plain (position-only) handles.
//
// It shares the storage and free-list mechanics of Arena but skips
// generation bookkeeping, making handles a single integer and slots
// one word smaller. The price is ABA blindness: a PlainHandle held
// across a remove/insert cycle of its position resolves to the new,
// unrelated occupant. Every access is still bounds- and
// occupancy-checked, so this aliasing is never a memory-safety issue.
// Use Arena when stale handles must be detected.
type PlainArena[T any] struct {
	slots    []plainSlot[T]
	freeHead uint32
	live     int
	counters counters
}

// NewPlain creates an empty PlainArena with no backing capacity
// reserved.
func NewPlain[T any]() *PlainArena[T] {
	return &PlainArena[T]{freeHead: noIndex}
}

// NewPlainWithCapacity creates an empty PlainArena with storage
// pre-reserved for n entries.
func NewPlainWithCapacity[T any](n int) *PlainArena[T] {
	return &PlainArena[T]{
		slots:    make([]plainSlot[T], 0, n),
		freeHead: noIndex,
	}
}

func (a *PlainArena[T]) lookup(h PlainHandle) *plainSlot[T] {
	if uint64(h.index) >= uint64(len(a.slots)) {
		return nil
	}
	s := &a.slots[h.index]
	if !s.occupied {
		return nil
	}
	return s
}

// Insert adds a value to the arena and returns its handle, reusing the
// most recently freed position first. It panics with ErrTooManySlots
// once the uint32 index space is exhausted.
func (a *PlainArena[T]) Insert(value T) PlainHandle {
	if idx := a.freeHead; idx != noIndex {
		s := &a.slots[idx]
		a.freeHead = s.next
		s.value = value
		s.next = noIndex
		s.occupied = true
		a.live++
		a.counters.inserts++
		a.counters.reused++
		return PlainHandle{index: idx}
	}

	if uint64(len(a.slots)) >= uint64(noIndex) {
		panic(ErrTooManySlots)
	}
	a.live++
	a.counters.inserts++
	a.slots = append(a.slots, plainSlot[T]{
		value:    value,
		next:     noIndex,
		occupied: true,
	})
	return PlainHandle{index: uint32(len(a.slots) - 1)}
}

// Remove takes the value for h out of the arena and frees its slot.
// It reports false when the position is out of range or vacant, so a
// double remove of the same handle is a no-op. Note that after the
// position has been reused, the same handle refers to the new
// occupant and Remove will remove that.
func (a *PlainArena[T]) Remove(h PlainHandle) (T, bool) {
	var zero T
	s := a.lookup(h)
	if s == nil {
		return zero, false
	}

	value := s.value
	s.value = zero
	s.occupied = false
	s.next = a.freeHead
	a.freeHead = h.index

	a.live--
	a.counters.removes++
	return value, true
}

// Get returns a copy of the value for h.
func (a *PlainArena[T]) Get(h PlainHandle) (T, bool) {
	if s := a.lookup(h); s != nil {
		return s.value, true
	}
	var zero T
	return zero, false
}

// Ref returns a pointer to the value for h, for in-place mutation.
// The pointer stays valid until the slot is removed or the arena
// grows; do not hold it across inserts.
func (a *PlainArena[T]) Ref(h PlainHandle) (*T, bool) {
	if s := a.lookup(h); s != nil {
		return &s.value, true
	}
	return nil, false
}

// At is the indexing-style accessor: it returns a pointer to the value
// for h and panics with *InvalidHandleError when the handle is
// invalid.
func (a *PlainArena[T]) At(h PlainHandle) *T {
	s := a.lookup(h)
	if s == nil {
		panic(&InvalidHandleError{Index: h.index})
	}
	return &s.value
}

// Contains reports whether h resolves to a live entry.
func (a *PlainArena[T]) Contains(h PlainHandle) bool {
	return a.lookup(h) != nil
}

// Len returns the number of live entries.
func (a *PlainArena[T]) Len() int { return a.live }

// IsEmpty reports whether the arena holds no live entries.
func (a *PlainArena[T]) IsEmpty() bool { return a.live == 0 }

// Capacity returns the number of slots the arena can hold without
// growing the backing storage.
func (a *PlainArena[T]) Capacity() int { return cap(a.slots) }

// Reserve grows the backing storage so that at least additional more
// entries fit without reallocating, counting vacant slots as headroom.
func (a *PlainArena[T]) Reserve(additional int) {
	headroom := a.Capacity() - a.Len()
	if additional <= headroom {
		return
	}
	a.slots = slices.Grow(a.slots, additional-headroom)
}

// Clear removes all entries and resets the free list, keeping the
// allocated capacity. All outstanding handles are invalidated, though
// ones with low positions will alias entries inserted after Clear.
func (a *PlainArena[T]) Clear() {
	clear(a.slots)
	a.slots = a.slots[:0]
	a.freeHead = noIndex
	a.live = 0
}

// Retain removes every entry for which keep returns false, visiting
// live entries in storage order. keep must not mutate the arena.
func (a *PlainArena[T]) Retain(keep func(h PlainHandle, value *T) bool) {
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
		h := PlainHandle{index: uint32(i)}
		if !keep(h, &s.value) {
			a.Remove(h)
		}
	}
}

// Stats returns a point-in-time snapshot of arena usage.
func (a *PlainArena[T]) Stats() Stats {
	return a.counters.snapshot(a.live, len(a.slots), cap(a.slots))
}
