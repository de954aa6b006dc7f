package slotgo

import "iter"

// All returns an iterator over the live entries of the arena in
// storage order, yielding each handle together with a pointer to its
// value. The pointer may be used to mutate the value in place.
//
// Every call produces a fresh, restartable traversal. Structural
// mutation (Insert, Remove, Clear, Retain) while a traversal is in
// flight is a caller error; mutate through the yielded pointer
// instead, or collect handles first.
func (a *Arena[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if !s.occupied {
				continue
			}
			h := Handle{index: uint32(i), generation: s.generation}
			if !yield(h, &s.value) {
				return
			}
		}
	}
}

// Keys returns an iterator over the handles of the live entries in
// storage order.
func (a *Arena[T]) Keys() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for h := range a.All() {
			if !yield(h) {
				return
			}
		}
	}
}

// Values returns an iterator over copies of the live values in
// storage order.
func (a *Arena[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.All() {
			if !yield(*v) {
				return
			}
		}
	}
}

// All returns an iterator over the live entries of the arena in
// storage order. See Arena.All for the traversal contract.
func (a *PlainArena[T]) All() iter.Seq2[PlainHandle, *T] {
	return func(yield func(PlainHandle, *T) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if !s.occupied {
				continue
			}
			if !yield(PlainHandle{index: uint32(i)}, &s.value) {
				return
			}
		}
	}
}

// Keys returns an iterator over the handles of the live entries in
// storage order.
func (a *PlainArena[T]) Keys() iter.Seq[PlainHandle] {
	return func(yield func(PlainHandle) bool) {
		for h := range a.All() {
			if !yield(h) {
				return
			}
		}
	}
}

// Values returns an iterator over copies of the live values in
// storage order.
func (a *PlainArena[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.All() {
			if !yield(*v) {
				return
			}
		}
	}
}
