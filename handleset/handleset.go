package handleset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/slotgo"
)

// pack encodes a generational handle as a single bitmap key. The
// position occupies the high word so iteration order follows storage
// order, with generations as a tiebreak.
func pack(h slotgo.Handle) uint64 {
	return uint64(h.Index())<<32 | uint64(h.Generation())
}

func unpack(key uint64) slotgo.Handle {
	return slotgo.NewHandle(uint32(key>>32), uint32(key))
}

// Set is a compressed set of generational arena handles.
type Set struct {
	rb *roaring64.Bitmap
}

// New creates a new empty handle set.
func New() *Set {
	return &Set{rb: roaring64.New()}
}

// Collect creates a set holding every handle of the sequence, e.g.
// Collect(arena.Keys()).
func Collect(handles iter.Seq[slotgo.Handle]) *Set {
	s := New()
	for h := range handles {
		s.Add(h)
	}
	return s
}

// Add adds a handle to the set.
func (s *Set) Add(h slotgo.Handle) {
	s.rb.Add(pack(h))
}

// Remove removes a handle from the set.
func (s *Set) Remove(h slotgo.Handle) {
	s.rb.Remove(pack(h))
}

// Contains checks if a handle is in the set.
func (s *Set) Contains(h slotgo.Handle) bool {
	return s.rb.Contains(pack(h))
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of handles in the set.
func (s *Set) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Clear removes all handles from the set.
func (s *Set) Clear() {
	s.rb.Clear()
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{rb: s.rb.Clone()}
}

// And computes the intersection with other in place.
func (s *Set) And(other *Set) {
	s.rb.And(other.rb)
}

// Or computes the union with other in place.
func (s *Set) Or(other *Set) {
	s.rb.Or(other.rb)
}

// AndNot removes every handle of other from the set.
func (s *Set) AndNot(other *Set) {
	s.rb.AndNot(other.rb)
}

// All returns an iterator over the handles of the set in position
// order.
func (s *Set) All() iter.Seq[slotgo.Handle] {
	return func(yield func(slotgo.Handle) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(unpack(it.Next())) {
				return
			}
		}
	}
}
