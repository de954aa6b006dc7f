package handleset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/slotgo"
)

// PlainSet is a compressed set of plain (position-only) arena
// handles. Positions fit a 32-bit bitmap directly.
type PlainSet struct {
	rb *roaring.Bitmap
}

// NewPlain creates a new empty plain handle set.
func NewPlain() *PlainSet {
	return &PlainSet{rb: roaring.New()}
}

// CollectPlain creates a set holding every handle of the sequence.
func CollectPlain(handles iter.Seq[slotgo.PlainHandle]) *PlainSet {
	s := NewPlain()
	for h := range handles {
		s.Add(h)
	}
	return s
}

// Add adds a handle to the set.
func (s *PlainSet) Add(h slotgo.PlainHandle) {
	s.rb.Add(h.Index())
}

// Remove removes a handle from the set.
func (s *PlainSet) Remove(h slotgo.PlainHandle) {
	s.rb.Remove(h.Index())
}

// Contains checks if a handle is in the set.
func (s *PlainSet) Contains(h slotgo.PlainHandle) bool {
	return s.rb.Contains(h.Index())
}

// IsEmpty returns true if the set is empty.
func (s *PlainSet) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of handles in the set.
func (s *PlainSet) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Clear removes all handles from the set.
func (s *PlainSet) Clear() {
	s.rb.Clear()
}

// Clone returns a deep copy of the set.
func (s *PlainSet) Clone() *PlainSet {
	return &PlainSet{rb: s.rb.Clone()}
}

// And computes the intersection with other in place.
func (s *PlainSet) And(other *PlainSet) {
	s.rb.And(other.rb)
}

// Or computes the union with other in place.
func (s *PlainSet) Or(other *PlainSet) {
	s.rb.Or(other.rb)
}

// AndNot removes every handle of other from the set.
func (s *PlainSet) AndNot(other *PlainSet) {
	s.rb.AndNot(other.rb)
}

// All returns an iterator over the handles of the set in position
// order.
func (s *PlainSet) All() iter.Seq[slotgo.PlainHandle] {
	return func(yield func(slotgo.PlainHandle) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(slotgo.NewPlainHandle(it.Next())) {
				return
			}
		}
	}
}
