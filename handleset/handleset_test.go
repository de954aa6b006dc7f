package handleset_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/slotgo"
	"github.com/hupe1980/slotgo/handleset"
)

func TestSet_Basics(t *testing.T) {
	arena := slotgo.New[string]()

	h1 := arena.Insert("a")
	h2 := arena.Insert("b")

	set := handleset.New()
	assert.True(t, set.IsEmpty())

	set.Add(h1)
	set.Add(h2)
	set.Add(h2) // idempotent

	assert.False(t, set.IsEmpty())
	assert.Equal(t, uint64(2), set.Cardinality())
	assert.True(t, set.Contains(h1))
	assert.True(t, set.Contains(h2))

	set.Remove(h1)
	assert.False(t, set.Contains(h1))
	assert.Equal(t, uint64(1), set.Cardinality())

	set.Clear()
	assert.True(t, set.IsEmpty())
}

func TestSet_GenerationsDistinct(t *testing.T) {
	arena := slotgo.New[int]()

	old := arena.Insert(1)
	arena.Remove(old)
	fresh := arena.Insert(2) // same position, new generation
	require.Equal(t, old.Index(), fresh.Index())

	set := handleset.New()
	set.Add(fresh)

	// Same position, different generation: distinct members.
	assert.True(t, set.Contains(fresh))
	assert.False(t, set.Contains(old))
}

func TestSet_Collect(t *testing.T) {
	arena := slotgo.New[int]()

	handles := make([]slotgo.Handle, 0, 10)
	for i := range 10 {
		handles = append(handles, arena.Insert(i))
	}
	arena.Remove(handles[3])

	set := handleset.Collect(arena.Keys())
	assert.Equal(t, uint64(9), set.Cardinality())
	assert.False(t, set.Contains(handles[3]))
	assert.True(t, set.Contains(handles[4]))
}

func TestSet_Algebra(t *testing.T) {
	arena := slotgo.New[int]()

	a := handleset.New()
	b := handleset.New()
	var both []slotgo.Handle

	for i := range 12 {
		h := arena.Insert(i)
		if i%2 == 0 {
			a.Add(h)
		}
		if i%3 == 0 {
			b.Add(h)
		}
		if i%6 == 0 {
			both = append(both, h)
		}
	}

	union := a.Clone()
	union.Or(b)
	assert.Equal(t, uint64(8), union.Cardinality()) // 6 even + 4 by-three - 2 shared

	inter := a.Clone()
	inter.And(b)
	assert.Equal(t, uint64(len(both)), inter.Cardinality())
	for _, h := range both {
		assert.True(t, inter.Contains(h))
	}

	diff := a.Clone()
	diff.AndNot(b)
	assert.Equal(t, uint64(4), diff.Cardinality())
	for _, h := range both {
		assert.False(t, diff.Contains(h))
	}

	// Clones are independent of the originals.
	assert.Equal(t, uint64(6), a.Cardinality())
	assert.Equal(t, uint64(4), b.Cardinality())
}

func TestSet_AllPositionOrder(t *testing.T) {
	arena := slotgo.New[int]()

	set := handleset.New()
	for i := range 50 {
		set.Add(arena.Insert(i))
	}

	got := slices.Collect(set.All())
	require.Len(t, got, 50)
	assert.True(t, slices.IsSortedFunc(got, func(x, y slotgo.Handle) int {
		return int(x.Index()) - int(y.Index())
	}))

	// Round trip through the packed representation is lossless.
	for _, h := range got {
		assert.True(t, arena.Contains(h))
	}
}

func TestSet_LiveFilter(t *testing.T) {
	arena := slotgo.New[int]()

	tracked := handleset.New()
	var removed slotgo.Handle
	for i := range 6 {
		h := arena.Insert(i)
		tracked.Add(h)
		if i == 2 {
			removed = h
		}
	}
	arena.Remove(removed)

	// Intersecting with the arena's current keys drops dead members.
	tracked.And(handleset.Collect(arena.Keys()))
	assert.Equal(t, uint64(5), tracked.Cardinality())
	assert.False(t, tracked.Contains(removed))
}

func TestPlainSet_Basics(t *testing.T) {
	arena := slotgo.NewPlain[string]()

	h1 := arena.Insert("a")
	h2 := arena.Insert("b")

	set := handleset.NewPlain()
	set.Add(h1)
	set.Add(h2)

	assert.Equal(t, uint64(2), set.Cardinality())
	assert.True(t, set.Contains(h1))

	set.Remove(h1)
	assert.False(t, set.Contains(h1))

	got := slices.Collect(set.All())
	require.Len(t, got, 1)
	assert.Equal(t, h2, got[0])
}

func TestPlainSet_Algebra(t *testing.T) {
	a := handleset.NewPlain()
	b := handleset.NewPlain()

	for i := uint32(0); i < 10; i++ {
		if i%2 == 0 {
			a.Add(slotgo.NewPlainHandle(i))
		}
		if i < 5 {
			b.Add(slotgo.NewPlainHandle(i))
		}
	}

	inter := a.Clone()
	inter.And(b)
	assert.Equal(t, uint64(3), inter.Cardinality()) // 0, 2, 4

	union := a.Clone()
	union.Or(b)
	assert.Equal(t, uint64(7), union.Cardinality())

	diff := b.Clone()
	diff.AndNot(a)
	assert.Equal(t, uint64(2), diff.Cardinality()) // 1, 3
}

func TestCollectPlain(t *testing.T) {
	arena := slotgo.NewPlain[int]()
	for i := range 4 {
		arena.Insert(i)
	}

	set := handleset.CollectPlain(arena.Keys())
	assert.Equal(t, uint64(4), set.Cardinality())
}
