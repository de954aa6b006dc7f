package slotgo_test

import (
	"testing"

	"github.com/hupe1980/slotgo"
)

type payload struct {
	id   uint64
	data [4]uint64
}

func BenchmarkArena_Insert(b *testing.B) {
	arena := slotgo.NewWithCapacity[payload](b.N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arena.Insert(payload{id: uint64(i)})
	}
}

// BenchmarkArena_InsertReuse isolates the free-list path: every insert
// is served from a freed slot, so storage never grows.
func BenchmarkArena_InsertReuse(b *testing.B) {
	arena := slotgo.New[payload]()
	h := arena.Insert(payload{})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arena.Remove(h)
		h = arena.Insert(payload{id: uint64(i)})
	}
}

func BenchmarkArena_Get(b *testing.B) {
	const size = 1 << 16

	arena := slotgo.NewWithCapacity[payload](size)
	handles := make([]slotgo.Handle, size)
	for i := range handles {
		handles[i] = arena.Insert(payload{id: uint64(i)})
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := arena.Get(handles[i&(size-1)]); !ok {
			b.Fatal("handle lost")
		}
	}
}

func BenchmarkArena_All(b *testing.B) {
	const size = 1 << 14

	arena := slotgo.NewWithCapacity[payload](size)
	for i := range size {
		arena.Insert(payload{id: uint64(i)})
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum uint64
		for _, v := range arena.All() {
			sum += v.id
		}
		_ = sum
	}
}

func BenchmarkPlainArena_Insert(b *testing.B) {
	arena := slotgo.NewPlainWithCapacity[payload](b.N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arena.Insert(payload{id: uint64(i)})
	}
}

func BenchmarkPlainArena_Get(b *testing.B) {
	const size = 1 << 16

	arena := slotgo.NewPlainWithCapacity[payload](size)
	handles := make([]slotgo.PlainHandle, size)
	for i := range handles {
		handles[i] = arena.Insert(payload{id: uint64(i)})
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := arena.Get(handles[i&(size-1)]); !ok {
			b.Fatal("handle lost")
		}
	}
}
