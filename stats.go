package slotgo

import (
	"fmt"
	"log/slog"
)

// Stats is a point-in-time snapshot of arena usage.
//
// Note on semantics:
//   - Live/Vacant/Capacity describe the current storage state
//   - the remaining fields are cumulative since construction
type Stats struct {
	Live     int    // Current: occupied slots
	Vacant   int    // Current: allocated but unoccupied slots
	Capacity int    // Current: backing storage capacity in slots
	Inserts  uint64 // Historical: total inserts
	Removes  uint64 // Historical: total removes
	Reused   uint64 // Historical: inserts served from the free list
	Retired  uint64 // Historical: slots taken out of circulation at the generation limit
}

func (s Stats) String() string {
	return fmt.Sprintf(
		"Stats{live: %d, vacant: %d, cap: %d, inserts: %d, removes: %d, reused: %d, retired: %d}",
		s.Live, s.Vacant, s.Capacity, s.Inserts, s.Removes, s.Reused, s.Retired,
	)
}

// LogValue implements slog.LogValuer, so a Stats snapshot can be
// attached to structured logs as a group attribute.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("live", s.Live),
		slog.Int("vacant", s.Vacant),
		slog.Int("capacity", s.Capacity),
		slog.Uint64("inserts", s.Inserts),
		slog.Uint64("removes", s.Removes),
		slog.Uint64("reused", s.Reused),
		slog.Uint64("retired", s.Retired),
	)
}

// counters accumulates the historical half of Stats. Shared by both
// arena variants; retired stays zero for PlainArena.
type counters struct {
	inserts uint64
	removes uint64
	reused  uint64
	retired uint64
}

func (c *counters) snapshot(live, allocated, capacity int) Stats {
	return Stats{
		Live:     live,
		Vacant:   allocated - live,
		Capacity: capacity,
		Inserts:  c.inserts,
		Removes:  c.removes,
		Reused:   c.reused,
		Retired:  c.retired,
	}
}
