// Package handleset provides compressed sets of arena handles backed
// by Roaring bitmaps.
//
// A Set holds generational slotgo.Handle values by packing position
// and generation into a 64-bit key; a PlainSet holds position-only
// slotgo.PlainHandle values in a 32-bit bitmap. Both support the
// usual set algebra (And, Or, AndNot) in compressed form, which makes
// them cheap to keep next to an arena for tracking selections, tags,
// or other groups of live entries.
//
// Membership is purely by handle value: a set does not talk to the
// arena and does not notice removals. Intersect with the arena's
// current keys, or test candidates with Arena.Contains, when only
// live entries are wanted.
//
// Like the arenas themselves, sets carry no internal synchronization.
package handleset
