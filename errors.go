package slotgo

import (
	"errors"
	"fmt"
)

// ErrTooManySlots is the panic value raised by Insert when the uint32
// index space is exhausted. With four billion live slots this is
// effectively a resource-exhaustion condition, on par with the
// allocator failing to grow the backing storage.
var ErrTooManySlots = errors.New("slotgo: slot index space exhausted")

// InvalidHandleError is the panic value raised by the At accessors
// when a handle does not resolve to a live entry: position out of
// range, slot vacant, or (generational arenas only) generation stale.
//
// Generation is zero for plain handles.
type InvalidHandleError struct {
	Index      uint32
	Generation uint32
}

func (e *InvalidHandleError) Error() string {
	if e.Generation == 0 {
		return fmt.Sprintf("slotgo: invalid handle I%d", e.Index)
	}
	return fmt.Sprintf("slotgo: invalid handle I%d.%d", e.Index, e.Generation)
}
