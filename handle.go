// Package slotvec provides a dense, generic container that hands out
// generational handles to its elements.
//
// Elements live contiguously in a backing slice, so iteration is as fast as
// ranging over a plain slice. Removal is O(1): the last live element is
// swapped into the vacated position and an indirection table keeps every
// outstanding handle pointing at the right place. Each slot carries a
// generation counter that is bumped on removal, so a handle kept past its
// element's removal is reported as absent instead of silently resolving to
// whatever was pushed into the recycled slot later.
//
// A Vec is not safe for concurrent use. Readers may share it only while no
// goroutine mutates it.
package slotvec

// Handle identifies one element of a Vec across pushes and removals. It
// combines a stable slot id with the generation the slot had when the element
// was pushed.
//
// The zero Handle is never issued and always resolves to nothing.
type Handle struct {
	// Slot is the external slot id. It never changes for the lifetime of the
	// Vec, but may be reused by later elements.
	Slot uint32
	// Generation distinguishes successive occupants of the same slot. It is
	// incremented each time the slot's element is removed.
	Generation uint64
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h == Handle{}
}
