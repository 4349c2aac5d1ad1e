package slotvec

import "iter"

// Values returns a sequence over copies of the live elements in dense order.
// Dense order is not insertion order once anything has been removed.
//
// The sequence may be ranged over any number of times. Pushing or removing
// elements while ranging is not supported; use Retain to remove while
// walking.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.live; i++ {
			if !yield(v.data[i]) {
				return
			}
		}
	}
}

// Pointers returns a sequence over pointers to the live elements in dense
// order. Writing through the pointers changes element contents only; handles
// stay valid.
func (v *Vec[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := 0; i < v.live; i++ {
			if !yield(&v.data[i]) {
				return
			}
		}
	}
}

// All returns a sequence of (handle, pointer) pairs for the live elements in
// dense order.
func (v *Vec[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		for i := 0; i < v.live; i++ {
			if !yield(v.tags[i], &v.data[i]) {
				return
			}
		}
	}
}

// Handles returns a sequence over the handles of the live elements in dense
// order.
func (v *Vec[T]) Handles() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for i := 0; i < v.live; i++ {
			if !yield(v.tags[i]) {
				return
			}
		}
	}
}

// Retain removes every live element for which keep returns false. Removals
// follow the same rules as Remove, so the handles of removed elements become
// stale and the survivors may move.
//
// Parameters:
//   - keep: Called once per live element with its handle and a pointer to it.
//     It may modify the element through the pointer.
//
// Returns:
//   - The number of elements removed.
func (v *Vec[T]) Retain(keep func(Handle, *T) bool) int {
	removed := 0
	for i := 0; i < v.live; {
		if keep(v.tags[i], &v.data[i]) {
			i++
			continue
		}
		// The former last element now sits at i and has not been visited.
		v.retire(i)
		removed++
	}
	return removed
}
