package slotvec

import "math"

// DefaultCapacity is the number of elements New reserves room for.
const DefaultCapacity = 256

// firstGeneration is the generation a freshly created slot starts with.
// Generation 0 is never issued, which keeps the zero Handle invalid.
const firstGeneration = 1

// maxSlots is the number of slot ids a Handle can address.
var maxSlots uint64 = math.MaxUint32 + 1

// Vec is a dense vector of T addressed by generational handles.
//
// The zero value is an empty Vec ready to use.
type Vec[T any] struct {
	data  []T      // dense element storage; [0, live) is live
	tags  []Handle // handle currently owning each dense position
	slots []uint32 // slot id -> dense position
	live  int      // number of live elements
}

// New creates an empty Vec with room for DefaultCapacity elements.
func New[T any]() *Vec[T] {
	return WithCapacity[T](DefaultCapacity)
}

// WithCapacity creates an empty Vec with storage reserved for n elements, so
// the first n pushes do not reallocate.
//
// Parameters:
//   - n: The number of elements to reserve room for. A negative n is treated
//     as zero.
//
// Returns:
//   - The newly created, empty Vec.
func WithCapacity[T any](n int) *Vec[T] {
	n = max(n, 0)
	return &Vec[T]{
		data:  make([]T, 0, n),
		tags:  make([]Handle, 0, n),
		slots: make([]uint32, 0, n),
	}
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int {
	return v.live
}

// IsEmpty reports whether the Vec holds no live elements.
func (v *Vec[T]) IsEmpty() bool {
	return v.live == 0
}

// Cap returns the number of elements the dense storage can hold before it has
// to grow.
func (v *Vec[T]) Cap() int {
	return cap(v.data)
}

// Slots returns the number of slot ids this Vec has issued so far. Slots are
// never released; removed ones are recycled by later pushes.
func (v *Vec[T]) Slots() int {
	return len(v.slots)
}

// Reserve makes sure that n more elements can be pushed without reallocating
// the dense storage.
func (v *Vec[T]) Reserve(n int) {
	if n <= 0 {
		return
	}
	need := v.live + n - len(v.data)
	if need <= 0 {
		return
	}
	v.data = reserve(v.data, need)
	v.tags = reserve(v.tags, need)
	v.slots = reserve(v.slots, need)
}

// Push stores value and returns a fresh handle to it.
//
// A retired position is recycled when one is available; its slot keeps the
// generation that the removal advanced it to. Otherwise a new slot is
// created. Amortized O(1).
//
// Push panics once every slot id a Handle can express is in use.
//
// Parameters:
//   - value: The element to store.
//
// Returns:
//   - A handle that resolves to value until it is removed.
func (v *Vec[T]) Push(value T) Handle {
	if v.live == len(v.data) {
		v.grow(value)
	} else {
		v.data[v.live] = value
	}
	h := v.tags[v.live]
	v.live++
	return h
}

// grow appends a brand-new slot whose dense position equals its slot id.
func (v *Vec[T]) grow(value T) {
	if uint64(len(v.data)) >= maxSlots {
		panic(tooManySlots(len(v.data)))
	}
	slot := uint32(len(v.data))
	v.data = append(v.data, value)
	v.tags = append(v.tags, Handle{Slot: slot, Generation: firstGeneration})
	v.slots = append(v.slots, slot)
}

// Remove retires the element h refers to and reports whether it did. A stale
// handle (already removed, or never matching) is a no-op returning false.
//
// The last live element is moved into the freed position, so Remove is O(1)
// and the live elements stay contiguous.
//
// Parameters:
//   - h: The handle to retire. The zero Handle is always stale; any other
//     handle whose slot this Vec never issued causes a panic carrying
//     ErrForeignHandle.
//
// Returns:
//   - true if h was live and is now removed, false if it was already stale.
func (v *Vec[T]) Remove(h Handle) bool {
	i, ok := v.resolve(h)
	if !ok {
		return false
	}
	v.retire(i)
	return true
}

// retire removes the live element at dense position i.
func (v *Vec[T]) retire(i int) {
	v.tags[i].Generation++
	v.live--
	last := v.live
	if i != last {
		v.data[i], v.data[last] = v.data[last], v.data[i]
		v.tags[i], v.tags[last] = v.tags[last], v.tags[i]
		v.slots[v.tags[i].Slot] = uint32(i)
	}
	v.slots[v.tags[last].Slot] = uint32(last)
	var zero T
	v.data[last] = zero
}

// Get returns a copy of the element h refers to. The boolean is false when h
// is stale or the zero Handle. Any other handle whose slot this Vec never
// issued causes a panic carrying ErrForeignHandle.
func (v *Vec[T]) Get(h Handle) (T, bool) {
	i, ok := v.resolve(h)
	if !ok {
		var zero T
		return zero, false
	}
	return v.data[i], true
}

// GetPtr returns a pointer to the element h refers to, or nil when h is stale.
// It panics if h was not issued by this Vec.
//
// The pointer aliases the dense storage: it stays valid only until the next
// call that pushes or removes elements.
func (v *Vec[T]) GetPtr(h Handle) *T {
	i, ok := v.resolve(h)
	if !ok {
		return nil
	}
	return &v.data[i]
}

// Set overwrites the element h refers to and reports whether h was valid. It
// panics if h was not issued by this Vec.
func (v *Vec[T]) Set(h Handle, value T) bool {
	i, ok := v.resolve(h)
	if !ok {
		return false
	}
	v.data[i] = value
	return true
}

// Contains reports whether h currently refers to a live element. Unlike the
// other accessors it never panics, so it can be used to check handles of
// unknown origin.
func (v *Vec[T]) Contains(h Handle) bool {
	if int(h.Slot) >= len(v.slots) {
		return false
	}
	_, ok := v.resolve(h)
	return ok
}

// Clear retires every live element. All outstanding handles become stale;
// slots and storage are kept for reuse.
func (v *Vec[T]) Clear() {
	var zero T
	for i := 0; i < v.live; i++ {
		v.tags[i].Generation++
		v.data[i] = zero
	}
	v.live = 0
}

// resolve maps h to its live dense position.
func (v *Vec[T]) resolve(h Handle) (int, bool) {
	if h.IsZero() {
		return 0, false
	}
	if int(h.Slot) >= len(v.slots) {
		panic(foreignHandle(h, len(v.slots)))
	}
	i := int(v.slots[h.Slot])
	if i >= v.live || v.tags[i].Generation != h.Generation {
		return 0, false
	}
	return i, true
}
