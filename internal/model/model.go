// Package model provides a deliberately simple, in-memory model of the
// publicly observable behavior of slotvec.Vec.
//
// The model favors clarity over performance: it keeps every live element in a
// map keyed by handle and remembers every handle that was ever retired. It
// does not issue handles itself; it records the ones the real Vec returns and
// checks that they are fresh.
package model

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/edwinsyarief/slotvec"
)

// ErrHandleReused is returned by Push when the real vector issues a handle
// that is live or was issued before.
var ErrHandleReused = errors.New("model: handle reused")

// Model tracks live and retired handles.
type Model[T comparable] struct {
	Live    map[slotvec.Handle]T
	Retired map[slotvec.Handle]struct{}
	// Order records live handles in push order so callers can walk them
	// deterministically. Removed handles are dropped from it.
	Order []slotvec.Handle
}

// New returns an empty model.
func New[T comparable]() *Model[T] {
	return &Model[T]{
		Live:    make(map[slotvec.Handle]T),
		Retired: make(map[slotvec.Handle]struct{}),
	}
}

// Push records that h was issued for value.
func (m *Model[T]) Push(h slotvec.Handle, value T) error {
	if h.IsZero() {
		return errors.Wrap(ErrHandleReused, "zero handle issued")
	}
	if _, ok := m.Live[h]; ok {
		return errors.Wrapf(ErrHandleReused, "handle %+v is still live", h)
	}
	if _, ok := m.Retired[h]; ok {
		return errors.Wrapf(ErrHandleReused, "handle %+v was retired", h)
	}
	m.Live[h] = value
	m.Order = append(m.Order, h)
	return nil
}

// Remove retires h and reports whether it was live.
func (m *Model[T]) Remove(h slotvec.Handle) bool {
	if _, ok := m.Live[h]; !ok {
		return false
	}
	delete(m.Live, h)
	m.Retired[h] = struct{}{}
	m.Order = slices.DeleteFunc(m.Order, func(o slotvec.Handle) bool { return o == h })
	return true
}

// Get returns the value recorded for a live handle.
func (m *Model[T]) Get(h slotvec.Handle) (T, bool) {
	v, ok := m.Live[h]
	return v, ok
}

// Set overwrites the value of a live handle and reports whether it was live.
func (m *Model[T]) Set(h slotvec.Handle, value T) bool {
	if _, ok := m.Live[h]; !ok {
		return false
	}
	m.Live[h] = value
	return true
}

// Clear retires every live handle.
func (m *Model[T]) Clear() {
	for h := range m.Live {
		m.Retired[h] = struct{}{}
	}
	clear(m.Live)
	m.Order = m.Order[:0]
}

// Len returns the number of live handles.
func (m *Model[T]) Len() int {
	return len(m.Live)
}

// Values returns the live values sorted with cmp.
func (m *Model[T]) Values(cmp func(a, b T) int) []T {
	out := make([]T, 0, len(m.Live))
	for _, v := range m.Live {
		out = append(out, v)
	}
	slices.SortFunc(out, cmp)
	return out
}
