package slotvec_test

import (
	"cmp"
	"slices"

	"github.com/cockroachdb/errors"
	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/edwinsyarief/slotvec"
	"github.com/edwinsyarief/slotvec/internal/model"
)

// harness drives a real Vec and the reference model with the same operations
// and compares everything observable after each step.
type harness struct {
	vec     *slotvec.Vec[int]
	model   *model.Model[int]
	retired []slotvec.Handle
	maxGen  map[uint32]uint64 // highest generation ever issued per slot
	next    int
}

func newHarness(capacity int) *harness {
	return &harness{
		vec:    slotvec.WithCapacity[int](capacity),
		model:  model.New[int](),
		maxGen: make(map[uint32]uint64),
	}
}

// run applies one operation per byte and compares state after each.
func (h *harness) run(ops []byte) error {
	for i, b := range ops {
		err := h.step(b)
		if err != nil {
			return errors.Wrapf(err, "op %d (0x%02x)", i, b)
		}
		err = h.compare()
		if err != nil {
			return errors.Wrapf(err, "after op %d (0x%02x)", i, b)
		}
	}
	return nil
}

func (h *harness) step(b byte) error {
	arg := int(b >> 3)
	switch b % 5 {
	case 0, 1:
		value := h.next
		h.next++
		handle := h.vec.Push(value)
		if prev, seen := h.maxGen[handle.Slot]; seen && handle.Generation <= prev {
			return errors.Newf("slot %d reissued with generation %d, already saw %d", handle.Slot, handle.Generation, prev)
		}
		h.maxGen[handle.Slot] = handle.Generation
		return h.model.Push(handle, value)
	case 2:
		if len(h.model.Order) == 0 {
			return nil
		}
		handle := h.model.Order[arg%len(h.model.Order)]
		if !h.vec.Remove(handle) {
			return errors.Newf("remove of live handle %+v returned false", handle)
		}
		h.model.Remove(handle)
		h.retired = append(h.retired, handle)
	case 3:
		if len(h.retired) == 0 {
			return nil
		}
		handle := h.retired[arg%len(h.retired)]
		if h.vec.Remove(handle) {
			return errors.Newf("remove of retired handle %+v returned true", handle)
		}
	case 4:
		if arg%8 == 0 {
			h.retired = append(h.retired, h.model.Order...)
			h.vec.Clear()
			h.model.Clear()
			return nil
		}
		if len(h.model.Order) == 0 {
			return nil
		}
		handle := h.model.Order[arg%len(h.model.Order)]
		value := h.next
		h.next++
		if !h.vec.Set(handle, value) {
			return errors.Newf("set of live handle %+v returned false", handle)
		}
		h.model.Set(handle, value)
	}
	return nil
}

func (h *harness) compare() error {
	if got, want := h.vec.Len(), h.model.Len(); got != want {
		return errors.Newf("Len() = %d, model has %d", got, want)
	}
	if got, want := h.vec.IsEmpty(), h.model.Len() == 0; got != want {
		return errors.Newf("IsEmpty() = %v, want %v", got, want)
	}

	for _, handle := range h.model.Order {
		want, _ := h.model.Get(handle)
		got, ok := h.vec.Get(handle)
		if !ok || got != want {
			return errors.Newf("Get(%+v) = (%d, %v), want (%d, true)", handle, got, ok, want)
		}
	}
	for _, handle := range h.retired {
		if _, ok := h.vec.Get(handle); ok {
			return errors.Newf("Get(%+v) resolved a retired handle", handle)
		}
		if h.vec.Contains(handle) {
			return errors.Newf("Contains(%+v) reported a retired handle", handle)
		}
	}

	got := slices.Collect(h.vec.Values())
	slices.Sort(got)
	want := h.model.Values(cmp.Compare[int])
	if diff := gocmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		return errors.Newf("Values() mismatch (-model +real):\n%s", diff)
	}

	handles := slices.Collect(h.vec.Handles())
	sortHandles := cmpopts.SortSlices(func(a, b slotvec.Handle) bool {
		return a.Slot < b.Slot || (a.Slot == b.Slot && a.Generation < b.Generation)
	})
	if diff := gocmp.Diff(h.model.Order, handles, sortHandles, cmpopts.EquateEmpty()); diff != "" {
		return errors.Newf("Handles() mismatch (-model +real):\n%s", diff)
	}

	return h.vec.CheckInvariants()
}
