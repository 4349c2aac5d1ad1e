package slotvec

import (
	stderrors "errors"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestRemoveSwapsLastIntoHole(t *testing.T) {
	v := New[int]()
	a := v.Push(1)
	b := v.Push(2)
	c := v.Push(3)

	v.Remove(a)

	if v.data[0] != 3 || v.tags[0] != c {
		t.Errorf("expected last element moved to position 0, got data=%v tags=%v", v.data, v.tags)
	}
	if v.slots[c.Slot] != 0 {
		t.Errorf("expected slot %d to map to 0, got %d", c.Slot, v.slots[c.Slot])
	}
	if v.slots[a.Slot] != 2 {
		t.Errorf("expected retired slot %d to map to 2, got %d", a.Slot, v.slots[a.Slot])
	}
	if v.tags[2].Generation != a.Generation+1 {
		t.Errorf("expected retired generation %d, got %d", a.Generation+1, v.tags[2].Generation)
	}
	if v.slots[b.Slot] != 1 {
		t.Errorf("untouched slot moved to %d", v.slots[b.Slot])
	}
}

func TestRemoveLastIsInPlace(t *testing.T) {
	v := New[int]()
	a := v.Push(1)
	b := v.Push(2)

	v.Remove(b)

	if v.slots[a.Slot] != 0 || v.slots[b.Slot] != 1 {
		t.Errorf("unexpected slot table %v", v.slots)
	}
	if v.live != 1 || len(v.data) != 2 {
		t.Errorf("expected live=1 len=2, got live=%d len=%d", v.live, len(v.data))
	}
}

func TestRetiredPositionsAreZeroed(t *testing.T) {
	x, y := 1, 2
	v := New[*int]()
	a := v.Push(&x)
	v.Push(&y)

	v.Remove(a)
	if v.data[1] != nil {
		t.Error("expected retired position to drop its pointer")
	}

	v.Clear()
	if v.data[0] != nil {
		t.Error("expected Clear to drop pointers")
	}
}

func TestPushRecyclesRetiredTag(t *testing.T) {
	v := New[int]()
	a := v.Push(1)
	v.Remove(a)
	retired := v.tags[0]

	h := v.Push(2)
	if h != retired {
		t.Errorf("expected recycled handle %+v, got %+v", retired, h)
	}
	if len(v.slots) != 1 {
		t.Errorf("expected no new slot, got %d", len(v.slots))
	}
}

func TestCheckInvariantsDetectsCorruption(t *testing.T) {
	build := func() *Vec[int] {
		v := New[int]()
		v.PushMany(1, 2, 3)
		return v
	}

	cases := map[string]func(v *Vec[int]){
		"LiveTooLarge":    func(v *Vec[int]) { v.live = 4 },
		"TagsShort":       func(v *Vec[int]) { v.tags = v.tags[:2] },
		"SlotsShort":      func(v *Vec[int]) { v.slots = v.slots[:2] },
		"UnknownSlot":     func(v *Vec[int]) { v.tags[1].Slot = 9 },
		"DuplicateSlot":   func(v *Vec[int]) { v.tags[1].Slot = 0 },
		"ZeroGeneration":  func(v *Vec[int]) { v.tags[2].Generation = 0 },
		"BrokenSlotTable": func(v *Vec[int]) { v.slots[0], v.slots[1] = 1, 0 },
	}
	for name, corruptFn := range cases {
		t.Run(name, func(t *testing.T) {
			v := build()
			if err := v.CheckInvariants(); err != nil {
				t.Fatalf("unexpected error before corruption: %v", err)
			}
			corruptFn(v)
			err := v.CheckInvariants()
			if !errors.Is(err, ErrCorrupt) || !stderrors.Is(err, ErrCorrupt) {
				t.Errorf("expected ErrCorrupt, got %v", err)
			}
			if !errors.HasAssertionFailure(err) {
				t.Errorf("expected assertion failure, got %v", err)
			}
		})
	}
}

func TestReserveKeepsContents(t *testing.T) {
	s := []int{1, 2, 3}
	r := reserve(s, 10)
	if len(r) != 3 || cap(r) < 13 {
		t.Errorf("expected len 3 cap>=13, got len %d cap %d", len(r), cap(r))
	}
	for i := range s {
		if r[i] != s[i] {
			t.Errorf("element %d changed", i)
		}
	}
	if got := reserve(r, 1); &got[0] != &r[0] {
		t.Error("expected no reallocation when capacity suffices")
	}
}

func TestPushPanicsWhenSlotsExhausted(t *testing.T) {
	saved := maxSlots
	maxSlots = 3
	defer func() { maxSlots = saved }()

	v := New[int]()
	hs := v.PushMany(1, 2, 3)

	// retired positions are still reusable at the limit
	v.Remove(hs[1])
	v.Push(4)

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic, got %v", r)
		}
		if !stderrors.Is(err, ErrTooManySlots) {
			t.Errorf("expected ErrTooManySlots, got %v", err)
		}
		if v.Len() != 3 || v.Slots() != 3 {
			t.Errorf("expected state untouched, got len %d slots %d", v.Len(), v.Slots())
		}
	}()
	v.Push(5)
}
