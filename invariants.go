package slotvec

// CheckInvariants verifies the internal bookkeeping of the Vec and returns an
// error marked with ErrCorrupt describing the first violation found. It runs
// in O(Slots()) and is meant for tests and diagnostics.
func (v *Vec[T]) CheckInvariants() error {
	if v.live < 0 || v.live > len(v.data) {
		return corrupt("live count %d outside [0, %d]", v.live, len(v.data))
	}
	if len(v.tags) != len(v.data) {
		return corrupt("%d tags for %d dense positions", len(v.tags), len(v.data))
	}
	if len(v.data) > len(v.slots) {
		return corrupt("%d dense positions exceed %d slots", len(v.data), len(v.slots))
	}
	seen := make([]bool, len(v.slots))
	for i, tag := range v.tags {
		if int(tag.Slot) >= len(v.slots) {
			return corrupt("position %d owned by unknown slot %d", i, tag.Slot)
		}
		if seen[tag.Slot] {
			return corrupt("slot %d owns more than one position", tag.Slot)
		}
		seen[tag.Slot] = true
		if tag.Generation < firstGeneration {
			return corrupt("slot %d has generation %d", tag.Slot, tag.Generation)
		}
		if got := v.slots[tag.Slot]; int(got) != i {
			return corrupt("slot %d maps to position %d, owned position is %d", tag.Slot, got, i)
		}
	}
	return nil
}
