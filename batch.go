package slotvec

// PushMany pushes every value in order and returns their handles.
func (v *Vec[T]) PushMany(values ...T) []Handle {
	if len(values) == 0 {
		return nil
	}
	return v.PushManyTo(make([]Handle, 0, len(values)), values...)
}

// PushManyTo pushes every value in order and appends their handles to dst,
// returning the extended slice. It does not allocate when dst and the Vec
// already have room.
func (v *Vec[T]) PushManyTo(dst []Handle, values ...T) []Handle {
	v.Reserve(len(values))
	for _, value := range values {
		dst = append(dst, v.Push(value))
	}
	return dst
}

// RemoveMany removes the elements referred to by hs and returns how many were
// actually removed. Stale and repeated handles are skipped. It panics if any
// handle was not issued by this Vec.
func (v *Vec[T]) RemoveMany(hs []Handle) int {
	removed := 0
	for _, h := range hs {
		if v.Remove(h) {
			removed++
		}
	}
	return removed
}
