package slotvec

// reserve returns s with room for at least n more elements beyond len(s),
// reallocating if necessary. Capacity at least doubles on reallocation.
func reserve[T any](s []T, n int) []T {
	newLen := len(s) + n
	if cap(s) >= newLen {
		return s
	}
	newCap := max(2*cap(s), newLen)
	ns := make([]T, len(s), newCap)
	copy(ns, s)
	return ns
}
