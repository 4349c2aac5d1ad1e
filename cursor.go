package slotvec

// Cursor walks the live elements of a Vec in dense order. It allocates
// nothing per step and can be rewound with Reset, which makes it convenient
// for hot loops that run every frame or tick.
//
//	c := v.Cursor()
//	for c.Next() {
//	    p := c.Get()
//	    p.X += p.VX
//	}
type Cursor[T any] struct {
	vec *Vec[T]
	idx int
}

// Cursor returns a new cursor positioned before the first live element.
func (v *Vec[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{vec: v, idx: -1}
}

// Reset rewinds the cursor to before the first live element.
func (c *Cursor[T]) Reset() {
	c.idx = -1
}

// Next advances to the next live element. It returns false when the walk is
// complete.
func (c *Cursor[T]) Next() bool {
	if c.idx < c.vec.live {
		c.idx++
	}
	return c.idx < c.vec.live
}

// Get returns a pointer to the current element. It must only be called after
// Next returned true.
func (c *Cursor[T]) Get() *T {
	return &c.vec.data[c.idx]
}

// Handle returns the handle of the current element. It must only be called
// after Next returned true.
func (c *Cursor[T]) Handle() Handle {
	return c.vec.tags[c.idx]
}
