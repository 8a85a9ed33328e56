package views

// Drop returns a recipe skipping the first n elements (clamped to the
// available length) and presenting the remainder. Dropping a prefix needs
// no boundary search, so every capability of the input survives, including
// random access and sizedness. It never fails.
func Drop[T any](n int) Adaptor[T] {
	n = max(n, 0)
	return Adaptor[T]{apply: func(s Seq[T]) (Seq[T], error) {
		if sub, ok := s.(subSlicer[T]); ok {
			if sized, ok2 := s.(Sized); ok2 {
				l := sized.Len()
				return sub.subSlice(min(n, l), l), nil
			}
		}
		return &dropView[T]{src: s, n: n, caps: dropCaps(s.Caps())}, nil
	}}
}

type dropView[T any] struct {
	src  Seq[T]
	n    int
	caps Caps
}

func (v *dropView[T]) Caps() Caps { return v.caps }

func (v *dropView[T]) Cursor() Cursor[T] {
	return &dropCursor[T]{src: v.src.Cursor(), skip: v.n}
}

// Len is valid only when Caps().Sized.
func (v *dropView[T]) Len() int {
	return max(v.src.(Sized).Len()-v.n, 0)
}

// At is valid only when Caps().RandomAccess.
func (v *dropView[T]) At(index int) T {
	return v.src.(Indexed[T]).At(index + v.n)
}

type dropCursor[T any] struct {
	src  Cursor[T]
	skip int
}

func (c *dropCursor[T]) Next() bool {
	for c.skip > 0 {
		if !c.src.Next() {
			c.skip = 0
			return false
		}
		c.skip--
	}
	return c.src.Next()
}

func (c *dropCursor[T]) Value() T { return c.src.Value() }

func (c *dropCursor[T]) Err() error { return c.src.Err() }

// peek performs the pending skip, exactly as Next would, then forwards the
// lookahead.
func (c *dropCursor[T]) peek() (T, bool) {
	for c.skip > 0 {
		if !c.src.Next() {
			c.skip = 0
			var zero T
			return zero, false
		}
		c.skip--
	}
	if p, ok := c.src.(peeker[T]); ok {
		return p.peek()
	}
	var zero T
	return zero, false
}
