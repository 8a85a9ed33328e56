package views

// Take returns a recipe bounding a sequence to its first n elements, or
// fewer if the input is shorter. It never fails.
//
// Slice-backed inputs are handled by a zero-copy subslice instead of a
// wrapped cursor; as in the generic path, the elements are identical, and
// the subslice keeps the full slice capability set.
func Take[T any](n int) Adaptor[T] {
	n = max(n, 0)
	return Adaptor[T]{apply: func(s Seq[T]) (Seq[T], error) {
		if fast, ok := takeFast(s, n); ok {
			return fast, nil
		}
		return &takeView[T]{src: s, n: n, caps: takeCaps(s.Caps())}, nil
	}}
}

// TakeExactly returns a recipe bounding a sequence to exactly n elements.
// The resulting view always reports size n for single-pass (or unsized)
// input, even when the input turns out to be shorter; callers guarantee
// the length or accept the documented overcommitment. Multi-pass sized
// input reports the true min(len, n).
func TakeExactly[T any](n int) Adaptor[T] {
	return takeExactly[T](n, false)
}

// TakeExactlyStrict is [TakeExactly] with the length expectation enforced:
// Apply fails with [ErrInvalidArgument] when a sized input is already known
// to be shorter than n, and iteration reports [ErrUnexpectedEndOfInput]
// when an unsized or single-pass input exhausts before producing n
// elements.
func TakeExactlyStrict[T any](n int) Adaptor[T] {
	return takeExactly[T](n, true)
}

func takeExactly[T any](n int, strict bool) Adaptor[T] {
	n = max(n, 0)
	return Adaptor[T]{apply: func(s Seq[T]) (Seq[T], error) {
		if strict {
			if sz, ok := Size(s); ok && sz < n {
				return nil, ErrInvalidArgument
			}
		}
		if fast, ok := takeFast(s, n); ok {
			return fast, nil
		}
		return &exactView[T]{src: s, n: n, strict: strict, caps: takeExactlyCaps(s.Caps())}, nil
	}}
}

func takeFast[T any](s Seq[T], n int) (Seq[T], bool) {
	sub, ok := s.(subSlicer[T])
	if !ok {
		return nil, false
	}
	sized, ok := s.(Sized)
	if !ok {
		return nil, false
	}
	return sub.subSlice(0, min(sized.Len(), n)), true
}

type takeView[T any] struct {
	src  Seq[T]
	n    int
	caps Caps
}

func (v *takeView[T]) Caps() Caps { return v.caps }

func (v *takeView[T]) Cursor() Cursor[T] {
	return &takeCursor[T]{src: v.src.Cursor(), left: v.n}
}

// Len is valid only when Caps().Sized, i.e. when the input is sized.
func (v *takeView[T]) Len() int {
	return min(v.src.(Sized).Len(), v.n)
}

// At is valid only when Caps().RandomAccess; i < n is the caller's
// responsibility.
func (v *takeView[T]) At(index int) T {
	return v.src.(Indexed[T]).At(index)
}

type takeCursor[T any] struct {
	src  Cursor[T]
	left int
}

func (c *takeCursor[T]) Next() bool {
	if c.left <= 0 {
		return false
	}
	if !c.src.Next() {
		c.left = 0
		return false
	}
	c.left--
	return true
}

func (c *takeCursor[T]) Value() T { return c.src.Value() }

func (c *takeCursor[T]) Err() error { return c.src.Err() }

// peek forwards lookahead through the count boundary: past it the view has
// nothing more to offer, and consumption must not read beyond it either.
func (c *takeCursor[T]) peek() (T, bool) {
	if c.left <= 0 {
		var zero T
		return zero, false
	}
	if p, ok := c.src.(peeker[T]); ok {
		return p.peek()
	}
	var zero T
	return zero, false
}

type exactView[T any] struct {
	src    Seq[T]
	n      int
	strict bool
	caps   Caps
}

func (v *exactView[T]) Caps() Caps { return v.caps }

func (v *exactView[T]) Cursor() Cursor[T] {
	return &exactCursor[T]{src: v.src.Cursor(), left: v.n, strict: v.strict}
}

// Len reports n for single-pass and unsized input regardless of the actual
// element count still available (here be dragons, see TakeExactly); for
// multi-pass sized input it reports the true remaining count.
func (v *exactView[T]) Len() int {
	if v.src.Caps().SinglePass || !v.src.Caps().Sized {
		return v.n
	}
	return min(v.src.(Sized).Len(), v.n)
}

// At is valid only when Caps().RandomAccess.
func (v *exactView[T]) At(index int) T {
	return v.src.(Indexed[T]).At(index)
}

type exactCursor[T any] struct {
	src    Cursor[T]
	left   int
	strict bool
	err    error
}

func (c *exactCursor[T]) Next() bool {
	if c.err != nil || c.left <= 0 {
		return false
	}
	if !c.src.Next() {
		if err := c.src.Err(); err != nil {
			c.err = err
		} else if c.strict {
			c.err = ErrUnexpectedEndOfInput
		}
		c.left = 0
		return false
	}
	c.left--
	return true
}

func (c *exactCursor[T]) Value() T { return c.src.Value() }

func (c *exactCursor[T]) Err() error { return c.err }

func (c *exactCursor[T]) peek() (T, bool) {
	if c.err != nil || c.left <= 0 {
		var zero T
		return zero, false
	}
	if p, ok := c.src.(peeker[T]); ok {
		return p.peek()
	}
	var zero T
	return zero, false
}
