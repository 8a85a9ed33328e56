package views

// TakeLine returns a recipe bounding a sequence at the first line
// terminator, `\n` alone or `\r\n`, which is excluded from the output.
//
// Over single-pass input the terminator characters are consumed from the
// shared cursor when the boundary is reached, so the next view built on the
// same input starts at the following line. Over multi-pass input nothing is
// consumed; the boundary is recomputed on every traversal.
//
// If the input ends without a terminator the view simply ends there; use
// [TakeLineStrict] to treat that as a failure.
func TakeLine[T Char]() Adaptor[T] {
	return takeLine[T](false)
}

// TakeLineStrict is [TakeLine], except that input exhaustion before a
// terminator is reported as [ErrUnexpectedEndOfInput] through the cursor.
func TakeLineStrict[T Char]() Adaptor[T] {
	return takeLine[T](true)
}

func takeLine[T Char](strict bool) Adaptor[T] {
	return Adaptor[T]{apply: func(s Seq[T]) (Seq[T], error) {
		return &lineView[T]{src: s, strict: strict, caps: takeLineCaps(s.Caps())}, nil
	}}
}

type lineView[T Char] struct {
	src    Seq[T]
	strict bool
	caps   Caps
}

func (v *lineView[T]) Caps() Caps { return v.caps }

func (v *lineView[T]) Cursor() Cursor[T] {
	return &lineCursor[T]{
		src:       v.src.Cursor(),
		strict:    v.strict,
		consuming: v.src.Caps().SinglePass,
	}
}

// At is valid only when Caps().RandomAccess; indexing past the terminator
// reads through into the underlying sequence.
func (v *lineView[T]) At(index int) T {
	return v.src.(Indexed[T]).At(index)
}

// lineCursor is the consuming-advance state machine: once the boundary has
// been seen, atEnd keeps the cursor terminal, and on single-pass input the
// terminator characters have already been consumed from the shared
// underlying cursor by then.
type lineCursor[T Char] struct {
	src       Cursor[T]
	strict    bool
	consuming bool
	atEnd     bool
	err       error
	cur       T
}

func (c *lineCursor[T]) Next() bool {
	if c.atEnd {
		return false
	}
	if !c.src.Next() {
		if err := c.src.Err(); err != nil {
			c.err = err
		} else if c.strict {
			c.err = ErrUnexpectedEndOfInput
		}
		c.atEnd = true
		return false
	}
	v := c.src.Value()
	if v == '\r' || v == '\n' {
		if c.consuming && v == '\r' {
			// swallow the LF of a CRLF pair so the next line starts clean
			if p, ok := c.src.(peeker[T]); ok {
				if nx, have := p.peek(); have && nx == '\n' {
					c.src.Next()
				}
			}
		}
		c.atEnd = true
		return false
	}
	c.cur = v
	return true
}

func (c *lineCursor[T]) Value() T { return c.cur }

func (c *lineCursor[T]) Err() error { return c.err }
