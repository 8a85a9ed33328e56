package views

// spSeq downgrades any sequence to single-pass: one shared consuming
// cursor, every multi-pass capability dropped.
type spSeq[T any] struct {
	src Seq[T]
	cur *spCursor[T]
}

// SinglePass wraps s so that it can be traversed exactly once, regardless
// of what s itself supports. All views built on the result share one
// consuming cursor, which is how a stream is tokenized piece by piece:
//
//	sp := views.SinglePass(views.FromString("foo\nbar\n"))
//	l1, _ := views.String(views.Must(views.TakeLine[byte]().Apply(sp))) // "foo"
//	l2, _ := views.String(views.Must(views.TakeLine[byte]().Apply(sp))) // "bar"
//
// The underlying cursor is created lazily on first advance.
func SinglePass[T any](s Seq[T]) Seq[T] {
	sp := &spSeq[T]{src: s}
	sp.cur = &spCursor[T]{seq: sp}
	return sp
}

func (s *spSeq[T]) Caps() Caps {
	return Caps{SinglePass: true, Mutable: s.src.Caps().Mutable}
}

func (s *spSeq[T]) Cursor() Cursor[T] { return s.cur }

// spCursor consumes the wrapped sequence, with a one-element lookahead
// buffer backing peek.
type spCursor[T any] struct {
	seq    *spSeq[T]
	src    Cursor[T]
	cur    T
	ahead  T
	buffed bool
}

func (c *spCursor[T]) Next() bool {
	if c.buffed {
		c.cur = c.ahead
		c.buffed = false
		return true
	}
	if c.src == nil {
		c.src = c.seq.src.Cursor()
	}
	if !c.src.Next() {
		return false
	}
	c.cur = c.src.Value()
	return true
}

func (c *spCursor[T]) Value() T { return c.cur }

func (c *spCursor[T]) Err() error {
	if c.src == nil {
		return nil
	}
	return c.src.Err()
}

func (c *spCursor[T]) peek() (T, bool) {
	if c.buffed {
		return c.ahead, true
	}
	if c.src == nil {
		c.src = c.seq.src.Cursor()
	}
	if !c.src.Next() {
		var zero T
		return zero, false
	}
	c.ahead = c.src.Value()
	c.buffed = true
	return c.ahead, true
}
