package views

// Qualified is implemented by elements carrying a quality score, reported
// as an integral rank (e.g. a Phred value).
type Qualified interface {
	Qual() uint8
}

// TakeWhile returns a recipe bounding a sequence at the first element for
// which pred returns false. The failing element is excluded and nothing
// after it is inspected. It never fails.
func TakeWhile[T any](pred func(T) bool) Adaptor[T] {
	return Adaptor[T]{apply: func(s Seq[T]) (Seq[T], error) {
		return &whileView[T]{src: s, pred: pred, caps: trimCaps(s.Caps())}, nil
	}}
}

// Trim returns a recipe keeping the longest prefix whose elements all have
// quality at least threshold. It is take-while with the quality predicate
// bound.
func Trim[T Qualified](threshold uint8) Adaptor[T] {
	return TakeWhile(func(v T) bool { return v.Qual() >= threshold })
}

// TrimValue is [Trim] with the threshold given as a domain quality value
// instead of a raw rank.
func TrimValue[T Qualified](threshold T) Adaptor[T] {
	return Trim[T](threshold.Qual())
}

type whileView[T any] struct {
	src  Seq[T]
	pred func(T) bool
	caps Caps
}

func (v *whileView[T]) Caps() Caps { return v.caps }

func (v *whileView[T]) Cursor() Cursor[T] {
	return &whileCursor[T]{src: v.src.Cursor(), pred: v.pred}
}

// At is valid only when Caps().RandomAccess; indexing past the boundary
// reads through into the underlying sequence.
func (v *whileView[T]) At(index int) T {
	return v.src.(Indexed[T]).At(index)
}

type whileCursor[T any] struct {
	src   Cursor[T]
	pred  func(T) bool
	atEnd bool
	cur   T
}

func (c *whileCursor[T]) Next() bool {
	if c.atEnd {
		return false
	}
	if !c.src.Next() {
		c.atEnd = true
		return false
	}
	v := c.src.Value()
	if !c.pred(v) {
		c.atEnd = true
		return false
	}
	c.cur = v
	return true
}

func (c *whileCursor[T]) Value() T { return c.cur }

func (c *whileCursor[T]) Err() error { return c.src.Err() }

// peek exposes the element the next Next call would examine; the predicate
// is not applied here, Next decides whether it becomes a value or the end.
func (c *whileCursor[T]) peek() (T, bool) {
	if c.atEnd {
		var zero T
		return zero, false
	}
	if p, ok := c.src.(peeker[T]); ok {
		return p.peek()
	}
	var zero T
	return zero, false
}
