package views

// Deep lifts an element adaptor over a sequence-of-sequences: the adaptor
// is applied independently to each inner sequence as it is traversed, and
// the outer structure is left intact. Trimming every read in a collection
// of quality sequences is the motivating case:
//
//	trimmed, _ := views.Deep(views.Trim[quality.Phred](20)).Apply(reads)
//
// Construction errors of the lifted adaptor surface through the outer
// cursor's Err at the offending inner sequence.
func Deep[T any](adaptor Adaptor[T]) Adaptor[Seq[T]] {
	return Adaptor[Seq[T]]{apply: func(s Seq[Seq[T]]) (Seq[Seq[T]], error) {
		caps := s.Caps()
		caps.Common = false
		caps.Mutable = false
		// applying the lifted adaptor is fallible, so inner views cannot be
		// produced positionally
		caps.RandomAccess = false
		return &deepView[T]{src: s, adaptor: adaptor, caps: caps}, nil
	}}
}

type deepView[T any] struct {
	src     Seq[Seq[T]]
	adaptor Adaptor[T]
	caps    Caps
}

func (v *deepView[T]) Caps() Caps { return v.caps }

func (v *deepView[T]) Cursor() Cursor[Seq[T]] {
	return &deepCursor[T]{src: v.src.Cursor(), adaptor: v.adaptor}
}

// Len is valid only when Caps().Sized.
func (v *deepView[T]) Len() int {
	return v.src.(Sized).Len()
}

type deepCursor[T any] struct {
	src     Cursor[Seq[T]]
	adaptor Adaptor[T]
	cur     Seq[T]
	err     error
}

func (c *deepCursor[T]) Next() bool {
	if c.err != nil {
		return false
	}
	if !c.src.Next() {
		return false
	}
	inner, err := c.adaptor.Apply(c.src.Value())
	if err != nil {
		c.err = err
		return false
	}
	c.cur = inner
	return true
}

func (c *deepCursor[T]) Value() Seq[T] { return c.cur }

func (c *deepCursor[T]) Err() error {
	if c.err != nil {
		return c.err
	}
	return c.src.Err()
}
