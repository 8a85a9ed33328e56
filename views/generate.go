package views

import "golang.org/x/exp/constraints"

// iotaSeq is a computed sequence: random access without storage.
type iotaSeq[T constraints.Integer] struct {
	start T
	count int
}

// Iota returns the sized, random-access sequence start, start+1, ...,
// start+count-1.
func Iota[T constraints.Integer](start T, count int) Seq[T] {
	if count < 0 {
		count = 0
	}
	return &iotaSeq[T]{start: start, count: count}
}

func (s *iotaSeq[T]) Caps() Caps {
	return Caps{
		Forward:       true,
		Bidirectional: true,
		RandomAccess:  true,
		Sized:         true,
		ConstIterable: true,
	}
}

func (s *iotaSeq[T]) Cursor() Cursor[T] {
	return &iotaCursor[T]{seq: s, index: -1}
}

func (s *iotaSeq[T]) Len() int { return s.count }

func (s *iotaSeq[T]) At(index int) T { return s.start + T(index) }

type iotaCursor[T constraints.Integer] struct {
	seq   *iotaSeq[T]
	index int
}

func (c *iotaCursor[T]) Next() bool {
	if c.index+1 >= c.seq.count {
		return false
	}
	c.index++
	return true
}

func (c *iotaCursor[T]) Value() T { return c.seq.At(c.index) }

func (c *iotaCursor[T]) Err() error { return nil }

// repeatSeq yields one value a fixed number of times. Forward and sized but
// not random-access, which makes it a useful middle rung of the capability
// lattice.
type repeatSeq[T any] struct {
	value T
	count int
}

// Repeat returns a sized, forward sequence of count copies of value.
func Repeat[T any](value T, count int) Seq[T] {
	if count < 0 {
		count = 0
	}
	return &repeatSeq[T]{value: value, count: count}
}

func (s *repeatSeq[T]) Caps() Caps {
	return Caps{Forward: true, Sized: true, ConstIterable: true}
}

func (s *repeatSeq[T]) Cursor() Cursor[T] {
	return &repeatCursor[T]{seq: s}
}

func (s *repeatSeq[T]) Len() int { return s.count }

type repeatCursor[T any] struct {
	seq     *repeatSeq[T]
	yielded int
}

func (c *repeatCursor[T]) Next() bool {
	if c.yielded >= c.seq.count {
		return false
	}
	c.yielded++
	return true
}

func (c *repeatCursor[T]) Value() T { return c.seq.value }

func (c *repeatCursor[T]) Err() error { return nil }
