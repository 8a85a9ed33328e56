package views

import (
	"bufio"
	"io"
	"iter"
)

// sliceSeq presents a slice as a fully capable multi-pass sequence. It is
// also the result type of the zero-copy fast paths in take and drop.
type sliceSeq[T any] struct {
	data    []T
	mutable bool
}

// FromSlice returns a random-access, sized, common view over data. The
// slice is borrowed, not copied; it must outlive the view.
func FromSlice[T any](data []T) Seq[T] {
	return &sliceSeq[T]{data: data, mutable: true}
}

// FromString returns a random-access, sized, common byte view over s.
func FromString(s string) Seq[byte] {
	return &sliceSeq[byte]{data: []byte(s)}
}

func (s *sliceSeq[T]) Caps() Caps {
	return Caps{
		Forward:       true,
		Bidirectional: true,
		RandomAccess:  true,
		Sized:         true,
		Common:        true,
		ConstIterable: true,
		Mutable:       s.mutable,
	}
}

func (s *sliceSeq[T]) Cursor() Cursor[T] {
	return &sliceCursor[T]{data: s.data, index: -1}
}

func (s *sliceSeq[T]) Len() int { return len(s.data) }

func (s *sliceSeq[T]) At(index int) T { return s.data[index] }

func (s *sliceSeq[T]) subSlice(lo, hi int) Seq[T] {
	return &sliceSeq[T]{data: s.data[lo:hi], mutable: s.mutable}
}

type sliceCursor[T any] struct {
	data  []T
	index int
}

func (c *sliceCursor[T]) Next() bool {
	if c.index+1 >= len(c.data) {
		return false
	}
	c.index++
	return true
}

func (c *sliceCursor[T]) Value() T { return c.data[c.index] }

func (c *sliceCursor[T]) Err() error { return nil }

// funcSeq bridges a replayable iter.Seq into the cursor model.
type funcSeq[T any] struct {
	seq iter.Seq[T]
}

// FromSeq presents a Go iterator as a forward, const-iterable sequence.
// The iterator must be replayable (yield the same elements on every
// traversal); wrap the result in [SinglePass] if it is not.
//
// Each cursor holds a pull coroutine, released when the cursor is drained
// to exhaustion; a cursor abandoned mid-iteration keeps its coroutine until
// the garbage collector reclaims the cursor itself.
func FromSeq[T any](seq iter.Seq[T]) Seq[T] {
	return &funcSeq[T]{seq: seq}
}

func (s *funcSeq[T]) Caps() Caps {
	return Caps{Forward: true, ConstIterable: true}
}

func (s *funcSeq[T]) Cursor() Cursor[T] {
	next, stop := iter.Pull(s.seq)
	return &pullCursor[T]{next: next, stop: stop}
}

type pullCursor[T any] struct {
	next func() (T, bool)
	stop func()
	cur  T
	done bool
}

func (c *pullCursor[T]) Next() bool {
	if c.done {
		return false
	}
	v, ok := c.next()
	if !ok {
		c.done = true
		c.stop()
		return false
	}
	c.cur = v
	return true
}

func (c *pullCursor[T]) Value() T { return c.cur }

func (c *pullCursor[T]) Err() error { return nil }

// readerSeq presents an io.Reader as a single-pass byte sequence: the
// canonical input for line-wise tokenization.
type readerSeq struct {
	cur *readerCursor
}

// FromReader returns a single-pass byte sequence over r. All views built
// on it share the one consuming cursor.
func FromReader(r io.Reader) Seq[byte] {
	return &readerSeq{cur: &readerCursor{br: bufio.NewReader(r)}}
}

func (s *readerSeq) Caps() Caps { return Caps{SinglePass: true} }

func (s *readerSeq) Cursor() Cursor[byte] { return s.cur }

type readerCursor struct {
	br  *bufio.Reader
	cur byte
	err error
}

func (c *readerCursor) Next() bool {
	if c.err != nil {
		return false
	}
	b, err := c.br.ReadByte()
	if err != nil {
		if err != io.EOF {
			c.err = err
		}
		return false
	}
	c.cur = b
	return true
}

func (c *readerCursor) Value() byte { return c.cur }

func (c *readerCursor) Err() error { return c.err }

func (c *readerCursor) peek() (byte, bool) {
	p, err := c.br.Peek(1)
	if err != nil || len(p) == 0 {
		return 0, false
	}
	return p[0], true
}
