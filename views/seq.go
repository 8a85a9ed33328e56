package views

import (
	"errors"
	"iter"
)

var (
	// ErrUnexpectedEndOfInput is reported by the strict adaptor variants
	// when the underlying sequence exhausts before the required boundary
	// or count is reached.
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")

	// ErrInvalidArgument is reported eagerly at view construction when a
	// sequence of statically known length is already shorter than a
	// required exact count.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Cursor is a position within a sequence. Next advances the cursor and
// reports whether an element is available; Value returns the element at the
// current position and is valid only after Next returned true. Once Next
// has returned false, Err returns the reason if the traversal ended in a
// boundary violation rather than a normal end.
type Cursor[T any] interface {
	Next() bool
	Value() T
	Err() error
}

// Seq is an ordered, possibly lazy producer of elements, described by its
// capability set. Multi-pass sequences return a fresh, independent cursor
// on every Cursor call; single-pass sequences return their one consuming
// cursor every time.
//
// A Seq never owns the underlying storage it presents. Two views over the
// same single-pass sequence share its cursor: consuming one invalidates the
// other. That is a caller obligation, not something the package enforces.
type Seq[T any] interface {
	Caps() Caps
	Cursor() Cursor[T]
}

// Sized is implemented by sequences whose remaining element count is
// known. Meaningful only when Caps.Sized is set; use [Size] to check both
// at once.
type Sized interface {
	Len() int
}

// Indexed is implemented by sequences with O(1) positional access.
// Meaningful only when Caps.RandomAccess is set; use [At] to check both at
// once.
type Indexed[T any] interface {
	At(index int) T
}

// Char constrains the element types understood by the line-oriented
// adaptors.
type Char interface {
	~byte | ~rune
}

// Size returns the element count of s, if s is sized.
func Size[T any](s Seq[T]) (int, bool) {
	if !s.Caps().Sized {
		return 0, false
	}
	sized, ok := s.(Sized)
	if !ok {
		return 0, false
	}
	return sized.Len(), true
}

// At returns the element at index i, if s supports random access. Bounds
// are the caller's responsibility, as with a slice index.
func At[T any](s Seq[T], i int) (T, bool) {
	if !s.Caps().RandomAccess {
		var zero T
		return zero, false
	}
	indexed, ok := s.(Indexed[T])
	if !ok {
		var zero T
		return zero, false
	}
	return indexed.At(i), true
}

// Values bridges a view into a range-over-func loop. Traversing the
// returned iterator advances (and, for single-pass input, consumes) the
// view's cursor; boundary violations of strict views are not observable
// here, use [Collect] when they matter.
func Values[T any](s Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := s.Cursor()
		for cur.Next() {
			if !yield(cur.Value()) {
				return
			}
		}
	}
}

// peeker is implemented by the consuming cursors of this package's
// single-pass sources and forwarded by the wrapping view cursors. It
// exposes the next element without advancing, which the line adaptor needs
// to swallow the LF of a CRLF pair however deep the source cursor sits.
type peeker[T any] interface {
	peek() (T, bool)
}

// subSlicer is implemented by slice-backed sequences, enabling the
// zero-copy fast paths of the count-based adaptors.
type subSlicer[T any] interface {
	subSlice(lo, hi int) Seq[T]
}
