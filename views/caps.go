package views

// Caps describes the traversal capabilities of a sequence. It is a plain
// value computed when a view is constructed and never changes afterwards.
//
// The flags form a lattice: RandomAccess implies Bidirectional implies
// Forward, and SinglePass excludes all three (a single-pass sequence can be
// traversed start-to-end exactly once; advancing invalidates prior
// positions).
type Caps struct {
	// SinglePass marks a sequence that supports exactly one traversal.
	SinglePass bool
	// Forward marks a sequence that can be re-traversed from the start.
	Forward bool
	// Bidirectional marks a sequence that can also be walked backwards.
	Bidirectional bool
	// RandomAccess marks a sequence with O(1) indexed access.
	RandomAccess bool
	// Sized marks a sequence whose element count is known up front.
	Sized bool
	// Common marks a sequence whose end is a concrete position rather than
	// a stopping predicate (begin and end are the same kind of thing).
	Common bool
	// ConstIterable marks a sequence that can be traversed without being
	// mutated or consumed.
	ConstIterable bool
	// Mutable marks a sequence whose elements can be written through.
	Mutable bool
}

// Valid reports whether the capability flags respect the lattice.
func (c Caps) Valid() bool {
	if c.RandomAccess && !c.Bidirectional {
		return false
	}
	if c.Bidirectional && !c.Forward {
		return false
	}
	if c.SinglePass && (c.Forward || c.ConstIterable) {
		return false
	}
	return true
}

// Per-adaptor capability transforms. These implement the degradation table
// of the adaptor family: the traversal category (single-pass / forward /
// bidirectional / random-access) is always preserved, only sizedness and
// commonness degrade.

// take: a new stopping condition ends the sequence, so the end is no longer
// a concrete position; the count is known iff the input's count is.
func takeCaps(in Caps) Caps {
	in.Common = false
	return in
}

// take_exactly: like take, but the count is guaranteed by contract even
// when the input cannot confirm it.
func takeExactlyCaps(in Caps) Caps {
	in.Sized = true
	in.Common = false
	return in
}

// take_line: the terminator may appear anywhere, so the size is unknowable
// and the end is a predicate.
func takeLineCaps(in Caps) Caps {
	in.Sized = false
	in.Common = false
	return in
}

// drop: skipping a prefix needs no boundary search; everything survives,
// size arithmetic happens in the view itself.
func dropCaps(in Caps) Caps {
	return in
}

// trim / take_while: same shape as take_line, the boundary is a predicate.
func trimCaps(in Caps) Caps {
	in.Sized = false
	in.Common = false
	return in
}
