/*
Package views provides lazily-evaluated sequence transformations ("views")
for tokenizing and filtering streams of symbols, while precisely tracking
the traversal capabilities of whatever underlying sequence they wrap.

A [Seq] is a pull-based producer of elements described by a [Caps] value:
whether it is single-pass or re-traversable, random-access, sized, and so
on. Applying an adaptor yields a new Seq whose capability set is a
deterministic, adaptor-specific downgrade of the input's: an adaptor never
synthesizes a capability the input lacks.

# Adaptors

  - [Take], [TakeExactly], [TakeExactlyStrict]: bound a sequence to a count.
  - [TakeLine], [TakeLineStrict]: bound a sequence by a line terminator
    (`\n` or `\r\n`), excluded from the output.
  - [Drop]: skip a prefix, fully capability-preserving.
  - [TakeWhile], [Trim], [TrimValue]: bound a sequence by a predicate,
    e.g. trimming trailing low-quality symbols.
  - [Deep]: lift an element adaptor over a sequence-of-sequences.

Adaptor constructors bind their scalar parameters and return a reusable
[Adaptor] recipe; [Adaptor.Apply] combines a recipe with a sequence, and
[Pipe] applies several left to right:

	line, err := views.Pipe(s,
		views.Drop[byte](4),
		views.TakeLine[byte](),
	)

# Single-pass sequences

Views over a single-pass input ([SinglePass], [FromReader]) share the
input's one consuming cursor. Boundary markers are consumed on advance, so
repeated [TakeLine] application tokenizes a stream line by line. Views over
multi-pass inputs recompute their boundary on every traversal and leave the
input untouched.

# Error policy

The non-strict adaptors never fail: they degrade to "as much as is
available". The strict variants report [ErrUnexpectedEndOfInput] through
the cursor when the input exhausts before the required boundary or count,
and [TakeExactlyStrict] fails eagerly with [ErrInvalidArgument] when a
sized input is already known to be too short.

Views never materialize elements; use [Collect], [String] or [Into] to
drain a finite view into a concrete container.

# Concurrency

Iteration is synchronous and pull-based; the package adds no locking.
Independent views over a multi-pass sequence may be traversed from
different goroutines only if the underlying storage tolerates concurrent
reads. Views sharing a single-pass input must not be interleaved at all:
consuming one invalidates the others.
*/
package views
