package views

// Adaptor is a parameter-bound view recipe: the scalar parameters of an
// adaptor (a count, a threshold, a strictness flag) are captured when the
// recipe is created, and the recipe can then be combined with any number of
// sequences. Recipes are immutable values.
type Adaptor[T any] struct {
	apply func(Seq[T]) (Seq[T], error)
}

// Apply combines the recipe with a sequence, producing the view. The only
// recipe that can fail here is [TakeExactlyStrict], which rejects a sized
// input shorter than its count with [ErrInvalidArgument]; every other
// recipe returns a nil error.
func (a Adaptor[T]) Apply(s Seq[T]) (Seq[T], error) {
	return a.apply(s)
}

// Compose chains recipes left to right into a single recipe:
// Compose(a, b).Apply(s) is b applied to a applied to s.
func Compose[T any](adaptors ...Adaptor[T]) Adaptor[T] {
	return Adaptor[T]{apply: func(s Seq[T]) (Seq[T], error) {
		return Pipe(s, adaptors...)
	}}
}

// Pipe applies recipes to s left to right, stopping at the first
// construction error.
func Pipe[T any](s Seq[T], adaptors ...Adaptor[T]) (Seq[T], error) {
	var err error
	for _, a := range adaptors {
		s, err = a.apply(s)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Must unwraps an Apply or Pipe result, panicking on construction errors.
// For recipes that cannot fail it is pure convenience.
func Must[T any](s Seq[T], err error) Seq[T] {
	if err != nil {
		panic(err)
	}
	return s
}
