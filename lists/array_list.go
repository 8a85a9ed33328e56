package lists

import (
	"fmt"
	"iter"
	"slices"

	"seqview/views"
)

type ArrayList[T any] struct {
	data []T
}

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

func (al *ArrayList[T]) Insert(index int, value T) error {
	if index < 0 || index > len(al.data) {
		return ErrIndexOutOfBounds
	}

	var zero T
	al.data = append(al.data, zero)
	copy(al.data[index+1:], al.data[index:])
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return al.data[index], nil
}

func (al *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= len(al.data) {
		return ErrIndexOutOfBounds
	}
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) Remove(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	removed := al.data[index]
	copy(al.data[index:], al.data[index+1:])
	// clear the last element, let it be GCed
	clear(al.data[len(al.data)-1:])
	al.data = al.data[:len(al.data)-1]
	return removed, nil
}

func (al *ArrayList[T]) Size() int {
	return len(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) Clear() {
	// clear the underlying array to let elements be GCed
	clear(al.data)
	al.data = al.data[:0]
}

func (al *ArrayList[T]) ToSlice() []T {
	return slices.Clone(al.data)
}

// String implements fmt.Stringer for easier debugging.
func (al *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", al.data)
}

func (al *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(al.data)
}

// View presents the current backing slice as a random-access, sized,
// common sequence. Adds and removals after the call are not reflected.
func (al *ArrayList[T]) View() views.Seq[T] {
	return views.FromSlice(al.data)
}
