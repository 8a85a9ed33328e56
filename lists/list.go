// Package lists provides concrete ordered containers that double as
// materialization targets and as capability fixtures for the views
// package: ArrayList is random-access, LinkedList is bidirectional but
// node-based. Both satisfy views.Appender, so a finite view can be drained
// into either with views.Into.
package lists

import (
	"fmt"
	"iter"

	"seqview/views"
)

var ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")

// List is the common surface of the containers in this package.
// T can be any type.
type List[T any] interface {
	// Add appends one or more elements to the end of the list.
	Add(values ...T)

	// Insert inserts an element at the specified index.
	// Returns an error if index < 0 or index > Size().
	Insert(index int, value T) error

	// Remove removes and returns the element at the specified index.
	// Returns an error if index is out of bounds.
	Remove(index int) (T, error)

	// Set modifies the element at the specified index.
	// Returns an error if index is out of bounds.
	Set(index int, value T) error

	// Get retrieves the element at the specified index.
	// Returns an error if index is out of bounds.
	Get(index int) (T, error)

	// Size returns the current number of elements in the list.
	Size() int

	// IsEmpty checks if the list is empty.
	IsEmpty() bool

	// Clear clears the list and releases memory.
	Clear()

	// ToSlice converts the list to a native slice.
	// This is an "escape hatch" for standard library operations.
	ToSlice() []T

	// Values returns a replayable iterator over the elements.
	Values() iter.Seq[T]

	// View presents the list as a sequence for the view adaptors. The view
	// borrows the list; structural modification invalidates it.
	View() views.Seq[T]
}
