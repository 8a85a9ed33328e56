package lists

import (
	"fmt"
	"iter"
	"strings"

	"seqview/views"
)

type node[T any] struct {
	prev *node[T]
	next *node[T]
	val  T
}

type LinkedList[T any] struct {
	headSentinel *node[T]
	tailSentinel *node[T]
	size         int
}

func NewLinkedList[T any]() *LinkedList[T] {
	ll := &LinkedList[T]{
		headSentinel: &node[T]{},
		tailSentinel: &node[T]{},
		size:         0,
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	return ll
}

// insertNodeAt insert newNode after indexNode.
// Bounds checking should be done by the caller.
func (ll *LinkedList[T]) insertNodeAt(indexNode *node[T], newNode *node[T]) {
	newNode.prev = indexNode
	newNode.next = indexNode.next
	indexNode.next.prev = newNode
	indexNode.next = newNode
	ll.size++
}

// findNodeAt returns the node at the specified index.
// Bounds checking should be done by the caller.
func (ll *LinkedList[T]) findNodeAt(index int) *node[T] {
	if index == ll.size {
		return ll.tailSentinel
	}
	// Optimize traversal: start from head or tail depending on index
	if index < ll.size/2 {
		current := ll.headSentinel.next
		for range index {
			current = current.next
		}
		return current
	}
	current := ll.tailSentinel.prev
	for i := ll.size - 1; i > index; i-- {
		current = current.prev
	}
	return current
}

// removeNode removes the specified node from the list and returns its
// value. Bounds checking should be done by the caller.
func (ll *LinkedList[T]) removeNode(targetNode *node[T]) T {
	targetNode.prev.next = targetNode.next
	targetNode.next.prev = targetNode.prev
	res := targetNode.val
	// Help GC
	targetNode.prev = nil
	targetNode.next = nil
	var zero T
	targetNode.val = zero
	ll.size--
	return res
}

// Add appends values to the end of the list.
func (ll *LinkedList[T]) Add(values ...T) {
	for _, value := range values {
		newNode := &node[T]{val: value}
		ll.insertNodeAt(ll.tailSentinel.prev, newNode)
	}
}

// Insert inserts value at the specified index.
func (ll *LinkedList[T]) Insert(index int, value T) error {
	if index < 0 || index > ll.size {
		return ErrIndexOutOfBounds
	}

	targetNode := ll.findNodeAt(index)
	newNode := &node[T]{val: value}
	ll.insertNodeAt(targetNode.prev, newNode)
	return nil
}

// Get retrieves the element at the specified index.
func (ll *LinkedList[T]) Get(index int) (val T, err error) {
	if index < 0 || index >= ll.size {
		return val, ErrIndexOutOfBounds
	}
	node := ll.findNodeAt(index)
	return node.val, nil
}

// Set replaces the element at the specified index.
func (ll *LinkedList[T]) Set(index int, value T) error {
	if index < 0 || index >= ll.size {
		return ErrIndexOutOfBounds
	}
	node := ll.findNodeAt(index)
	node.val = value
	return nil
}

// Remove removes the element at the specified index.
func (ll *LinkedList[T]) Remove(index int) (T, error) {
	var zero T
	if index < 0 || index >= ll.size {
		return zero, ErrIndexOutOfBounds
	}
	targetNode := ll.findNodeAt(index)
	return ll.removeNode(targetNode), nil
}

func (ll *LinkedList[T]) Size() int {
	return ll.size
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.size == 0
}

func (ll *LinkedList[T]) Clear() {
	// Clear all nodes to help GC
	current := ll.headSentinel.next
	var zero T
	for current != ll.tailSentinel {
		next := current.next
		current.prev = nil
		current.next = nil
		current.val = zero
		current = next
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	ll.size = 0
}

func (ll *LinkedList[T]) ToSlice() []T {
	out := make([]T, 0, ll.size)
	current := ll.headSentinel.next
	for current != ll.tailSentinel {
		out = append(out, current.val)
		current = current.next
	}
	return out
}

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		current := ll.headSentinel.next
		for current != ll.tailSentinel {
			if !yield(current.val) {
				break
			}
			current = current.next
		}
	}
}

func (ll *LinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		current := ll.tailSentinel.prev
		for current != ll.headSentinel {
			if !yield(current.val) {
				break
			}
			current = current.prev
		}
	}
}

func (ll *LinkedList[T]) String() string {
	// use strBuilder for better performance
	strBuilder := strings.Builder{}
	strBuilder.WriteString("[")
	current := ll.headSentinel.next
	for current != ll.tailSentinel {
		strBuilder.WriteString(fmt.Sprintf("%v", current.val))
		if current.next != ll.tailSentinel {
			strBuilder.WriteString(", ")
		}
		current = current.next
	}
	strBuilder.WriteString("]")
	return strBuilder.String()
}

// View presents the list as a sized, bidirectional, common sequence
// without random access: the node-based middle rung of the capability
// lattice. The view borrows the list; structural modification invalidates
// it.
func (ll *LinkedList[T]) View() views.Seq[T] {
	return &linkedSeq[T]{list: ll}
}

type linkedSeq[T any] struct {
	list *LinkedList[T]
}

func (s *linkedSeq[T]) Caps() views.Caps {
	return views.Caps{
		Forward:       true,
		Bidirectional: true,
		Sized:         true,
		Common:        true,
		ConstIterable: true,
		Mutable:       true,
	}
}

func (s *linkedSeq[T]) Cursor() views.Cursor[T] {
	return &linkedCursor[T]{current: s.list.headSentinel, list: s.list}
}

func (s *linkedSeq[T]) Len() int { return s.list.size }

type linkedCursor[T any] struct {
	current *node[T]
	list    *LinkedList[T]
}

func (c *linkedCursor[T]) Next() bool {
	if c.current.next == nil || c.current.next == c.list.tailSentinel {
		return false
	}
	c.current = c.current.next
	return true
}

func (c *linkedCursor[T]) Value() T { return c.current.val }

func (c *linkedCursor[T]) Err() error { return nil }
