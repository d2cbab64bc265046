// Package forwardlist provides a generic singly linked list with
// forward-only traversal. Pushing and popping at the front run in
// constant time, and elements can be inserted or erased at any position
// through an iterator referencing the preceding position. The list owns
// its nodes exclusively; iterators are lightweight non-owning handles.
package forwardlist

import (
	"iter"

	"github.com/vskvj3/collections/stack"
)

type (
	// List represents a singly linked list. The zero value is an empty
	// list ready to use. A List must not be copied by value after first
	// use; use Clone or Assign instead.
	List[T any] struct {
		// head is the sentinel: it carries no element and its next link
		// is the first element of the list. Holding it by value means
		// inserting at the front needs no special case.
		head node[T]
		size int
	}

	// node is an element cell in the list. Each node is owned by its
	// predecessor (or by the sentinel, for the first node).
	node[T any] struct {
		value T
		next  *node[T]
	}
)

// NewList creates a new empty list.
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// From creates a list holding the given values in the given order.
func From[T any](values ...T) *List[T] {
	l := NewList[T]()
	buf := stack.New[T]()
	for _, v := range values {
		buf.Push(v)
	}
	// Popping the LIFO buffer reverses the input, so pushing each value
	// to the front yields the original order in O(n).
	for !buf.IsEmpty() {
		v, _ := buf.Pop()
		l.PushFront(v)
	}
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// PushFront inserts value at the front of the list.
func (l *List[T]) PushFront(value T) {
	l.head.next = &node[T]{value: value, next: l.head.next}
	l.size++
}

// PopFront removes and returns the first element.
// It panics if the list is empty.
func (l *List[T]) PopFront() T {
	if l.head.next == nil {
		panic("forwardlist: PopFront on empty list")
	}
	n := l.head.next
	l.head.next = n.next
	n.next = nil
	l.size--
	return n.value
}

// Front returns the first element without removing it.
// It panics if the list is empty.
func (l *List[T]) Front() T {
	if l.head.next == nil {
		panic("forwardlist: Front on empty list")
	}
	return l.head.next.value
}

// InsertAfter inserts value after the position referenced by pos and
// returns an iterator to the new element. pos may be the BeforeBegin
// position, in which case the value becomes the new first element.
// It panics if pos is the past-the-end position.
func (l *List[T]) InsertAfter(pos Iterator[T], value T) Iterator[T] {
	if pos.n == nil {
		panic("forwardlist: InsertAfter on past-the-end position")
	}
	n := &node[T]{value: value, next: pos.n.next}
	pos.n.next = n
	l.size++
	return Iterator[T]{cursor[T]{n}}
}

// EraseAfter removes the element following pos and returns an iterator
// to the element after the removed one, or the past-the-end iterator if
// none. It panics if pos has no successor to erase.
func (l *List[T]) EraseAfter(pos Iterator[T]) Iterator[T] {
	if pos.n == nil || pos.n.next == nil {
		panic("forwardlist: EraseAfter on position with no successor")
	}
	victim := pos.n.next
	pos.n.next = victim.next
	victim.next = nil
	l.size--
	return Iterator[T]{cursor[T]{pos.n.next}}
}

// Clear removes every element, leaving the list empty. Iterators into
// the list become invalid.
func (l *List[T]) Clear() {
	n := l.head.next
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
	l.head.next = nil
	l.size = 0
}

// Swap exchanges the contents of l and other in constant time. No
// element is copied; only the sentinel links and sizes change hands.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Clone returns an independent copy of the list with equal elements in
// equal order. No node is shared between the list and its clone.
func (l *List[T]) Clone() *List[T] {
	clone, _ := l.CloneWith(func(v T) (T, error) { return v, nil })
	return clone
}

// CloneWith returns an independent copy of the list whose elements are
// produced by fn. The first error from fn aborts the copy and is
// returned; l is never modified.
func (l *List[T]) CloneWith(fn func(T) (T, error)) (*List[T], error) {
	clone := NewList[T]()
	tail := &clone.head
	for n := l.head.next; n != nil; n = n.next {
		v, err := fn(n.value)
		if err != nil {
			return nil, err
		}
		tail.next = &node[T]{value: v}
		tail = tail.next
		clone.size++
	}
	return clone, nil
}

// Assign replaces the contents of l with an independent copy of src.
// Assigning a list to itself is a no-op.
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}
	l.Swap(src.Clone())
}

// AssignWith replaces the contents of l with a copy of src whose
// elements are produced by fn. The replacement is built in full before
// being swapped in, so an error from fn leaves l unchanged.
func (l *List[T]) AssignWith(src *List[T], fn func(T) (T, error)) error {
	tmp, err := src.CloneWith(fn)
	if err != nil {
		return err
	}
	l.Swap(tmp)
	return nil
}

// Values returns the elements in traversal order as a new slice.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for n := l.head.next; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// All returns an iterator over the elements from front to back, for use
// with range-over-func.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}
