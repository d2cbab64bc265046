package forwardlist

// cursor is the traversal core shared by the two iterator flavors. It
// references a node without owning it. The zero cursor references
// nothing and denotes the past-the-end position.
type cursor[T any] struct {
	n *node[T]
}

func (c cursor[T]) next() cursor[T] {
	if c.n == nil {
		panic("forwardlist: advance of past-the-end iterator")
	}
	return cursor[T]{c.n.next}
}

func (c cursor[T]) ref() *T {
	if c.n == nil {
		panic("forwardlist: dereference of past-the-end iterator")
	}
	return &c.n.value
}

// Iterator references a position in a list and gives read-write access
// to the element there. Two iterators compare equal with == iff they
// reference the identical node; the zero Iterator equals End(). An
// iterator stays valid until the node it references is removed from
// the list. The BeforeBegin and End positions must not be dereferenced.
type Iterator[T any] struct {
	cursor[T]
}

// ConstIterator is the read-only iterator flavor. It shares traversal
// semantics with Iterator but gives no way to modify the element.
type ConstIterator[T any] struct {
	cursor[T]
}

// Next returns an iterator to the following position without modifying
// it. It panics on the past-the-end position.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{it.cursor.next()}
}

// Advance moves the iterator one position forward and returns its prior
// value. It panics on the past-the-end position.
func (it *Iterator[T]) Advance() Iterator[T] {
	prev := *it
	it.cursor = it.cursor.next()
	return prev
}

// Value returns the element at the iterator's position.
// It panics on the past-the-end position.
func (it Iterator[T]) Value() T {
	return *it.cursor.ref()
}

// Ref returns the address of the element at the iterator's position,
// through which the element may be modified in place.
func (it Iterator[T]) Ref() *T {
	return it.cursor.ref()
}

// Set replaces the element at the iterator's position.
func (it Iterator[T]) Set(value T) {
	*it.cursor.ref() = value
}

// Const converts the iterator to the read-only flavor referencing the
// same position. Iterators of different flavors compare equal iff their
// Const forms are ==.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it.cursor}
}

// Next returns an iterator to the following position without modifying
// it. It panics on the past-the-end position.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{it.cursor.next()}
}

// Advance moves the iterator one position forward and returns its prior
// value. It panics on the past-the-end position.
func (it *ConstIterator[T]) Advance() ConstIterator[T] {
	prev := *it
	it.cursor = it.cursor.next()
	return prev
}

// Value returns the element at the iterator's position.
// It panics on the past-the-end position.
func (it ConstIterator[T]) Value() T {
	return *it.cursor.ref()
}

// Begin returns an iterator to the first element. For an empty list it
// equals End.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{cursor[T]{l.head.next}}
}

// End returns the past-the-end iterator. It must not be dereferenced or
// advanced.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// BeforeBegin returns the iterator to the position before the first
// element. It must not be dereferenced; inserting after it prepends to
// the list.
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{cursor[T]{&l.head}}
}

// ConstBegin returns a read-only iterator to the first element. For an
// empty list it equals ConstEnd.
func (l *List[T]) ConstBegin() ConstIterator[T] {
	return ConstIterator[T]{cursor[T]{l.head.next}}
}

// ConstEnd returns the read-only past-the-end iterator.
func (l *List[T]) ConstEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// ConstBeforeBegin returns the read-only iterator to the position
// before the first element.
func (l *List[T]) ConstBeforeBegin() ConstIterator[T] {
	return ConstIterator[T]{cursor[T]{&l.head}}
}
