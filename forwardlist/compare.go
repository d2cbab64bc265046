package forwardlist

import "cmp"

// Equal reports whether a and b hold elementwise-equal values in the
// same order. Lists of different lengths are never equal.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied equality predicate, for
// element types that are not comparable. The pairwise traversal stops
// at the first mismatch or at the end of the shorter list.
func EqualFunc[T any](a, b *List[T], eq func(a, b T) bool) bool {
	an, bn := a.head.next, b.head.next
	for an != nil && bn != nil {
		if !eq(an.value, bn.value) {
			return false
		}
		an, bn = an.next, bn.next
	}
	return an == nil && bn == nil
}

// Less reports whether a sorts lexicographically before b: the first
// unequal pair of elements decides, and a strict prefix sorts before
// the longer list. The empty list sorts before any non-empty list.
func Less[T cmp.Ordered](a, b *List[T]) bool {
	return LessFunc(a, b, cmp.Less[T])
}

// LessFunc is Less with a caller-supplied strict ordering.
func LessFunc[T any](a, b *List[T], less func(a, b T) bool) bool {
	an, bn := a.head.next, b.head.next
	for an != nil && bn != nil {
		if less(an.value, bn.value) {
			return true
		}
		if less(bn.value, an.value) {
			return false
		}
		an, bn = an.next, bn.next
	}
	return an == nil && bn != nil
}

// Greater reports whether b sorts lexicographically before a.
func Greater[T cmp.Ordered](a, b *List[T]) bool {
	return Less(b, a)
}

// LessEqual reports whether a sorts before b or equals it.
func LessEqual[T cmp.Ordered](a, b *List[T]) bool {
	return Less(a, b) || Equal(a, b)
}

// GreaterEqual reports whether b sorts before a or equals it.
func GreaterEqual[T cmp.Ordered](a, b *List[T]) bool {
	return Less(b, a) || Equal(a, b)
}
