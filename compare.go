package slist

import "cmp"

// Equal reports whether a and b hold equal elements in the same
// order. It compares lengths first and so is O(min(n, m)).
func Equal[T comparable](a, b *List[T]) bool {
	if a.len != b.len {
		return false
	}

	bn := b.head
	for an := a.head; an != nil; an = an.next {
		if an.val != bn.val {
			return false
		}
		bn = bn.next
	}
	return true
}

// EqualFunc is like [Equal] but compares element pairs with eq,
// allowing the two lists to hold different element types.
func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	if a.len != b.len {
		return false
	}

	bn := b.head
	for an := a.head; an != nil; an = an.next {
		if !eq(an.val, bn.val) {
			return false
		}
		bn = bn.next
	}
	return true
}

// Compare lexicographically compares the elements of a and b, the
// same way [slices.Compare] does for slices: the first unequal pair
// decides, and if one list is a prefix of the other the shorter list
// is less. The result is -1, 0, or 1.
//
// The remaining order relations follow from Compare and [Equal]:
// a < b is Compare(a, b) < 0, a >= b is Compare(a, b) >= 0, and so
// on.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	an, bn := a.head, b.head
	for an != nil && bn != nil {
		if c := cmp.Compare(an.val, bn.val); c != 0 {
			return c
		}
		an, bn = an.next, bn.next
	}

	switch {
	case an != nil:
		return 1
	case bn != nil:
		return -1
	default:
		return 0
	}
}

// CompareFunc is like [Compare] but compares element pairs with cmp,
// allowing the two lists to hold different element types.
func CompareFunc[T, U any](a *List[T], b *List[U], cmp func(T, U) int) int {
	an, bn := a.head, b.head
	for an != nil && bn != nil {
		if c := cmp(an.val, bn.val); c != 0 {
			return c
		}
		an, bn = an.next, bn.next
	}

	switch {
	case an != nil:
		return 1
	case bn != nil:
		return -1
	default:
		return 0
	}
}

// Less reports whether a is lexicographically less than b.
func Less[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) < 0
}
