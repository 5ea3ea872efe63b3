package slist

import "iter"

// A ReadIter is a read-only position in a [List]. It references a
// node without owning it; the zero ReadIter is the position one past
// the last element.
//
// A ReadIter becomes invalid once the node it references is removed
// or its list is cleared, reassigned, or taken from. Positions
// referencing other nodes are unaffected by mutations elsewhere in
// the list.
type ReadIter[T any] struct {
	n *node[T]
}

// Valid reports whether the position references an element, as
// opposed to being the end position.
func (it ReadIter[T]) Valid() bool { return it.n != nil }

// Next returns the position after it. It must not be called on the
// end position.
func (it ReadIter[T]) Next() ReadIter[T] { return ReadIter[T]{n: it.n.next} }

// Value returns the element at the position. It must not be called
// on the end position.
func (it ReadIter[T]) Value() T { return it.n.val }

// An Iter is a mutable position in a [List]. It has the same
// semantics as [ReadIter] plus the ability to modify the element in
// place. The zero Iter is the end position.
//
// An Iter converts to a [ReadIter] via [Iter.Read]; there is no
// conversion in the other direction.
type Iter[T any] struct {
	n *node[T]
}

// Valid reports whether the position references an element, as
// opposed to being the end position.
func (it Iter[T]) Valid() bool { return it.n != nil }

// Next returns the position after it. It must not be called on the
// end position.
func (it Iter[T]) Next() Iter[T] { return Iter[T]{n: it.n.next} }

// Value returns the element at the position. It must not be called
// on the end position.
func (it Iter[T]) Value() T { return it.n.val }

// Ptr returns a pointer to the element at the position, valid until
// the node is removed. It must not be called on the end position.
func (it Iter[T]) Ptr() *T { return &it.n.val }

// Set replaces the element at the position. It must not be called on
// the end position.
func (it Iter[T]) Set(v T) { it.n.val = v }

// Read returns the same position as a read-only [ReadIter].
func (it Iter[T]) Read() ReadIter[T] { return ReadIter[T]{n: it.n} }

// Begin returns the position of the first element. Each call returns
// a fresh, independent position; on an empty list it equals
// [List.End].
func (ls *List[T]) Begin() Iter[T] { return Iter[T]{n: ls.head} }

// End returns the position one past the last element. Positions
// compare with ==, so iteration runs from Begin until End.
func (ls *List[T]) End() Iter[T] { return Iter[T]{} }

// ReadBegin returns the position of the first element as a read-only
// [ReadIter].
func (ls *List[T]) ReadBegin() ReadIter[T] { return ReadIter[T]{n: ls.head} }

// ReadEnd returns the read-only position one past the last element.
func (ls *List[T]) ReadEnd() ReadIter[T] { return ReadIter[T]{} }

// All returns an iterator over the elements of the list, from front
// to back. The list must not be mutated during iteration.
func (ls *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := ls.head
		for cur != nil {
			if !yield(cur.val) {
				return
			}
			cur = cur.next
		}
	}
}

// InsertAfter links v in as a new node immediately after pos,
// returning the new node's position. If pos was the tail, the new
// node becomes the tail. It returns [ErrInvalidPosition] if pos is
// the end position. No existing position is invalidated.
func (ls *List[T]) InsertAfter(pos Iter[T], v T) (Iter[T], error) {
	if pos.n == nil {
		return Iter[T]{}, ErrInvalidPosition
	}

	n := &node[T]{val: v, next: pos.n.next}
	pos.n.next = n
	if ls.tail == pos.n {
		ls.tail = n
	}
	ls.len++
	return Iter[T]{n: n}, nil
}

// InsertAfterFunc is like [List.InsertAfter] but the element is
// produced by calling fn after the node exists. If fn panics the
// list is unchanged.
func (ls *List[T]) InsertAfterFunc(pos Iter[T], fn func() T) (Iter[T], error) {
	if pos.n == nil {
		return Iter[T]{}, ErrInvalidPosition
	}

	n := &node[T]{next: pos.n.next}
	n.val = fn()
	pos.n.next = n
	if ls.tail == pos.n {
		ls.tail = n
	}
	ls.len++
	return Iter[T]{n: n}, nil
}

// EraseAfter removes the node immediately after pos and returns the
// position now following pos. If the removed node was the tail, pos
// becomes the tail. It returns [ErrInvalidPosition] if pos is the
// end position and [ErrEmptyRange] if pos has no successor. Only the
// removed node's position is invalidated.
func (ls *List[T]) EraseAfter(pos Iter[T]) (Iter[T], error) {
	if pos.n == nil {
		return Iter[T]{}, ErrInvalidPosition
	}
	doomed := pos.n.next
	if doomed == nil {
		return Iter[T]{}, ErrEmptyRange
	}

	pos.n.next = doomed.next
	doomed.next = nil
	if ls.tail == doomed {
		ls.tail = pos.n
	}
	ls.len--
	return Iter[T]{n: pos.n.next}, nil
}
