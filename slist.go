// Package slist provides a generic singly linked sequence container
// to supplement the standard library's container packages.
//
// A [List] stores its elements in an owned chain of nodes with a
// cached tail and length, giving O(1) insertion at both ends and
// after any known position. Positions in a list are represented by
// the lightweight [Iter] and [ReadIter] handles.
package slist

import "iter"

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// A List is a singly linked sequence of elements. It keeps a
// reference to the last node for quick appends and caches its length.
// A zero value List is an empty list ready to use.
//
// A List must not be copied by value after first use; use [List.Clone]
// for a deep copy or [List.Take] to transfer ownership.
type List[T any] struct {
	noCopy noCopy

	head, tail *node[T]
	len        int
}

type node[T any] struct {
	val  T
	next *node[T]
}

// New returns a new list containing vals in order.
func New[T any](vals ...T) *List[T] {
	ls := new(List[T])
	for _, v := range vals {
		ls.PushBack(v)
	}
	return ls
}

// Collect returns a new list containing the values yielded by seq in
// order.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	ls := new(List[T])
	for v := range seq {
		ls.PushBack(v)
	}
	return ls
}

// Len returns the number of elements in the list.
func (ls *List[T]) Len() int { return ls.len }

// Empty reports whether the list has no elements.
func (ls *List[T]) Empty() bool { return ls.len == 0 }

// PushFront adds v as a new node at the head of the list. Existing
// positions remain valid.
func (ls *List[T]) PushFront(v T) {
	n := &node[T]{val: v, next: ls.head}
	if ls.tail == nil {
		ls.tail = n
	}
	ls.head = n
	ls.len++
}

// PushFrontFunc is like [List.PushFront] but the element is produced
// by calling fn after the node exists, so the value never passes
// through an intermediate copy. If fn panics the list is unchanged.
func (ls *List[T]) PushFrontFunc(fn func() T) {
	n := &node[T]{next: ls.head}
	n.val = fn()
	if ls.tail == nil {
		ls.tail = n
	}
	ls.head = n
	ls.len++
}

// PushBack adds v as a new node at the tail of the list. Existing
// positions remain valid.
func (ls *List[T]) PushBack(v T) {
	n := &node[T]{val: v}
	if ls.head == nil {
		ls.head = n
	} else {
		ls.tail.next = n
	}
	ls.tail = n
	ls.len++
}

// PushBackFunc is like [List.PushBack] but the element is produced by
// calling fn after the node exists. If fn panics the list is
// unchanged.
func (ls *List[T]) PushBackFunc(fn func() T) {
	n := new(node[T])
	n.val = fn()
	if ls.head == nil {
		ls.head = n
	} else {
		ls.tail.next = n
	}
	ls.tail = n
	ls.len++
}

// PopFront removes the head node and returns its element. It returns
// [ErrEmpty] if the list is empty. Only positions referencing the
// removed node are invalidated.
func (ls *List[T]) PopFront() (T, error) {
	if ls.head == nil {
		var zero T
		return zero, ErrEmpty
	}

	n := ls.head
	ls.head = n.next
	n.next = nil
	if ls.head == nil {
		ls.tail = nil
	}
	ls.len--
	return n.val, nil
}

// PopBack removes the tail node and returns its element. It returns
// [ErrEmpty] if the list is empty. Only positions referencing the old
// tail are invalidated.
//
// The chain is singly linked, so finding the new tail walks the list
// and PopBack is O(n).
func (ls *List[T]) PopBack() (T, error) {
	if ls.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	if ls.head == ls.tail {
		return ls.PopFront()
	}

	prev := ls.head
	for prev.next != ls.tail {
		prev = prev.next
	}
	v := ls.tail.val
	prev.next = nil
	ls.tail = prev
	ls.len--
	return v, nil
}

// Front returns a pointer to the first element, valid until that node
// is removed. It returns [ErrEmpty] if the list is empty.
func (ls *List[T]) Front() (*T, error) {
	if ls.head == nil {
		return nil, ErrEmpty
	}
	return &ls.head.val, nil
}

// Back returns a pointer to the last element, valid until that node
// is removed. It returns [ErrEmpty] if the list is empty.
func (ls *List[T]) Back() (*T, error) {
	if ls.tail == nil {
		return nil, ErrEmpty
	}
	return &ls.tail.val, nil
}

// Clear removes every element, leaving the list empty. All positions
// into the list become invalid.
//
// The chain is unlinked node by node in a loop so that an outstanding
// iterator can only keep its own node reachable, not everything
// after it.
func (ls *List[T]) Clear() {
	for n := ls.head; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	ls.head = nil
	ls.tail = nil
	ls.len = 0
}

// Reverse reverses the order of the elements in place. Every node is
// kept, so all positions remain valid; traversing from one now heads
// toward the old front of the list.
func (ls *List[T]) Reverse() {
	if ls.len < 2 {
		return
	}

	var prev *node[T]
	cur := ls.head
	ls.tail = cur
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	ls.head = prev
}

// Clone returns a deep copy of the list. The copy shares no nodes
// with the original.
func (ls *List[T]) Clone() *List[T] {
	out := new(List[T])
	for n := ls.head; n != nil; n = n.next {
		out.PushBack(n.val)
	}
	return out
}

// Assign replaces the contents of ls with a deep copy of other. The
// copy is built first and swapped in, so ls is untouched until the
// whole copy exists. Assigning a list to itself is a no-op.
func (ls *List[T]) Assign(other *List[T]) {
	if ls == other {
		return
	}
	ls.Swap(other.Clone())
}

// Take transfers the contents of other into ls in O(1), dropping
// whatever ls held. After Take, other is empty and ready for reuse.
// Taking from itself is a no-op.
func (ls *List[T]) Take(other *List[T]) {
	if ls == other {
		return
	}

	ls.head, ls.tail, ls.len = other.head, other.tail, other.len
	other.head, other.tail, other.len = nil, nil, 0
}

// Swap exchanges the contents of ls and other in O(1).
func (ls *List[T]) Swap(other *List[T]) {
	ls.head, other.head = other.head, ls.head
	ls.tail, other.tail = other.tail, ls.tail
	ls.len, other.len = other.len, ls.len
}
