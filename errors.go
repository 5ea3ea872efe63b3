package slist

import "errors"

var (
	// ErrEmpty is returned by accessors and removals called on an
	// empty list.
	ErrEmpty = errors.New("slist: list is empty")

	// ErrInvalidPosition is returned by position-based mutations
	// given the end position.
	ErrInvalidPosition = errors.New("slist: invalid position")

	// ErrEmptyRange is returned by [List.EraseAfter] when the given
	// position has no successor to remove.
	ErrEmptyRange = errors.New("slist: no element after position")
)
