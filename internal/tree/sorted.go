// Package tree provides an ordered, single-owner index over
// github.com/tidwall/btree for producing sorted views of unordered data.
package tree

import (
	"errors"

	"github.com/tidwall/btree"
)

// ErrLessNil is returned when an index is created without a comparator.
var ErrLessNil = errors.New("less function is nil")

// Sorted keeps items ordered by a less function. It holds no locks; callers
// own it exclusively.
type Sorted[T any] struct {
	tr *btree.BTreeG[T]
}

// NewSorted returns an empty index ordered by less.
func NewSorted[T any](less func(a, b T) bool) (*Sorted[T], error) {
	if less == nil {
		return nil, ErrLessNil
	}
	return &Sorted[T]{tr: btree.NewBTreeGOptions[T](less, btree.Options{NoLocks: true})}, nil
}

// Set adds item to the index. An equal item already present is replaced and
// returned with replaced set to true.
func (s *Sorted[T]) Set(item T) (prev T, replaced bool) {
	return s.tr.SetHint(item, nil)
}

// Ascend iterates over all items in ascending order until iter returns false.
func (s *Sorted[T]) Ascend(iter func(item T) bool) {
	if iter == nil {
		return
	}
	s.tr.Scan(iter)
}

// AscendGTE iterates in ascending order starting at the first item not less
// than pivot.
func (s *Sorted[T]) AscendGTE(pivot T, iter func(item T) bool) {
	if iter == nil {
		return
	}
	s.tr.Ascend(pivot, iter)
}

// Descend iterates over all items in descending order until iter returns
// false.
func (s *Sorted[T]) Descend(iter func(item T) bool) {
	if iter == nil {
		return
	}
	s.tr.Reverse(iter)
}

// DescendLTE iterates in descending order starting at the last item not
// greater than pivot.
func (s *Sorted[T]) DescendLTE(pivot T, iter func(item T) bool) {
	if iter == nil {
		return
	}
	s.tr.Descend(pivot, iter)
}

// Len returns the number of items in the index.
func (s *Sorted[T]) Len() int {
	return s.tr.Len()
}
