package arrayrange

import "iter"

// Predicate decides whether an item is part of a filtered Range.
type Predicate[T any] func(item T) bool

// Always is the predicate used by NewWithPredicate when none is given.
func Always[T any](T) bool { return true }

// Range is a view into items with lower and upper limits, optionally filtered
// by a predicate. The zero value is an empty unfiltered range.
type Range[T any] struct {
	items []T
	pred  Predicate[T]
}

// New returns an unfiltered range over items. Size is len(items) and no
// predicate is ever called.
func New[T any](items []T) Range[T] {
	return Range[T]{items: items}
}

// NewWithPredicate returns a range over items that only exposes the items for
// which pred returns true. A nil pred is replaced by Always.
func NewWithPredicate[T any](items []T, pred Predicate[T]) Range[T] {
	if pred == nil {
		pred = Always[T]
	}

	return Range[T]{items: items, pred: pred}
}

// NewEmpty returns a range without items.
func NewEmpty[T any]() Range[T] {
	return Range[T]{}
}

// IsFiltered reports whether the range carries a predicate.
func (r Range[T]) IsFiltered() bool {
	return r.pred != nil
}

// Begin returns an iterator to the first item of the range.
// If the range is empty, the returned iterator is equal to End.
func (r Range[T]) Begin() Iterator[T] {
	return Iterator[T]{view: r, pos: r.nextFrom(0)}
}

// End returns an iterator to the position following the last item.
// It is a placeholder and must not be dereferenced.
func (r Range[T]) End() Iterator[T] {
	return Iterator[T]{view: r, pos: len(r.items)}
}

// RBegin returns a reverse iterator to the last item of the range.
// If the range is empty, the returned iterator is equal to REnd.
func (r Range[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{view: r, pos: r.prevFrom(len(r.items) - 1)}
}

// REnd returns a reverse iterator to the position preceding the first item.
// It is a placeholder and must not be dereferenced.
func (r Range[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{view: r, pos: -1}
}

// Size returns the number of items in the range. For a filtered range the
// items are counted by testing the predicate on every slot.
func (r Range[T]) Size() int {
	if r.pred == nil {
		return len(r.items)
	}

	var n int
	for _, item := range r.items {
		if r.pred(item) {
			n++
		}
	}

	return n
}

// Empty reports whether the range has no items.
func (r Range[T]) Empty() bool {
	return r.Begin().Equal(r.End())
}

// First returns the first item of the range.
func (r Range[T]) First() (T, bool) {
	it := r.Begin()
	if it.Equal(r.End()) {
		var zero T
		return zero, false
	}

	return it.Value(), true
}

// Where returns a range over the same storage that exposes the items
// accepted by both the current predicate and pred.
func (r Range[T]) Where(pred Predicate[T]) Range[T] {
	if pred == nil {
		return r
	}
	if r.pred == nil {
		return Range[T]{items: r.items, pred: pred}
	}

	outer := r.pred
	return Range[T]{
		items: r.items,
		pred: func(item T) bool {
			return outer(item) && pred(item)
		},
	}
}

// All returns an iterator over the items in storage order.
func (r Range[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := r.Begin(); !it.Equal(r.End()); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward returns an iterator over the items in reverse storage order.
func (r Range[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := r.RBegin(); !it.Equal(r.REnd()); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Collect copies the items of the range into a new slice.
func (r Range[T]) Collect() []T {
	out := make([]T, 0, r.Size())
	for item := range r.All() {
		out = append(out, item)
	}

	return out
}

// nextFrom returns the first position at or after i that passes the
// predicate, or len(items). The end position is never tested.
func (r Range[T]) nextFrom(i int) int {
	if r.pred == nil {
		return i
	}

	for i < len(r.items) && !r.pred(r.items[i]) {
		i++
	}

	return i
}

// prevFrom returns the first position at or before i that passes the
// predicate, or -1.
func (r Range[T]) prevFrom(i int) int {
	if r.pred == nil {
		return i
	}

	for i >= 0 && !r.pred(r.items[i]) {
		i--
	}

	return i
}
