package arrayrange

// Iterator is a forward iterator over a Range.
//
// It holds a copy of the range view, not of the items, so it stays valid only
// as long as the storage behind the range does.
type Iterator[T any] struct {
	view Range[T]
	pos  int
}

// Next advances the iterator to the next item accepted by the range, or to
// End if none remain.
func (it *Iterator[T]) Next() {
	if it.pos >= len(it.view.items) {
		return
	}

	it.pos = it.view.nextFrom(it.pos + 1)
}

// Value returns a copy of the current item.
func (it Iterator[T]) Value() T {
	return it.view.items[it.pos]
}

// Pointer returns a pointer to the current item inside the storage.
func (it Iterator[T]) Pointer() *T {
	return &it.view.items[it.pos]
}

// Index returns the position of the iterator in the underlying storage.
func (it Iterator[T]) Index() int {
	return it.pos
}

// Equal reports whether both iterators point to the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.pos == other.pos
}

// ReverseIterator walks a Range from its last item to its first one.
type ReverseIterator[T any] struct {
	view Range[T]
	pos  int
}

// Next moves the iterator to the previous item accepted by the range, or to
// REnd if none remain.
func (it *ReverseIterator[T]) Next() {
	if it.pos < 0 {
		return
	}

	it.pos = it.view.prevFrom(it.pos - 1)
}

// Value returns a copy of the current item.
func (it ReverseIterator[T]) Value() T {
	return it.view.items[it.pos]
}

// Pointer returns a pointer to the current item inside the storage.
func (it ReverseIterator[T]) Pointer() *T {
	return &it.view.items[it.pos]
}

// Index returns the position of the iterator in the underlying storage.
func (it ReverseIterator[T]) Index() int {
	return it.pos
}

// Equal reports whether both iterators point to the same position.
func (it ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return it.pos == other.pos
}
