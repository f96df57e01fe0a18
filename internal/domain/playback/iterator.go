package playback

import (
	"fmt"
	"iter"
)

// Iterator is a bidirectional cursor over a fixed slice. The cursor starts
// at -1, before the first element.
type Iterator[T any] struct {
	items  []T
	cursor int
}

// NewIterator creates an iterator over items. The slice is not copied.
func NewIterator[T any](items []T) *Iterator[T] {
	return &Iterator[T]{items: items, cursor: -1}
}

// Len returns the number of elements.
func (it *Iterator[T]) Len() int {
	return len(it.items)
}

// Cursor returns the current position, -1 before the first Next.
func (it *Iterator[T]) Cursor() int {
	return it.cursor
}

// HasNext reports whether Next would succeed.
func (it *Iterator[T]) HasNext() bool {
	return it.cursor < len(it.items)-1
}

// NextIndex returns cursor+1, which may be out of range.
func (it *Iterator[T]) NextIndex() int {
	return it.cursor + 1
}

// Next moves the cursor forward and returns the element under it.
func (it *Iterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, fmt.Errorf("%w: next index %d, size %d", ErrOutOfRange, it.NextIndex(), len(it.items))
	}
	it.cursor++
	return it.items[it.cursor], nil
}

// HasPrevious reports whether Previous would succeed.
func (it *Iterator[T]) HasPrevious() bool {
	return it.cursor > 0
}

// PreviousIndex returns cursor-1, which may be out of range.
func (it *Iterator[T]) PreviousIndex() int {
	return it.cursor - 1
}

// Previous moves the cursor back and returns the element under it.
func (it *Iterator[T]) Previous() (T, error) {
	if !it.HasPrevious() {
		var zero T
		return zero, fmt.Errorf("%w: previous index %d, size %d", ErrOutOfRange, it.PreviousIndex(), len(it.items))
	}
	it.cursor--
	return it.items[it.cursor], nil
}

// Seek places the cursor at index.
func (it *Iterator[T]) Seek(index int) error {
	if index < 0 || index >= len(it.items) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, index, len(it.items))
	}
	it.cursor = index
	return nil
}

// Current returns the element under the cursor.
func (it *Iterator[T]) Current() (T, bool) {
	return it.At(it.cursor)
}

// At returns the element at index i.
func (it *Iterator[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(it.items) {
		var zero T
		return zero, false
	}
	return it.items[i], true
}

// All yields every element with its index, independent of the cursor.
func (it *Iterator[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range it.items {
			if !yield(i, item) {
				return
			}
		}
	}
}
