// Package list provides List[T], a plain-Go-slice dynamic array
// underlying nulllist's dense value storage and every other container in
// this module that needs a dense, resizable sequence.
//
// List grows by roughly 1.5x on reallocation, shifts elements on
// Insert/Remove, and offers a Try-prefixed fallible-access API alongside
// the panicking one (see DESIGN.md for the rationale behind collapsing
// what used to be two separate layers into this single type).
//
// # Complexity
//
//	Access/Append/Pop:  O(1), O(1) amortized on resize
//	Prepend/Insert/Remove/Shift: O(n)
package list

import (
	"fmt"

	"github.com/coldforge/primcoll/internal/generics"
	"github.com/coldforge/primcoll/resize"
	"github.com/coldforge/primcoll/sequence"
)

// List is a resizable array that grows automatically, amortizing the cost
// of Append to O(1).
//
//	capacity = 8
//	┌───┬───┬───┬───┬───┬───┬───┬───┐
//	│ A │ B │ C │ D │ E │   │   │   │  <- 3 empty slots
//	└───┴───┴───┴───┴───┴───┴───┴───┘
//	          size = 5
type List[T any] struct {
	data []T
}

// New creates an empty List with the given initial capacity.
//
// complexity:
//   - time : O(capacity)
//   - space: O(capacity)
func New[T any](capacity int) *List[T] {
	if capacity < 0 {
		panic("list.New: capacity must be >= 0")
	}
	return &List[T]{data: make([]T, 0, capacity)}
}

// Of creates a List pre-populated with the given elements.
//
// complexity:
//   - time : O(len(values))
//   - space: O(len(values))
func Of[T any](values ...T) *List[T] {
	l := New[T](len(values))
	l.data = append(l.data, values...)
	return l
}

// Size returns the number of elements in the list.
func (l *List[T]) Size() int { return len(l.data) }

// Cap returns the current backing capacity.
func (l *List[T]) Cap() int { return cap(l.data) }

// Empty returns true if the list has no elements.
func (l *List[T]) Empty() bool { return len(l.data) == 0 }

// Get retrieves the element at index.
//
// Panics if index < 0 or index >= Size().
func (l *List[T]) Get(index int) T {
	l.checkBounds(index)
	return l.data[index]
}

// TryGet attempts to retrieve the element at index.
func (l *List[T]) TryGet(index int) (T, bool) {
	if index < 0 || index >= len(l.data) {
		return generics.ZeroValue[T](), false
	}
	return l.data[index], true
}

// Set updates the element at index.
//
// Panics if index < 0 or index >= Size().
func (l *List[T]) Set(index int, value T) {
	l.checkBounds(index)
	l.data[index] = value
}

// TrySet attempts to update the element at index.
func (l *List[T]) TrySet(index int, value T) bool {
	if index < 0 || index >= len(l.data) {
		return false
	}
	l.data[index] = value
	return true
}

// Head returns the first element without removing it.
//
// Panics if the list is empty.
func (l *List[T]) Head() T {
	v, ok := l.TryHead()
	if !ok {
		panic("list.Head: list is empty")
	}
	return v
}

// TryHead attempts to return the first element.
func (l *List[T]) TryHead() (T, bool) { return l.TryGet(0) }

// Tail returns the last element without removing it.
//
// Panics if the list is empty.
func (l *List[T]) Tail() T {
	v, ok := l.TryTail()
	if !ok {
		panic("list.Tail: list is empty")
	}
	return v
}

// TryTail attempts to return the last element.
func (l *List[T]) TryTail() (T, bool) { return l.TryGet(len(l.data) - 1) }

// Append adds an element to the end of the list.
//
// complexity:
//   - time : O(1) amortized
func (l *List[T]) Append(value T) {
	l.data = resize.Grow(l.data, len(l.data)+1)
	l.data = append(l.data, value)
}

// Prepend adds an element to the front of the list.
//
// complexity:
//   - time : O(n)
func (l *List[T]) Prepend(value T) { l.Insert(0, value) }

// Pop removes and returns the last element.
//
// Panics if the list is empty.
func (l *List[T]) Pop() T {
	v, ok := l.TryPop()
	if !ok {
		panic("list.Pop: list is empty")
	}
	return v
}

// TryPop attempts to remove and return the last element.
func (l *List[T]) TryPop() (T, bool) {
	if len(l.data) == 0 {
		return generics.ZeroValue[T](), false
	}
	var zero T
	v := l.data[len(l.data)-1]
	l.data[len(l.data)-1] = zero
	l.data = l.data[:len(l.data)-1]
	return v, true
}

// Shift removes and returns the first element.
//
// Panics if the list is empty.
func (l *List[T]) Shift() T {
	v, ok := l.TryShift()
	if !ok {
		panic("list.Shift: list is empty")
	}
	return v
}

// TryShift attempts to remove and return the first element.
func (l *List[T]) TryShift() (T, bool) {
	if len(l.data) == 0 {
		return generics.ZeroValue[T](), false
	}
	v := l.data[0]
	l.data = resize.Remove(l.data, 0)
	return v, true
}

// Swap exchanges elements at two indices.
func (l *List[T]) Swap(i, j int) {
	if i != j {
		l.data[i], l.data[j] = l.data[j], l.data[i]
	}
}

// Insert adds an element at the given index, shifting later elements
// right by one.
//
// Panics if index < 0 or index > Size().
func (l *List[T]) Insert(index int, value T) {
	if index < 0 || index > len(l.data) {
		panic("list.Insert: index out of range")
	}
	l.data = resize.Insert(l.data, index)
	l.data[index] = value
}

// Remove deletes and returns the element at the given index, shifting
// later elements left by one.
//
// Panics if index < 0 or index >= Size().
func (l *List[T]) Remove(index int) T {
	v, ok := l.TryRemove(index)
	if !ok {
		panic("list.Remove: index out of range")
	}
	return v
}

// TryRemove attempts to remove the element at the given index.
func (l *List[T]) TryRemove(index int) (T, bool) {
	if index < 0 || index >= len(l.data) {
		return generics.ZeroValue[T](), false
	}
	v := l.data[index]
	l.data = resize.Remove(l.data, index)
	return v, true
}

// Clip reduces capacity to match size.
//
// Panics if the list is empty.
func (l *List[T]) Clip() {
	if l.Empty() {
		panic("list.Clip: list is empty")
	}
	clipped := make([]T, len(l.data))
	copy(clipped, l.data)
	l.data = clipped
}

// Iter iterates over elements from front to back.
func (l *List[T]) Iter(yield func(T) bool) {
	for _, v := range l.data {
		if !yield(v) {
			return
		}
	}
}

// IterBackward iterates over elements from back to front.
func (l *List[T]) IterBackward(yield func(T) bool) {
	for i := len(l.data) - 1; i >= 0; i-- {
		if !yield(l.data[i]) {
			return
		}
	}
}

// Enum iterates over elements with their indices from front to back.
func (l *List[T]) Enum(yield func(int, T) bool) {
	for i, v := range l.data {
		if !yield(i, v) {
			return
		}
	}
}

// EnumBackward iterates over elements with their indices from back to
// front.
func (l *List[T]) EnumBackward(yield func(int, T) bool) {
	for i := len(l.data) - 1; i >= 0; i-- {
		if !yield(i, l.data[i]) {
			return
		}
	}
}

// String returns the string representation, e.g. "[1 2 3]".
func (l *List[T]) String() string {
	return sequence.String(l.Iter)
}

func (l *List[T]) checkBounds(index int) {
	if index < 0 || index >= len(l.data) {
		panic(fmt.Sprintf("list: index out of range [%d] with length %d", index, len(l.data)))
	}
}
