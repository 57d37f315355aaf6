// Package nulllist provides NullList, a logical sequence of optional
// values represented as a nulls bitmap plus a dense list of the present
// values, related by rank — the same relationship a bitmap index gives
// a column store: position i's presence bit ranks it into the dense
// array without needing a hole for every absent value.
package nulllist

import (
	"github.com/coldforge/primcoll/bitlist"
	"github.com/coldforge/primcoll/internal/generics"
	"github.com/coldforge/primcoll/list"
)

// NullList is a sequence of Option[T], position i present iff
// nulls.Get(i).
type NullList[T any] struct {
	nulls  *bitlist.BitList
	values *list.List[T]
}

// New creates an empty NullList.
func New[T any]() *NullList[T] {
	return &NullList[T]{nulls: bitlist.New(), values: list.New[T](0)}
}

// Size returns the logical length of the sequence, including null
// positions.
func (n *NullList[T]) Size() int { return n.nulls.Size() }

// PresentCount returns the number of positions currently holding a
// value.
func (n *NullList[T]) PresentCount() int { return n.values.Size() }

// rank computes the 0-based index into values for a present position i.
func (n *NullList[T]) rank(i int) int { return n.nulls.Rank(i) - 1 }

// Get returns the value at position i and whether it is present.
//
// complexity:
//   - time : O(i/64)
func (n *NullList[T]) Get(i int) (T, bool) {
	if !n.nulls.Get(i) {
		return generics.ZeroValue[T](), false
	}
	return n.values.Get(n.rank(i)), true
}

// Set writes value at position i, marking it present. If i is beyond
// Size, the sequence grows (with intervening positions left absent).
//
// complexity:
//   - time : O(i/64) when already present, O(Size) when inserting new
func (n *NullList[T]) Set(i int, value T) {
	if n.nulls.Get(i) {
		n.values.Set(n.rank(i), value)
		return
	}
	n.nulls.Set1(i)
	n.values.Insert(n.rank(i), value)
}

// Clear removes the value at position i, if present, marking it absent.
// The position itself remains within Size.
//
// complexity:
//   - time : O(Size)
func (n *NullList[T]) Clear(i int) {
	if n.nulls.Get(i) {
		n.values.Remove(n.rank(i))
	}
	n.nulls.Set0(i) // no-op on the bit itself when absent; still extends Size to i+1
}

// Insert shifts positions [i, Size) right by one and writes the new
// position with the given optional value.
//
// complexity:
//   - time : O(Size)
func (n *NullList[T]) Insert(i int, value T, present bool) {
	n.nulls.Insert(i, present)
	if present {
		n.values.Insert(n.rank(i), value)
	}
}

// Remove shifts positions (i, Size) left by one, removing position i.
//
// complexity:
//   - time : O(Size)
func (n *NullList[T]) Remove(i int) {
	if n.nulls.Get(i) {
		n.values.Remove(n.rank(i))
	}
	n.nulls.Remove(i)
}

// Iter yields (index, value, present) for every position from front to
// back.
func (n *NullList[T]) Iter(yield func(i int, value T, present bool) bool) {
	for i := 0; i < n.nulls.Size(); i++ {
		v, ok := n.Get(i)
		if !yield(i, v, ok) {
			return
		}
	}
}
