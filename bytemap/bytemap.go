// Package bytemap provides Map[V], a byte-keyed map specialized over
// byteset.ByteSet: since a byte key space has only 256 members, the
// presence bitmap plus a dense, rank-indexed value list beats a general
// hashcore.Core for this one key type, trading hashcore's O(1)-amortized
// generality for ByteSet's branch-free O(1) rank lookup.
package bytemap

import (
	"github.com/coldforge/primcoll/byteset"
	"github.com/coldforge/primcoll/internal/generics"
	"github.com/coldforge/primcoll/list"
)

// Map is a byte-keyed map backed by a ByteSet presence bitmap and a
// dense List<V> of values, related by rank the same way nulllist.NullList
// relates its nulls bitmap to its dense value list.
type Map[V any] struct {
	keys      *byteset.ByteSet
	values    *list.List[V]
	nullValue V
}

// New creates an empty byte-keyed map.
func New[V any]() *Map[V] {
	return &Map[V]{keys: byteset.New(), values: list.New[V](0)}
}

// Size returns the number of entries.
func (m *Map[V]) Size() int { return m.keys.Size() }

// Get returns the value for b and whether it is present.
//
// complexity:
//   - time : O(1) amortized
func (m *Map[V]) Get(b byte) (V, bool) {
	if !m.keys.Contains(b) {
		return generics.ZeroValue[V](), false
	}
	return m.values.Get(m.keys.Rank(b) - 1), true
}

// Put inserts or overwrites the value for b, returning true if the
// logical size increased.
//
// complexity:
//   - time : O(Size)
func (m *Map[V]) Put(b byte, v V) bool {
	if m.keys.Contains(b) {
		m.values.Set(m.keys.Rank(b)-1, v)
		return false
	}
	m.keys.Add(b)
	m.values.Insert(m.keys.Rank(b)-1, v)
	return true
}

// Remove deletes the entry for b, returning whether it was present.
//
// complexity:
//   - time : O(Size)
func (m *Map[V]) Remove(b byte) bool {
	if !m.keys.Contains(b) {
		return false
	}
	idx := m.keys.Rank(b) - 1
	m.values.Remove(idx)
	m.keys.Remove(b)
	return true
}

// PutNullKey inserts or overwrites the distinguished null-key value.
func (m *Map[V]) PutNullKey(v V) bool {
	had := m.keys.HasNullKey()
	m.keys.AddNullKey()
	m.nullValue = v
	return !had
}

// GetNullKey returns the null-key value and whether it is present.
func (m *Map[V]) GetNullKey() (V, bool) {
	if !m.keys.HasNullKey() {
		return generics.ZeroValue[V](), false
	}
	return m.nullValue, true
}

// RemoveNullKey clears the null-key entry.
func (m *Map[V]) RemoveNullKey() bool {
	var zero V
	had := m.keys.RemoveNullKey()
	m.nullValue = zero
	return had
}

// Iter yields every (byte key, value) pair in ascending key order,
// followed by the null key's entry if present.
func (m *Map[V]) Iter(yield func(byte, V) bool) {
	stop := false
	m.keys.Iter(func(b byte) bool {
		v, _ := m.Get(b)
		if !yield(b, v) {
			stop = true
			return false
		}
		return true
	})
	if !stop && m.keys.HasNullKey() {
		yield(0, m.nullValue)
	}
}
