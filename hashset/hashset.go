// Package hashset provides Set[E], a set backed by hashmap.Map with an
// empty-struct value: Add/Del/Exists delegate straight to the backing
// map, Intersection/Disjoint iterate whichever operand is smaller, and
// Union walks both.
package hashset

import (
	"fmt"
	"strings"

	"github.com/coldforge/primcoll/equalhash"
	"github.com/coldforge/primcoll/hashmap"
	"github.com/coldforge/primcoll/sequence"
)

// none is an empty struct used as a placeholder value; struct{} uses 0
// bytes of memory, so Set pays only for the key storage of its backing
// Map.
type none = struct{}

// Set is a set implementation backed by a hashmap.Map.
type Set[E comparable] struct {
	backend *hashmap.Map[E, none]
}

// New creates an empty Set, hashing elements with hash.
//
// complexity:
//   - time : O(1)
func New[E comparable](hash func(E) uint64) *Set[E] {
	return &Set[E]{backend: hashmap.New[E, none](hash)}
}

// NewWithEqualHash creates an empty Set using a full EqualHash strategy,
// for reference-typed elements.
func NewWithEqualHash[E comparable](eh equalhash.EqualHash[E]) *Set[E] {
	return &Set[E]{backend: hashmap.NewWithEqualHash[E, none](eh)}
}

// Add inserts an element into the set. No-op if already present.
//
// complexity:
//   - time : O(1) amortized
func (s *Set[E]) Add(data E) {
	s.backend.Put(data, none{})
}

// Del removes an element from the set. No-op if not present.
//
// complexity:
//   - time : O(1) amortized
func (s *Set[E]) Del(data E) {
	s.backend.Del(data)
}

// Exists checks if an element is in the set.
//
// complexity:
//   - time : O(1) amortized
func (s *Set[E]) Exists(data E) bool {
	return s.backend.Exists(data)
}

// Size returns the number of elements in the set.
func (s *Set[E]) Size() int { return s.backend.Size() }

// Empty returns true if the set has no elements.
func (s *Set[E]) Empty() bool { return s.backend.Empty() }

// String returns the string representation of the set, e.g. "{1 2 3}".
// Order is not guaranteed.
//
// complexity:
//   - time : O(n)
func (s *Set[E]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range sequence.Enum(s.Iter) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", e)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Iter iterates over all elements in the set. Order is not guaranteed.
//
// complexity:
//   - time : O(capacity)
func (s *Set[E]) Iter(yield func(E) bool) {
	s.backend.Keys(yield)
}

// Union returns a new set with elements from both sets. Neither original
// set is modified. The returned set hashes its elements with hash.
//
// complexity:
//   - time : O(n + m)
func (s *Set[E]) Union(hash func(E) uint64, s2 *Set[E]) *Set[E] {
	union := New[E](hash)
	for e := range s.Iter {
		union.Add(e)
	}
	for e := range s2.Iter {
		union.Add(e)
	}
	return union
}

// Intersection returns a new set with elements present in both sets.
//
// complexity:
//   - time : O(min(n, m))
func (s *Set[E]) Intersection(hash func(E) uint64, s2 *Set[E]) *Set[E] {
	smaller, larger := s, s2
	if s2.Size() < s.Size() {
		smaller, larger = s2, s
	}
	intersection := New[E](hash)
	for e := range smaller.Iter {
		if larger.Exists(e) {
			intersection.Add(e)
		}
	}
	return intersection
}

// Disjoint returns true if the two sets have no common elements.
//
// complexity:
//   - time : O(min(n, m))
func (s *Set[E]) Disjoint(s2 *Set[E]) bool {
	smaller, larger := s, s2
	if s2.Size() < s.Size() {
		smaller, larger = s2, s
	}
	for e := range smaller.Iter {
		if larger.Exists(e) {
			return false
		}
	}
	return true
}
