// Package hashmap provides Map[K, V], a hash table facade over
// hashcore.Core.
//
// # Collision Resolution
//
// Every container in this module that needs "key maps to value" shares
// one engine, hashcore.Core, which resolves collisions with Robin Hood
// open addressing: flatter memory layout, no per-entry allocation, and a
// bounded worst-case probe length. Map exposes New/NewWith, an
// Options[K] struct, Put/Del/Get/Exists/Iter/Keys/String, and Size/Cap/
// LoadFactor/Empty.
//
// # Complexity
//
//	Put/Get/Del/Exists: O(1) amortized
//	Iter/Keys/String:   O(capacity)
package hashmap

import (
	"fmt"
	"strings"

	"github.com/coldforge/primcoll/equalhash"
	"github.com/coldforge/primcoll/hashcore"
	"github.com/coldforge/primcoll/sortutil"
)

// DefaultLoadFactor is the load factor New uses.
const DefaultLoadFactor = hashcore.DefaultLoadFactor

// DefaultCapacity is the expected-entry-count New sizes for.
const DefaultCapacity = 16

// Options configures Map behavior.
type Options[K comparable] struct {
	Capacity      int
	LoadThreshold float64
	EqualHash     equalhash.EqualHash[K]
}

// Map is a hash table mapping K to V.
type Map[K comparable, V any] struct {
	core *hashcore.Core[K, V]
}

// New creates a Map with default settings (sized for 16 expected
// entries, load factor 0.75). Hashing comparable keys with a generic avalanche mixer over
// their memory representation is not possible in Go without reflection,
// so New requires an explicit hash function.
//
// complexity:
//   - time : O(capacity)
func New[K comparable, V any](hash func(K) uint64) *Map[K, V] {
	return NewWith[K, V](Options[K]{
		Capacity:      DefaultCapacity,
		LoadThreshold: DefaultLoadFactor,
		EqualHash:     equalhash.Natural(hash),
	})
}

// NewWithEqualHash creates a Map using a full EqualHash strategy, for
// reference-typed keys whose equality or emptiness isn't just K's
// built-in == and zero value (e.g. the built-in string/float64
// strategies in package equalhash).
func NewWithEqualHash[K comparable, V any](eh equalhash.EqualHash[K]) *Map[K, V] {
	return NewWith[K, V](Options[K]{
		Capacity:      DefaultCapacity,
		LoadThreshold: DefaultLoadFactor,
		EqualHash:     eh,
	})
}

// NewWith creates a Map with custom configuration.
//
// A zero Capacity or LoadThreshold selects DefaultCapacity or
// DefaultLoadFactor. Panics if LoadThreshold is otherwise outside the
// range (0, 1), or EqualHash is nil.
func NewWith[K comparable, V any](opts Options[K]) *Map[K, V] {
	if opts.EqualHash == nil {
		panic("hashmap.NewWith: EqualHash must not be nil")
	}
	loadFactor := opts.LoadThreshold
	if loadFactor == 0 {
		loadFactor = DefaultLoadFactor
	}
	if loadFactor <= 0 || loadFactor >= 1 {
		panic("hashmap.NewWith: load factor must be in range (0,1) exclusive")
	}
	capacity := opts.Capacity
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	core := hashcore.New[K, V](opts.EqualHash, capacity, hashcore.WithLoadFactor[K, V](loadFactor))
	return &Map[K, V]{core: core}
}

// Put inserts or updates a key-value pair.
//
// complexity:
//   - time : O(1) amortized
func (m *Map[K, V]) Put(key K, value V) {
	m.core.Put(key, value)
}

// Del removes a key-value pair from the map. If the key doesn't exist,
// no action is taken.
//
// complexity:
//   - time : O(1) amortized
func (m *Map[K, V]) Del(key K) {
	m.core.Remove(key)
}

// Get retrieves the value for a key.
//
// complexity:
//   - time : O(1) amortized
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.core.Get(key)
}

// Exists checks if a key is present in the map.
//
// complexity:
//   - time : O(1) amortized
func (m *Map[K, V]) Exists(key K) bool {
	_, found := m.core.Get(key)
	return found
}

// Iter iterates over all entries in the map. Iteration order is not
// guaranteed.
//
// complexity:
//   - time : O(capacity)
func (m *Map[K, V]) Iter(yield func(K, V) bool) {
	m.core.Iter(yield)
}

// Keys iterates over all keys in the map.
//
// complexity:
//   - time : O(capacity)
func (m *Map[K, V]) Keys(yield func(K) bool) {
	for k := range m.Iter {
		if !yield(k) {
			return
		}
	}
}

// String returns the string representation, e.g. "[a:1 b:2 c:3]".
//
// complexity:
//   - time : O(n)
func (m *Map[K, V]) String() string {
	var buf strings.Builder
	buf.WriteRune('[')
	first := true
	m.Iter(func(k K, v V) bool {
		if !first {
			buf.WriteRune(' ')
		}
		first = false
		fmt.Fprintf(&buf, "%v:%v", k, v)
		return true
	})
	buf.WriteRune(']')
	return buf.String()
}

// Size returns the number of key-value pairs.
func (m *Map[K, V]) Size() int { return m.core.Size() }

// Cap returns the current backing capacity.
func (m *Map[K, V]) Cap() int { return m.core.Capacity() }

// LoadFactor returns size/capacity.
func (m *Map[K, V]) LoadFactor() float64 {
	return float64(m.Size()) / float64(m.Cap())
}

// Empty returns true if the map has no entries.
func (m *Map[K, V]) Empty() bool { return m.Size() == 0 }

// Equal reports whether m and other hold the same entries, regardless
// of insertion order, using valueEqual to compare values.
func (m *Map[K, V]) Equal(other *Map[K, V], valueEqual func(a, b V) bool) bool {
	return m.core.Equal(other.core, valueEqual)
}

// sortableKeys adapts a Map's keys into sortutil.Sortable by permuting
// an index array over a materialized key/value snapshot, so the map's
// own storage never moves during the sort.
type sortableKeys[K comparable, V any] struct {
	keys  []K
	vals  []V
	index []int
	less  func(a, b K) bool
	fixed int
}

func (s *sortableKeys[K, V]) Len() int { return len(s.index) }
func (s *sortableKeys[K, V]) Compare(i, j int) int {
	switch {
	case s.less(s.keys[s.index[i]], s.keys[s.index[j]]):
		return -1
	case s.less(s.keys[s.index[j]], s.keys[s.index[i]]):
		return 1
	default:
		return 0
	}
}
func (s *sortableKeys[K, V]) Swap(i, j int) { s.index[i], s.index[j] = s.index[j], s.index[i] }
func (s *sortableKeys[K, V]) Fix(i int)     { s.fixed = s.index[i] }
func (s *sortableKeys[K, V]) PlaceFix(dst int) { s.index[dst] = s.fixed }
func (s *sortableKeys[K, V]) CompareFix(i int) int {
	switch {
	case s.less(s.keys[s.fixed], s.keys[s.index[i]]):
		return -1
	case s.less(s.keys[s.index[i]], s.keys[s.fixed]):
		return 1
	default:
		return 0
	}
}
func (s *sortableKeys[K, V]) MoveTo(dst, src int) { s.index[dst] = s.index[src] }

// SortedKeys returns the map's keys as a deterministically ordered
// snapshot, without changing how Iter orders them. This is a one-shot
// sort of a copy, not persistent ordered iteration (see Non-goals).
//
// complexity:
//   - time : O(n log n)
func (m *Map[K, V]) SortedKeys(less func(a, b K) bool) []K {
	var keys []K
	var vals []V
	m.Iter(func(k K, v V) bool {
		keys = append(keys, k)
		vals = append(vals, v)
		return true
	})
	s := &sortableKeys[K, V]{keys: keys, vals: vals, index: sortutil.IndexOf(len(keys)), less: less}
	sortutil.Sort(s)
	out := make([]K, len(keys))
	for i, idx := range s.index {
		out[i] = keys[idx]
	}
	return out
}

// SortedEntries returns the map's (key, value) pairs ordered by key,
// the same sorted permutation SortedKeys would produce.
//
// complexity:
//   - time : O(n log n)
func (m *Map[K, V]) SortedEntries(less func(a, b K) bool) ([]K, []V) {
	var keys []K
	var vals []V
	m.Iter(func(k K, v V) bool {
		keys = append(keys, k)
		vals = append(vals, v)
		return true
	})
	s := &sortableKeys[K, V]{keys: keys, vals: vals, index: sortutil.IndexOf(len(keys)), less: less}
	sortutil.Sort(s)
	outK := make([]K, len(keys))
	outV := make([]V, len(keys))
	for i, idx := range s.index {
		outK[i] = keys[idx]
		outV[i] = vals[idx]
	}
	return outK, outV
}
