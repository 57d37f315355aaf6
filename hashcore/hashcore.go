// Package hashcore implements the open-addressing hash table that backs
// every Set/Map flavor in this module: Robin Hood linear probing with
// backward-shift (tombstone-free) deletion, plus out-of-band handling of
// the zero key and the null key so the in-slot array can use a key's own
// zero value as its empty-slot sentinel.
//
// # Why Robin Hood
//
// Robin Hood probing resolves collisions with a single flat array and a
// probe-sequence-length (PSL) field per slot: "takes from the rich, gives
// to the poor" — an insertion that travels further than the resident of
// the slot it lands on steals that slot and keeps going with the evicted
// entry, which bounds the worst-case probe length to O(log n) instead of
// O(n) under adversarial hashing.
//
// # Distinguished Keys
//
// A primitive key's zero value (0 for integers, "" for strings that
// choose to treat "" as the zero) can't be stored in-slot, because an
// empty slot IS encoded by "this slot's key equals the zero value."
// hasZeroKey/zeroValue hold that key's value out-of-band. Symmetrically,
// hasNullKey/nullValue hold a second, independently-triggered
// distinguished key for callers whose EqualHash strategy considers a key
// "empty" by a rule other than Go's own zero value (e.g. a dedicated nil
// sentinel distinct from the zero-valued instance of K).
package hashcore

import (
	"github.com/coldforge/primcoll/equalhash"
	"github.com/coldforge/primcoll/internal/generics"
	"github.com/coldforge/primcoll/mix"
)

const emptyPSL = -1

// Token identifies the outcome of a lookup: a normal slot, one of the
// two distinguished pseudo-slots, or one of two negative sentinels.
type Token int64

const (
	// TokenNone means the key is not present.
	TokenNone Token = -1
	// TokenNull means the key is present but its value is logically
	// null, for Core instances built with the WithNullValue option.
	TokenNull Token = -2
)

type bucket[K comparable, V any] struct {
	key   K
	value V
	psl   int32
}

// DefaultLoadFactor is the load factor new Cores use unless overridden.
const DefaultLoadFactor = 0.75

// Core is an open-addressing hash table usable as the engine for both
// maps (V meaningful) and sets (V = struct{}).
type Core[K comparable, V any] struct {
	eh         equalhash.EqualHash[K]
	buckets    []bucket[K, V]
	mask       int
	assigned   int
	resizeAt   int
	loadFactor float64

	hasZeroKey bool
	zeroValue  V
	hasNullKey bool
	nullValue  V

	// isNullValue, when set, lets Token report TokenNull for entries
	// whose value is logically absent (used by NullList-backed maps).
	isNullValue func(V) bool
}

// Option configures a Core at construction.
type Option[K comparable, V any] func(*Core[K, V])

// WithLoadFactor overrides the default load factor, clamped to
// [0.01, 0.99].
func WithLoadFactor[K comparable, V any](lf float64) Option[K, V] {
	return func(c *Core[K, V]) { c.loadFactor = clampLoadFactor(lf) }
}

// WithNullValue registers a predicate identifying logically-null values,
// so Token can return TokenNull instead of a normal slot token.
func WithNullValue[K comparable, V any](isNull func(V) bool) Option[K, V] {
	return func(c *Core[K, V]) { c.isNullValue = isNull }
}

func clampLoadFactor(lf float64) float64 {
	switch {
	case lf < 0.01:
		return 0.01
	case lf > 0.99:
		return 0.99
	default:
		return lf
	}
}

// New creates an empty Core sized for expected entries, using eh to hash
// and compare keys.
func New[K comparable, V any](eh equalhash.EqualHash[K], expected int, opts ...Option[K, V]) *Core[K, V] {
	c := &Core[K, V]{eh: eh, loadFactor: DefaultLoadFactor}
	for _, opt := range opts {
		opt(c)
	}
	cap0 := initialCapacity(expected, c.loadFactor)
	c.buckets = newBuckets[K, V](cap0)
	c.mask = cap0 - 1
	c.resizeAt = int(float64(cap0) * c.loadFactor)
	return c
}

func initialCapacity(expected int, loadFactor float64) int {
	if expected < 0 {
		expected = 0
	}
	needed := int(float64(expected)/loadFactor) + 1
	cap0 := nextPowerOfTwo(needed)
	if cap0 < 4 {
		cap0 = 4
	}
	return cap0
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func newBuckets[K comparable, V any](n int) []bucket[K, V] {
	b := make([]bucket[K, V], n)
	for i := range b {
		b[i].psl = emptyPSL
	}
	return b
}

// Size returns the total logical count of entries, including the
// distinguished zero/null keys.
func (c *Core[K, V]) Size() int {
	n := c.assigned
	if c.hasZeroKey {
		n++
	}
	if c.hasNullKey {
		n++
	}
	return n
}

// Capacity returns the current slot array length, a power of two.
func (c *Core[K, V]) Capacity() int { return len(c.buckets) }

func (c *Core[K, V]) isZeroKey(k K) bool {
	return k == generics.ZeroValue[K]()
}

func (c *Core[K, V]) isNullKey(k K) bool {
	return c.eh.IsEmpty(k) && !c.isZeroKey(k)
}

func (c *Core[K, V]) idealSlot(k K) int {
	return int(mix.Avalanche64(c.eh.Hash(k))) & c.mask
}

// Put inserts or overwrites k -> v. It returns true if the logical size
// increased (k was not previously present), false if it overwrote an
// existing entry.
//
// complexity:
//   - time : O(1) amortized
func (c *Core[K, V]) Put(k K, v V) bool {
	if c.isZeroKey(k) {
		had := c.hasZeroKey
		c.hasZeroKey = true
		c.zeroValue = v
		return !had
	}
	if c.isNullKey(k) {
		had := c.hasNullKey
		c.hasNullKey = true
		c.nullValue = v
		return !had
	}
	if c.assigned >= c.resizeAt {
		c.grow(len(c.buckets) * 2)
	}
	inserted := c.putNormal(k, v)
	if inserted {
		c.assigned++
	}
	return inserted
}

// putNormal runs the Robin Hood insertion loop: it walks forward from
// k's ideal slot, overwriting in place if k is found, or displacing
// residents with smaller probe distances ("richer" slots) until an
// empty slot absorbs whichever entry is currently being carried.
func (c *Core[K, V]) putNormal(k K, v V) bool {
	pos := c.idealSlot(k)
	dist := int32(0)
	curKey, curVal := k, v
	searching := true

	for {
		b := &c.buckets[pos]
		if b.psl == emptyPSL {
			b.key, b.value, b.psl = curKey, curVal, dist
			return true
		}
		if searching && c.eh.Equal(b.key, k) {
			b.value = v
			return false
		}
		if b.psl < dist {
			b.key, curKey = curKey, b.key
			b.value, curVal = curVal, b.value
			dist, b.psl = b.psl, dist
			searching = false
		}
		pos = (pos + 1) & c.mask
		dist++
	}
}

func (c *Core[K, V]) grow(newCap int) {
	old := c.buckets
	c.buckets = newBuckets[K, V](newCap)
	c.mask = newCap - 1
	c.resizeAt = int(float64(newCap) * c.loadFactor)
	for i := range old {
		if old[i].psl != emptyPSL {
			c.putNormal(old[i].key, old[i].value)
		}
	}
}

// Token looks up k and reports where its value can be found.
//
// complexity:
//   - time : O(1) amortized
func (c *Core[K, V]) Token(k K) Token {
	if c.isZeroKey(k) {
		if !c.hasZeroKey {
			return TokenNone
		}
		return c.tokenFor(len(c.buckets), c.zeroValue)
	}
	if c.isNullKey(k) {
		if !c.hasNullKey {
			return TokenNone
		}
		return c.tokenFor(len(c.buckets)+1, c.nullValue)
	}
	pos := c.idealSlot(k)
	for dist := int32(0); ; dist, pos = dist+1, (pos+1)&c.mask {
		b := &c.buckets[pos]
		if b.psl == emptyPSL || dist > b.psl {
			return TokenNone
		}
		if c.eh.Equal(b.key, k) {
			return c.tokenFor(pos, b.value)
		}
	}
}

func (c *Core[K, V]) tokenFor(slot int, v V) Token {
	if c.isNullValue != nil && c.isNullValue(v) {
		return TokenNull
	}
	return Token(slot)
}

// Value fetches the value addressed by tok, previously returned by
// Token. It panics if tok is TokenNone or TokenNull; callers must check
// those sentinels first.
func (c *Core[K, V]) Value(tok Token) V {
	switch {
	case tok == TokenNone || tok == TokenNull:
		panic("hashcore.Value: token does not address a value")
	case int(tok) == len(c.buckets):
		return c.zeroValue
	case int(tok) == len(c.buckets)+1:
		return c.nullValue
	default:
		return c.buckets[int(tok)].value
	}
}

// Key fetches the key addressed by tok.
func (c *Core[K, V]) Key(tok Token) K {
	switch {
	case tok == TokenNone || tok == TokenNull:
		panic("hashcore.Key: token does not address a key")
	case int(tok) == len(c.buckets):
		return generics.ZeroValue[K]()
	case int(tok) == len(c.buckets)+1:
		return c.eh.Empty()
	default:
		return c.buckets[int(tok)].key
	}
}

// Get is the common-case convenience over Token/Value: it returns the
// value for k and whether k is present at all (present but logically
// null still reports ok=true; callers distinguishing null use Token
// directly).
func (c *Core[K, V]) Get(k K) (V, bool) {
	tok := c.Token(k)
	switch tok {
	case TokenNone:
		return generics.ZeroValue[V](), false
	case TokenNull:
		return generics.ZeroValue[V](), true
	default:
		return c.Value(tok), true
	}
}

// Remove deletes k if present, returning whether a deletion occurred.
//
// complexity:
//   - time : O(1) amortized
func (c *Core[K, V]) Remove(k K) bool {
	if c.isZeroKey(k) {
		had := c.hasZeroKey
		c.hasZeroKey = false
		var zero V
		c.zeroValue = zero
		return had
	}
	if c.isNullKey(k) {
		had := c.hasNullKey
		c.hasNullKey = false
		var zero V
		c.nullValue = zero
		return had
	}

	pos := c.idealSlot(k)
	found := -1
	for dist := int32(0); ; dist, pos = dist+1, (pos+1)&c.mask {
		b := &c.buckets[pos]
		if b.psl == emptyPSL || dist > b.psl {
			break
		}
		if c.eh.Equal(b.key, k) {
			found = pos
			break
		}
	}
	if found == -1 {
		return false
	}

	c.backShiftFrom(found)
	c.assigned--
	return true
}

// backShiftFrom closes the gap at pos by pulling each following entry
// back by one slot as long as it has a non-zero probe distance (meaning
// it isn't already at its own ideal position), which is the tombstone-
// free deletion the Robin-Hood invariant requires.
func (c *Core[K, V]) backShiftFrom(pos int) {
	c.buckets[pos].psl = emptyPSL
	cur := pos
	next := (pos + 1) & c.mask
	for c.buckets[next].psl > 0 {
		c.buckets[next].psl--
		c.buckets[cur], c.buckets[next] = c.buckets[next], c.buckets[cur]
		cur = next
		next = (next + 1) & c.mask
	}
}

// seedToken is the sentinel a caller passes to begin iteration with
// IterNonNullNonZero.
const seedToken Token = -3

// IterSeed returns the token a caller seeds IterNonNullNonZero with to
// start iteration from the beginning.
func IterSeed() Token { return seedToken }

// IterNonNullNonZero advances iteration over occupied normal slots, then
// the zero-key pseudo-slot, then the null-key pseudo-slot, returning
// TokenNone once exhausted. Callers seed with IterSeed().
//
// complexity:
//   - time : O(capacity / size) amortized per call across a full scan
func (c *Core[K, V]) IterNonNullNonZero(tok Token) Token {
	capacity := len(c.buckets)

	if tok == seedToken || int(tok) < capacity {
		start := 0
		if tok != seedToken {
			start = int(tok) + 1
		}
		for i := start; i < capacity; i++ {
			if c.buckets[i].psl != emptyPSL {
				return Token(i)
			}
		}
		if c.hasZeroKey {
			return Token(capacity)
		}
		if c.hasNullKey {
			return Token(capacity + 1)
		}
		return TokenNone
	}

	if int(tok) == capacity {
		if c.hasNullKey {
			return Token(capacity + 1)
		}
	}
	return TokenNone
}

// Iter yields every (key, value) pair in unspecified order, including
// the distinguished zero and null keys.
func (c *Core[K, V]) Iter(yield func(K, V) bool) {
	for i := range c.buckets {
		if c.buckets[i].psl != emptyPSL {
			if !yield(c.buckets[i].key, c.buckets[i].value) {
				return
			}
		}
	}
	if c.hasZeroKey {
		if !yield(generics.ZeroValue[K](), c.zeroValue) {
			return
		}
	}
	if c.hasNullKey {
		yield(c.eh.Empty(), c.nullValue)
	}
}

// Clone returns a deep copy of c.
func (c *Core[K, V]) Clone() *Core[K, V] {
	out := *c
	out.buckets = append([]bucket[K, V](nil), c.buckets...)
	return &out
}

// Equal reports whether c and other hold the same set of (key, value)
// pairs, independent of slot order or capacity.
func (c *Core[K, V]) Equal(other *Core[K, V], valueEqual func(a, b V) bool) bool {
	if c.Size() != other.Size() {
		return false
	}
	ok := true
	c.Iter(func(k K, v V) bool {
		ov, present := other.Get(k)
		if !present || !valueEqual(v, ov) {
			ok = false
			return false
		}
		return true
	})
	return ok
}

// HashCode computes an order-independent hash of c's contents: each
// entry's combined key/value hash is folded into a running sum, XOR, and
// product-of-odds accumulator (each individually commutative over entry
// order), then the three accumulators are finalized together with size,
// so two Cores with the same entries in different slot orders hash
// identically.
func (c *Core[K, V]) HashCode(valueHash func(V) uint64) uint64 {
	var sum, xor, prodOdds uint64 = 0, 0, 1
	c.Iter(func(k K, v V) bool {
		entry := mix.Mix(c.eh.Hash(k), valueHash(v))
		sum += entry
		xor ^= entry
		prodOdds *= entry | 1
		return true
	})
	h := mix.Mix(sum, xor)
	h = mix.Mix(h, prodOdds)
	return mix.Finalize(h, c.Size())
}
