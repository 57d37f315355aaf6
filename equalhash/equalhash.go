// Package equalhash decouples hashcore.Core from static per-type dispatch
// for reference-typed keys.
//
// A hashcore.Core over a primitive key can hash and compare with plain
// operators. A hashcore.Core over a reference-typed key (a string, a
// pointer, a struct) needs a pluggable strategy: how to hash
// it, how to compare two instances for equality, and what its zero/empty
// value looks like (so Core's distinguished-key pseudo-slots, defined
// over primitive zero, stay meaningful for reference types too).
// EqualHash is that strategy.
package equalhash

import (
	"github.com/cespare/xxhash/v2"

	"github.com/coldforge/primcoll/internal/generics"
	"github.com/coldforge/primcoll/mix"
)

// EqualHash is the strategy a reference-keyed hashcore.Core consults
// instead of using K's built-in comparability and a primitive mixer.
type EqualHash[K any] interface {
	// Hash returns a 64-bit hash of k.
	Hash(k K) uint64
	// Equal reports whether a and b are logically the same key.
	Equal(a, b K) bool
	// Empty returns the empty/zero instance of K, used as the
	// distinguished-key sentinel value when K's natural zero value
	// isn't meaningful (e.g. a nil slice vs an empty slice).
	Empty() K
	// IsEmpty reports whether k is the distinguished empty key.
	IsEmpty(k K) bool
}

// stringHash hashes strings with xxhash, the fast non-cryptographic
// string hash used across the retrieved example pack's storage-engine
// repos.
type stringHash struct{}

// Strings returns an EqualHash for string keys backed by xxhash.
func Strings() EqualHash[string] { return stringHash{} }

func (stringHash) Hash(k string) uint64   { return xxhash.Sum64String(k) }
func (stringHash) Equal(a, b string) bool { return a == b }
func (stringHash) Empty() string          { return "" }
func (stringHash) IsEmpty(k string) bool  { return k == "" }

// float64Hash hashes float64 keys via their canonicalized bit pattern,
// so NaN hashes consistently and +0.0/-0.0 collide. hashcore.Core does
// no float canonicalization of its own; it sees float keys only through
// this strategy's Hash and Equal.
type float64Hash struct{}

// Float64 returns an EqualHash for float64 keys.
func Float64() EqualHash[float64] { return float64Hash{} }

func (float64Hash) Hash(k float64) uint64 {
	return mix.Avalanche64(mix.CanonicalFloat64Bits(k))
}
func (float64Hash) Equal(a, b float64) bool {
	return mix.CanonicalFloat64Bits(a) == mix.CanonicalFloat64Bits(b)
}
func (float64Hash) Empty() float64         { return 0 }
func (float64Hash) IsEmpty(k float64) bool { return k == 0 }

// naturalHash adapts any comparable type's built-in == and zero value
// into an EqualHash, parameterized only by the hash function, for
// reference-keyed maps over application types that don't need custom
// equality (structs of comparable fields, pointers used as opaque
// identity keys, and so on).
type naturalHash[K comparable] struct {
	hash func(K) uint64
}

// Natural builds an EqualHash over any comparable K using hash as the
// mixing function and K's own == and zero value for equality/emptiness.
func Natural[K comparable](hash func(K) uint64) EqualHash[K] {
	return naturalHash[K]{hash: hash}
}

func (n naturalHash[K]) Hash(k K) uint64      { return n.hash(k) }
func (naturalHash[K]) Equal(a, b K) bool      { return a == b }
func (naturalHash[K]) Empty() K               { return generics.ZeroValue[K]() }
func (n naturalHash[K]) IsEmpty(k K) bool     { return k == generics.ZeroValue[K]() }
