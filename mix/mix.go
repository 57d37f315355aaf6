// Package mix provides the integer and float avalanche mixing used by
// hashcore to turn a key into a well-distributed bucket index.
//
// # Why a Custom Mixer?
//
// Go's built-in map hash is randomized per process and not exposed to user
// code, so a hash table that wants reproducible bucket placement (useful
// for testing the Robin-Hood invariant deterministically) needs its own
// avalanche function. The two finalizers here are the standard two-round
// multiply-xorshift constructions used by MurmurHash3 (32-bit keys) and
// SplitMix64/MurmurHash3 x64 (64-bit keys): cheap, branch-free, and with
// well-studied avalanche properties (every input bit flips roughly half of
// the output bits).
//
// # Further Reading
//
// Appleby, "MurmurHash3", https://github.com/aappleby/smhasher
// Steele, Lea, Flood, "Fast Splittable Pseudorandom Number Generators" (SplitMix64)
package mix

import "math"

// Avalanche32 mixes the bits of x so that small differences in the input
// produce large, uncorrelated differences in the output.
//
// complexity:
//   - time : O(1)
//   - space: O(1)
func Avalanche32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x85ebca6b
	x ^= x >> 13
	x *= 0xc2b2ae35
	x ^= x >> 16
	return x
}

// Avalanche64 is the 64-bit counterpart of Avalanche32, used for keys wider
// than 32 bits (int64, uint64, float64 bit patterns, and the combined hash
// of a HashCore).
//
// complexity:
//   - time : O(1)
//   - space: O(1)
func Avalanche64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// CanonicalFloat64Bits returns the bit pattern used to hash f, normalizing
// the two representations that must hash and compare equal despite having
// distinct bit patterns: +0.0/-0.0, and every NaN payload.
//
//	CanonicalFloat64Bits(0.0)  == CanonicalFloat64Bits(math.Copysign(0, -1))
//	CanonicalFloat64Bits(nan1) == CanonicalFloat64Bits(nan2) for any nan1, nan2
//
// complexity:
//   - time : O(1)
//   - space: O(1)
func CanonicalFloat64Bits(f float64) uint64 {
	if math.IsNaN(f) {
		return math.Float64bits(math.NaN())
	}
	if f == 0 {
		return 0 // collapses +0.0 and -0.0
	}
	return math.Float64bits(f)
}

// CanonicalFloat32Bits is the float32 counterpart of CanonicalFloat64Bits.
//
// complexity:
//   - time : O(1)
//   - space: O(1)
func CanonicalFloat32Bits(f float32) uint32 {
	if math.IsNaN(float64(f)) {
		return math.Float32bits(float32(math.NaN()))
	}
	if f == 0 {
		return 0
	}
	return math.Float32bits(f)
}

// Mix folds value into the running stream hash seed. Used by
// HashOfArray and by HashCore's order-independent HashCode to
// accumulate a per-entry contribution.
//
// complexity:
//   - time : O(1)
//   - space: O(1)
func Mix(seed, value uint64) uint64 {
	return Avalanche64(seed ^ Avalanche64(value)*0x9e3779b97f4a7c15)
}

// MixLast folds the final value of a stream into seed and runs one extra
// avalanche pass, analogous to MurmurHash3's final-block handling.
//
// complexity:
//   - time : O(1)
//   - space: O(1)
func MixLast(seed, value uint64) uint64 {
	return Avalanche64(Mix(seed, value))
}

// Finalize folds the element count into the stream hash, so that two
// streams with the same elements mixed in different orders but different
// lengths never collide "by accident" and empty vs. non-empty collections
// always land on distinct hashes.
//
// complexity:
//   - time : O(1)
//   - space: O(1)
func Finalize(seed uint64, size int) uint64 {
	return Avalanche64(seed ^ uint64(size))
}

// HashOfArray mixes every byte of b into a single 64-bit hash. No
// strategy in package equalhash uses it; string keys there hash with
// xxhash instead (see DESIGN.md).
//
// complexity:
//   - time : O(len(b))
//   - space: O(1)
func HashOfArray(b []byte) uint64 {
	var h uint64 = 0xcbf29ce484222325
	for _, c := range b {
		h = Mix(h, uint64(c))
	}
	return Finalize(h, len(b))
}
