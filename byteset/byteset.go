// Package byteset provides ByteSet, a fixed 256-slot bit vector over the
// byte range [0, 255] with a cached prefix-sum rank table. ByteSet never
// grows past four 64-bit words, so it forgoes a dynamic used-prefix in
// favor of a rank cache tuned for its one real client, byte-keyed dense
// maps (see package bytemap), where rank(b) is the index into the
// companion value array.
package byteset

import "math/bits"

// ByteSet is a set of bytes backed by a 256-bit vector.
type ByteSet struct {
	words      [4]uint64
	ranks      [4]int // ranks[i] = popcount(words[0..i))
	ranksValid bool
	hasNullKey bool
	size       int
}

// New creates an empty ByteSet.
func New() *ByteSet { return &ByteSet{} }

// Size returns the number of present bytes, plus one if the null key is
// present.
func (s *ByteSet) Size() int {
	n := s.size
	if s.hasNullKey {
		n++
	}
	return n
}

// Contains reports whether b is present.
//
// complexity:
//   - time : O(1)
func (s *ByteSet) Contains(b byte) bool {
	return s.words[b>>6]&(uint64(1)<<uint(b&63)) != 0
}

// Add inserts b, returning true if it was not already present.
//
// complexity:
//   - time : O(1) amortized
func (s *ByteSet) Add(b byte) bool {
	if s.Contains(b) {
		return false
	}
	s.words[b>>6] |= uint64(1) << uint(b&63)
	s.size++
	s.ranksValid = false
	return true
}

// Remove deletes b, returning true if it was present.
//
// complexity:
//   - time : O(1) amortized
func (s *ByteSet) Remove(b byte) bool {
	if !s.Contains(b) {
		return false
	}
	s.words[b>>6] &^= uint64(1) << uint(b&63)
	s.size--
	s.ranksValid = false
	return true
}

// AddNullKey marks the distinguished null key present, returning true if
// it was not already.
func (s *ByteSet) AddNullKey() bool {
	had := s.hasNullKey
	s.hasNullKey = true
	return !had
}

// RemoveNullKey clears the distinguished null key, returning true if it
// was present.
func (s *ByteSet) RemoveNullKey() bool {
	had := s.hasNullKey
	s.hasNullKey = false
	return had
}

// HasNullKey reports whether the distinguished null key is present.
func (s *ByteSet) HasNullKey() bool { return s.hasNullKey }

func (s *ByteSet) refreshRanks() {
	if s.ranksValid {
		return
	}
	sum := 0
	for i := 0; i < 4; i++ {
		s.ranks[i] = sum
		sum += bits.OnesCount64(s.words[i])
	}
	s.ranksValid = true
}

// Rank returns the number of present bytes in [0, b], usable as a
// 1-based dense index into a companion value array (index b's rank - 1).
// Returns 0 if b is not present.
//
// complexity:
//   - time : O(1) amortized
func (s *ByteSet) Rank(b byte) int {
	if !s.Contains(b) {
		return 0
	}
	s.refreshRanks()
	wi := b >> 6
	mask := ^uint64(0) >> uint(63-(b&63))
	return s.ranks[wi] + bits.OnesCount64(s.words[wi]&mask)
}

// Iter yields every present byte in ascending order.
func (s *ByteSet) Iter(yield func(byte) bool) {
	for wi := 0; wi < 4; wi++ {
		w := s.words[wi]
		for w != 0 {
			b := byte(wi*64 + bits.TrailingZeros64(w))
			if !yield(b) {
				return
			}
			w &= w - 1
		}
	}
}
