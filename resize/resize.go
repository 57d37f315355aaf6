// Package resize implements the single shift-in-place primitive used by
// list.List (and through it by nulllist.NullList's value list): opening or closing
// a gap of delta slots at a given index inside a slice, growing the
// backing array geometrically when a gap needs room that isn't there yet.
//
// # Why One Shared Primitive?
//
// Insert-at-index and remove-at-index both reduce to "shift a contiguous
// run of elements by a fixed offset." Writing that shift once, generically
// over the element type, keeps that off-by-one-prone loop out of the
// containers themselves. packedbits.BitsList and bitlist.BitList use only
// Grow.
package resize

// Grow returns s with capacity for at least n elements, preserving the
// first len(s) elements and their positions. Growth is geometric (at
// least 50% over the current capacity) so that repeated appends are O(1)
// amortized.
//
// complexity:
//   - time : O(len(s)) when it reallocates, O(1) otherwise
//   - space: O(n)
func Grow[T any](s []T, n int) []T {
	if cap(s) >= n {
		return s
	}
	newCap := max(n, cap(s)+cap(s)/2)
	grown := make([]T, len(s), newCap)
	copy(grown, s)
	return grown
}

// Insert opens a gap of one slot at index in s (len(s) == size on entry),
// growing the backing array first if needed, and returns the slice with
// its length increased by one. The caller is responsible for writing the
// new value into s[index] after the call.
//
//	Before Insert(s, 2):      After Insert(s, 2):
//	[A B C D E]               [A B _ C D E]
//	       ^                        ^
//	   index=2                new gap, ready for caller's write
//
// complexity:
//   - time : O(len(s))
//   - space: O(1) amortized
func Insert[T any](s []T, index int) []T {
	s = Grow(s, len(s)+1)
	s = s[:len(s)+1]
	copy(s[index+1:], s[index:len(s)-1])
	return s
}

// Remove closes the gap at index in s and returns the shrunk slice. The
// element previously at index is overwritten by its successor and the
// final slot is zeroed, so reference-typed elements don't keep a removed
// value reachable.
//
//	Before Remove(s, 1):       After Remove(s, 1):
//	[A B C D E]                [A C D E]
//	     ^
//	  index=1 (B removed)
//
// complexity:
//   - time : O(len(s))
//   - space: O(1)
func Remove[T any](s []T, index int) []T {
	var zero T
	copy(s[index:], s[index+1:])
	s[len(s)-1] = zero
	return s[:len(s)-1]
}

// Shift opens or closes a gap of delta slots at index, unifying Insert
// (delta > 0, repeated |delta| times) and Remove (delta < 0) behind the
// single signature described in spec §4.6. delta == 0 is a no-op. Negative
// delta never shrinks the backing array — only Clip-style operations do
// that explicitly.
//
// complexity:
//   - time : O(len(s) + |delta|)
//   - space: O(1) amortized
func Shift[T any](s []T, index, delta int) []T {
	switch {
	case delta == 0:
		return s
	case delta > 0:
		s = Grow(s, len(s)+delta)
		s = s[:len(s)+delta]
		copy(s[index+delta:], s[index:len(s)-delta])
		return s
	default:
		n := -delta
		var zero T
		copy(s[index:], s[index+n:])
		for i := len(s) - n; i < len(s); i++ {
			s[i] = zero
		}
		return s[:len(s)-n]
	}
}
