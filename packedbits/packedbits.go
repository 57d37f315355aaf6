// Package packedbits provides BitsList, a packed array of fixed-width
// unsigned items stored across a stream of 64-bit words, generalizing
// bitlist.BitList from one bit per item to any width in [1, 32].
//
// # Layout
//
// Item i occupies the bit range [i*bitsPerItem, (i+1)*bitsPerItem) of the
// word stream, little-endian within a word:
//
//	bitsPerItem = 5
//	item:    0         1         2
//	bits:  [0..5)    [5..10)  [10..15)
//	word 0: |item0|item1|item2|...
//
// When an item's range crosses a word boundary, its low bits live in the
// lower word and its high bits in the next word. Reading or writing a
// straddling item costs two shifts and a mask instead of one.
//
// The same word-packing technique used for single-bit storage generalizes
// here from 1-bit slots to bitsPerItem-bit slots, with insert/remove
// support added on top of a fixed-size packed layout.
package packedbits

import (
	"fmt"

	"github.com/coldforge/primcoll/resize"
)

// BitsList is a packed array of bitsPerItem-bit unsigned values.
type BitsList struct {
	words       []uint64
	bitsPerItem int
	mask        uint64
	size        int
}

// New creates an empty BitsList packing items of the given width.
//
// Panics if bitsPerItem is not in [1, 32].
func New(bitsPerItem int) *BitsList {
	if bitsPerItem < 1 || bitsPerItem > 32 {
		panic("packedbits.New: bitsPerItem must be in [1, 32]")
	}
	return &BitsList{
		bitsPerItem: bitsPerItem,
		mask:        (uint64(1) << uint(bitsPerItem)) - 1,
	}
}

// Size returns the number of packed items.
func (b *BitsList) Size() int { return b.size }

// Empty reports whether the list holds no items.
func (b *BitsList) Empty() bool { return b.size == 0 }

// BitsPerItem returns the fixed width of each packed item.
func (b *BitsList) BitsPerItem() int { return b.bitsPerItem }

func (b *BitsList) wordsFor(n int) int {
	return int((int64(n)*int64(b.bitsPerItem) + 63) / 64)
}

func (b *BitsList) checkBounds(i int) {
	if i < 0 || i >= b.size {
		panic(fmt.Sprintf("packedbits: index out of range [%d] with length %d", i, b.size))
	}
}

// Get returns the value of item i.
//
// Panics if i < 0 or i >= Size().
//
// complexity:
//   - time : O(1)
func (b *BitsList) Get(i int) uint64 {
	b.checkBounds(i)
	pos := i * b.bitsPerItem
	w, bo := pos>>6, uint(pos&63)
	if bo+uint(b.bitsPerItem) <= 64 {
		return (b.words[w] >> bo) & b.mask
	}
	lo := b.words[w] >> bo
	hi := b.words[w+1] << (64 - bo)
	return (lo | hi) & b.mask
}

// Set writes v (masked to bitsPerItem bits) into item i.
//
// Panics if i < 0 or i >= Size().
//
// complexity:
//   - time : O(1)
func (b *BitsList) Set(i int, v uint64) {
	b.checkBounds(i)
	v &= b.mask
	pos := i * b.bitsPerItem
	w, bo := pos>>6, uint(pos&63)
	if bo+uint(b.bitsPerItem) <= 64 {
		b.words[w] = (b.words[w] &^ (b.mask << bo)) | (v << bo)
		return
	}
	lowBits := 64 - bo
	b.words[w] = (b.words[w] &^ (b.mask << bo)) | (v << bo)
	b.words[w+1] = (b.words[w+1] &^ (b.mask >> lowBits)) | (v >> lowBits)
}

func (b *BitsList) ensureWords(n int) {
	if cap(b.words) < n {
		b.words = resize.Grow(b.words, n)
	}
	if len(b.words) < n {
		b.words = b.words[:n]
	}
}

// Append adds v to the end of the list.
//
// complexity:
//   - time : O(1) amortized
func (b *BitsList) Append(v uint64) {
	b.size++
	b.ensureWords(b.wordsFor(b.size))
	b.Set(b.size-1, v)
}

// Insert shifts items [i, Size) right by one slot and writes v at i.
//
// Panics if i < 0 or i > Size().
//
// complexity:
//   - time : O(Size)
func (b *BitsList) Insert(i int, v uint64) {
	if i < 0 || i > b.size {
		panic("packedbits.Insert: index out of range")
	}
	b.size++
	b.ensureWords(b.wordsFor(b.size))
	for j := b.size - 1; j > i; j-- {
		b.Set(j, b.Get(j-1))
	}
	b.Set(i, v)
}

// Remove shifts items (i, Size) left by one slot and returns the removed
// value, zeroing the vacated last slot.
//
// Panics if i < 0 or i >= Size().
//
// complexity:
//   - time : O(Size)
func (b *BitsList) Remove(i int) uint64 {
	b.checkBounds(i)
	removed := b.Get(i)
	for j := i; j < b.size-1; j++ {
		b.Set(j, b.Get(j+1))
	}
	b.Set(b.size-1, 0)
	b.size--
	return removed
}

// IndexOf returns the index of the first item equal to v, or -1.
//
// complexity:
//   - time : O(Size)
func (b *BitsList) IndexOf(v uint64) int {
	v &= b.mask
	for i := 0; i < b.size; i++ {
		if b.Get(i) == v {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last item equal to v, or -1.
//
// complexity:
//   - time : O(Size)
func (b *BitsList) LastIndexOf(v uint64) int {
	v &= b.mask
	for i := b.size - 1; i >= 0; i-- {
		if b.Get(i) == v {
			return i
		}
	}
	return -1
}

// Iter iterates item values from front to back.
func (b *BitsList) Iter(yield func(uint64) bool) {
	for i := 0; i < b.size; i++ {
		if !yield(b.Get(i)) {
			return
		}
	}
}

// Enum iterates item indices and values from front to back.
func (b *BitsList) Enum(yield func(int, uint64) bool) {
	for i := 0; i < b.size; i++ {
		if !yield(i, b.Get(i)) {
			return
		}
	}
}
