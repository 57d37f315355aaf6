package packedbits_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coldforge/primcoll/packedbits"
)

func TestBitsList_SetGet(t *testing.T) {
	b := packedbits.New(5)
	for i := 0; i < 20; i++ {
		b.Append(uint64(i % 32))
	}
	assert.Equal(t, 20, b.Size())
	for i := 0; i < 20; i++ {
		assert.Equal(t, uint64(i%32), b.Get(i), "item %d", i)
	}
}

func TestBitsList_StraddlingWrite(t *testing.T) {
	b := packedbits.New(7)
	for i := 0; i < 30; i++ {
		b.Append(0)
	}
	// bitsPerItem=7 guarantees straddling words for many indices.
	for i := 0; i < 30; i++ {
		b.Set(i, uint64(i*3+1)&0x7f)
	}
	for i := 0; i < 30; i++ {
		assert.Equal(t, uint64(i*3+1)&0x7f, b.Get(i), "item %d", i)
	}
}

func TestBitsList_Mask(t *testing.T) {
	b := packedbits.New(3)
	b.Append(0xFF) // masked to 3 bits
	assert.Equal(t, uint64(0x7), b.Get(0))
}

func TestBitsList_InsertRemove(t *testing.T) {
	b := packedbits.New(4)
	for i := 1; i <= 5; i++ {
		b.Append(uint64(i))
	}
	// [1 2 3 4 5]
	b.Insert(2, 9)
	// [1 2 9 3 4 5]
	want := []uint64{1, 2, 9, 3, 4, 5}
	for i, w := range want {
		assert.Equal(t, w, b.Get(i))
	}

	removed := b.Remove(2)
	assert.Equal(t, uint64(9), removed)
	want = []uint64{1, 2, 3, 4, 5}
	assert.Equal(t, len(want), b.Size())
	for i, w := range want {
		assert.Equal(t, w, b.Get(i))
	}
}

func TestBitsList_IndexOf(t *testing.T) {
	b := packedbits.New(4)
	for _, v := range []uint64{1, 2, 3, 2, 1} {
		b.Append(v)
	}
	assert.Equal(t, 1, b.IndexOf(2))
	assert.Equal(t, 3, b.LastIndexOf(2))
	assert.Equal(t, -1, b.IndexOf(9))
}

func TestBitsList_RandomizedAgainstReferenceSlice(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	const width = 6
	mask := uint64(1)<<width - 1

	b := packedbits.New(width)
	var ref []uint64

	for i := 0; i < 2000; i++ {
		switch r.Intn(3) {
		case 0:
			v := uint64(r.Intn(1 << width))
			b.Append(v)
			ref = append(ref, v)
		case 1:
			if len(ref) == 0 {
				continue
			}
			idx := r.Intn(len(ref))
			v := uint64(r.Intn(1 << width))
			b.Insert(idx, v)
			ref = append(ref, 0)
			copy(ref[idx+1:], ref[idx:len(ref)-1])
			ref[idx] = v
		default:
			if len(ref) == 0 {
				continue
			}
			idx := r.Intn(len(ref))
			want := ref[idx]
			got := b.Remove(idx)
			assert.Equal(t, want&mask, got)
			ref = append(ref[:idx], ref[idx+1:]...)
		}
	}

	assert.Equal(t, len(ref), b.Size())
	for i, want := range ref {
		assert.Equal(t, want&mask, b.Get(i), "item %d", i)
	}
}
