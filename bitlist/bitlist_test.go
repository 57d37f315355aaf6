package bitlist_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coldforge/primcoll/bitlist"
)

func TestBitList_SetGet(t *testing.T) {
	b := bitlist.New()
	assert.True(t, b.Empty())

	b.Set1(5)
	assert.True(t, b.Get(5))
	assert.Equal(t, 6, b.Size())
	assert.False(t, b.Get(4))

	b.Set0(5)
	assert.False(t, b.Get(5))
	assert.Equal(t, 6, b.Size())
}

func TestBitList_SetAcrossWordBoundary(t *testing.T) {
	b := bitlist.New()
	for _, pos := range []int{0, 63, 64, 127, 128, 200} {
		b.Set1(pos)
	}
	for _, pos := range []int{0, 63, 64, 127, 128, 200} {
		assert.True(t, b.Get(pos), "pos %d", pos)
	}
	assert.Equal(t, 201, b.Size())
	assert.Equal(t, 6, b.Cardinality())
}

func TestBitList_Flip(t *testing.T) {
	b := bitlist.New()
	b.Flip(10)
	assert.True(t, b.Get(10))
	b.Flip(10)
	assert.False(t, b.Get(10))
}

func TestBitList_RangeOps(t *testing.T) {
	b := bitlist.New()
	b.Set1Range(10, 70)
	for i := 10; i <= 70; i++ {
		assert.True(t, b.Get(i), "pos %d", i)
	}
	assert.False(t, b.Get(9))
	assert.False(t, b.Get(71))

	b.Set0Range(20, 30)
	for i := 20; i <= 30; i++ {
		assert.False(t, b.Get(i), "pos %d", i)
	}
	assert.True(t, b.Get(19))
	assert.True(t, b.Get(31))

	b.FlipRange(10, 70)
	for i := 10; i <= 19; i++ {
		assert.False(t, b.Get(i))
	}
	for i := 20; i <= 30; i++ {
		assert.True(t, b.Get(i))
	}
}

func TestBitList_RankSelect(t *testing.T) {
	b := bitlist.New()
	set := []int{0, 2, 3, 70, 200}
	for _, p := range set {
		b.Set1(p)
	}

	assert.Equal(t, 1, b.Rank(0))
	assert.Equal(t, 1, b.Rank(1))
	assert.Equal(t, 3, b.Rank(3))
	assert.Equal(t, 5, b.Rank(300))
	assert.Equal(t, 5, b.Cardinality())

	for k, want := range set {
		assert.Equal(t, want, b.Select(k))
	}
	assert.Equal(t, -1, b.Select(5))
	assert.Equal(t, 200, b.Last1())
}

func TestBitList_NextPrev(t *testing.T) {
	b := bitlist.New()
	b.Set1(5)
	b.Set1(70)

	assert.Equal(t, 5, b.Next1(0))
	assert.Equal(t, 70, b.Next1(6))
	assert.Equal(t, -1, b.Next1(71))

	assert.Equal(t, 0, b.Next0(0))
	assert.Equal(t, 6, b.Next0(5))

	assert.Equal(t, 70, b.Prev1(70))
	assert.Equal(t, 5, b.Prev1(69))
	assert.Equal(t, -1, b.Prev1(4))

	assert.Equal(t, 4, b.Prev0(4))
	assert.Equal(t, 69, b.Prev0(69))
}

func TestBitList_InsertRemove(t *testing.T) {
	b := bitlist.New()
	for _, p := range []int{0, 1, 2, 3} {
		if p%2 == 0 {
			b.Set1(p)
		} else {
			b.Set0(p)
		}
	}
	// bits: 1 0 1 0
	b.Insert(1, true)
	// bits: 1 1 0 1 0
	assert.Equal(t, 5, b.Size())
	assert.True(t, b.Get(0))
	assert.True(t, b.Get(1))
	assert.False(t, b.Get(2))
	assert.True(t, b.Get(3))
	assert.False(t, b.Get(4))

	removed := b.Remove(1)
	assert.True(t, removed)
	assert.Equal(t, 4, b.Size())
	assert.True(t, b.Get(0))
	assert.False(t, b.Get(1))
	assert.True(t, b.Get(2))
	assert.False(t, b.Get(3))
}

func TestBitList_InsertRemoveAcrossWords(t *testing.T) {
	b := bitlist.New()
	for i := 0; i < 130; i++ {
		if i%3 == 0 {
			b.Set1(i)
		}
	}
	before := make([]bool, 130)
	for i := range before {
		before[i] = b.Get(i)
	}

	b.Insert(64, true)
	assert.True(t, b.Get(64))
	for i := 0; i < 64; i++ {
		assert.Equal(t, before[i], b.Get(i), "pos %d", i)
	}
	for i := 65; i < 131; i++ {
		assert.Equal(t, before[i-1], b.Get(i), "pos %d", i)
	}

	b.Remove(64)
	for i := 0; i < 130; i++ {
		assert.Equal(t, before[i], b.Get(i), "pos %d", i)
	}
}

func TestBitList_BitwiseOps(t *testing.T) {
	a := bitlist.New()
	b := bitlist.New()
	a.Set1(1)
	a.Set1(2)
	b.Set1(2)
	b.Set1(3)

	and := a.And(b)
	assert.True(t, and.Get(2))
	assert.False(t, and.Get(1))
	assert.False(t, and.Get(3))

	or := a.Or(b)
	assert.True(t, or.Get(1))
	assert.True(t, or.Get(2))
	assert.True(t, or.Get(3))

	xor := a.Xor(b)
	assert.True(t, xor.Get(1))
	assert.False(t, xor.Get(2))
	assert.True(t, xor.Get(3))

	andNot := a.AndNot(b)
	assert.True(t, andNot.Get(1))
	assert.False(t, andNot.Get(2))
	assert.False(t, andNot.Get(3))

	assert.True(t, a.Intersects(b))
	c := bitlist.New()
	c.Set1(100)
	assert.False(t, a.Intersects(c))
}

func TestBitList_Clone(t *testing.T) {
	a := bitlist.New()
	a.Set1(5)
	b := a.Clone()
	b.Set1(6)
	assert.False(t, a.Get(6))
	assert.True(t, b.Get(5))
}

func TestBitList_RandomizedInsertRemove(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	ref := make([]bool, 0)
	b := bitlist.New()

	for i := 0; i < 2000; i++ {
		op := r.Intn(3)
		switch {
		case op == 0 || len(ref) == 0:
			pos := len(ref)
			if pos > 0 {
				pos = r.Intn(pos + 1)
			}
			val := r.Intn(2) == 1
			b.Insert(pos, val)
			ref = append(ref, false)
			copy(ref[pos+1:], ref[pos:])
			ref[pos] = val
		case op == 1:
			pos := r.Intn(len(ref))
			want := ref[pos]
			got := b.Remove(pos)
			assert.Equal(t, want, got)
			ref = append(ref[:pos], ref[pos+1:]...)
		default:
			pos := r.Intn(len(ref))
			val := r.Intn(2) == 1
			if val {
				b.Set1(pos)
			} else {
				b.Set0(pos)
			}
			ref[pos] = val
		}
	}

	assert.Equal(t, len(ref), b.Size())
	for i, want := range ref {
		assert.Equal(t, want, b.Get(i), "pos %d", i)
	}
}
