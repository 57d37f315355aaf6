package hashcore_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coldforge/primcoll/equalhash"
	"github.com/coldforge/primcoll/hashcore"
)

func intHash(k int) uint64 { return uint64(k) }

func newIntCore() *hashcore.Core[int, string] {
	return hashcore.New[int, string](equalhash.Natural(intHash), 0)
}

func TestCore_PutGetOverwrite(t *testing.T) {
	c := newIntCore()
	assert.True(t, c.Put(1, "a"))
	assert.False(t, c.Put(1, "b"))

	v, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	assert.Equal(t, 1, c.Size())
}

func TestCore_ZeroKeyRoundTrip(t *testing.T) {
	c := newIntCore()
	assert.True(t, c.Put(0, "zero"))
	assert.False(t, c.Put(0, "zero2"))

	tok := c.Token(0)
	assert.NotEqual(t, hashcore.TokenNone, tok)
	assert.Equal(t, "zero2", c.Value(tok))

	assert.True(t, c.Remove(0))
	assert.Equal(t, hashcore.TokenNone, c.Token(0))
}

func TestCore_RemoveMissing(t *testing.T) {
	c := newIntCore()
	assert.False(t, c.Remove(42))
}

func TestCore_TokenNoneOnMiss(t *testing.T) {
	c := newIntCore()
	c.Put(1, "a")
	assert.Equal(t, hashcore.TokenNone, c.Token(999))
}

// TestCore_ResizeGrowsCapacity reproduces spec.md §8 Scenario S1 literally:
// expected=8 at load factor 0.75 sizes the initial capacity to 16
// (ceil(8/0.75)=11, next_power_of_two(11)=16), giving resize_at=12. Inserting
// keys 1..17 crosses resize_at on the 13th Put (assigned==12 before that
// insert), so capacity must have doubled to 32 by the time all 17 are in.
func TestCore_ResizeGrowsCapacity(t *testing.T) {
	c := hashcore.New[int, string](equalhash.Natural(intHash), 8, hashcore.WithLoadFactor[int, string](0.75))
	before := c.Capacity()
	assert.Equal(t, 16, before)
	for i := 1; i <= 17; i++ {
		c.Put(i, "x")
	}
	assert.Greater(t, c.Capacity(), before)
	assert.Equal(t, 32, c.Capacity())
	for i := 1; i <= 17; i++ {
		v, ok := c.Get(i)
		assert.True(t, ok)
		assert.Equal(t, "x", v)
	}
}

func TestCore_IterVisitsEveryEntryIncludingZero(t *testing.T) {
	c := newIntCore()
	want := map[int]string{0: "z", 1: "a", 2: "b", 3: "c"}
	for k, v := range want {
		c.Put(k, v)
	}
	got := map[int]string{}
	c.Iter(func(k int, v string) bool {
		got[k] = v
		return true
	})
	assert.Equal(t, want, got)
}

func TestCore_IterNonNullNonZeroVisitsEverySlotOnce(t *testing.T) {
	c := newIntCore()
	want := map[int]bool{0: true, 1: true, 2: true, 5: true}
	for k := range want {
		c.Put(k, "v")
	}

	seen := map[int]bool{}
	tok := hashcore.IterSeed()
	for {
		tok = c.IterNonNullNonZero(tok)
		if tok == hashcore.TokenNone {
			break
		}
		seen[c.Key(tok)] = true
	}
	assert.Equal(t, want, seen)
}

func TestCore_NullValueToken(t *testing.T) {
	isNull := func(v string) bool { return v == "" }
	c := hashcore.New[int, string](equalhash.Natural(intHash), 0, hashcore.WithNullValue[int, string](isNull))
	c.Put(5, "")
	assert.Equal(t, hashcore.TokenNull, c.Token(5))

	v, ok := c.Get(5)
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestCore_StringKeysViaEqualHash(t *testing.T) {
	c := hashcore.New[string, int](equalhash.Strings(), 0)
	c.Put("hello", 1)
	c.Put("world", 2)
	v, ok := c.Get("hello")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, c.Remove("hello"))
	_, ok = c.Get("hello")
	assert.False(t, ok)
}

func TestCore_CloneIsIndependent(t *testing.T) {
	c := newIntCore()
	c.Put(1, "a")
	clone := c.Clone()
	clone.Put(2, "b")
	assert.Equal(t, 1, c.Size())
	assert.Equal(t, 2, clone.Size())
}

func TestCore_EqualAndHashCode(t *testing.T) {
	a := newIntCore()
	b := newIntCore()
	for _, k := range []int{1, 2, 3} {
		a.Put(k, "v")
		b.Put(k, "v")
	}
	valueEqual := func(x, y string) bool { return x == y }
	valueHash := func(v string) uint64 {
		h := uint64(2166136261)
		for _, c := range []byte(v) {
			h = (h ^ uint64(c)) * 16777619
		}
		return h
	}
	assert.True(t, a.Equal(b, valueEqual))
	assert.Equal(t, a.HashCode(valueHash), b.HashCode(valueHash))

	b.Put(4, "v")
	assert.False(t, a.Equal(b, valueEqual))
}

func TestCore_RandomizedAgainstReferenceMap(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	ref := map[int]int{}
	c := hashcore.New[int, int](equalhash.Natural(intHash), 0)

	for i := 0; i < 5000; i++ {
		k := r.Intn(200)
		switch r.Intn(3) {
		case 0, 1:
			v := r.Int()
			ref[k] = v
			c.Put(k, v)
		default:
			delete(ref, k)
			c.Remove(k)
		}
	}

	assert.Equal(t, len(ref), c.Size())
	for k, want := range ref {
		got, ok := c.Get(k)
		assert.True(t, ok, "key %d", k)
		assert.Equal(t, want, got, "key %d", k)
	}
}
