package hashmap_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coldforge/primcoll/equalhash"
	"github.com/coldforge/primcoll/hashmap"
)

func strHash(s string) uint64 { return equalhash.Strings().Hash(s) }

func TestMap_PutGetDel(t *testing.T) {
	m := hashmap.New[string, int](strHash)
	m.Put("a", 1)
	m.Put("b", 2)

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, m.Exists("b"))

	m.Del("a")
	assert.False(t, m.Exists("a"))
	assert.Equal(t, 1, m.Size())
}

func TestMap_PutOverwritesExistingKey(t *testing.T) {
	m := hashmap.New[string, int](strHash)
	m.Put("a", 1)
	m.Put("a", 2)
	assert.Equal(t, 1, m.Size())
	v, _ := m.Get("a")
	assert.Equal(t, 2, v)
}

func TestMap_NewWithPanicsOnBadLoadFactor(t *testing.T) {
	assert.Panics(t, func() {
		hashmap.NewWith[string, int](hashmap.Options[string]{
			LoadThreshold: 1.5,
			EqualHash:     equalhash.Strings(),
		})
	})
}

func TestMap_SortedKeys(t *testing.T) {
	m := hashmap.New[string, int](strHash)
	m.Put("c", 3)
	m.Put("a", 1)
	m.Put("b", 2)

	keys := m.SortedKeys(func(a, b string) bool { return a < b })
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestMap_EqualIgnoresInsertionOrder(t *testing.T) {
	m1 := hashmap.New[string, int](strHash)
	m1.Put("a", 1)
	m1.Put("b", 2)

	m2 := hashmap.New[string, int](strHash)
	m2.Put("b", 2)
	m2.Put("a", 1)

	assert.True(t, m1.Equal(m2, func(a, b int) bool { return a == b }))
}

func TestMap_RandomizedAgainstReferenceMap(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	ref := map[string]int{}
	m := hashmap.New[string, int](strHash)

	keyOf := func(i int) string { return string(rune('a' + i%26)) }

	for i := 0; i < 3000; i++ {
		k := keyOf(r.Intn(26))
		switch r.Intn(3) {
		case 0, 1:
			v := r.Int()
			ref[k] = v
			m.Put(k, v)
		default:
			delete(ref, k)
			m.Del(k)
		}
	}

	assert.Equal(t, len(ref), m.Size())
	for k, want := range ref {
		got, ok := m.Get(k)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
}
