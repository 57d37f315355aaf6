package hashset_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coldforge/primcoll/hashset"
)

func intHash(k int) uint64 { return uint64(k) }

func TestSet_AddDelExists(t *testing.T) {
	s := hashset.New[int](intHash)
	s.Add(1)
	s.Add(2)
	assert.True(t, s.Exists(1))
	assert.Equal(t, 2, s.Size())

	s.Del(1)
	assert.False(t, s.Exists(1))
	assert.Equal(t, 1, s.Size())
}

func TestSet_AddIdempotent(t *testing.T) {
	s := hashset.New[int](intHash)
	s.Add(5)
	s.Add(5)
	assert.Equal(t, 1, s.Size())
}

func TestSet_UnionIntersectionDisjoint(t *testing.T) {
	a := hashset.New[int](intHash)
	b := hashset.New[int](intHash)
	for _, v := range []int{1, 2, 3} {
		a.Add(v)
	}
	for _, v := range []int{3, 4, 5} {
		b.Add(v)
	}

	union := a.Union(intHash, b)
	assert.Equal(t, 5, union.Size())
	for _, v := range []int{1, 2, 3, 4, 5} {
		assert.True(t, union.Exists(v))
	}

	inter := a.Intersection(intHash, b)
	assert.Equal(t, 1, inter.Size())
	assert.True(t, inter.Exists(3))

	assert.False(t, a.Disjoint(b))

	c := hashset.New[int](intHash)
	c.Add(100)
	assert.True(t, a.Disjoint(c))
}

func TestSet_RandomizedAgainstReferenceMap(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	ref := map[int]bool{}
	s := hashset.New[int](intHash)

	for i := 0; i < 3000; i++ {
		k := r.Intn(100)
		if r.Intn(2) == 0 {
			ref[k] = true
			s.Add(k)
		} else {
			delete(ref, k)
			s.Del(k)
		}
	}

	assert.Equal(t, len(ref), s.Size())
	for k := range ref {
		assert.True(t, s.Exists(k))
	}
}
