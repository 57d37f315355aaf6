package nulllist_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coldforge/primcoll/nulllist"
)

func TestNullList_SetGet(t *testing.T) {
	n := nulllist.New[int]()
	n.Set(1, 10)
	n.Set(3, 30)

	assert.Equal(t, 2, n.PresentCount())
	assert.Equal(t, 4, n.Size())

	v, ok := n.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	_, ok = n.Get(2)
	assert.False(t, ok)

	v, ok = n.Get(3)
	assert.True(t, ok)
	assert.Equal(t, 30, v)
}

func TestNullList_SetThenRemove(t *testing.T) {
	n := nulllist.New[int]()
	n.Set(1, 10)
	n.Set(3, 30)

	n.Remove(1)
	assert.Equal(t, 1, n.PresentCount())
	_, ok := n.Get(0)
	assert.False(t, ok)
	v, ok := n.Get(2)
	assert.True(t, ok)
	assert.Equal(t, 30, v)
}

func TestNullList_Clear(t *testing.T) {
	n := nulllist.New[int]()
	n.Set(2, 99)
	n.Clear(2)
	_, ok := n.Get(2)
	assert.False(t, ok)
	assert.Equal(t, 0, n.PresentCount())
	assert.Equal(t, 3, n.Size())
}

func TestNullList_InvariantRandomized(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	n := nulllist.New[int]()
	type slot struct {
		present bool
		value   int
	}
	var ref []slot

	for i := 0; i < 2000; i++ {
		switch r.Intn(4) {
		case 0:
			idx := 0
			if len(ref) > 0 {
				idx = r.Intn(len(ref) + 1)
			}
			val := r.Int()
			present := r.Intn(2) == 1
			n.Insert(idx, val, present)
			ref = append(ref, slot{})
			copy(ref[idx+1:], ref[idx:len(ref)-1])
			ref[idx] = slot{present, val}
		case 1:
			if len(ref) == 0 {
				continue
			}
			idx := r.Intn(len(ref))
			n.Remove(idx)
			ref = append(ref[:idx], ref[idx+1:]...)
		case 2:
			if len(ref) == 0 {
				continue
			}
			idx := r.Intn(len(ref))
			val := r.Int()
			n.Set(idx, val)
			ref[idx] = slot{true, val}
		default:
			if len(ref) == 0 {
				continue
			}
			idx := r.Intn(len(ref))
			n.Clear(idx)
			ref[idx] = slot{false, 0}
		}

		wantPresent := 0
		for _, s := range ref {
			if s.present {
				wantPresent++
			}
		}
		assert.Equal(t, wantPresent, n.PresentCount())
	}

	for i, want := range ref {
		v, ok := n.Get(i)
		assert.Equal(t, want.present, ok, "index %d", i)
		if want.present {
			assert.Equal(t, want.value, v, "index %d", i)
		}
	}
}
