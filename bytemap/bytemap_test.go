package bytemap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coldforge/primcoll/bytemap"
)

func TestMap_PutGetRemove(t *testing.T) {
	m := bytemap.New[string]()
	assert.True(t, m.Put(5, "five"))
	assert.False(t, m.Put(5, "FIVE"))

	v, ok := m.Get(5)
	assert.True(t, ok)
	assert.Equal(t, "FIVE", v)

	assert.True(t, m.Remove(5))
	_, ok = m.Get(5)
	assert.False(t, ok)
}

func TestMap_MultipleKeysDenseRank(t *testing.T) {
	m := bytemap.New[int]()
	for b := 0; b < 10; b++ {
		m.Put(byte(b*20), b)
	}
	assert.Equal(t, 10, m.Size())
	for b := 0; b < 10; b++ {
		v, ok := m.Get(byte(b * 20))
		assert.True(t, ok)
		assert.Equal(t, b, v)
	}
}

func TestMap_NullKey(t *testing.T) {
	m := bytemap.New[string]()
	assert.True(t, m.PutNullKey("n"))
	v, ok := m.GetNullKey()
	assert.True(t, ok)
	assert.Equal(t, "n", v)
	assert.True(t, m.RemoveNullKey())
	_, ok = m.GetNullKey()
	assert.False(t, ok)
}
