package byteset_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coldforge/primcoll/byteset"
	"github.com/coldforge/primcoll/serialize"
)

func TestByteSet_AddContainsRemove(t *testing.T) {
	s := byteset.New()
	assert.True(t, s.Add(5))
	assert.False(t, s.Add(5))
	assert.True(t, s.Contains(5))
	assert.Equal(t, 1, s.Size())

	assert.True(t, s.Remove(5))
	assert.False(t, s.Contains(5))
	assert.False(t, s.Remove(5))
}

func TestByteSet_Rank(t *testing.T) {
	s := byteset.New()
	for _, b := range []byte{1, 5, 64, 200, 255} {
		s.Add(b)
	}

	assert.Equal(t, 0, s.Rank(0))
	assert.Equal(t, 1, s.Rank(1))
	assert.Equal(t, 2, s.Rank(5))
	assert.Equal(t, 3, s.Rank(64))
	assert.Equal(t, 4, s.Rank(200))
	assert.Equal(t, 5, s.Rank(255))
}

func TestByteSet_NullKey(t *testing.T) {
	s := byteset.New()
	assert.False(t, s.HasNullKey())
	assert.True(t, s.AddNullKey())
	assert.True(t, s.HasNullKey())
	assert.Equal(t, 1, s.Size())
	assert.True(t, s.RemoveNullKey())
	assert.Equal(t, 0, s.Size())
}

func TestByteSet_Iter(t *testing.T) {
	s := byteset.New()
	want := []byte{3, 9, 64, 128, 250}
	for _, b := range want {
		s.Add(b)
	}
	var got []byte
	s.Iter(func(b byte) bool {
		got = append(got, b)
		return true
	})
	assert.Equal(t, want, got)
}

func TestByteSet_WriteJSON(t *testing.T) {
	s := byteset.New()
	s.Add(1)
	s.Add(2)

	var buf bytes.Buffer
	w := serialize.NewJSONWriter(&buf)
	s.WriteJSON(w)

	var got []any
	assert.NoError(t, json.Unmarshal(w.Bytes(), &got))
	assert.Equal(t, []any{float64(1), float64(2)}, got)
}

func TestByteSet_WriteJSON_NullKeyTrailing(t *testing.T) {
	s := byteset.New()
	s.Add(1)
	s.AddNullKey()

	var buf bytes.Buffer
	w := serialize.NewJSONWriter(&buf)
	s.WriteJSON(w)

	var got []any
	assert.NoError(t, json.Unmarshal(w.Bytes(), &got))
	assert.Equal(t, []any{float64(1), nil}, got)
	assert.Len(t, got, s.Size())
}

func TestByteSet_AllBytes(t *testing.T) {
	s := byteset.New()
	for b := 0; b < 256; b++ {
		s.Add(byte(b))
	}
	assert.Equal(t, 256, s.Size())
	for b := 0; b < 256; b++ {
		assert.Equal(t, b+1, s.Rank(byte(b)))
	}
}
