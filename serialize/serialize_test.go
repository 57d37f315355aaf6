package serialize_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coldforge/primcoll/bitlist"
	"github.com/coldforge/primcoll/list"
	"github.com/coldforge/primcoll/serialize"
)

func TestJSONWriter_ScalarArray(t *testing.T) {
	var buf bytes.Buffer
	w := serialize.NewJSONWriter(&buf)
	w.EnterArray()
	w.Value(1)
	w.Value("two")
	w.Value(true)
	w.Value(nil)
	w.ExitArray()

	var got []any
	assert.NoError(t, json.Unmarshal(w.Bytes(), &got))
	assert.Equal(t, []any{float64(1), "two", true, nil}, got)
}

func TestJSONWriter_Object(t *testing.T) {
	var buf bytes.Buffer
	w := serialize.NewJSONWriter(&buf)
	w.EnterObject()
	w.Name("a")
	w.Value(1)
	w.Name("b")
	w.Value(2)
	w.ExitObject()

	var got map[string]any
	assert.NoError(t, json.Unmarshal(w.Bytes(), &got))
	assert.Equal(t, map[string]any{"a": float64(1), "b": float64(2)}, got)
}

func TestBitList_WriteJSON(t *testing.T) {
	b := bitlist.New()
	b.Set1(0)
	b.Set1(2)

	var buf bytes.Buffer
	w := serialize.NewJSONWriter(&buf)
	b.WriteJSON(w)

	var got []int
	assert.NoError(t, json.Unmarshal(w.Bytes(), &got))
	assert.Equal(t, []int{1, 0, 1}, got)
}

func TestList_WriteJSON(t *testing.T) {
	l := list.Of(1, 2, 3)

	var buf bytes.Buffer
	w := serialize.NewJSONWriter(&buf)
	l.WriteJSON(w)

	var got []int
	assert.NoError(t, json.Unmarshal(w.Bytes(), &got))
	assert.Equal(t, []int{1, 2, 3}, got)
}
