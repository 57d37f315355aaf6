// Package serialize provides the JsonWriter collaborator every container
// in this module calls through to emit JSON, instead of formatting
// strings itself. JSONWriter implements the collaborator over
// github.com/json-iterator/go's streaming encoder, a drop-in
// encoding/json-compatible library that avoids the reflection overhead
// of the standard library's encoder for the write-heavy, schema-known
// path containers take.
package serialize

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Writer is the collaborator interface containers call through to
// produce JSON: they never format strings themselves, only describe
// the shape (array, object, name, value) and let the Writer render it.
type Writer interface {
	EnterArray()
	ExitArray()
	EnterObject()
	ExitObject()
	Name(key string)
	Value(v any)
	// Preallocate hints the writer's buffer should expect n more
	// elements/fields, letting a streaming implementation size its
	// internal buffer once instead of growing incrementally.
	Preallocate(n int)
}

// JSONWriter implements Writer over a jsoniter.Stream.
type JSONWriter struct {
	stream    *jsoniter.Stream
	needComma []bool // one entry per open array/object, tracks whether
	// the next Value/Name call needs a leading comma
}

// NewJSONWriter creates a JSONWriter writing to w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		stream: jsoniter.ConfigCompatibleWithStandardLibrary.BorrowStream(w),
	}
}

// Bytes flushes and returns the buffered JSON output. Must be called
// after the container has finished writing.
func (j *JSONWriter) Bytes() []byte {
	out := append([]byte(nil), j.stream.Buffer()...)
	_ = j.stream.Flush()
	return out
}

func (j *JSONWriter) commaIfNeeded() {
	n := len(j.needComma)
	if n == 0 {
		return
	}
	if j.needComma[n-1] {
		j.stream.WriteMore()
	} else {
		j.needComma[n-1] = true
	}
}

// EnterArray opens a JSON array.
func (j *JSONWriter) EnterArray() {
	j.commaIfNeeded()
	j.stream.WriteArrayStart()
	j.needComma = append(j.needComma, false)
}

// ExitArray closes the most recently opened JSON array.
func (j *JSONWriter) ExitArray() {
	j.needComma = j.needComma[:len(j.needComma)-1]
	j.stream.WriteArrayEnd()
}

// EnterObject opens a JSON object.
func (j *JSONWriter) EnterObject() {
	j.commaIfNeeded()
	j.stream.WriteObjectStart()
	j.needComma = append(j.needComma, false)
}

// ExitObject closes the most recently opened JSON object.
func (j *JSONWriter) ExitObject() {
	j.needComma = j.needComma[:len(j.needComma)-1]
	j.stream.WriteObjectEnd()
}

// Name writes an object field name.
func (j *JSONWriter) Name(key string) {
	j.commaIfNeeded()
	j.stream.WriteObjectField(key)
	// WriteObjectField already writes the trailing colon; the value
	// that follows must not be preceded by another comma.
	n := len(j.needComma)
	if n > 0 {
		j.needComma[n-1] = false
	}
}

// Value writes a scalar value: nil, bool, any numeric type, string, or
// anything jsoniter's reflection path can marshal.
func (j *JSONWriter) Value(v any) {
	j.commaIfNeeded()
	if v == nil {
		j.stream.WriteNil()
		return
	}
	switch x := v.(type) {
	case bool:
		j.stream.WriteBool(x)
	case int:
		j.stream.WriteInt(x)
	case int64:
		j.stream.WriteInt64(x)
	case uint64:
		j.stream.WriteUint64(x)
	case float64:
		j.stream.WriteFloat64(x)
	case string:
		j.stream.WriteString(x)
	default:
		j.stream.WriteVal(x)
	}
}

// Preallocate is a no-op for the streaming writer: jsoniter.Stream grows
// its buffer geometrically on its own, and there is no fixed-size
// backing array to size up front.
func (j *JSONWriter) Preallocate(int) {}
