package hashmap

import "github.com/coldforge/primcoll/serialize"

// WriteJSON emits the map as a JSON object when K is string-keyed
// (object field names must be strings), or otherwise as a JSON array of
// {"Key":..., "Value":...} records, per this module's serialization
// design for non-string-keyed maps.
//
// complexity:
//   - time : O(capacity)
func (m *Map[K, V]) WriteJSON(w serialize.Writer) {
	var probeKey K
	m.Iter(func(k K, v V) bool {
		probeKey = k
		return false
	})

	if _, ok := any(probeKey).(string); ok {
		w.EnterObject()
		w.Preallocate(m.Size())
		m.Iter(func(k K, v V) bool {
			w.Name(any(k).(string))
			w.Value(v)
			return true
		})
		w.ExitObject()
		return
	}

	w.EnterArray()
	w.Preallocate(m.Size())
	m.Iter(func(k K, v V) bool {
		w.EnterObject()
		w.Name("Key")
		w.Value(k)
		w.Name("Value")
		w.Value(v)
		w.ExitObject()
		return true
	})
	w.ExitArray()
}
