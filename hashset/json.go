package hashset

import "github.com/coldforge/primcoll/serialize"

// WriteJSON emits the set as a JSON array, in unspecified order, per
// this module's serialization design.
//
// complexity:
//   - time : O(capacity)
func (s *Set[E]) WriteJSON(w serialize.Writer) {
	w.EnterArray()
	w.Preallocate(s.Size())
	for e := range s.Iter {
		w.Value(e)
	}
	w.ExitArray()
}
