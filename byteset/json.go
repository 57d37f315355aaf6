package byteset

import "github.com/coldforge/primcoll/serialize"

// WriteJSON emits the present bytes as a JSON array of integers in
// ascending order, followed by a trailing JSON null if the distinguished
// null key is present, so the emitted array's length always matches
// Size().
//
// complexity:
//   - time : O(Size)
func (s *ByteSet) WriteJSON(w serialize.Writer) {
	w.EnterArray()
	w.Preallocate(s.Size())
	s.Iter(func(b byte) bool {
		w.Value(int(b))
		return true
	})
	if s.hasNullKey {
		w.Value(nil)
	}
	w.ExitArray()
}
