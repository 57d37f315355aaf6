package packedbits

import "github.com/coldforge/primcoll/serialize"

// WriteJSON emits the packed items as a JSON array of integers.
//
// complexity:
//   - time : O(Size)
func (b *BitsList) WriteJSON(w serialize.Writer) {
	w.EnterArray()
	w.Preallocate(b.size)
	for i := 0; i < b.size; i++ {
		w.Value(b.Get(i))
	}
	w.ExitArray()
}
