package bitlist

import "github.com/coldforge/primcoll/serialize"

// WriteJSON emits the bit vector as a JSON array of 0/1 integers,
// through the serialize.Writer collaborator rather than formatting
// strings directly, per this module's serialization design.
//
// complexity:
//   - time : O(Size)
func (b *BitList) WriteJSON(w serialize.Writer) {
	w.EnterArray()
	w.Preallocate(b.size)
	for i := 0; i < b.size; i++ {
		if b.Get(i) {
			w.Value(1)
		} else {
			w.Value(0)
		}
	}
	w.ExitArray()
}
