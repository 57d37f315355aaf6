package nulllist

import "github.com/coldforge/primcoll/serialize"

// WriteJSON emits the sequence as a JSON array, with absent positions
// written as JSON null, per this module's serialization design for
// optional-valued sequences.
//
// complexity:
//   - time : O(Size)
func (n *NullList[T]) WriteJSON(w serialize.Writer) {
	w.EnterArray()
	w.Preallocate(n.Size())
	for i := 0; i < n.nulls.Size(); i++ {
		v, ok := n.Get(i)
		if !ok {
			w.Value(nil)
			continue
		}
		w.Value(v)
	}
	w.ExitArray()
}
