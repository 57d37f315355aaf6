package list

import "github.com/coldforge/primcoll/serialize"

// WriteJSON emits the list as a JSON array, in front-to-back order.
//
// complexity:
//   - time : O(Size)
func (l *List[T]) WriteJSON(w serialize.Writer) {
	w.EnterArray()
	w.Preallocate(len(l.data))
	for _, v := range l.data {
		w.Value(v)
	}
	w.ExitArray()
}
