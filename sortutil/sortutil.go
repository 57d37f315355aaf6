// Package sortutil provides an in-place introspective sort over a
// caller-supplied capability, so a container can sort its keys or values
// by permuting an index array instead of moving the keys themselves.
//
// # Why Not sort.Interface?
//
// sort.Interface's Less/Swap pair is enough for sorting a slice in place,
// but hashmap.Map.SortedKeys needs to sort a separate index array while
// comparing through a snapshot of the map's keys, and wants the classic
// shift-based insertion sort (save the element being placed once, shift
// everything bigger down, drop the saved element into the hole) rather
// than pairwise Swap, because Swap on an index permutation is three slice
// writes but a shift step is one. Sortable exposes that shift directly.
package sortutil

// Sortable is the capability surface introspective Sort needs. An
// implementation over an []int index array stores "the fix" in a single
// local field; an implementation sorting a slice of keys directly can
// store it in a same-typed local variable.
type Sortable interface {
	// Len is the number of elements to sort.
	Len() int
	// Compare returns <0, 0, >0 as the element at i is less than, equal
	// to, or greater than the element at j.
	Compare(i, j int) int
	// Swap exchanges the elements at i and j.
	Swap(i, j int)
	// Fix snapshots the element at i as "the fix" for a later PlaceFix.
	Fix(i int)
	// PlaceFix writes the fixed element into dst.
	PlaceFix(dst int)
	// CompareFix returns <0, 0, >0 as the fixed element is less than,
	// equal to, or greater than the element at i.
	CompareFix(i int) int
	// MoveTo overwrites dst with the element currently at src, without
	// disturbing src (used to shift a run down by one during insertion
	// sort; heapsort's sift-down uses Swap).
	MoveTo(dst, src int)
}

const insertionThreshold = 12

// Sort sorts s in place. It is introspective: quicksort with a
// median-of-three pivot does the bulk of the work, insertion sort handles
// small partitions (cheaper than recursing further), and a heapsort
// fallback caps the worst case at O(n log n) once the recursion depth
// budget (2*floor(log2(n))) is exhausted, guarding against the O(n^2)
// adversarial inputs that a plain quicksort is vulnerable to.
//
// complexity:
//   - time : O(n log n) worst case, O(n log n) average
//   - space: O(log n) recursion
func Sort(s Sortable) {
	n := s.Len()
	if n < 2 {
		return
	}
	depthLimit := 2 * floorLog2(n)
	introsort(s, 0, n-1, depthLimit)
}

func floorLog2(n int) int {
	log := 0
	for n > 1 {
		n >>= 1
		log++
	}
	return log
}

func introsort(s Sortable, lo, hi, depthLimit int) {
	for hi-lo+1 > insertionThreshold {
		if depthLimit == 0 {
			heapsort(s, lo, hi)
			return
		}
		depthLimit--
		p := partition(s, lo, hi)
		// Recurse into the smaller side, loop over the larger one, to
		// keep the recursion depth at O(log n).
		if p-lo < hi-p {
			introsort(s, lo, p-1, depthLimit)
			lo = p + 1
		} else {
			introsort(s, p+1, hi, depthLimit)
			hi = p - 1
		}
	}
	insertionSort(s, lo, hi)
}

func insertionSort(s Sortable, lo, hi int) {
	for i := lo + 1; i <= hi; i++ {
		s.Fix(i)
		j := i
		for j > lo && s.CompareFix(j-1) < 0 {
			s.MoveTo(j, j-1)
			j--
		}
		if j != i {
			s.PlaceFix(j)
		}
	}
}

// partition uses median-of-three (lo, mid, hi) to pick a pivot, moves it
// out of the way, does a Hoare-style partition, and restores it to its
// final resting place.
func partition(s Sortable, lo, hi int) int {
	mid := lo + (hi-lo)/2
	medianOfThree(s, lo, mid, hi)
	s.Swap(mid, hi-1) // stash pivot just before hi
	pivot := hi - 1

	i, j := lo, pivot
	for {
		for i++; s.Compare(i, pivot) < 0; i++ {
		}
		for j--; s.Compare(pivot, j) < 0; j-- {
		}
		if i >= j {
			break
		}
		s.Swap(i, j)
	}
	s.Swap(i, pivot)
	return i
}

func medianOfThree(s Sortable, lo, mid, hi int) {
	if s.Compare(mid, lo) < 0 {
		s.Swap(mid, lo)
	}
	if s.Compare(hi, lo) < 0 {
		s.Swap(hi, lo)
	}
	if s.Compare(hi, mid) < 0 {
		s.Swap(hi, mid)
	}
}

// heapsort is the introspective fallback: build a max-heap over [lo, hi]
// then repeatedly swap the max to the end and sift down, guaranteeing
// O(n log n) regardless of input order.
func heapsort(s Sortable, lo, hi int) {
	n := hi - lo + 1
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, lo, i, n)
	}
	for end := n - 1; end > 0; end-- {
		s.Swap(lo, lo+end)
		siftDown(s, lo, 0, end)
	}
}

func siftDown(s Sortable, base, root, size int) {
	for {
		child := 2*root + 1
		if child >= size {
			return
		}
		if child+1 < size && s.Compare(base+child, base+child+1) < 0 {
			child++
		}
		if s.Compare(base+root, base+child) >= 0 {
			return
		}
		s.Swap(base+root, base+child)
		root = child
	}
}

// IndexOf builds the identity permutation [0, 1, ..., n-1] used as the
// starting point for index-array sorts like hashmap.Map.SortedKeys.
func IndexOf(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
