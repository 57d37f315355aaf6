package hashset_test

import (
	"testing"

	"github.com/coldforge/primcoll/adt/prop"
	"github.com/coldforge/primcoll/hashset"
)

func TestSet_Properties(t *testing.T) {
	newSet := func() *hashset.Set[int] {
		return hashset.New[int](func(e int) uint64 { return uint64(e) })
	}

	specs := []prop.Spec{
		prop.Set(newSet),
	}

	for _, s := range specs {
		t.Run(s.Name, s.Test)
	}
}
