package hashmap_test

import (
	"testing"

	"github.com/coldforge/primcoll/adt/prop"
	"github.com/coldforge/primcoll/hashmap"
)

func TestMap_Properties(t *testing.T) {
	newMap := func() *hashmap.Map[int, int] {
		return hashmap.New[int, int](func(k int) uint64 { return uint64(k) })
	}

	specs := []prop.Spec{
		prop.MapPutGetDel(newMap),
		prop.MapKeys(newMap),
		prop.MapLoadFactor(newMap),
		prop.MapString(newMap),
	}

	for _, s := range specs {
		t.Run(s.Name, s.Test)
	}
}
