package bitlist_test

import (
	"testing"

	"github.com/coldforge/primcoll/adt/prop"
	"github.com/coldforge/primcoll/bitlist"
)

func TestBitList_Properties(t *testing.T) {
	specs := []prop.Spec{
		prop.BitListRankSelect(func(size int) *bitlist.BitList {
			return bitlist.NewWithCapacity(size)
		}),
	}

	for _, s := range specs {
		t.Run(s.Name, s.Test)
	}
}
