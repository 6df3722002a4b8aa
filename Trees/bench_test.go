package Trees

import (
	"slices"
	"testing"
)

var (
	bAddN uint32 = 1000000
	bQryN uint32 = bAddN / 2
)

func BenchmarkPut(b *testing.B) {
	for range b.N {
		tree := New[int, int, uint32]()
		for range bAddN {
			tree.Put(rg.Int(), 0)
		}
	}
}

func create(b *testing.B) (*RBTree[int, int, uint32], []int) {
	b.Helper()
	all := make([]int, bAddN)
	for i := range all {
		all[i] = rg.Int()
	}
	slices.Sort(all)
	all = slices.Compact(all)
	tree, err := From[int, int, uint32](all, make([]int, len(all)))
	if err != nil {
		b.Fatal(err)
	}
	return tree, all
}

func BenchmarkFrom(b *testing.B) {
	all := make([]int, bAddN)
	for i := range all {
		all[i] = i
	}
	vs := make([]int, bAddN)
	b.ResetTimer()
	for range b.N {
		From[int, int, uint32](all, vs)
	}
}

func BenchmarkDelete(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree, all := create(b)
		rg.Shuffle(len(all), func(i, j int) {
			all[i], all[j] = all[j], all[i]
		})
		b.StartTimer()
		for _, v := range all {
			tree.Delete(v)
		}
	}
}

func BenchmarkDeleteMin(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree, _ := create(b)
		b.StartTimer()
		for !tree.IsEmpty() {
			tree.DeleteMin()
		}
	}
}

var sideEff int

func BenchmarkGet(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree, all := create(b)
		rg.Shuffle(len(all), func(i, j int) {
			all[i], all[j] = all[j], all[i]
		})
		b.StartTimer()
		for _, v := range all[:len(all)/2] {
			sideEff, _, _ = tree.Get(v)
		}
	}
}

func BenchmarkRankSelect(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree, _ := create(b)
		b.StartTimer()
		for i := range bQryN {
			k, _ := tree.Select(i)
			r, _ := tree.Rank(k)
			sideEff = int(r)
		}
	}
}
