package comparisons

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-omap/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/stretchr/testify/require"
)

const (
	opN      = 20000
	keyRange = 5000
)

// mutate applies the same random stream of puts and deletes to tree and to the peer
// through put and del.
func mutate(t *testing.T, rg *rand.Rand, tree *Trees.RBTree[int, int, uint32], put func(k, v int), del func(k int)) {
	t.Helper()
	for i := range opN {
		k := rg.Intn(keyRange)
		if rg.Intn(3) == 0 {
			require.NoError(t, tree.Delete(k))
			del(k)
		} else {
			require.NoError(t, tree.Put(k, i))
			put(k, i)
		}
	}
	require.False(t, tree.Corrupt())
}

func TestDiff_Gods(t *testing.T) {
	rg := rand.New(rand.NewSource(1))
	tree := Trees.New[int, int, uint32]()
	peer := redblacktree.NewWithIntComparator()
	mutate(t, rg, tree, func(k, v int) { peer.Put(k, v) }, func(k int) { peer.Remove(k) })

	require.Equal(t, peer.Size(), int(tree.Size()))
	keys := tree.Keys().Slice()
	for i, k := range peer.Keys() {
		require.Equal(t, k.(int), keys[i])
		v, found, err := tree.Get(keys[i])
		require.NoError(t, err)
		require.True(t, found)
		pv, _ := peer.Get(k)
		require.Equal(t, pv.(int), v)
	}
	mn, err := tree.Min()
	require.NoError(t, err)
	require.Equal(t, peer.Left().Key.(int), mn)
	mx, err := tree.Max()
	require.NoError(t, err)
	require.Equal(t, peer.Right().Key.(int), mx)

	for k := -1; k <= keyRange; k++ {
		fl, found, err := tree.Floor(k)
		require.NoError(t, err)
		pfl, pfound := peer.Floor(k)
		require.Equal(t, pfound, found, "floor(%d)", k)
		if found {
			require.Equal(t, pfl.Key.(int), fl, "floor(%d)", k)
		}
		ce, found, err := tree.Ceiling(k)
		require.NoError(t, err)
		pce, pfound := peer.Ceiling(k)
		require.Equal(t, pfound, found, "ceiling(%d)", k)
		if found {
			require.Equal(t, pce.Key.(int), ce, "ceiling(%d)", k)
		}
	}
}

func TestDiff_BTree(t *testing.T) {
	rg := rand.New(rand.NewSource(2))
	tree := Trees.New[int, int, uint32]()
	peer := btree.NewOrderedG[int](8)
	mutate(t, rg, tree, func(k, _ int) { peer.ReplaceOrInsert(k) }, func(k int) { peer.Delete(k) })

	require.Equal(t, peer.Len(), int(tree.Size()))
	for range 500 {
		lo, hi := rg.Intn(keyRange+2)-1, rg.Intn(keyRange+2)-1
		var want []int
		peer.AscendRange(lo, hi+1, func(k int) bool {
			want = append(want, k)
			return true
		})
		q, err := tree.KeysBetween(lo, hi)
		require.NoError(t, err)
		got := q.Slice()
		if len(want) == 0 {
			require.Empty(t, got, "keys(%d, %d)", lo, hi)
		} else {
			require.Equal(t, want, got, "keys(%d, %d)", lo, hi)
		}
		n, err := tree.SizeBetween(lo, hi)
		require.NoError(t, err)
		require.Equal(t, len(want), int(n))
	}
	i := uint32(0)
	peer.Ascend(func(k int) bool {
		sel, err := tree.Select(i)
		require.NoError(t, err)
		require.Equal(t, k, sel)
		r, err := tree.Rank(k)
		require.NoError(t, err)
		require.Equal(t, i, r)
		i++
		return true
	})
	var desc []int
	peer.Descend(func(k int) bool {
		desc = append(desc, k)
		return true
	})
	require.Equal(t, desc, tree.KeysDescending().Slice())
}

func TestDiff_GoLLRB(t *testing.T) {
	rg := rand.New(rand.NewSource(3))
	tree := Trees.New[int, int, uint32]()
	peer := llrb.New()
	mutate(t, rg, tree, func(k, _ int) { peer.ReplaceOrInsert(llrb.Int(k)) }, func(k int) { peer.Delete(llrb.Int(k)) })

	for peer.Len() > 0 {
		require.Equal(t, peer.Len(), int(tree.Size()))
		mn, err := tree.Min()
		require.NoError(t, err)
		require.Equal(t, int(peer.Min().(llrb.Int)), mn)
		mx, err := tree.Max()
		require.NoError(t, err)
		require.Equal(t, int(peer.Max().(llrb.Int)), mx)
		if rg.Intn(2) == 0 {
			require.NoError(t, tree.DeleteMin())
			peer.DeleteMin()
		} else {
			require.NoError(t, tree.DeleteMax())
			peer.DeleteMax()
		}
	}
	require.True(t, tree.IsEmpty())
	require.ErrorIs(t, tree.DeleteMin(), Trees.ErrUnderflow)
}

func TestDiff_From(t *testing.T) {
	rg := rand.New(rand.NewSource(4))
	peer := btree.NewOrderedG[int](4)
	for range opN {
		peer.ReplaceOrInsert(rg.Int())
	}
	keys := make([]int, 0, peer.Len())
	peer.Ascend(func(k int) bool {
		keys = append(keys, k)
		return true
	})
	tree, err := Trees.From[int, int, uint32](keys, make([]int, len(keys)))
	require.NoError(t, err)
	require.False(t, tree.Corrupt())
	for peer.Len() > 0 {
		k, _ := peer.DeleteMin()
		mn, err := tree.Min()
		require.NoError(t, err)
		require.Equal(t, k, mn)
		require.NoError(t, tree.Delete(k))
	}
	require.True(t, tree.IsEmpty())
}
