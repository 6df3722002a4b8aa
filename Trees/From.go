package Trees

import (
	"cmp"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// From builds a tree holding keys[i]->vals[i] in O(n), which is faster than repeatedly
// calling Put. keys must be strictly ascending and len(keys)==len(vals), otherwise an
// *InvalidArgumentError is returned; when the order is broken it wraps an InvalidSliceError
// naming the first bad position. The slices aren't retained.
// The tree is built as a 2-3 tree of the smallest black height that fits n keys, so its
// height is at most that of any tree made by Put.
// Time: O(n)
func From[K cmp.Ordered, V any, S constraints.Unsigned](keys []K, vals []V) (*RBTree[K, V, S], error) {
	u := New[K, V, S]()
	if len(keys) != len(vals) {
		return nil, &InvalidArgumentError{Op: "From", Reason: "keys and vals differ in length"}
	}
	for i, k := range keys {
		if u.bad(k) {
			return nil, absentKey("From")
		}
		if i > 0 && u.cmp(keys[i-1], k) >= 0 {
			return nil, &InvalidArgumentError{Op: "From", Reason: "keys aren't strictly ascending",
				Err: InvalidSliceError[K]{i, keys[i-1], k}}
		}
	}
	u.root = build[K, V, S](keys, vals, bits.Len(uint(len(keys)+1))-1)
	u.verify("From")
	return u, nil
}

// build a subtree with a black root and black height b from ks and vs, which must satisfy
// 2^b-1 <= len(ks) <= 3^b-1. The root is a 2-node when its children can take all the
// keys, otherwise it's a 3-node with a red left child. Recursive.
func build[K any, V any, S constraints.Unsigned](ks []K, vs []V, b int) *node[K, V, S] {
	m := len(ks)
	if m == 0 {
		return nil
	}
	lo, hi := 1<<(b-1)-1, pow3Sat(b-1, m)-1 //size bounds of a child with black height b-1.
	var n *node[K, V, S]
	if m-1 <= 2*hi {
		a := splitSize(m-1, lo, hi)
		n = &node[K, V, S]{k: ks[a], v: vs[a], sz: S(m), c: black}
		n.l, n.r = build[K, V, S](ks[:a], vs[:a], b-1), build[K, V, S](ks[a+1:], vs[a+1:], b-1)
	} else {
		d := max(lo, m-2-2*hi) //size of the root's right child.
		rest := m - 2 - d
		a := splitSize(rest, lo, hi)
		lc := &node[K, V, S]{k: ks[a], v: vs[a], sz: S(rest + 1), c: red}
		lc.l, lc.r = build[K, V, S](ks[:a], vs[:a], b-1), build[K, V, S](ks[a+1:rest+1], vs[a+1:rest+1], b-1)
		n = &node[K, V, S]{k: ks[rest+1], v: vs[rest+1], l: lc, sz: S(m), c: black}
		n.r = build[K, V, S](ks[rest+2:], vs[rest+2:], b-1)
	}
	return n
}

// splitSize divides n keys between two subtrees whose sizes must be in [lo, hi], giving the
// left as many as possible. Returns the size of the left one.
func splitSize(n, lo, hi int) int {
	return n - max(lo, n-hi)
}

// pow3Sat returns 3^e, saturated at limit+1 so that it cannot overflow.
func pow3Sat(e, limit int) int {
	p := 1
	for ; e > 0 && p <= limit; e-- {
		p *= 3
	}
	return min(p, limit+1)
}
