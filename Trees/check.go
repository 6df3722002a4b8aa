package Trees

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	errOrder   = errors.New("keys are not in symmetric order")
	errSize    = errors.New("subtree sizes are not consistent")
	errRank    = errors.New("ranks are not consistent")
	errShape   = errors.New("not a 2-3 tree")
	errBalance = errors.New("not black balanced")
)

// Corrupt returns whether the tree violates any of the properties of a left-leaning
// red-black tree. Recursive.
// Time: O(n log n)
func (u *RBTree[K, V, S]) Corrupt() bool {
	return u.check() != nil
}

// check the tree and return the first property that fails, in this order: symmetric
// order, size consistency, rank consistency, 2-3 shape, black balance.
func (u *RBTree[K, V, S]) check() error {
	if !u.ordered(u.root, nil, nil) {
		return errOrder
	}
	if n := sizeConsistent(u.root); n != nil {
		return fmt.Errorf("%w: node %v has size %d", errSize, n.k, n.sz)
	}
	if err := u.rankConsistent(); err != nil {
		return err
	}
	if u.root.red() {
		return fmt.Errorf("%w: red root", errShape)
	}
	if n := is23(u.root, u.root); n != nil {
		return fmt.Errorf("%w: at node %v", errShape, n.k)
	}
	nb := 0
	for cur := u.root; cur != nil; cur = cur.l {
		if !cur.red() {
			nb++
		}
	}
	if !balanced(u.root, nb) {
		return errBalance
	}
	return nil
}

// ordered reports whether every key of the subtree is strictly between lo and hi. A nil
// bound is unbounded.
func (u *RBTree[K, V, S]) ordered(cur *node[K, V, S], lo, hi *K) bool {
	if cur == nil {
		return true
	}
	if lo != nil && u.cmp(cur.k, *lo) <= 0 || hi != nil && u.cmp(cur.k, *hi) >= 0 {
		return false
	}
	return u.ordered(cur.l, lo, &cur.k) && u.ordered(cur.r, &cur.k, hi)
}

// sizeConsistent returns the first node whose size is wrong, nil if none.
func sizeConsistent[K any, V any, S constraints.Unsigned](cur *node[K, V, S]) *node[K, V, S] {
	if cur == nil {
		return nil
	}
	if cur.sz != cur.l.size()+cur.r.size()+1 {
		return cur
	}
	if n := sizeConsistent(cur.l); n != nil {
		return n
	}
	return sizeConsistent(cur.r)
}

func (u *RBTree[K, V, S]) rankConsistent() error {
	for i := S(0); i < u.Size(); i++ {
		k, err := u.Select(i)
		if err != nil {
			return fmt.Errorf("%w: select %d: %v", errRank, i, err)
		}
		if r := u.rank(k); r != i {
			return fmt.Errorf("%w: rank of select %d is %d", errRank, i, r)
		}
	}
	var err error
	u.Ascend(func(key K, _ V) bool {
		if k, _ := u.Select(u.rank(key)); u.cmp(k, key) != 0 {
			err = fmt.Errorf("%w: select of rank of %v is %v", errRank, key, k)
		}
		return err == nil
	})
	return err
}

// is23 returns the first node with a red right link or two red links in a row.
func is23[K any, V any, S constraints.Unsigned](cur, root *node[K, V, S]) *node[K, V, S] {
	if cur == nil {
		return nil
	}
	if cur.r.red() || cur != root && cur.red() && cur.l.red() {
		return cur
	}
	if n := is23(cur.l, root); n != nil {
		return n
	}
	return is23(cur.r, root)
}

// balanced reports whether every path from cur to a nil link has nb black nodes.
func balanced[K any, V any, S constraints.Unsigned](cur *node[K, V, S], nb int) bool {
	if cur == nil {
		return nb == 0
	}
	if !cur.red() {
		nb--
	}
	return balanced(cur.l, nb) && balanced(cur.r, nb)
}
