package Trees

import (
	"iter"

	"github.com/g-m-twostay/go-omap/Queues"
	"golang.org/x/exp/constraints"
)

// Min returns the smallest key. Returns *UnderflowError if the tree is empty.
// Time: O(log n); Space: O(1)
func (u *RBTree[K, V, S]) Min() (K, error) {
	if u.root == nil {
		return *new(K), &UnderflowError{Op: "Min"}
	}
	return minNode(u.root).k, nil
}

// Max returns the largest key. Returns *UnderflowError if the tree is empty.
// Time: O(log n); Space: O(1)
func (u *RBTree[K, V, S]) Max() (K, error) {
	if u.root == nil {
		return *new(K), &UnderflowError{Op: "Max"}
	}
	return maxNode(u.root).k, nil
}

// Floor returns the largest key less than or equal to key. found is false if every key in
// the tree is greater than key. Calling it on an empty tree is a usage error: the returned
// *UnderflowError matches both ErrUnderflow and ErrInvalidArgument.
// Time: O(log n); Space: O(1)
func (u *RBTree[K, V, S]) Floor(key K) (fl K, found bool, err error) {
	if u.bad(key) {
		return fl, false, absentKey("Floor")
	} else if u.root == nil {
		return fl, false, &UnderflowError{Op: "Floor", asArg: true}
	}
	for cur := u.root; cur != nil; {
		if c := u.cmp(key, cur.k); c < 0 {
			cur = cur.l
		} else if c > 0 {
			fl, found = cur.k, true
			cur = cur.r
		} else {
			return cur.k, true, nil
		}
	}
	return
}

// Ceiling is the mirror of Floor: the smallest key greater than or equal to key.
// Time: O(log n); Space: O(1)
func (u *RBTree[K, V, S]) Ceiling(key K) (ce K, found bool, err error) {
	if u.bad(key) {
		return ce, false, absentKey("Ceiling")
	} else if u.root == nil {
		return ce, false, &UnderflowError{Op: "Ceiling", asArg: true}
	}
	for cur := u.root; cur != nil; {
		if c := u.cmp(key, cur.k); c > 0 {
			cur = cur.r
		} else if c < 0 {
			ce, found = cur.k, true
			cur = cur.l
		} else {
			return cur.k, true, nil
		}
	}
	return
}

// Select returns the key of rank k, that is the k-th smallest key counting from 0.
// Returns *InvalidArgumentError unless k<Size().
// Time: O(log n); Space: O(1)
func (u *RBTree[K, V, S]) Select(k S) (K, error) {
	if k >= u.root.size() {
		return *new(K), &InvalidArgumentError{Op: "Select", Reason: "index out of range"}
	}
	cur := u.root
	for {
		if lsz := cur.l.size(); k < lsz {
			cur = cur.l
		} else if k > lsz {
			k -= lsz + 1
			cur = cur.r
		} else {
			return cur.k, nil
		}
	}
}

// Rank returns the number of keys strictly less than key. key doesn't have to be in the tree.
// Time: O(log n); Space: O(1)
func (u *RBTree[K, V, S]) Rank(key K) (S, error) {
	if u.bad(key) {
		return 0, absentKey("Rank")
	}
	return u.rank(key), nil
}

func (u *RBTree[K, V, S]) rank(key K) (ra S) {
	for cur := u.root; cur != nil; {
		if c := u.cmp(key, cur.k); c < 0 {
			cur = cur.l
		} else if c > 0 {
			ra += cur.l.size() + 1
			cur = cur.r
		} else {
			return ra + cur.l.size()
		}
	}
	return
}

// SizeBetween returns the number of keys k with lo<=k<=hi, 0 if lo>hi.
// Time: O(log n); Space: O(1)
func (u *RBTree[K, V, S]) SizeBetween(lo, hi K) (S, error) {
	if u.bad(lo) || u.bad(hi) {
		return 0, &InvalidArgumentError{Op: "SizeBetween", Reason: "bound is not part of the total order"}
	}
	if u.cmp(lo, hi) > 0 {
		return 0, nil
	}
	n := u.rank(hi) - u.rank(lo)
	if u.get(hi) != nil {
		n++
	}
	return n, nil
}

// Keys returns all keys in ascending order. Recursive.
// Time: O(n)
func (u *RBTree[K, V, S]) Keys() *Queues.ArrayQueue[K] {
	q := Queues.MakeArrayQueue[K](uint(u.root.size()))
	ascend(u.root, func(n *node[K, V, S]) bool {
		q.Push(n.k)
		return true
	})
	return q
}

// KeysDescending returns all keys in descending order. Recursive.
// Time: O(n)
func (u *RBTree[K, V, S]) KeysDescending() *Queues.ArrayQueue[K] {
	q := Queues.MakeArrayQueue[K](uint(u.root.size()))
	descend(u.root, func(n *node[K, V, S]) bool {
		q.Push(n.k)
		return true
	})
	return q
}

// KeysBetween returns the keys k with lo<=k<=hi in ascending order. The queue is empty
// if lo>hi. Subtrees entirely outside of the range aren't visited. Recursive.
// Time: O(log n + m) where m is the number of keys returned.
func (u *RBTree[K, V, S]) KeysBetween(lo, hi K) (*Queues.ArrayQueue[K], error) {
	if u.bad(lo) || u.bad(hi) {
		return nil, &InvalidArgumentError{Op: "KeysBetween", Reason: "bound is not part of the total order"}
	}
	q := Queues.MakeArrayQueue[K](1)
	u.keysBetween(u.root, q, lo, hi)
	return q, nil
}

func (u *RBTree[K, V, S]) keysBetween(cur *node[K, V, S], q *Queues.ArrayQueue[K], lo, hi K) {
	if cur == nil {
		return
	}
	cl, ch := u.cmp(lo, cur.k), u.cmp(hi, cur.k)
	if cl < 0 {
		u.keysBetween(cur.l, q, lo, hi)
	}
	if cl <= 0 && ch >= 0 {
		q.Push(cur.k)
	}
	if ch > 0 {
		u.keysBetween(cur.r, q, lo, hi)
	}
}

// ascend visits the subtree in-order until f returns false. Returns false if stopped.
func ascend[K any, V any, S constraints.Unsigned](cur *node[K, V, S], f func(*node[K, V, S]) bool) bool {
	return cur == nil || ascend(cur.l, f) && f(cur) && ascend(cur.r, f)
}

func descend[K any, V any, S constraints.Unsigned](cur *node[K, V, S], f func(*node[K, V, S]) bool) bool {
	return cur == nil || descend(cur.r, f) && f(cur) && descend(cur.l, f)
}

// Ascend calls f on every key and value in ascending key order until f returns false.
// The tree mustn't be modified from f. Recursive.
func (u *RBTree[K, V, S]) Ascend(f func(key K, val V) bool) {
	ascend(u.root, func(n *node[K, V, S]) bool { return f(n.k, n.v) })
}

// All returns an iterator over the keys and values in ascending key order, for use in
// range loops. The tree mustn't be modified during the iteration.
func (u *RBTree[K, V, S]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		u.Ascend(yield)
	}
}
