package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// RBTree is an ordered symbol table backed by a left-leaning red-black tree. Keys are unique,
// each key maps to one value.
// K is the key type, V the value type, and S the unsigned type used for subtree sizes,
// ranks and select indexes. S should be a wide upperbound for the size of the tree, the
// tree doesn't check for overflow.
// The height of the tree is at most 2*log2(n+1), so every operation below that walks a
// path is O(log n). Recursive methods are noted; the recursion depth is the height.
// RBTree isn't safe for concurrent use. Reads walk live links, so even one writer
// requires all readers to be excluded.
// Create it with New, NewFunc or From; the zero value isn't usable.
type RBTree[K any, V any, S constraints.Unsigned] struct {
	root *node[K, V, S]
	cmp  func(a, b K) int
	bad  func(K) bool //reports keys that don't belong to the total order.
}

// New returns an empty tree ordered by cmp.Compare. Keys that aren't equal to themselves
// (float NaNs) are rejected with ErrInvalidArgument.
func New[K cmp.Ordered, V any, S constraints.Unsigned]() *RBTree[K, V, S] {
	return &RBTree[K, V, S]{cmp: cmp.Compare[K], bad: func(k K) bool { return k != k }}
}

// NewFunc returns an empty tree ordered by c, which must define a total order on the keys
// that are going to be used. A key k with c(k, k)!=0 is rejected with ErrInvalidArgument.
// Panics if c is nil.
func NewFunc[K any, V any, S constraints.Unsigned](c func(a, b K) int) *RBTree[K, V, S] {
	if c == nil {
		panic("Trees: NewFunc with nil comparator")
	}
	return &RBTree[K, V, S]{cmp: c, bad: func(k K) bool { return c(k, k) != 0 }}
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *RBTree[K, V, S]) Size() S {
	return u.root.size()
}

// IsEmpty reports whether the tree has no keys.
func (u *RBTree[K, V, S]) IsEmpty() bool {
	return u.root == nil
}

// Clear removes all keys. O(1), the nodes are left to the garbage collector.
func (u *RBTree[K, V, S]) Clear() {
	u.root = nil
}

func height[K any, V any, S constraints.Unsigned](n *node[K, V, S]) int {
	if n == nil {
		return -1
	}
	return 1 + max(height(n.l), height(n.r))
}

// Height of the tree, -1 when empty and 0 for a single node. Recursive.
// Time: O(n)
func (u *RBTree[K, V, S]) Height() int {
	return height(u.root)
}

// Get returns the value stored for key, found is false when key isn't in the tree.
// Time: O(log n); Space: O(1)
func (u *RBTree[K, V, S]) Get(key K) (val V, found bool, err error) {
	if u.bad(key) {
		return val, false, absentKey("Get")
	}
	if n := u.get(key); n != nil {
		return n.v, true, nil
	}
	return val, false, nil
}

func (u *RBTree[K, V, S]) get(key K) *node[K, V, S] {
	for cur := u.root; cur != nil; {
		if c := u.cmp(key, cur.k); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Contains reports whether key is in the tree.
// Time: O(log n); Space: O(1)
func (u *RBTree[K, V, S]) Contains(key K) (bool, error) {
	if u.bad(key) {
		return false, absentKey("Contains")
	}
	return u.get(key) != nil, nil
}

// Put associates val with key, replacing the previous value if key is present. Every value,
// the zero value included, is stored; use Delete to remove a key. Recursive.
// Time: O(log n)
func (u *RBTree[K, V, S]) Put(key K, val V) error {
	if u.bad(key) {
		return absentKey("Put")
	}
	u.root = u.put(u.root, key, val)
	u.root.c = black
	u.verify("Put")
	return nil
}

func (u *RBTree[K, V, S]) put(cur *node[K, V, S], key K, val V) *node[K, V, S] {
	if cur == nil {
		return &node[K, V, S]{k: key, v: val, sz: 1, c: red}
	}
	if c := u.cmp(key, cur.k); c < 0 {
		cur.l = u.put(cur.l, key, val)
	} else if c > 0 {
		cur.r = u.put(cur.r, key, val)
	} else {
		cur.v = val
	}
	return balance(cur)
}

// DeleteMin removes the smallest key. Returns *UnderflowError if the tree is empty.
// Recursive.
// Time: O(log n)
func (u *RBTree[K, V, S]) DeleteMin() error {
	if u.root == nil {
		return &UnderflowError{Op: "DeleteMin"}
	}
	if !u.root.l.red() && !u.root.r.red() {
		u.root.c = red
	}
	u.root = deleteMin(u.root)
	u.blackenRoot()
	u.verify("DeleteMin")
	return nil
}

func deleteMin[K any, V any, S constraints.Unsigned](cur *node[K, V, S]) *node[K, V, S] {
	if cur.l == nil {
		return nil
	}
	if !cur.l.red() && !cur.l.l.red() {
		cur = moveRedLeft(cur)
	}
	cur.l = deleteMin(cur.l)
	return balance(cur)
}

// DeleteMax removes the largest key. Returns *UnderflowError if the tree is empty.
// Recursive.
// Time: O(log n)
func (u *RBTree[K, V, S]) DeleteMax() error {
	if u.root == nil {
		return &UnderflowError{Op: "DeleteMax"}
	}
	if !u.root.l.red() && !u.root.r.red() {
		u.root.c = red
	}
	u.root = deleteMax(u.root)
	u.blackenRoot()
	u.verify("DeleteMax")
	return nil
}

func deleteMax[K any, V any, S constraints.Unsigned](cur *node[K, V, S]) *node[K, V, S] {
	if cur.l.red() {
		cur = rotateRight(cur)
	}
	if cur.r == nil {
		return nil
	}
	if !cur.r.red() && !cur.r.l.red() {
		cur = moveRedRight(cur)
	}
	cur.r = deleteMax(cur.r)
	return balance(cur)
}

// Delete removes key and its value. Deleting a key that isn't in the tree does nothing.
// Recursive.
// Time: O(log n)
func (u *RBTree[K, V, S]) Delete(key K) error {
	if u.bad(key) {
		return absentKey("Delete")
	}
	if u.get(key) == nil {
		return nil
	}
	if !u.root.l.red() && !u.root.r.red() {
		u.root.c = red
	}
	u.root = u.delete(u.root, key)
	u.blackenRoot()
	u.verify("Delete")
	return nil
}

// delete key from the subtree rooting at cur, key must be in it. cur is red or has a
// red left child when called, which moveRedLeft and moveRedRight keep true all the way
// down.
func (u *RBTree[K, V, S]) delete(cur *node[K, V, S], key K) *node[K, V, S] {
	if u.cmp(key, cur.k) < 0 {
		if !cur.l.red() && !cur.l.l.red() {
			cur = moveRedLeft(cur)
		}
		cur.l = u.delete(cur.l, key)
	} else {
		if cur.l.red() {
			cur = rotateRight(cur)
		}
		if u.cmp(key, cur.k) == 0 && cur.r == nil {
			return nil
		}
		if !cur.r.red() && !cur.r.l.red() {
			cur = moveRedRight(cur)
		}
		if u.cmp(key, cur.k) == 0 {
			succ := minNode(cur.r)
			cur.k, cur.v = succ.k, succ.v
			cur.r = deleteMin(cur.r)
		} else {
			cur.r = u.delete(cur.r, key)
		}
	}
	return balance(cur)
}

func (u *RBTree[K, V, S]) blackenRoot() {
	if u.root != nil {
		u.root.c = black
	}
}

// verify panics if the tree is corrupt. It's a no-op unless built with the llrbdebug tag.
func (u *RBTree[K, V, S]) verify(op string) {
	if debug {
		if err := u.check(); err != nil {
			panic("Trees: " + op + " corrupted the tree: " + err.Error())
		}
	}
}
