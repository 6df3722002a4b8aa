package Trees

import "golang.org/x/exp/constraints"

type color bool

const (
	red   color = true
	black color = false
)

func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

// A node in the RBTree.
// c is the color of the link from the parent to this node. A nil *node is an empty subtree,
// it's black and has size 0; the methods below accept nil receivers for that reason.
type node[K any, V any, S constraints.Unsigned] struct {
	k    K
	v    V
	l, r *node[K, V, S]
	sz   S
	c    color
}

func (n *node[K, V, S]) red() bool {
	return n != nil && n.c == red
}

func (n *node[K, V, S]) size() S {
	if n == nil {
		return 0
	}
	return n.sz
}

// resize recomputes sz from the children.
func (n *node[K, V, S]) resize() {
	n.sz = n.l.size() + n.r.size() + 1
}

// rotateLeft turns the right leaning link at n into a left leaning one and returns the new
// root of the subtree. The new root takes n's color and size; n becomes red.
// Time: O(1); Space: O(1)
func rotateLeft[K any, V any, S constraints.Unsigned](n *node[K, V, S]) *node[K, V, S] {
	rc := n.r
	n.r = rc.l
	rc.l = n
	rc.c, n.c = n.c, red
	rc.sz = n.sz
	n.resize()
	return rc
}

// rotateRight is the mirror of rotateLeft.
// Time: O(1); Space: O(1)
func rotateRight[K any, V any, S constraints.Unsigned](n *node[K, V, S]) *node[K, V, S] {
	lc := n.l
	n.l = lc.r
	lc.r = n
	lc.c, n.c = n.c, red
	lc.sz = n.sz
	n.resize()
	return lc
}

// flipColors toggles n and both children. n must have two children.
// On insertion it splits a temporary 4-node; on deletion it merges n with its children.
func flipColors[K any, V any, S constraints.Unsigned](n *node[K, V, S]) {
	n.c = !n.c
	n.l.c = !n.l.c
	n.r.c = !n.r.c
}

// balance restores the left leaning shape at n after one of its subtrees changed, then
// fixes n's size. Both insertion and deletion call it on the way back up.
func balance[K any, V any, S constraints.Unsigned](n *node[K, V, S]) *node[K, V, S] {
	if n.r.red() && !n.l.red() {
		n = rotateLeft(n)
	}
	if n.l.red() && n.l.l.red() {
		n = rotateRight(n)
	}
	if n.l.red() && n.r.red() {
		flipColors(n)
	}
	n.resize()
	return n
}

// moveRedLeft assumes n is red and both n.l and n.l.l are black. It makes n.l or one of
// its children red so deletion can descend left without entering a 2-node.
func moveRedLeft[K any, V any, S constraints.Unsigned](n *node[K, V, S]) *node[K, V, S] {
	flipColors(n)
	if n.r.l.red() {
		n.r = rotateRight(n.r)
		n = rotateLeft(n)
		flipColors(n)
	}
	return n
}

// moveRedRight assumes n is red and both n.r and n.r.l are black. It makes n.r or one of
// its children red.
func moveRedRight[K any, V any, S constraints.Unsigned](n *node[K, V, S]) *node[K, V, S] {
	flipColors(n)
	if n.l.l.red() {
		n = rotateRight(n)
		flipColors(n)
	}
	return n
}

func minNode[K any, V any, S constraints.Unsigned](n *node[K, V, S]) *node[K, V, S] {
	for n.l != nil {
		n = n.l
	}
	return n
}

func maxNode[K any, V any, S constraints.Unsigned](n *node[K, V, S]) *node[K, V, S] {
	for n.r != nil {
		n = n.r
	}
	return n
}
