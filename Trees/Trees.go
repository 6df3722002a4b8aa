// Package Trees implements ordered symbol tables on balanced binary search trees.
package Trees

import (
	"iter"

	"github.com/g-m-twostay/go-omap/Queues"
	"golang.org/x/exp/constraints"
)

// OrderedMap represents a symbol table with unique keys kept in a total order.
// Methods that take a key return an error wrapping ErrInvalidArgument when the key has no
// place in the order, and the receiver isn't changed. Methods that need an element return
// an error wrapping ErrUnderflow when the table is empty. A second return value of type
// bool tells whether the first one is defined; when it's false the first one is the zero
// value and shouldn't be used.
// S is the type of sizes, ranks and indexes.
type OrderedMap[K any, V any, S constraints.Unsigned] interface {
	//Put key with val, overwriting the value if key exists.
	Put(key K, val V) error
	//Get the value of key.
	Get(key K) (V, bool, error)
	//Contains key.
	Contains(key K) (bool, error)
	//Delete key. Deleting a missing key isn't an error.
	Delete(key K) error
	//DeleteMin removes the smallest key.
	DeleteMin() error
	//DeleteMax removes the largest key.
	DeleteMax() error
	//Min key.
	Min() (K, error)
	//Max key.
	Max() (K, error)
	//Floor is the largest key <= key.
	Floor(key K) (K, bool, error)
	//Ceiling is the smallest key >= key.
	Ceiling(key K) (K, bool, error)
	//Select the key of rank k. 0<=k<Size().
	Select(k S) (K, error)
	//Rank is the number of keys < key.
	Rank(key K) (S, error)
	//Keys in ascending order.
	Keys() *Queues.ArrayQueue[K]
	//KeysBetween lo and hi inclusive, in ascending order.
	KeysBetween(lo, hi K) (*Queues.ArrayQueue[K], error)
	//SizeBetween is the number of keys between lo and hi inclusive.
	SizeBetween(lo, hi K) (S, error)
	//All pairs in ascending key order.
	All() iter.Seq2[K, V]
	Size() S
	IsEmpty() bool
	//Height of the underlying tree, -1 if empty.
	Height() int
	//Corrupt returns whether the structure violates the properties of the implementation.
	//This is a debugging aid and is slow.
	Corrupt() bool
}

var _ OrderedMap[int, struct{}, uint] = (*RBTree[int, struct{}, uint])(nil)
