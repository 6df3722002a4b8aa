// Package Queues holds FIFO containers. ArrayQueue is what the ordered trees in Trees use to
// hand back sequences of keys.
package Queues

import "iter"

type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
	Size() uint
	// All yields the items from head to tail without removing them.
	All() iter.Seq[T]
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
