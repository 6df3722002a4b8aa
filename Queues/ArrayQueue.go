package Queues

import "iter"

const minCap = 4

// ArrayQueue is a FIFO queue on a circular slice that grows when full.
// The zero value is an empty queue ready to use.
type ArrayQueue[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue returns an empty queue that can hold initCap items before growing.
func MakeArrayQueue[T any](initCap uint) *ArrayQueue[T] {
	return &ArrayQueue[T]{content: make([]T, initCap)}
}

func (u *ArrayQueue[T]) Empty() bool {
	return u.sz == 0
}

func (u *ArrayQueue[T]) Size() uint {
	return u.sz
}

// resize the backing slice to newLen>=sz, moving the items so that head is at 0.
func (u *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.head < u.tail || u.sz == 0 {
		copy(nc, u.content[u.head:u.tail])
	} else {
		n := copy(nc, u.content[u.head:])
		copy(nc[n:], u.content[:u.tail])
	}
	u.head, u.tail = 0, u.sz
	if u.tail == newLen {
		u.tail = 0
	}
	u.content = nc
}

// Shrink the backing slice to the number of items, but at least 1.
func (u *ArrayQueue[T]) Shrink() {
	u.resize(max(u.sz, 1))
}

// Clear removes all items, keeping the backing slice.
func (u *ArrayQueue[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

// Push item to the tail.
// Time: amortized O(1)
func (u *ArrayQueue[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(max(u.sz*2, minCap))
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

// Pop the item at the head. Returns *EmptyQueueError if there's none.
func (u *ArrayQueue[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

// Peek at the head without removing it, the zero value if empty.
func (u *ArrayQueue[T]) Peek() (item T) {
	if u.Empty() {
		return
	}
	return u.content[u.head]
}

func (u *ArrayQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, j := uint(0), u.head; i < u.sz; i++ {
			if !yield(u.content[j]) {
				return
			}
			if j++; j == uint(len(u.content)) {
				j = 0
			}
		}
	}
}

// Slice copies the items from head to tail into a new slice.
func (u *ArrayQueue[T]) Slice() []T {
	s := make([]T, 0, u.sz)
	for v := range u.All() {
		s = append(s, v)
	}
	return s
}
