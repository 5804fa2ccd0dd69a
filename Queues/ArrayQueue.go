package Queues

// circArrQ is a queue on a circular array. head is the index of the oldest
// item, tail the index the next Push writes to.
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue with room for initCap items before the first resize.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, initCap|1)}
}

func (u *circArrQ[T]) Empty() bool {
	return u.sz == 0
}

// resize copies the items to the front of a new array of newLen>=sz.
// Time: O(sz)
func (u *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.head < u.tail {
		copy(nc, u.content[u.head:u.tail])
	} else if u.sz > 0 {
		n := copy(nc, u.content[u.head:])
		copy(nc[n:], u.content[:u.tail])
	}
	u.content = nc
	u.head, u.tail = 0, u.sz%newLen
}

func (u *circArrQ[T]) Shrink() {
	u.resize(u.sz | 1)
}

func (u *circArrQ[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *circArrQ[T]) Size() uint {
	return u.sz
}

// Push item at the tail, growing the array by half when it's full.
// Time: amortized O(1)
func (u *circArrQ[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz + u.sz/2 + 1)
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

func (u *circArrQ[T]) Pop() (item T, e error) {
	if u.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

func (u *circArrQ[T]) Peek() T {
	if u.Empty() {
		return *new(T)
	}
	return u.content[u.head]
}
