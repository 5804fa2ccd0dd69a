package Queues

// Queue is a FIFO queue. Implementations here aren't safe for concurrent use.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item, *EmptyQueueError if there is none.
	Pop() (T, error)
	//Peek at the oldest item without removing it, zero value if empty.
	Peek() T
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing array to fit the items.
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "queue is empty: cannot pop"
}
