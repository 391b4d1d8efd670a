package pathfinding

import "container/heap"

// queueEntry is one (item, priority) pair in a PriorityQueue.
type queueEntry[T comparable] struct {
	item     T
	priority float64
	seq      uint64 // insertion order, breaks priority ties
	index    int    // position in the heap
}

type entryHeap[T comparable] []*queueEntry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap[T]) Push(x any) {
	e := x.(*queueEntry[T])
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// PriorityQueue is a min-priority queue holding each item at most once.
// Items with equal priority leave the queue in insertion order.
//
// The zero value is not usable; create queues with NewPriorityQueue.
type PriorityQueue[T comparable] struct {
	entries entryHeap[T]
	byItem  map[T]*queueEntry[T]
	seq     uint64
}

// NewPriorityQueue returns an empty queue.
func NewPriorityQueue[T comparable]() *PriorityQueue[T] {
	return &PriorityQueue[T]{byItem: make(map[T]*queueEntry[T])}
}

// Len returns the number of queued items.
func (pq *PriorityQueue[T]) Len() int { return len(pq.entries) }

// Enqueue inserts item with the given priority. An item that is already
// queued is moved to the new priority, as with UpdatePriority.
func (pq *PriorityQueue[T]) Enqueue(item T, priority float64) {
	pq.UpdatePriority(item, priority)
}

// Dequeue removes and returns the item with the lowest priority.
func (pq *PriorityQueue[T]) Dequeue() (T, error) {
	if len(pq.entries) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	e := heap.Pop(&pq.entries).(*queueEntry[T])
	delete(pq.byItem, e.item)
	return e.item, nil
}

// Peek returns the item with the lowest priority without removing it.
func (pq *PriorityQueue[T]) Peek() (T, error) {
	if len(pq.entries) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return pq.entries[0].item, nil
}

// Contains reports whether item is queued.
func (pq *PriorityQueue[T]) Contains(item T) bool {
	_, ok := pq.byItem[item]
	return ok
}

// UpdatePriority removes any existing entry for item and reinserts it with
// priority. The reinserted entry counts as the newest for tie-breaking.
func (pq *PriorityQueue[T]) UpdatePriority(item T, priority float64) {
	if e, ok := pq.byItem[item]; ok {
		heap.Remove(&pq.entries, e.index)
	}
	pq.seq++
	e := &queueEntry[T]{item: item, priority: priority, seq: pq.seq}
	heap.Push(&pq.entries, e)
	pq.byItem[item] = e
}

// Clear removes every item.
func (pq *PriorityQueue[T]) Clear() {
	clear(pq.entries)
	pq.entries = pq.entries[:0]
	clear(pq.byItem)
	pq.seq = 0
}
