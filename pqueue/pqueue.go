package pqueue

import "container/heap"

// Item is anything the queue can order: a scalar priority key (the A*
// f-score). Lower keys are dequeued first.
type Item interface {
	PriorityKey() float64
}

// entry pairs an Item with its insertion sequence number, so that items
// with equal PriorityKey dequeue in FIFO order (stable tie-break).
type entry struct {
	item Item
	seq  int64
}

// entryHeap is the container/heap.Interface implementation backing Queue.
// Mirrors the teacher's dijkstra.nodePQ lazy-decrease-key heap, generalized
// to an arbitrary Item and augmented with a sequence tie-break.
type entryHeap []entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	ki, kj := h[i].item.PriorityKey(), h[j].item.PriorityKey()
	if ki != kj {
		return ki < kj
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(entry)) }

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// Queue is a binary min-heap over Item ordered by ascending PriorityKey,
// with stable FIFO tie-break among equal keys.
type Queue struct {
	h   entryHeap
	seq int64
}

// New returns an empty Queue.
func New() *Queue {
	q := &Queue{h: make(entryHeap, 0)}
	heap.Init(&q.h)

	return q
}

// Len returns the number of items currently queued.
func (q *Queue) Len() int { return len(q.h) }

// Push enqueues item. Complexity: O(log n).
func (q *Queue) Push(item Item) {
	heap.Push(&q.h, entry{item: item, seq: q.seq})
	q.seq++
}

// Pop removes and returns the minimum-key item. ok is false if the queue
// is empty. Complexity: O(log n).
func (q *Queue) Pop() (item Item, ok bool) {
	if len(q.h) == 0 {
		return nil, false
	}
	e := heap.Pop(&q.h).(entry)

	return e.item, true
}

// PeekK returns up to k items in ascending-key order without removing them
// from the queue. Intended for visualization/debugging only — it copies
// the heap into a scratch slice and pops from that, O(n + k log n).
func (q *Queue) PeekK(k int) []Item {
	if k <= 0 || len(q.h) == 0 {
		return nil
	}

	scratch := make(entryHeap, len(q.h))
	copy(scratch, q.h)

	if k > len(scratch) {
		k = len(scratch)
	}

	out := make([]Item, 0, k)
	for i := 0; i < k; i++ {
		e := heap.Pop(&scratch).(entry)
		out = append(out, e.item)
	}

	return out
}

// Reset empties the queue and resets the insertion sequence counter,
// matching the engine's per-connection "clear the candidate queue" step.
func (q *Queue) Reset() {
	q.h = q.h[:0]
	q.seq = 0
}
