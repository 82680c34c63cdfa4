package astar

import "container/heap"

// frontierEntry is one queued node together with its heap position, so a
// relaxation can update its priority in place.
type frontierEntry[N comparable] struct {
	node         N
	fcost        float64
	indexInQueue int
}

type frontierHeap[N comparable] []*frontierEntry[N]

func (queue frontierHeap[N]) Len() int           { return len(queue) }
func (queue frontierHeap[N]) Less(i, j int) bool { return queue[i].fcost < queue[j].fcost }
func (queue frontierHeap[N]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].indexInQueue = i
	queue[j].indexInQueue = j
}

func (queue *frontierHeap[N]) Push(x any) {
	*queue = append(*queue, x.(*frontierEntry[N]))
}

func (queue *frontierHeap[N]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	entry := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return entry
}

// frontier is the open set: a min-heap ordered by f with a membership map
// for O(1) lookup during relaxation. Ties in f are broken arbitrarily by
// the heap. There is no native decrease-key; Insert on a queued node
// rewrites its entry and sifts it.
type frontier[N comparable] struct {
	queue frontierHeap[N]
	open  map[N]*frontierEntry[N]
}

func newFrontier[N comparable]() *frontier[N] {
	return &frontier[N]{
		queue: make(frontierHeap[N], 0),
		open:  make(map[N]*frontierEntry[N]),
	}
}

func (f *frontier[N]) Len() int { return len(f.queue) }

func (f *frontier[N]) Contains(node N) bool {
	_, ok := f.open[node]
	return ok
}

// Insert queues node at priority fcost, or requeues it if already present.
func (f *frontier[N]) Insert(node N, fcost float64) {
	if entry, ok := f.open[node]; ok {
		entry.fcost = fcost
		heap.Fix(&f.queue, entry.indexInQueue)
		return
	}
	entry := &frontierEntry[N]{node: node, fcost: fcost}
	heap.Push(&f.queue, entry)
	f.open[node] = entry
}

// PopMin removes and returns the node with the smallest f. The caller must
// check Len first; popping an empty frontier panics.
func (f *frontier[N]) PopMin() N {
	entry := heap.Pop(&f.queue).(*frontierEntry[N])
	delete(f.open, entry.node)
	return entry.node
}
