package tilepath

import "container/heap"

// PriorityQueueItem is one open node in the frontier. Sequence records insertion
// order and breaks ties between equal total costs, oldest first.
type PriorityQueueItem struct {
	Node         int
	Cell         int
	TotalCost    int
	Sequence     uint64
	IndexInQueue int
}

// PriorityQueue is a binary min-heap of open nodes ordered by total cost.
type PriorityQueue []*PriorityQueueItem

func (queue PriorityQueue) Len() int { return len(queue) }
func (queue PriorityQueue) Less(i, j int) bool {
	if queue[i].TotalCost != queue[j].TotalCost {
		return queue[i].TotalCost < queue[j].TotalCost
	}
	return queue[i].Sequence < queue[j].Sequence
}
func (queue PriorityQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *PriorityQueue) Push(x any) {
	item := x.(*PriorityQueueItem)
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *PriorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}

// frontier is the open list: at most one entry per cell, cheapest first.
type frontier struct {
	queue   PriorityQueue
	byCell  map[int]*PriorityQueueItem
	nextSeq uint64
}

func newFrontier() *frontier {
	return &frontier{byCell: make(map[int]*PriorityQueueItem)}
}

func (f *frontier) Len() int { return f.queue.Len() }

// insert adds node under cell. An existing entry for the same cell is evicted
// first, so a cheaper rediscovery supersedes the stale one.
func (f *frontier) insert(node, cell, totalCost int) {
	f.removeByLocation(cell)
	item := &PriorityQueueItem{
		Node:      node,
		Cell:      cell,
		TotalCost: totalCost,
		Sequence:  f.nextSeq,
	}
	f.nextSeq++
	heap.Push(&f.queue, item)
	f.byCell[cell] = item
}

// popBest removes and returns the cheapest node. Callers check Len first.
func (f *frontier) popBest() int {
	if f.queue.Len() == 0 {
		panic("tilepath: popBest on empty frontier")
	}
	item := heap.Pop(&f.queue).(*PriorityQueueItem)
	delete(f.byCell, item.Cell)
	return item.Node
}

// removeByLocation evicts the entry for cell and reports whether one existed.
func (f *frontier) removeByLocation(cell int) bool {
	item, ok := f.byCell[cell]
	if !ok {
		return false
	}
	heap.Remove(&f.queue, item.IndexInQueue)
	delete(f.byCell, cell)
	return true
}
