// Package ring implements the BFS frontier used by the k-ring fallback
// path: a min-heap ordered by traversal depth rather than by time, in the
// same container/heap shape the ambient job scheduler uses for its
// end-time ordering.
package ring

import "container/heap"

// Frontier item: a cell reached at BFS depth Depth from the ring origin.
type Item struct {
	Cell  uint64
	Depth int
}

// frontierHeap implements a min-heap of Items ordered by Depth. Cells at
// the current BFS ring are drained before any cell from the next ring is
// visited.
type frontierHeap []Item

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	return h[i].Depth < h[j].Depth
}

func (h frontierHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *frontierHeap) Push(x any) {
	*h = append(*h, x.(Item))
}

func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

// Peek returns the shallowest item without removing it. Returns the zero
// Item and false if empty.
func (h *frontierHeap) Peek() (Item, bool) {
	if len(*h) == 0 {
		return Item{}, false
	}
	return (*h)[0], true
}

// Frontier is a BFS priority queue keyed by depth.
type Frontier struct {
	h frontierHeap
}

// NewFrontier creates an empty frontier.
func NewFrontier() *Frontier {
	f := &Frontier{}
	heap.Init(&f.h)
	return f
}

// Push adds a cell at the given depth.
func (f *Frontier) Push(cell uint64, depth int) {
	heap.Push(&f.h, Item{Cell: cell, Depth: depth})
}

// Pop removes and returns the shallowest item. ok is false if empty.
func (f *Frontier) Pop() (Item, bool) {
	if f.h.Len() == 0 {
		return Item{}, false
	}
	return heap.Pop(&f.h).(Item), true
}

// Peek returns the shallowest item without removing it. ok is false if empty.
func (f *Frontier) Peek() (Item, bool) {
	return f.h.Peek()
}

// Len reports how many items remain in the frontier.
func (f *Frontier) Len() int { return f.h.Len() }
