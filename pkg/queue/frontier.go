package queue

import (
	"container/heap"
	"errors"
)

// ErrEmptyFrontier is the panic value for a pop on an empty frontier.
// Popping an empty frontier is a programming fault: the search loop checks
// IsEmpty before every pop.
var ErrEmptyFrontier = errors.New("queue: pop from empty frontier")

// An Entry is a prioritized node in the frontier.
type Entry struct {
	Priority int    // distance (Dijkstra) or distance + heuristic (A*)
	NodeId   int    // node id of this entry in the graph
	seq      uint64 // insertion order, breaks priority ties
}

// Frontier is a min-priority queue of (priority, node) entries.
//
// Equal priorities are popped in insertion order, which keeps searches
// deterministic. The same node may be pushed multiple times with different
// priorities; stale entries are not removed here but skipped by the caller
// at pop time (lazy deletion).
type Frontier struct {
	entries frontierHeap
	seq     uint64
}

func NewFrontier() *Frontier {
	f := &Frontier{entries: make(frontierHeap, 0)}
	heap.Init(&f.entries)
	return f
}

// Push inserts a node with the given priority.
func (f *Frontier) Push(priority int, nodeId int) {
	f.seq++
	heap.Push(&f.entries, &Entry{Priority: priority, NodeId: nodeId, seq: f.seq})
}

// Pop removes and returns the minimum-priority entry.
// Panics with ErrEmptyFrontier if the frontier is empty.
func (f *Frontier) Pop() *Entry {
	if f.IsEmpty() {
		panic(ErrEmptyFrontier)
	}
	return heap.Pop(&f.entries).(*Entry)
}

func (f *Frontier) Len() int {
	return f.entries.Len()
}

func (f *Frontier) IsEmpty() bool {
	return f.entries.Len() == 0
}

// frontierHeap implements heap.Interface
type frontierHeap []*Entry

func (h frontierHeap) Len() int {
	return len(h)
}

func (h frontierHeap) Less(i, j int) bool {
	// MinHeap implementation, first-in wins ties
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}
	return h[i].seq < h[j].seq
}

func (h frontierHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *frontierHeap) Push(item any) {
	*h = append(*h, item.(*Entry))
}

func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return entry
}
