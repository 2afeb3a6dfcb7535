package search

import (
	"container/heap"

	"github.com/NumanAsghar901/AI-Path-Finder/internal/grid"
)

// node is a frontier entry: a cell plus the cumulative cost that discovered it.
type node struct {
	cell grid.Coord
	g    int
}

// frontier is the per-variant ordering policy over pending nodes.
type frontier interface {
	push(n node)
	pop() (node, bool)
	len() int
}

// fifo is the BFS queue.
type fifo struct {
	items []node
}

func (q *fifo) push(n node) { q.items = append(q.items, n) }
func (q *fifo) len() int    { return len(q.items) }

func (q *fifo) pop() (node, bool) {
	if len(q.items) == 0 {
		return node{}, false
	}
	n := q.items[0]
	q.items = q.items[1:]
	return n, true
}

// lifo is the DFS stack.
type lifo struct {
	items []node
}

func (s *lifo) push(n node) { s.items = append(s.items, n) }
func (s *lifo) len() int    { return len(s.items) }

func (s *lifo) pop() (node, bool) {
	if len(s.items) == 0 {
		return node{}, false
	}
	n := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return n, true
}

// keyFunc computes a node's heap priority.
type keyFunc func(n node) int

// minHeap is a stable min-priority frontier. Ties on key fall back to
// cumulative cost when costTie is set, then to insertion sequence, so runs
// stay deterministic regardless of push interleaving.
type minHeap struct {
	key     keyFunc
	costTie bool
	seq     int
	items   heapItems
}

type heapItem struct {
	node
	key int
	seq int
}

type heapItems struct {
	entries []heapItem
	costTie bool
}

func newMinHeap(key keyFunc, costTie bool) *minHeap {
	h := &minHeap{key: key, costTie: costTie}
	h.items.costTie = costTie
	heap.Init(&h.items)
	return h
}

func (h *minHeap) push(n node) {
	heap.Push(&h.items, heapItem{node: n, key: h.key(n), seq: h.seq})
	h.seq++
}

func (h *minHeap) pop() (node, bool) {
	if h.items.Len() == 0 {
		return node{}, false
	}
	return heap.Pop(&h.items).(heapItem).node, true
}

func (h *minHeap) len() int { return h.items.Len() }

func (h *heapItems) Len() int { return len(h.entries) }

func (h *heapItems) Less(i, j int) bool {
	a, b := h.entries[i], h.entries[j]
	if a.key != b.key {
		return a.key < b.key
	}
	if h.costTie && a.g != b.g {
		return a.g < b.g
	}
	return a.seq < b.seq
}

func (h *heapItems) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
}

func (h *heapItems) Push(x any) {
	h.entries = append(h.entries, x.(heapItem))
}

func (h *heapItems) Pop() any {
	old := h.entries
	n := len(old)
	it := old[n-1]
	h.entries = old[:n-1]
	return it
}
