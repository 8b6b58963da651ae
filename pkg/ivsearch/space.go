package ivsearch

import "container/heap"

// pqItem pairs a Node with its precomputed pop priority, the wrapper
// shape katalvlaran-lvlath's Dijkstra priority queue uses around its
// nodeItem (graph/dijkstra.go).
type pqItem struct {
	node     Node
	priority float64
}

// pendingHeap implements heap.Interface as a max-heap on priority, so
// the highest-priority node — whichever NodeKind.priority ranks first —
// pops before any other.
type pendingHeap []pqItem

func (h pendingHeap) Len() int            { return len(h) }
func (h pendingHeap) Less(i, j int) bool  { return h[i].priority > h[j].priority }
func (h pendingHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *pendingHeap) Push(x interface{}) { *h = append(*h, x.(pqItem)) }
func (h *pendingHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Space holds a search driver's pending nodes (ordered by Strategy) and
// the nodes already accepted as solutions (spec §4.7 "Maintain a pending
// space of nodes and a solution space").
type Space struct {
	Strategy  Strategy
	pending   pendingHeap
	Solutions []Node
	nextSeq   int
}

// NewSpace builds an empty Space ordered by strategy.
func NewSpace(strategy Strategy) *Space {
	s := &Space{Strategy: strategy}
	heap.Init(&s.pending)
	return s
}

// Push adds n to the pending space.
func (s *Space) Push(n Node) {
	n.seq = s.nextSeq
	s.nextSeq++
	heap.Push(&s.pending, pqItem{node: n, priority: s.Strategy.priority(n)})
}

// Pop removes and returns the next pending node in strategy order.
func (s *Space) Pop() (Node, bool) {
	if s.pending.Len() == 0 {
		return Node{}, false
	}
	item := heap.Pop(&s.pending).(pqItem)
	return item.node, true
}

// Len reports the number of pending nodes.
func (s *Space) Len() int { return s.pending.Len() }

// Accept moves n into the solution space.
func (s *Space) Accept(n Node) { s.Solutions = append(s.Solutions, n) }
