// Package ivsearch implements spec §4.7's branch-and-prune search
// drivers: CSPSearch for constraint satisfaction and BCOPSearch for
// bound-constrained optimization, both built on a pending/solution
// Space ordered by a configurable node strategy. Grounded in realpaver's
// Search/SearchNode/Space hierarchy (original_source/src/realpaver's
// search sources describe the same pending-node, pop/propagate/split
// loop) and, for the priority-queue mechanics, on
// katalvlaran-lvlath's container/heap-based Dijkstra priority queue
// (graph/dijkstra.go), the pack's example of a heap.Interface built
// around a small item+priority wrapper type.
package ivsearch

import (
	"github.com/ivsolve/ivsolve/pkg/ivscope"
	"github.com/ivsolve/ivsolve/pkg/ivsplit"
)

// Node is one element of the search tree: a box together with the
// bookkeeping a search driver threads through splits (spec §4.6
// "round-robin... carries its state in the node context", spec §4.7's
// CSP node shape "a box over the problem scope, a depth counter, a
// parent id, a monotonically assigned index, and a per-node proof tag",
// and, for BCOP nodes, spec §4.7's added "lower bound, upper bound on
// the objective within the node").
type Node struct {
	Box    ivscope.Box
	Depth  int
	Cursor ivsplit.Cursor
	seq    int

	// Parent is the Index of the node this one was split from, or -1
	// for a search's root node.
	Parent int
	// Proof is the certificate this node carried when it was pushed
	// into a Space's solution list.
	Proof ivscope.Proof
	// Lower and Upper bound BCOPSearch's objective over Box; both are
	// zero and unused for a plain CSPSearch node.
	Lower, Upper float64
}

// Index is this node's monotonically assigned position in the Space
// that produced it (spec §4.7's "monotonically assigned index").
func (n Node) Index() int { return n.seq }

func (n Node) child(box ivscope.Box) Node {
	return Node{Box: box, Depth: n.Depth + 1, Cursor: n.Cursor.Clone(), Parent: n.seq}
}
