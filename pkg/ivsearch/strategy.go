package ivsearch

import "github.com/ivsolve/ivsolve/pkg/ivscope"

// NodeKind names spec §4.7's pop-order strategies for the pending space
// (spec §2 "pop next pending node (strategy-dependent: DFS / BFS /
// distant-most DFS / hybrid best-first-DFS on depth, perimeter, or grid
// perimeter)"). Mirrors ivconfig.NodeSelection's enumerators.
type NodeKind int

const (
	// DFS pops the most recently pushed node (a LIFO stack).
	DFS NodeKind = iota
	// BFS pops the earliest pushed node (a FIFO queue).
	BFS
	// DMDFS ("distant-most DFS") prefers the deepest node, breaking ties
	// by recency — depth-first search biased toward the current frontier.
	DMDFS
	// IDFS ("iterative-deepening DFS") prefers the shallowest node,
	// breaking ties by recency, approximating iterative deepening's
	// preference for completing shallow levels before deep ones.
	IDFS
	// PDFS ("perimeter DFS") prefers the node with the largest box
	// perimeter (sum of component widths), breaking ties by recency.
	PDFS
	// GPDFS ("grid-perimeter DFS") prefers the node with the largest
	// tolerance-normalized perimeter (each component width divided by
	// its variable's output tolerance), breaking ties by recency.
	GPDFS
)

// Strategy computes the pop priority for a Node under a NodeKind; Space
// pops the Node with the greatest priority first.
type Strategy struct {
	Kind NodeKind
	Vars []ivscope.Variable // only consulted by GPDFS, for per-variable tolerances
}

func perimeter(box ivscope.Box) float64 {
	sum := 0.0
	for i := 0; i < box.Size(); i++ {
		sum += box.At(i).Width()
	}
	return sum
}

func (s Strategy) gridPerimeter(box ivscope.Box) float64 {
	sum := 0.0
	for _, v := range s.Vars {
		x := box.Get(v)
		scale := v.Tolerance().Abs
		if scale <= 0 {
			scale = 1
		}
		sum += x.Width() / scale
	}
	return sum
}

// priority returns the value Space orders by; seq is the node's
// insertion order, used as every strategy's recency tiebreak.
func (s Strategy) priority(n Node) float64 {
	switch s.Kind {
	case BFS:
		return -float64(n.seq)
	case DMDFS:
		return float64(n.Depth)*1e12 + float64(n.seq)
	case IDFS:
		return -float64(n.Depth)*1e12 + float64(n.seq)
	case PDFS:
		return perimeter(n.Box)*1e6 + float64(n.seq)
	case GPDFS:
		return s.gridPerimeter(n.Box)*1e6 + float64(n.seq)
	default: // DFS
		return float64(n.seq)
	}
}
