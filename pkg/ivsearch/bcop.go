package ivsearch

import (
	"math"

	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
	"github.com/ivsolve/ivsolve/pkg/ivterm"
)

// LocalSolver finds an approximate minimizer of Term within box,
// returning the point found (as a singleton-component Box over the same
// scope) — the "local solver run at the midpoint of the node" spec §4.7
// describes for a BCOP's upper bound. A LocalSolver is never trusted on
// its own: its returned point is always re-evaluated with safe interval
// arithmetic before it can tighten the incumbent.
type LocalSolver interface {
	Minimize(obj ivterm.Term, box ivscope.Box) ivscope.Box
}

// MidpointSolver is the simplest LocalSolver: it just returns box's
// midpoint, unimproved. Grounded in spec §4.7's baseline description
// ("upper bounds come from a local solver run at the midpoint of the
// node"); a gradient-descent or Nelder-Mead LocalSolver can implement the
// same interface without changing BCOPSearch.
type MidpointSolver struct{}

func (MidpointSolver) Minimize(obj ivterm.Term, box ivscope.Box) ivscope.Box { return box.Midpoint() }

// BCOPSearch is spec §4.7's BCOP search driver: the CSP core extended
// with an objective term, a best-known upper bound, and lower-bound
// fathoming (spec "Use the CSP core extended with an objective variable z
// and constraint z = f(x)... fathom when its lower bound on z exceeds
// u").
type BCOPSearch struct {
	CSP     CSPSearch
	ObjTerm ivterm.Term // already sense-adjusted: minimized directly
	Relaxer LinearRelaxer // optional, nil falls back to plain interval evaluation
	Solver  LocalSolver   // optional, nil falls back to MidpointSolver
	ObjTol  float64       // relative gap at which the search stops (spec "within objective tolerance")
}

// BCOPResult is the outcome of a BCOPSearch.Run.
type BCOPResult struct {
	Best      *Node
	BestValue float64
	// Lower is the objective's enclosure lower bound: a sound bound
	// below which no point of the feasible region can score, the
	// smallest per-node lower bound among the pending fringe and the
	// nodes kept without being split (inner, at the depth limit, or not
	// splittable), capped at BestValue once the fringe is exhausted.
	// Together [Lower, BestValue] is spec §4.7's "objective enclosure [L, U]".
	Lower         float64
	Proof         ivscope.Proof
	NodesExplored int
}

// Run drives the BCOP search (spec §4.7 "BCOP search").
func (s *BCOPSearch) Run(initial ivscope.Box) *BCOPResult {
	solver := s.Solver
	if solver == nil {
		solver = MidpointSolver{}
	}

	sp := NewSpace(s.CSP.Strategy)
	sp.Push(Node{Box: initial, Parent: -1, Lower: s.lowerBound(initial)})

	upper := ivnum.Infinity()
	leafLower := ivnum.Infinity()
	var best *Node
	nodes := 0

	for sp.Len() > 0 {
		if s.CSP.NodeLimit > 0 && nodes >= s.CSP.NodeLimit {
			break
		}
		n, ok := sp.Pop()
		if !ok {
			break
		}
		nodes++

		if s.CSP.Propagator != nil && s.CSP.Propagator.Contract(n.Box) == ivscope.Empty {
			continue
		}

		lower := s.lowerBound(n.Box)
		n.Lower = lower
		if lower > upper {
			continue // fathomed: this node cannot improve the incumbent
		}

		candidate := solver.Minimize(s.ObjTerm, n.Box)
		val := s.ObjTerm.Eval(candidate)
		if !val.IsEmpty() {
			n.Upper = val.Hi()
			if val.Hi() < upper {
				upper = val.Hi()
				acc := n
				best = &acc
			}
		}

		children := []Node{n}
		if !s.CSP.isInner(n.Box) && (s.CSP.DepthLimit <= 0 || n.Depth < s.CSP.DepthLimit) {
			children = s.CSP.split(n)
		}
		if len(children) <= 1 {
			leafLower = math.Min(leafLower, lower)
		} else {
			for _, c := range children {
				c.Lower = s.lowerBound(c.Box)
				sp.Push(c)
			}
		}

		if s.ObjTol > 0 && best != nil && sp.Len() > 0 {
			gap := relGap(math.Min(minPendingLower(sp), leafLower), upper)
			if gap <= s.ObjTol {
				break
			}
		}
	}

	exhausted := sp.Len() == 0
	globalLower := math.Min(minPendingLower(sp), leafLower)
	proof := ivscope.Maybe
	if best != nil {
		proof = ivscope.Feasible
		if exhausted {
			globalLower = math.Min(globalLower, upper)
			proof = ivscope.Optimal
		} else if s.ObjTol > 0 && relGap(globalLower, upper) <= s.ObjTol {
			proof = ivscope.Optimal
		}
	}
	return &BCOPResult{Best: best, BestValue: upper, Lower: globalLower, Proof: proof, NodesExplored: nodes}
}

// minPendingLower scans sp's pending fringe for the smallest per-node
// Lower bound still outstanding. Run takes the minimum of this and the
// smallest bound among the nodes it kept without splitting; together
// those cover every box not fathomed or emptied by propagation, so the
// result is a sound lower bound on the global optimum.
func minPendingLower(sp *Space) float64 {
	min := ivnum.Infinity()
	for _, item := range sp.pending {
		if item.node.Lower < min {
			min = item.node.Lower
		}
	}
	return min
}

// lowerBound bounds ObjTerm's value over box, using Relaxer when set and
// falling back to plain interval evaluation otherwise.
func (s *BCOPSearch) lowerBound(box ivscope.Box) float64 {
	x := s.ObjTerm.Eval(box)
	if s.Relaxer != nil {
		if r := s.Relaxer.Relax(s.ObjTerm, box); !r.IsEmpty() {
			x = x.Intersect(r)
		}
	}
	if x.IsEmpty() {
		return ivnum.Infinity()
	}
	return x.Lo()
}

func relGap(lower, upper float64) float64 {
	if upper == 0 {
		return upper - lower
	}
	d := upper - lower
	if d < 0 {
		d = -d
	}
	return d / absf(upper)
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
