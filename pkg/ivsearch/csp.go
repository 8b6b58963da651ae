package ivsearch

import (
	"context"

	"github.com/ivsolve/ivsolve/internal/ivpool"
	"github.com/ivsolve/ivsolve/pkg/ivcontract"
	"github.com/ivsolve/ivsolve/pkg/ivprove"
	"github.com/ivsolve/ivsolve/pkg/ivproblem"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
	"github.com/ivsolve/ivsolve/pkg/ivsplit"
)

// CSPSearch is spec §4.7's CSP search driver: pop, propagate, test inner,
// split, repeat, until the pending space is empty or a stop criterion
// fires.
type CSPSearch struct {
	Scope       *ivscope.Scope
	Constraints []ivproblem.Constraint
	Propagator  ivcontract.Contractor
	Selector    ivsplit.Selector
	Slicer      ivsplit.Slicer
	Strategy    Strategy

	// InnerSplitting, when true, keeps splitting an already-inner box
	// instead of accepting it as a solution immediately (spec §4.7 "If
	// inner and inner splitting is disabled, push to solutions").
	InnerSplitting bool
	DepthLimit     int // <=0 disables
	NodeLimit      int // <=0 disables
	SolutionLimit  int // <=0 disables
	ClusterGap     float64 // <=0 disables clustering
	Prover         *ivprove.System // nil disables post-search certification
	// Pool, when set alongside Prover, fans the post-search certification
	// pass out across its workers instead of running it serially — each
	// solution box is an independent certification task sharing no
	// mutable state (internal/ivpool's doc comment).
	Pool *ivpool.Pool
}

// Result is the outcome of a CSPSearch.Run.
type Result struct {
	Solutions     []Node
	NodesExplored int
	// CertifiedProofs holds Prover.Certify's result for each entry of
	// Solutions, same index, when Prover is set; nil otherwise. A
	// Feasible entry means the prover certified a zero for every
	// variable that has a residual in Prover.Funs; Maybe means at least
	// one of those variables was not certified.
	CertifiedProofs []ivscope.Proof
}

// Run drives the search from initial to termination (spec §4.7 "CSP
// search" algorithm).
func (s *CSPSearch) Run(initial ivscope.Box) *Result {
	sp := NewSpace(s.Strategy)
	sp.Push(Node{Box: initial, Parent: -1})

	nodes := 0
	for sp.Len() > 0 {
		if s.NodeLimit > 0 && nodes >= s.NodeLimit {
			break
		}
		n, ok := sp.Pop()
		if !ok {
			break
		}
		nodes++

		if s.Propagator != nil {
			if s.Propagator.Contract(n.Box) == ivscope.Empty {
				continue
			}
		}

		inner := s.isInner(n.Box)
		if inner && !s.InnerSplitting {
			n.Proof = ivscope.Inner
			sp.Accept(n)
			if s.SolutionLimit > 0 && len(sp.Solutions) >= s.SolutionLimit {
				break
			}
			continue
		}

		if s.DepthLimit > 0 && n.Depth >= s.DepthLimit {
			continue
		}

		children := s.split(n)
		if len(children) <= 1 {
			leaf := children[0]
			if inner {
				leaf.Proof = ivscope.Inner
			} else {
				leaf.Proof = ivscope.Maybe
			}
			sp.Accept(leaf)
		} else {
			for _, c := range children {
				sp.Push(c)
			}
		}

		if s.SolutionLimit > 0 && len(sp.Solutions) >= s.SolutionLimit {
			break
		}
	}

	solutions := sp.Solutions
	if s.ClusterGap > 0 {
		solutions = Cluster(solutions, s.ClusterGap)
	}

	var certified []ivscope.Proof
	if s.Prover != nil {
		if s.Pool != nil {
			certified = ivpool.CertifyAll(context.Background(), s.Pool, solutions, func(n Node) ivscope.Proof {
				return s.Prover.Certify(n.Box)
			})
		} else {
			certified = make([]ivscope.Proof, len(solutions))
			for i := range solutions {
				certified[i] = s.Prover.Certify(solutions[i].Box)
			}
		}
	}
	return &Result{Solutions: solutions, NodesExplored: nodes, CertifiedProofs: certified}
}

// isInner reports whether every constraint's forward image is certainly
// contained in its target Image (spec §4.7 "test inner-box status (all
// constraints satisfied certainly)").
func (s *CSPSearch) isInner(box ivscope.Box) bool {
	for _, c := range s.Constraints {
		v := c.Fn.Eval(box)
		if v.IsEmpty() || !c.Image.ContainsInterval(v) {
			return false
		}
	}
	return true
}

// split picks a variable via Selector and slices its domain via Slicer,
// returning one child Node per slice (spec §4.6 "Split result").
func (s *CSPSearch) split(n Node) []Node {
	v, ok := s.Selector.Select(n.Box, s.Scope.Variables(), &n.Cursor)
	if !ok {
		return []Node{n}
	}
	slices := s.Slicer.Slice(n.Box.Get(v))
	if len(slices) <= 1 {
		return []Node{n}
	}
	children := make([]Node, 0, len(slices))
	for _, x := range slices {
		box := n.Box.Clone()
		box.Set(v, x)
		children = append(children, n.child(box))
	}
	return children
}
