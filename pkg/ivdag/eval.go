package ivdag

import (
	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
	"github.com/ivsolve/ivsolve/pkg/ivterm"
)

// Eval runs the forward pass: every node's interval image over box,
// written into scratch.Fwd in ascending node-id order. Node ids are
// assigned bottom-up during Compile, so every child's id is strictly
// smaller than its parent's — ascending order is automatically a valid
// topological order across every function sharing this Dag, mirroring
// realpaver's ContractorHC4Revise, which evaluates its whole subgraph in
// one forward sweep rather than recursing per function.
func (d *Dag) Eval(scratch *Scratch, box ivscope.Box) {
	scratch.Reset(d)
	for i := 1; i < len(d.nodes); i++ {
		scratch.Fwd[i] = d.evalNode(i, scratch, box)
	}
}

// evalSub runs the forward pass restricted to sub, which must list node
// ids in descending order (as f.sub does); it walks sub from the end so
// each id is visited after its children. It does not sort sub. Used
// instead of Eval so a function's forward pass
// never touches — and so can never be tripped up by — an unrelated
// function's subgraph sharing the same Dag.
func (d *Dag) evalSub(scratch *Scratch, box ivscope.Box, sub []int) {
	scratch.Reset(d)
	for i := len(sub) - 1; i >= 0; i-- {
		id := sub[i]
		scratch.Fwd[id] = d.evalNode(id, scratch, box)
	}
}

// Value returns the already-evaluated image of root from a Scratch
// populated by Eval.
func (s *Scratch) Value(root NodeID) ivnum.Interval { return s.Fwd[root] }

func (d *Dag) evalNode(i int, scratch *Scratch, box ivscope.Box) ivnum.Interval {
	n := d.nodes[i]
	switch n.kind {
	case ivterm.KindConst:
		return n.value
	case ivterm.KindVar:
		return box.Get(n.v)
	default:
		x := scratch.Fwd[n.args[0]]
		if len(n.args) == 1 {
			return applyUnary(n.kind, x, n.n)
		}
		y := scratch.Fwd[n.args[1]]
		return applyBinary(n.kind, x, y)
	}
}
