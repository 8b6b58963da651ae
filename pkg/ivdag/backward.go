package ivdag

import (
	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
	"github.com/ivsolve/ivsolve/pkg/ivterm"
)

// HC4Revise applies f's forward-evaluation/backward-projection
// contraction to box, writing the narrowed variable domains back into
// box and returning a Proof. Grounded in realpaver's
// ContractorHC4Revise::contract (original_source/src/realpaver/
// ContractorHC4Revise.cpp): a forward pass computes f's subgraph's image
// over the current box; the root's image is intersected with f's
// required Image; a backward pass then walks f.sub — f's subgraph only,
// in descending id order, the reverse of the topological forward order
// established at Compile time — propagating each node's narrowed
// interval into its children via the operator's inverse projection,
// intersecting into each child's own current interval. A domain wipeout
// at any node — its projected interval becoming empty — makes the whole
// box infeasible. Restricting both passes to f.sub (rather than every
// node of the shared Dag) matters on a Dag carrying more than one
// constraint: an unrelated function's subexpression can itself evaluate
// to Empty (e.g. sqrt of a domain that is still partly negative before
// propagation narrows it) without that ever being visible to f.
func (d *Dag) HC4Revise(f *Fun, scratch *Scratch, box ivscope.Box) ivscope.Proof {
	d.evalSub(scratch, box, f.sub)

	root := int(f.root)
	fwdRoot := scratch.Fwd[root]
	if fwdRoot.IsEmpty() || fwdRoot.IsDisjoint(f.image) {
		return ivscope.Empty
	}
	if f.image.ContainsInterval(fwdRoot) {
		// Root's forward value already lies entirely inside the
		// required image: every point of the box satisfies the
		// constraint, so no backward narrowing is needed or performed.
		return ivscope.Inner
	}

	for _, i := range f.sub {
		scratch.Bwd[i] = ivnum.Universe()
	}
	scratch.Bwd[root] = f.image.Intersect(fwdRoot)
	if scratch.Bwd[root].IsEmpty() {
		return ivscope.Empty
	}

	for _, i := range f.sub {
		n := d.nodes[i]
		z := scratch.Bwd[i]
		if z.IsEmpty() {
			continue // wiped by an earlier (higher-id) parent's projection this pass
		}
		switch n.kind {
		case ivterm.KindConst:
			continue
		case ivterm.KindVar:
			continue
		default:
			x := scratch.Fwd[n.args[0]]
			if len(n.args) == 1 {
				px := projectUnary(n.kind, x, n.n, z)
				if px.IsEmpty() {
					return ivscope.Empty
				}
				scratch.Fwd[n.args[0]] = px
				scratch.Bwd[n.args[0]] = scratch.Bwd[n.args[0]].Intersect(px)
			} else {
				y := scratch.Fwd[n.args[1]]
				px, py := projectBinary(n.kind, x, y, z)
				if px.IsEmpty() || py.IsEmpty() {
					return ivscope.Empty
				}
				scratch.Fwd[n.args[0]] = px
				scratch.Fwd[n.args[1]] = py
				scratch.Bwd[n.args[0]] = scratch.Bwd[n.args[0]].Intersect(px)
				scratch.Bwd[n.args[1]] = scratch.Bwd[n.args[1]].Intersect(py)
			}
		}
	}

	for _, i := range f.sub {
		n := d.nodes[i]
		if n.kind != ivterm.KindVar {
			continue
		}
		narrowed := box.Get(n.v).Intersect(scratch.Bwd[i])
		if narrowed.IsEmpty() {
			return ivscope.Empty
		}
		box.Set(n.v, narrowed)
	}
	return ivscope.Maybe
}
