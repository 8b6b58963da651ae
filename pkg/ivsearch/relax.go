package ivsearch

import (
	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
	"github.com/ivsolve/ivsolve/pkg/ivterm"
)

// LinearRelaxer bounds a term's range over box more tightly than plain
// interval evaluation can, for use as a BCOP lower bound (SUPPLEMENTED
// FEATURES item 5: "LinearRelaxer interface + TaylorRelax for BCOP lower
// bounds").
type LinearRelaxer interface {
	Relax(f ivterm.Term, box ivscope.Box) ivnum.Interval
}

// TaylorRelax bounds f over box by its first-order (mean-value) Taylor
// expansion around the box midpoint: f(x) in f(m) + sum_i f'_i(x) * (x_i
// - m_i), evaluating each partial derivative over the full box (so the
// result remains a sound enclosure) rather than at the midpoint.
// Grounded in the same mean-value linearization ivcontract.Affine already
// performs for contraction (pkg/ivcontract/affine.go); TaylorRelax reuses
// the construction for bounding instead of narrowing.
type TaylorRelax struct{}

func (TaylorRelax) Relax(f ivterm.Term, box ivscope.Box) ivnum.Interval {
	mid := box.Midpoint()
	fm := f.Eval(mid)
	if fm.IsEmpty() {
		return f.Eval(box)
	}

	acc := fm
	for _, v := range f.Scope().Variables() {
		d, ok := ivterm.Deriv(f, v)
		if !ok {
			return f.Eval(box) // non-differentiable: fall back to plain evaluation
		}
		g := d.Eval(box)
		if g.IsEmpty() || g.IsInf() {
			return f.Eval(box)
		}
		xi := box.Get(v)
		mi := mid.Get(v)
		acc = acc.Add(g.Mul(xi.Sub(mi)))
	}

	// The Taylor form is only ever at least as tight as plain evaluation
	// when it narrows it; guard against a looser relaxation by
	// intersecting with the direct interval bound.
	direct := f.Eval(box)
	if acc.IsEmpty() {
		return direct
	}
	return acc.Intersect(direct)
}
