package ivcontract

import (
	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
)

// UniFun is the narrow interface the univariate Newton operator needs:
// evaluate a residual and its derivative over a candidate domain.
// Grounded in realpaver's UniFun/UniIntervalFunction abstraction
// (original_source/src/realpaver/UniIntervalNewton.cpp calls f.eval(x)
// and f.diff(x)); BC3 (bc3.go) implements this by fixing every other
// variable at its current box value and varying only the target
// variable's interval.
type UniFun interface {
	Eval(x ivnum.Interval) ivnum.Interval
	Diff(x ivnum.Interval) ivnum.Interval
}

// UnivariateNewton is spec §4.4/§4.8's univariate interval Newton
// operator: given f and a domain x, it contracts x to the smallest
// enclosing interval still consistent with f(x) containing (a point of)
// its required image, i.e. with Eval returning a residual that must
// contain zero. Grounded in realpaver's UniIntervalNewton::step/contract
// (UniIntervalNewton.cpp): x := x ∩ hull(c - f(c)/f'(x)), iterated until
// the step stops improving, a tolerance is met, or a step cap is hit.
type UnivariateNewton struct {
	MaxIter int
	XTol    float64 // absolute width tolerance to stop iterating
}

// DefaultNewton returns a Newton operator with realpaver's documented
// defaults (UNI_NEWTON_ITER_LIMIT, XTOL).
func DefaultNewton() UnivariateNewton {
	return UnivariateNewton{MaxIter: 30, XTol: 1e-10}
}

// Step performs one Newton iteration, narrowing x in place and returning
// a proof: Empty if f has no root in x, Feasible if x now strictly
// encloses the unique root (the Newton contraction inclusion test),
// Maybe otherwise.
func (nt UnivariateNewton) Step(f UniFun, x ivnum.Interval) (ivnum.Interval, ivscope.Proof) {
	fx := f.Eval(x)
	if fx.IsEmpty() || !fx.ContainsZero() {
		return ivnum.Empty(), ivscope.Empty
	}
	dx := f.Diff(x)
	if dx.IsEmpty() {
		return ivnum.Empty(), ivscope.Empty
	}
	if dx.IsInf() || dx.IsZero() {
		return x, ivscope.Maybe
	}

	c := ivnum.Singleton(x.Midpoint())
	fc := f.Eval(c)
	if fc.IsEmpty() {
		return x, ivscope.Maybe
	}

	if dx.StrictlyContainsZero() {
		q1, q2 := ivnum.ExtDiv(fc, dx)
		xx1 := c.Sub(q2)
		xx2 := c.Sub(q1)
		nx := x.Intersect(xx1).Hull(x.Intersect(xx2))
		if nx.IsEmpty() {
			return nx, ivscope.Empty
		}
		return nx, ivscope.Maybe
	}

	xx := c.Sub(fc.Div(dx))
	nx := x.Intersect(xx)
	if nx.IsEmpty() {
		return nx, ivscope.Empty
	}
	if x.ContainsInterval(xx) {
		return nx, ivscope.Feasible
	}
	return nx, ivscope.Maybe
}

// Contract iterates Step until the interval stops changing, its width
// reaches XTol, or MaxIter steps have run. It reports Feasible if any
// step did.
func (nt UnivariateNewton) Contract(f UniFun, x ivnum.Interval) (ivnum.Interval, ivscope.Proof) {
	proof := ivscope.Maybe
	y := x
	for i := 0; i < nt.MaxIter; i++ {
		prev := y
		ny, p := nt.Step(f, y)
		y = ny
		if p == ivscope.Empty {
			return ivnum.Empty(), ivscope.Empty
		}
		if p == ivscope.Feasible {
			proof = ivscope.Feasible
		}
		if y.Width() <= nt.XTol {
			break
		}
		if prev.IsSetEq(y) {
			break
		}
	}
	return y, proof
}
