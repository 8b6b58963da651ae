// Package ivprove implements spec §4.8's existence prover: an
// inflation-based interval Newton local search that certifies a box
// contains a zero of f (or, via ivcontract.UnivariateNewton, refines one
// reliably). Grounded in realpaver's IntervalNewton::localSearch/
// localStep (original_source/src/realpaver/interval_newton.cpp) and its
// Inflator (original_source/src/realpaver/inflator.cpp), generalized
// here from realpaver's single UniFun to one UniFun per scope variable
// so a CSP search driver can certify existence for a node's whole
// constraint system, not just a single univariate residual.
package ivprove

import (
	"github.com/ivsolve/ivsolve/internal/ivlog"
	"github.com/ivsolve/ivsolve/pkg/ivcontract"
	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivproblem"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
)

// Inflator holds spec §4.1's inflation factors: inflate(x) = m(x) +
// delta*(x - m(x)) + chi*[-1,1]. Grounded in realpaver's Inflator.
type Inflator struct {
	Delta float64
	Chi   float64
}

// DefaultInflator returns realpaver's documented defaults.
func DefaultInflator() Inflator { return Inflator{Delta: 1.125, Chi: 1e-12} }

// Inflate applies the inflator to x, surfacing a FaultBadInflation error
// for delta <= 1 or chi < 0 (spec §4.1).
func (inf Inflator) Inflate(x ivnum.Interval) (ivnum.Interval, error) {
	y, err := x.Inflate(inf.Delta, inf.Chi)
	if err != nil {
		return ivnum.Empty(), ivproblem.WrapFault(ivproblem.FaultBadInflation, err,
			"inflator delta=%v chi=%v", inf.Delta, inf.Chi)
	}
	return y, nil
}

// Prover is spec §4.8's existence prover for a single scalar residual:
// given f and a candidate interval x, LocalSearch tries to certify that
// f has a zero in (an inflated neighborhood of) x.
type Prover struct {
	Newton    ivcontract.UnivariateNewton
	Inflator  Inflator
	MaxIter   int
	// DTol is the distance-stall tolerance (spec's "either distance
	// stalls or a limit is reached"): localSearch gives up once a step
	// moves the candidate by DTol or less, or farther than the previous
	// step did.
	DTol float64
}

// NewProver returns a Prover with realpaver's documented defaults.
func NewProver() Prover {
	return Prover{
		Newton:   ivcontract.DefaultNewton(),
		Inflator: DefaultInflator(),
		MaxIter:  30,
		DTol:     1e-10,
	}
}

// LocalSearch is spec §4.8's "Certify existence of a zero... by
// inflation-based interval Newton": it starts from x's midpoint, repeatedly
// inflates, evaluates f and f', and takes one uninflated Newton step from
// the inflated interval's midpoint; it reports Feasible the first time the
// inflated interval contains the new candidate (the Newton inclusion
// test). Otherwise it returns x with Maybe: when a step's inflated
// evaluation is empty, when MaxIter is exhausted, or when the step
// distance grows or falls to DTol. It never reports Empty. Grounded in realpaver's
// IntervalNewton::localSearch/localStep.
func (p Prover) LocalSearch(f ivcontract.UniFun, x ivnum.Interval) (ivnum.Interval, ivscope.Proof) {
	y := ivnum.Singleton(x.Midpoint())
	dprev := ivnum.Infinity()

	for steps := 0; steps < p.MaxIter; steps++ {
		prev := y
		ny, proof := p.localStep(f, y)
		if proof == ivscope.Empty {
			return x, ivscope.Maybe
		}
		y = ny
		if proof == ivscope.Feasible {
			ivlog.Low("existence proof found", "box", y.String(), "steps", steps+1)
			return y, ivscope.Feasible
		}
		dcur := y.Distance(prev)
		if dcur > dprev {
			return x, ivscope.Maybe
		}
		if dcur <= p.DTol {
			return x, ivscope.Maybe
		}
		dprev = dcur
	}
	return x, ivscope.Maybe
}

// localStep is realpaver's IntervalNewton::localStep: one inflated Newton
// step, never contracting x itself (the candidate y drifts around x's
// neighborhood looking for the inclusion test to fire).
func (p Prover) localStep(f ivcontract.UniFun, y ivnum.Interval) (ivnum.Interval, ivscope.Proof) {
	iy, err := p.Inflator.Inflate(y)
	if err != nil {
		return y, ivscope.Maybe
	}
	fiy := f.Eval(iy)
	if fiy.IsEmpty() {
		return y, ivscope.Empty
	}
	diy := f.Diff(iy)
	if diy.IsInf() || diy.ContainsZero() {
		return y, ivscope.Maybe
	}

	ic := ivnum.Singleton(iy.Midpoint())
	fic := f.Eval(ic)
	if fic.IsEmpty() {
		return y, ivscope.Maybe
	}

	niy := ic.Sub(fic.Div(diy))
	if iy.ContainsInterval(niy) {
		return niy, ivscope.Feasible
	}
	return niy, ivscope.Maybe
}

// System certifies existence for a vector residual F: R^n -> R^n over a
// box, by running one LocalSearch per component against the
// single-variable UniFun that fixes every other component at the box's
// current value — a coordinate-wise relaxation of the full multivariate
// Newton operator, adequate for spec §4.8's Scenario D and for the
// common case of one dominant variable per constraint (BC3 already makes
// this same simplification for contraction; System reuses it for proof).
type System struct {
	Prover Prover
	Funs   map[int]ivcontract.UniFun // variable id -> its fixed-other-vars residual
	Vars   []ivscope.Variable
}

// NewSystem builds a System prover from one UniFun per variable.
func NewSystem(prover Prover, vars []ivscope.Variable, funs map[int]ivcontract.UniFun) System {
	return System{Prover: prover, Funs: funs, Vars: vars}
}

// Certify runs LocalSearch for every variable's residual and reports the
// meet of the per-variable proofs: Feasible only if every component's
// zero was certified, Maybe if any component fell back to Maybe.
func (s System) Certify(box ivscope.Box) ivscope.Proof {
	proof := ivscope.Feasible
	for _, v := range s.Vars {
		f, ok := s.Funs[v.ID()]
		if !ok {
			continue
		}
		x := box.Get(v)
		y, p := s.Prover.LocalSearch(f, x)
		if p != ivscope.Feasible {
			proof = ivscope.Maybe
			continue
		}
		box.Set(v, y)
	}
	return proof
}
