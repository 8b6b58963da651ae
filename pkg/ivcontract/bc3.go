package ivcontract

import (
	"fmt"

	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
	"github.com/ivsolve/ivsolve/pkg/ivterm"
)

// BC3 is spec §4.4's BC3 contractor: univariate interval-Newton
// refinement of a single variable v's domain against one function F,
// applied separately to the left and right end of v's domain by peeling
// off a boundary slice (width PeelFrac of the domain) and running Newton
// on the remainder, backtracking through a bounded stack of candidate
// subintervals capped at MaxSteps. Grounded in realpaver's
// Bc3Contractor::contract/shrink (original_source/src/realpaver/
// contractor_bc3.cpp), which shrinks the left bound via shrinkLeft then
// the right bound via shrinkRight and unions the two results.
type BC3 struct {
	Fn     ivterm.Term // the constraint's canonical root term F
	Image  ivnum.Interval
	Var    ivscope.Variable
	Newton UnivariateNewton
	// PeelFrac is the fraction of the domain peeled off each boundary
	// before running Newton on the remainder (realpaver's DefBC3PeelWidth).
	PeelFrac float64
	// MaxSteps bounds the stack-based bisection search per side
	// (realpaver's DefBC3MaxSteps).
	MaxSteps int

	deriv    ivterm.Term
	hasDeriv bool
}

// NewBC3 builds a BC3 contractor for fn ∈ image with respect to v.
func NewBC3(fn ivterm.Term, image ivnum.Interval, v ivscope.Variable) *BC3 {
	d, ok := ivterm.Deriv(fn, v)
	return &BC3{
		Fn: fn, Image: image, Var: v,
		Newton:   DefaultNewton(),
		PeelFrac: 0.1,
		MaxSteps: 30,
		deriv:    d, hasDeriv: ok,
	}
}

func (c *BC3) Scope() *ivscope.Scope { return c.Fn.Scope() }
func (c *BC3) DependsOn(v ivscope.Variable) bool { return c.Fn.DependsOn(v) }
func (c *BC3) String() string                    { return fmt.Sprintf("BC3(%s, %s)", c.Fn, c.Var) }

// bc3Fun implements UniFun by fixing every other variable of box at
// its current value and varying only c.Var.
type bc3Fun struct {
	c   *BC3
	box ivscope.Box
}

func (r bc3Fun) Eval(x ivnum.Interval) ivnum.Interval {
	r.box.Set(r.c.Var, x)
	fx := r.c.Fn.Eval(r.box)
	// Residual must contain zero exactly when fx lies in Image: subtract
	// Image from fx via interval arithmetic so containment-of-zero tests
	// generalize Newton's classical zero-finding to membership in any
	// target interval, not just {0}.
	return fx.Sub(r.c.Image)
}

func (r bc3Fun) Diff(x ivnum.Interval) ivnum.Interval {
	if !r.c.hasDeriv {
		return ivnum.Universe()
	}
	r.box.Set(r.c.Var, x)
	return r.c.deriv.Eval(r.box)
}

func (c *BC3) isConsistent(box ivscope.Box, x ivnum.Interval) ivscope.Proof {
	work := box.Clone()
	work.Set(c.Var, x)
	e := c.Fn.Eval(work)
	if e.IsEmpty() {
		return ivscope.Empty
	}
	if e.IsDisjoint(c.Image) {
		return ivscope.Empty
	}
	if c.Image.ContainsInterval(e) {
		return ivscope.Inner
	}
	return ivscope.Maybe
}

func (c *BC3) peelLeft(x ivnum.Interval) (ivnum.Interval, ivnum.Interval) {
	w := x.Width() * c.PeelFrac
	b := ivnum.New(x.Lo(), x.Lo()+w)
	return b, ivnum.New(b.Hi(), x.Hi())
}

func (c *BC3) peelRight(x ivnum.Interval) (ivnum.Interval, ivnum.Interval) {
	w := x.Width() * c.PeelFrac
	b := ivnum.New(x.Hi()-w, x.Hi())
	return b, ivnum.New(x.Lo(), b.Lo())
}

// shrink narrows one boundary of x, peeling the fraction defined by peel
// and running Newton-with-bisection-backtracking on the remainder,
// mirroring Bc3Contractor::shrink's stack-based search. leftFirst picks
// which half of a bisected remainder is explored next: true for
// shrinkLeft (SplitLeft pops the left half first, converging toward
// x's left bound), false for shrinkRight (SplitRight pops the right
// half first).
func (c *BC3) shrink(box ivscope.Box, x ivnum.Interval, peel func(ivnum.Interval) (ivnum.Interval, ivnum.Interval), leftFirst bool) (ivnum.Interval, ivscope.Proof) {
	stack := []ivnum.Interval{x}
	steps := 0
	for len(stack) > 0 {
		y := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		steps++
		if steps > c.MaxSteps {
			return y, ivscope.Maybe
		}

		b, rest := peel(y)
		if proof := c.isConsistent(box, b); proof != ivscope.Empty {
			return b, proof
		}

		nf := bc3Fun{c: c, box: box.Clone()}
		z, proof := c.Newton.Contract(nf, rest)
		if proof == ivscope.Empty {
			continue
		}
		if proof == ivscope.Feasible {
			return z, proof
		}
		if z.IsCanonical() || !z.StrictlyContains(z.Midpoint()) {
			return z, ivscope.Maybe
		}
		mid := z.Midpoint()
		lo, hi := ivnum.New(z.Lo(), mid), ivnum.New(mid, z.Hi())
		if leftFirst {
			stack = append(stack, hi, lo) // lo popped next
		} else {
			stack = append(stack, lo, hi) // hi popped next
		}
	}
	return ivnum.Empty(), ivscope.Empty
}

// Contract narrows box's c.Var domain. Grounded in Bc3Contractor::contract:
// an initial consistency check over the full domain, then shrinkLeft
// followed by shrinkRight on the remainder, hull-unioned back together.
func (c *BC3) Contract(box ivscope.Box) ivscope.Proof {
	x := box.Get(c.Var)
	if x.IsEmpty() {
		return ivscope.Empty
	}

	full := c.isConsistent(box, x)
	if full == ivscope.Empty {
		return ivscope.Empty
	}
	if full == ivscope.Inner {
		return ivscope.Inner
	}

	lsol, pl := c.shrink(box, x, c.peelLeft, true)
	if pl == ivscope.Empty {
		box.Set(c.Var, ivnum.Empty())
		return ivscope.Empty
	}

	rest := ivnum.New(lsol.Lo(), x.Hi())
	rsol, pr := c.shrink(box, rest, c.peelRight, false)

	result := lsol.Hull(rsol).Intersect(x)
	box.Set(c.Var, result)
	if result.IsEmpty() {
		return ivscope.Empty
	}
	if pl == ivscope.Feasible || pr == ivscope.Feasible {
		return ivscope.Feasible
	}
	return ivscope.Maybe
}
