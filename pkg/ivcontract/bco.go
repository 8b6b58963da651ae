package ivcontract

import (
	"fmt"

	"github.com/ivsolve/ivsolve/pkg/ivdag"
	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
)

// BCO is spec §4.4's bound-constrained-optimization contractor: for a
// partial derivative df/dv of the objective, compiled as Deriv, it first
// hands the box to Op (a contractor for df/dv = 0, typically HC4 or BC3)
// to shrink v toward its stationary points. When that empties the box —
// df/dv never vanishes on the box, so f is monotone in v there — it
// evaluates Deriv at the box's midpoint to read off the sign and
// instantiates v at the corresponding endpoint of v's pre-contraction
// domain. Init, the box at the start of the search, decides whether the
// contractor acts at all: only when one of v's bounds still equals its
// Init bound. When Op narrows such a bound away from Init, it checks
// the derivative's sign at the pre-contraction corner at that bound; if
// the sign allows an optimum on that boundary, the narrowing is
// discarded and the pre-contraction box restored, otherwise it is kept.
// Grounded in realpaver's BcoContractor::contract
// (original_source/src/realpaver/contractor_bco.cpp).
type BCO struct {
	Deriv *ivdag.Fun
	Var   ivscope.Variable
	Op    Contractor
	Init  ivscope.Box

	scratch *ivdag.Scratch
}

// NewBCO builds a BCO contractor narrowing v against deriv (= df/dv,
// compiled as deriv ∈ {0}) using op to solve that equation, with init
// holding the box as it stood before the search began.
func NewBCO(deriv *ivdag.Fun, v ivscope.Variable, op Contractor, init ivscope.Box) *BCO {
	return &BCO{
		Deriv:   deriv,
		Var:     v,
		Op:      op,
		Init:    init,
		scratch: ivdag.NewScratch(deriv.Dag()),
	}
}

func (c *BCO) Scope() *ivscope.Scope             { return c.Deriv.Scope() }
func (c *BCO) DependsOn(v ivscope.Variable) bool { return c.Deriv.Scope().Contains(v) }
func (c *BCO) String() string                    { return fmt.Sprintf("BCO(%s)", c.Var) }

func (c *BCO) Contract(box ivscope.Box) ivscope.Proof {
	x := box.Get(c.Var)
	initX := c.Init.Get(c.Var)
	initLB := x.Lo() == initX.Lo()
	initRB := x.Hi() == initX.Hi()

	if !(initLB || initRB) {
		return c.Op.Contract(box)
	}

	copy := box.Clone()
	proof := c.Op.Contract(box)

	if proof == ivscope.Empty {
		mid := copy.Midpoint()
		c.Deriv.Dag().Eval(c.scratch, mid)
		ef := c.scratch.Value(c.Deriv.Root())

		for _, v := range c.Scope().Variables() {
			box.Set(v, copy.Get(v))
		}

		switch {
		case ef.IsCertainlyLeZero():
			box.Set(c.Var, ivnum.Singleton(copy.Get(c.Var).Hi()))
		case ef.IsCertainlyGeZero():
			box.Set(c.Var, ivnum.Singleton(copy.Get(c.Var).Lo()))
		}
		return ivscope.Maybe
	}

	// Op narrowed v away from one of its initial bounds. If the
	// derivative's sign at the corresponding corner of the
	// pre-contraction box is consistent with the function still being
	// monotone there, that narrowing can't be trusted (it may have cut
	// off the true boundary optimum), so the pre-contraction domain is
	// kept instead, conservatively.
	keep := false
	newX := box.Get(c.Var)

	if initLB && newX.Lo() != copy.Get(c.Var).Lo() {
		lower := make([]bool, copy.Scope().Size())
		for i := range lower {
			lower[i] = true
		}
		c.Deriv.Dag().Eval(c.scratch, copy.Corner(lower))
		if c.scratch.Value(c.Deriv.Root()).IsCertainlyGeZero() {
			keep = true
		}
	}

	if initRB && newX.Hi() != copy.Get(c.Var).Hi() {
		upper := make([]bool, copy.Scope().Size())
		c.Deriv.Dag().Eval(c.scratch, copy.Corner(upper))
		if c.scratch.Value(c.Deriv.Root()).IsCertainlyLeZero() {
			keep = true
		}
	}

	if keep {
		for _, v := range c.Scope().Variables() {
			box.Set(v, copy.Get(v))
		}
		return ivscope.Maybe
	}

	return proof
}
