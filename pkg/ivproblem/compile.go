package ivproblem

import (
	"github.com/ivsolve/ivsolve/pkg/ivdag"
	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
	"github.com/ivsolve/ivsolve/pkg/ivterm"
)

// Compiled is a Problem reduced to one shared DAG (spec §2 "Data flow: a
// Problem is reduced to a DAG"): every constraint becomes a ivdag.Fun
// sharing subexpressions with every other, and — for a BCOP — the
// objective becomes one extra Fun of the form z - f(x) in {0} (or
// z + f(x) in {0} for maximization, so minimizing z always finds the
// stated optimum), with ObjVar the fresh variable z was added to reach.
type Compiled struct {
	Dag         *ivdag.Dag
	Constraints []*ivdag.Fun
	ObjFun      *ivdag.Fun       // nil for a CSP with no objective
	ObjVar      ivscope.Variable // only meaningful when ObjFun != nil
}

// Compile reduces p to a shared DAG. When p has an objective, Compile
// introduces an objective variable spanning the objective term's value
// range (widened to the universe, since its exact range is what the
// search is trying to discover) and registers z = f(x) (or z = -f(x) for
// a maximization, so BCOP search can always minimize z) as one more
// function on the same DAG the constraints share.
func Compile(p *Problem) *Compiled {
	d := ivdag.New()
	c := &Compiled{Dag: d}
	c.Constraints = make([]*ivdag.Fun, len(p.Constraints))
	for i, ct := range p.Constraints {
		c.Constraints[i] = d.Compile(ct.Fn, ct.Image)
	}
	if p.Objective != nil {
		tol, _ := ivscope.NewAbsTolerance(1e-8)
		nextID := 0
		for _, v := range p.Vars {
			if v.ID() >= nextID {
				nextID = v.ID() + 1
			}
		}
		z := ivscope.NewVariable("_obj", ivnum.Universe(), ivscope.Continuous, tol).WithID(nextID)
		f := p.Objective.Term
		if p.Objective.Sense == Maximize {
			f = ivterm.Neg(f)
		}
		root := ivterm.Sub(ivterm.Var(z), f)
		c.ObjFun = d.Compile(root, ivnum.Zero())
		c.ObjVar = z
	}
	return c
}

// FullScope returns the scope z belongs to together with every problem
// variable — the scope a BCOP search's box must be built over.
func (c *Compiled) FullScope(p *Problem) *ivscope.Scope {
	s := p.Scope()
	if c.ObjFun != nil {
		s.InsertVar(c.ObjVar)
	}
	return s
}
