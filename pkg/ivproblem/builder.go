package ivproblem

import (
	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
	"github.com/ivsolve/ivsolve/pkg/ivterm"
)

// Builder accumulates variables, constraints and an optional objective
// into a Problem, compacting variable ids to 0..N-1 in declaration order
// as each is declared (spec §3 invariant: "Variable ids are dense in
// 0..N-1 per problem") — gokando's Model.NewVariable does the equivalent
// compaction with `id := len(m.variables)`, generalized here from finite
// domains to intervals. A Builder is not safe for concurrent use; build
// a Problem on one goroutine before handing it to the search driver.
type Builder struct {
	vars []ivscope.Variable
	cons []Constraint
	obj  *Objective
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// NewVar declares a fresh variable with a compact, builder-local id and
// returns it; every subsequent reference to this variable (in a
// constraint or objective Term) must use this returned value.
func (b *Builder) NewVar(name string, domain ivnum.Interval, kind ivscope.Kind, tol ivscope.Tolerance) ivscope.Variable {
	v := ivscope.NewVariable(name, domain, kind, tol).WithID(len(b.vars))
	b.vars = append(b.vars, v)
	return v
}

// NewReal declares a continuous variable with a default absolute
// tolerance of 1e-8, realpaver's documented default output tolerance.
func (b *Builder) NewReal(name string, domain ivnum.Interval) ivscope.Variable {
	tol, _ := ivscope.NewAbsTolerance(1e-8)
	return b.NewVar(name, domain, ivscope.Continuous, tol)
}

// NewInt declares an integer variable over the (inclusive, rounded)
// domain, with a zero tolerance since discrete domains never need a
// nonzero output tolerance to reach canonical form.
func (b *Builder) NewInt(name string, domain ivnum.Interval) ivscope.Variable {
	return b.NewVar(name, ivnum.Round(domain), ivscope.Integer, ivscope.Tolerance{})
}

// NewBool declares a 0/1 integer variable.
func (b *Builder) NewBool(name string) ivscope.Variable {
	return b.NewVar(name, ivnum.New(0, 1), ivscope.Boolean, ivscope.Tolerance{})
}

// Require adds a constraint to the problem.
func (b *Builder) Require(c Constraint) { b.cons = append(b.cons, c) }

// Minimize sets the problem's objective to minimize t. Calling Minimize
// or Maximize a second time replaces the previous objective, matching
// realpaver's Problem::addObjective, which holds at most one.
func (b *Builder) Minimize(t ivterm.Term) { b.obj = &Objective{Term: t, Sense: Minimize} }

// Maximize sets the problem's objective to maximize t.
func (b *Builder) Maximize(t ivterm.Term) { b.obj = &Objective{Term: t, Sense: Maximize} }

// Build finalizes the Problem. The returned Problem owns its own copies
// of the variable and constraint slices; further use of b does not
// affect it.
func (b *Builder) Build() *Problem {
	p := &Problem{
		Vars:        append([]ivscope.Variable(nil), b.vars...),
		Constraints: append([]Constraint(nil), b.cons...),
	}
	if b.obj != nil {
		obj := *b.obj
		p.Objective = &obj
	}
	return p
}
