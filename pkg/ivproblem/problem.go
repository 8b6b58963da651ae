// Package ivproblem defines the Problem-builder surface the core
// consumes (spec §6): a list of variables with initial domains and
// kinds, a list of constraints rewritten into the canonical F in I form
// the DAG compiles (spec §4.3), and an optional objective. Grounded in
// gokando's Model/NewModel/NewVariable builder shape (pkg/minikanren/model.go),
// generalized from finite integer domains and ModelConstraint values to
// interval domains and Term relations, and in realpaver's Problem class
// (original_source/src/realpaver/Problem.hpp), which likewise owns the
// variable list, the constraint list and an optional objective term.
package ivproblem

import (
	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
	"github.com/ivsolve/ivsolve/pkg/ivterm"
)

// Relation names the comparison a Constraint was built from, kept around
// for printing and for collaborators (e.g. a future parser) that want to
// recover the original shape; contraction only ever uses Image.
type Relation int

const (
	RelEq Relation = iota
	RelLe
	RelGe
	RelLt
	RelGt
	RelIn
)

func (r Relation) String() string {
	switch r {
	case RelEq:
		return "="
	case RelLe:
		return "<="
	case RelGe:
		return ">="
	case RelLt:
		return "<"
	case RelGt:
		return ">"
	case RelIn:
		return "in"
	default:
		return "?"
	}
}

// Constraint is a constraint rewritten into canonical form: the root term
// F must evaluate into Image for the constraint to hold (spec §4.3
// "Insertion"). An equation F = G becomes Fn = F-G, Image = {0}; F <= G
// becomes Fn = F-G, Image = (-inf, 0]; and so on.
type Constraint struct {
	Fn       ivterm.Term
	Image    ivnum.Interval
	Relation Relation
}

// Scope returns the constraint's free variables.
func (c Constraint) Scope() *ivscope.Scope { return c.Fn.Scope() }

// Eq builds the constraint lhs = rhs.
func Eq(lhs, rhs ivterm.Term) Constraint {
	return Constraint{Fn: ivterm.Sub(lhs, rhs), Image: ivnum.Zero(), Relation: RelEq}
}

// Le builds the constraint lhs <= rhs.
func Le(lhs, rhs ivterm.Term) Constraint {
	return Constraint{Fn: ivterm.Sub(lhs, rhs), Image: ivnum.LessThan(0), Relation: RelLe}
}

// Ge builds the constraint lhs >= rhs.
func Ge(lhs, rhs ivterm.Term) Constraint {
	return Constraint{Fn: ivterm.Sub(lhs, rhs), Image: ivnum.MoreThan(0), Relation: RelGe}
}

// Lt builds the strict constraint lhs < rhs. Interval arithmetic cannot
// distinguish strict from non-strict at the bound, so this is sound but
// not complete for points exactly at the boundary, matching realpaver's
// treatment of strict relations as their closed counterparts during
// propagation.
func Lt(lhs, rhs ivterm.Term) Constraint {
	c := Le(lhs, rhs)
	c.Relation = RelLt
	return c
}

// Gt builds the strict constraint lhs > rhs.
func Gt(lhs, rhs ivterm.Term) Constraint {
	c := Ge(lhs, rhs)
	c.Relation = RelGt
	return c
}

// In builds the membership constraint t in img.
func In(t ivterm.Term, img ivnum.Interval) Constraint {
	return Constraint{Fn: t, Image: img, Relation: RelIn}
}

// Sense is the direction of an Objective.
type Sense int

const (
	Minimize Sense = iota
	Maximize
)

func (s Sense) String() string {
	if s == Maximize {
		return "maximize"
	}
	return "minimize"
}

// Objective is the optional term a BCOP search minimizes or maximizes
// (spec §6).
type Objective struct {
	Term  ivterm.Term
	Sense Sense
}

// Problem is the already-built input the core's search driver consumes:
// a dense 0..N-1 variable list, a constraint list, and an optional
// objective (spec §1 "the core treats an already-built problem... as
// input").
type Problem struct {
	Vars        []ivscope.Variable
	Constraints []Constraint
	Objective   *Objective
}

// Scope returns the union of scopes of every variable declared on the
// problem (not merely those actually referenced by a constraint), which
// is what the search driver's initial Box is built over.
func (p *Problem) Scope() *ivscope.Scope {
	s := ivscope.NewScope()
	for _, v := range p.Vars {
		s.InsertVar(v)
	}
	return s
}

// InitialBox returns the box holding each variable's declared initial
// domain.
func (p *Problem) InitialBox() ivscope.Box {
	return ivscope.NewBoxFromDomains(p.Scope())
}

// DiscreteVars returns the subset of p.Vars with an Integer or Boolean
// kind, the scope the Integrality contractor (spec §4.4) acts on.
func (p *Problem) DiscreteVars() []ivscope.Variable {
	var out []ivscope.Variable
	for _, v := range p.Vars {
		if v.IsDiscrete() {
			out = append(out, v)
		}
	}
	return out
}
