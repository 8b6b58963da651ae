package ivsplit

import (
	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
	"github.com/ivsolve/ivsolve/pkg/ivterm"
)

// Splittable reports whether v's current domain x in box is worth
// slicing at all (spec §4.6: "A domain is splittable iff its width
// exceeds the per-variable output tolerance and is non-canonical").
func Splittable(v ivscope.Variable, x ivnum.Interval) bool {
	if x.IsCanonical() {
		return false
	}
	return !v.Tolerance().HasTolerance(x)
}

// Cursor carries the state a stateful selector needs across repeated
// calls on the same branch of the search tree (spec §4.6: round-robin
// "carries its state in the node context"). A search node clones its
// parent's Cursor the same way it clones its Box, so each branch of the
// tree cycles independently.
type Cursor struct {
	// RR is the scope index round-robin resumes scanning from.
	RR int
	// Calls counts invocations, used by hybrid strategies that alternate
	// by frequency.
	Calls int
}

// Clone returns an independent copy, the way a search node clones its
// Cursor alongside its Box when it's split into children.
func (c Cursor) Clone() Cursor { return c }

// Selector chooses a splittable variable from vars given the current
// box, or reports ok=false when none of vars is splittable (spec §4.6
// "Selector").
type Selector interface {
	Select(box ivscope.Box, vars []ivscope.Variable, cur *Cursor) (ivscope.Variable, bool)
}

func candidates(box ivscope.Box, vars []ivscope.Variable) []ivscope.Variable {
	out := make([]ivscope.Variable, 0, len(vars))
	for _, v := range vars {
		if Splittable(v, box.Get(v)) {
			out = append(out, v)
		}
	}
	return out
}

// RoundRobin cycles through vars in scope order, resuming where the last
// call on this branch left off — spec §4.6's "round-robin (cycles
// through the scope carrying its state in the node context)".
type RoundRobin struct{}

func (RoundRobin) Select(box ivscope.Box, vars []ivscope.Variable, cur *Cursor) (ivscope.Variable, bool) {
	n := len(vars)
	if n == 0 {
		return ivscope.Variable{}, false
	}
	for i := 0; i < n; i++ {
		idx := (cur.RR + i) % n
		v := vars[idx]
		if Splittable(v, box.Get(v)) {
			cur.RR = (idx + 1) % n
			return v, true
		}
	}
	return ivscope.Variable{}, false
}

// LargestFirst picks the splittable variable with the widest current
// domain (spec §4.6 "largest-first (max domain width)").
type LargestFirst struct{}

func (LargestFirst) Select(box ivscope.Box, vars []ivscope.Variable, cur *Cursor) (ivscope.Variable, bool) {
	return extremeWidth(box, vars, true)
}

// SmallestFirst picks the splittable variable with the narrowest current
// domain (spec §4.6 "smallest-first").
type SmallestFirst struct{}

func (SmallestFirst) Select(box ivscope.Box, vars []ivscope.Variable, cur *Cursor) (ivscope.Variable, bool) {
	return extremeWidth(box, vars, false)
}

func extremeWidth(box ivscope.Box, vars []ivscope.Variable, wantLargest bool) (ivscope.Variable, bool) {
	cs := candidates(box, vars)
	if len(cs) == 0 {
		return ivscope.Variable{}, false
	}
	best := cs[0]
	bestW := box.Get(best).Width()
	for _, v := range cs[1:] {
		w := box.Get(v).Width()
		if (wantLargest && w > bestW) || (!wantLargest && w < bestW) {
			best, bestW = v, w
		}
	}
	return best, true
}

// SmallestDiscreteOrLargestReal prefers narrowing a discrete variable
// first (smallest current domain among the discrete ones, since that is
// closest to being fixed), falling back to largest-first among the
// continuous variables when no discrete variable is splittable — spec
// §4.6 "smallest-discrete-or-largest-real".
type SmallestDiscreteOrLargestReal struct{}

func (SmallestDiscreteOrLargestReal) Select(box ivscope.Box, vars []ivscope.Variable, cur *Cursor) (ivscope.Variable, bool) {
	var discrete, real []ivscope.Variable
	for _, v := range vars {
		if v.IsDiscrete() {
			discrete = append(discrete, v)
		} else {
			real = append(real, v)
		}
	}
	if v, ok := extremeWidth(box, discrete, false); ok {
		return v, true
	}
	return extremeWidth(box, real, true)
}

// SmearSumRelative scores each variable by the sum, over every compiled
// function, of |∂f/∂v| (evaluated over the box) times v's domain width,
// relative to the function's own image magnitude — the variable whose
// movement contributes most to every function's output range is split
// first. Grounded in the "smear" family of selectors named by spec
// §4.6, generalizing realpaver's per-function smear metric (used by its
// BC4/HC4 hybrids) to a sum across every function sharing a Dag.
type SmearSumRelative struct {
	derivs map[int][]ivterm.Term // variable id -> one derivative term per function that depends on it
	funs   map[int][]ivterm.Term // variable id -> the function each derivs entry differentiates
}

// NewSmearSumRelativeFromTerms builds the selector directly from each
// constraint's canonical Term, the shape ivsearch actually has on hand.
func NewSmearSumRelativeFromTerms(terms []ivterm.Term) *SmearSumRelative {
	s := &SmearSumRelative{derivs: map[int][]ivterm.Term{}, funs: map[int][]ivterm.Term{}}
	for _, t := range terms {
		for _, v := range t.Scope().Variables() {
			if d, ok := ivterm.Deriv(t, v); ok {
				s.derivs[v.ID()] = append(s.derivs[v.ID()], d)
				s.funs[v.ID()] = append(s.funs[v.ID()], t)
			}
		}
	}
	return s
}

func (s *SmearSumRelative) Select(box ivscope.Box, vars []ivscope.Variable, cur *Cursor) (ivscope.Variable, bool) {
	cs := candidates(box, vars)
	if len(cs) == 0 {
		return ivscope.Variable{}, false
	}
	best := cs[0]
	bestScore := -1.0
	for _, v := range cs {
		score := 0.0
		w := box.Get(v).Width()
		for i, d := range s.derivs[v.ID()] {
			g := d.Eval(box)
			fv := s.funs[v.ID()][i].Eval(box)
			if g.IsEmpty() || g.IsInf() || fv.IsEmpty() || fv.IsInf() || fv.Mag() == 0 {
				continue
			}
			score += g.Mag() * w / fv.Mag()
		}
		if score > bestScore {
			best, bestScore = v, score
		}
	}
	return best, true
}

// Alternated hybridizes two selectors by frequency: every Every-th call
// uses Minor, every other call uses Major — spec §4.6 "hybrid
// strategies mixing these by frequency".
type Alternated struct {
	Major, Minor Selector
	Every        int
}

func NewAlternated(major, minor Selector, every int) Alternated {
	if every < 2 {
		every = 2
	}
	return Alternated{Major: major, Minor: minor, Every: every}
}

func (a Alternated) Select(box ivscope.Box, vars []ivscope.Variable, cur *Cursor) (ivscope.Variable, bool) {
	cur.Calls++
	if cur.Calls%a.Every == 0 {
		return a.Minor.Select(box, vars, cur)
	}
	return a.Major.Select(box, vars, cur)
}
