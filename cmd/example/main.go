// Command example drives the core end to end: build a Problem, compile
// it to a shared Dag, contract a single function with HC4-Revise, run a
// CSP branch-and-prune search, and run a BCOP branch-and-bound search.
// The numbers printed for the first two sections are spec.md's own
// worked examples (Scenario A's HC4 contraction and Scenario F's
// integrality contraction), so a reader can check the output against
// the specification directly.
package main

import (
	"fmt"

	"github.com/ivsolve/ivsolve/pkg/ivcontract"
	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivproblem"
	"github.com/ivsolve/ivsolve/pkg/ivpropag"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
	"github.com/ivsolve/ivsolve/pkg/ivsearch"
	"github.com/ivsolve/ivsolve/pkg/ivsplit"
	"github.com/ivsolve/ivsolve/pkg/ivterm"
)

func main() {
	fmt.Println("=== ivsolve core demo ===")
	fmt.Println()

	hc4Contraction()
	integrality()
	cspSearch()
	bcopSearch()
}

// hc4Contraction reproduces spec.md Scenario A: F(x, y, z) = (x+y)^2 -
// 2z + 2, constraint F = 0, over x in [-10,15], y in [-20,5],
// z in [-10,5.5]. HC4-Revise should return Maybe with x in [-8,15],
// y in [-18,5], z in [1,5.5].
func hc4Contraction() {
	fmt.Println("1. HC4-Revise single-function contraction:")

	b := ivproblem.NewBuilder()
	x := b.NewReal("x", ivnum.New(-10, 15))
	y := b.NewReal("y", ivnum.New(-20, 5))
	z := b.NewReal("z", ivnum.New(-10, 5.5))

	f := ivterm.Sub(ivterm.Add(ivterm.Sqr(ivterm.Add(ivterm.Var(x), ivterm.Var(y))), ivterm.Num(2)),
		ivterm.Mul(ivterm.Num(2), ivterm.Var(z)))
	b.Require(ivproblem.Eq(f, ivterm.Num(0)))

	p := b.Build()
	compiled := ivproblem.Compile(p)
	box := p.InitialBox()

	hc4 := ivcontract.NewHC4(compiled.Constraints[0])
	proof := hc4.Contract(box)

	fmt.Printf("   proof=%s  x=%s y=%s z=%s\n", proof, box.Get(x), box.Get(y), box.Get(z))
	fmt.Println()
}

// integrality reproduces spec.md Scenario F: i in [1.5,4.3] rounds to
// [2,4]; i in [1.5,1.8] (no integer inside) is Empty.
func integrality() {
	fmt.Println("2. Integrality contractor:")

	b := ivproblem.NewBuilder()
	i := b.NewInt("i", ivnum.New(1, 5))
	p := b.Build()
	scope := p.Scope()

	box := ivscope.NewBox(scope, ivnum.Universe())
	box.Set(i, ivnum.New(1.5, 4.3))
	ic := ivcontract.NewIntegrality([]ivscope.Variable{i})
	proof := ic.Contract(box)
	fmt.Printf("   i in [1.5,4.3] => proof=%s i=%s\n", proof, box.Get(i))

	box2 := ivscope.NewBox(scope, ivnum.Universe())
	box2.Set(i, ivnum.New(1.5, 1.8))
	proof2 := ic.Contract(box2)
	fmt.Printf("   i in [1.5,1.8] => proof=%s\n", proof2)
	fmt.Println()
}

// cspSearch solves x^2 + y^2 = 4 (a circle) for x, y in [-5,5] with a
// bounded node budget, printing the inner/feasible boxes found.
func cspSearch() {
	fmt.Println("3. CSP branch-and-prune search:")

	b := ivproblem.NewBuilder()
	x := b.NewReal("x", ivnum.New(-5, 5))
	y := b.NewReal("y", ivnum.New(-5, 5))
	circle := ivterm.Add(ivterm.Sqr(ivterm.Var(x)), ivterm.Sqr(ivterm.Var(y)))
	b.Require(ivproblem.Eq(circle, ivterm.Num(4)))
	p := b.Build()

	compiled := ivproblem.Compile(p)
	pool := make([]ivcontract.Contractor, len(compiled.Constraints))
	for i, fn := range compiled.Constraints {
		pool[i] = ivcontract.NewHC4(fn)
	}
	prop := ivpropag.New(pool, 1e-8, 200)

	search := &ivsearch.CSPSearch{
		Scope:       p.Scope(),
		Constraints: p.Constraints,
		Propagator:  prop,
		Selector:    ivsplit.RoundRobin{},
		Slicer:      ivsplit.Bisection{},
		Strategy:    ivsearch.Strategy{Kind: ivsearch.DFS},
		DepthLimit:  30,
		NodeLimit:   2000,
	}
	result := search.Run(p.InitialBox())
	fmt.Printf("   nodes explored=%d solutions=%d\n", result.NodesExplored, len(result.Solutions))
	for i, n := range result.Solutions {
		if i >= 3 {
			fmt.Printf("   ... %d more\n", len(result.Solutions)-3)
			break
		}
		fmt.Printf("   solution[%d]: x=%s y=%s\n", i, n.Box.Get(x), n.Box.Get(y))
	}
	fmt.Println()
}

// bcopSearch reproduces spec.md Scenario E's shape: minimize
// 3u + x^2*y^2 + x*y on x in [-10,4], u in [-10,10], y in [-1,2] with a
// small node budget, printing the objective enclosure and best point
// found.
func bcopSearch() {
	fmt.Println("4. BCOP branch-and-bound search:")

	b := ivproblem.NewBuilder()
	x := b.NewReal("x", ivnum.New(-10, 4))
	u := b.NewReal("u", ivnum.New(-10, 10))
	y := b.NewReal("y", ivnum.New(-1, 2))

	obj := ivterm.Add(
		ivterm.Add(ivterm.Mul(ivterm.Num(3), ivterm.Var(u)),
			ivterm.Mul(ivterm.Sqr(ivterm.Var(x)), ivterm.Sqr(ivterm.Var(y)))),
		ivterm.Mul(ivterm.Var(x), ivterm.Var(y)),
	)
	b.Minimize(obj)
	p := b.Build()

	compiled := ivproblem.Compile(p)
	fullScope := compiled.FullScope(p)
	pool := []ivcontract.Contractor{ivcontract.NewHC4(compiled.ObjFun)}
	prop := ivpropag.New(pool, 1e-8, 200)

	csp := ivsearch.CSPSearch{
		Scope:       fullScope,
		Constraints: []ivproblem.Constraint{ivproblem.Eq(ivterm.Var(compiled.ObjVar), obj)},
		Propagator:  prop,
		Selector:    ivsplit.RoundRobin{},
		Slicer:      ivsplit.Bisection{},
		Strategy:    ivsearch.Strategy{Kind: ivsearch.DFS},
		DepthLimit:  20,
		NodeLimit:   5,
	}
	search := &ivsearch.BCOPSearch{
		CSP:     csp,
		ObjTerm: ivterm.Var(compiled.ObjVar),
		ObjTol:  1e-3,
	}

	box := ivscope.NewBoxFromDomains(fullScope)
	result := search.Run(box)
	fmt.Printf("   proof=%s nodes explored=%d objective enclosure=[%.6f, %.6f]\n", result.Proof, result.NodesExplored, result.Lower, result.BestValue)
	if result.Best != nil {
		fmt.Printf("   witness: x=%s u=%s y=%s\n", result.Best.Box.Get(x), result.Best.Box.Get(u), result.Best.Box.Get(y))
	}
	fmt.Println()
}
