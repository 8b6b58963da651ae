package ivcontract_test

import (
	"testing"

	"github.com/ivsolve/ivsolve/pkg/ivcontract"
	"github.com/ivsolve/ivsolve/pkg/ivdag"
	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
	"github.com/ivsolve/ivsolve/pkg/ivterm"
)

func TestScenarioF_DiscreteIntersectionYieldsBounds(t *testing.T) {
	tol := ivscope.Tolerance{}
	i := ivscope.NewVariable("i", ivnum.New(1.5, 4.3), ivscope.Integer, tol)
	c := ivcontract.NewIntegrality([]ivscope.Variable{i})
	scope := ivscope.NewScope(i)
	box := ivscope.NewBoxFromDomains(scope)

	if proof := c.Contract(box); proof == ivscope.Empty {
		t.Fatalf("got Empty for i in [1.5, 4.3]")
	}
	got := box.Get(i)
	if got.Lo() != 2 || got.Hi() != 4 {
		t.Errorf("i = %v, want [2, 4]", got)
	}
}

func TestScenarioF_DiscreteIntersectionYieldsEmpty(t *testing.T) {
	tol := ivscope.Tolerance{}
	i := ivscope.NewVariable("i", ivnum.New(1.5, 1.8), ivscope.Integer, tol)
	c := ivcontract.NewIntegrality([]ivscope.Variable{i})
	scope := ivscope.NewScope(i)
	box := ivscope.NewBoxFromDomains(scope)

	if proof := c.Contract(box); proof != ivscope.Empty {
		t.Errorf("proof = %v, want Empty for i in [1.5, 1.8]", proof)
	}
}

func TestHC4ContractsASingleEquation(t *testing.T) {
	tol, _ := ivscope.NewAbsTolerance(1e-8)
	x := ivscope.NewVariable("x", ivnum.New(0, 10), ivscope.Continuous, tol)
	y := ivscope.NewVariable("y", ivnum.New(0, 10), ivscope.Continuous, tol)

	d := ivdag.New()
	fn := ivterm.Add(ivterm.Var(x), ivterm.Var(y))
	fun := d.Compile(fn, ivnum.New(0, 5))

	scope := ivscope.NewScope(x, y)
	box := ivscope.NewBoxFromDomains(scope)

	c := ivcontract.NewHC4(fun)
	proof := c.Contract(box)
	if proof == ivscope.Empty {
		t.Fatal("got Empty for a satisfiable equation")
	}
	if got := box.Get(x); got.Hi() > 5 {
		t.Errorf("x = %v, expected hi <= 5 after projecting x+y in [0,5] with y in [0,10]", got)
	}
}

func TestListShortCircuitsOnEmpty(t *testing.T) {
	tol, _ := ivscope.NewAbsTolerance(1e-8)
	x := ivscope.NewVariable("x", ivnum.New(0, 10), ivscope.Continuous, tol)
	scope := ivscope.NewScope(x)

	d := ivdag.New()
	infeasible := d.Compile(ivterm.Var(x), ivnum.New(20, 30))
	feasible := d.Compile(ivterm.Var(x), ivnum.New(0, 5))

	box := ivscope.NewBoxFromDomains(scope)
	list := ivcontract.NewList(ivcontract.NewHC4(infeasible), ivcontract.NewHC4(feasible))

	if proof := list.Contract(box); proof != ivscope.Empty {
		t.Errorf("proof = %v, want Empty", proof)
	}
}
