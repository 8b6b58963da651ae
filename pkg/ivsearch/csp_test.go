package ivsearch

import (
	"testing"

	"github.com/ivsolve/ivsolve/pkg/ivcontract"
	"github.com/ivsolve/ivsolve/pkg/ivdag"
	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivproblem"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
	"github.com/ivsolve/ivsolve/pkg/ivsplit"
	"github.com/ivsolve/ivsolve/pkg/ivterm"
)

// unitCircle builds x^2 + y^2 = 1 over x,y in [-2,2].
func unitCircle(t *testing.T) (*CSPSearch, *ivscope.Scope) {
	t.Helper()
	tol, _ := ivscope.NewAbsTolerance(0.05)
	x := ivscope.NewVariable("x", ivnum.New(-2, 2), ivscope.Continuous, tol)
	y := ivscope.NewVariable("y", ivnum.New(-2, 2), ivscope.Continuous, tol)
	scope := ivscope.NewScope(x, y)

	constraint := ivproblem.Eq(ivterm.Add(ivterm.Sqr(ivterm.Var(x)), ivterm.Sqr(ivterm.Var(y))), ivterm.Num(1))
	d := ivdag.New()
	fun := d.Compile(constraint.Fn, constraint.Image)

	cs := &CSPSearch{
		Scope:       scope,
		Constraints: []ivproblem.Constraint{constraint},
		Propagator:  ivcontract.NewHC4(fun),
		Selector:    ivsplit.LargestFirst{},
		Slicer:      ivsplit.Bisection{},
		Strategy:    Strategy{Kind: DFS},
		DepthLimit:  25,
		NodeLimit:   2000,
	}
	return cs, scope
}

func TestCSPSearchFindsCircleSolutions(t *testing.T) {
	cs, scope := unitCircle(t)
	result := cs.Run(ivscope.NewBoxFromDomains(scope))

	if len(result.Solutions) == 0 {
		t.Fatal("expected at least one solution box covering the unit circle")
	}
	if result.NodesExplored == 0 {
		t.Error("expected the search to explore at least one node")
	}
	for _, sol := range result.Solutions {
		if sol.Proof != ivscope.Inner && sol.Proof != ivscope.Maybe {
			t.Errorf("solution Proof = %v, want Inner or Maybe", sol.Proof)
		}
		if sol.Parent < -1 {
			t.Errorf("solution Parent = %d, want >= -1", sol.Parent)
		}
	}
}

func TestCSPSearchRespectsNodeLimit(t *testing.T) {
	cs, scope := unitCircle(t)
	cs.NodeLimit = 3
	result := cs.Run(ivscope.NewBoxFromDomains(scope))
	if result.NodesExplored > 3 {
		t.Errorf("NodesExplored = %d, want <= 3", result.NodesExplored)
	}
}

