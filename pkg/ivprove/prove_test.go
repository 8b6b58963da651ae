package ivprove_test

import (
	"math"
	"testing"

	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivprove"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
)

// sqrTwo implements ivcontract.UniFun for f(x) = x^2 - 2, spec §8
// Scenario D.
type sqrTwo struct{}

func (sqrTwo) Eval(x ivnum.Interval) ivnum.Interval {
	return x.Mul(x).Sub(ivnum.Singleton(2))
}

func (sqrTwo) Diff(x ivnum.Interval) ivnum.Interval {
	return x.Mul(ivnum.Singleton(2))
}

func TestScenarioD_UnivariateNewtonExistence(t *testing.T) {
	p := ivprove.NewProver()
	x := ivnum.New(1, 10)

	y, proof := p.LocalSearch(sqrTwo{}, x)
	if proof != ivscope.Feasible {
		t.Fatalf("proof = %v, want Feasible", proof)
	}
	if !y.Contains(math.Sqrt2) {
		t.Errorf("result box %v does not contain sqrt(2)", y)
	}
}

func TestLocalSearchReportsMaybeWhenNoRootExists(t *testing.T) {
	// f(x) = x^2 + 1 has no real root.
	p := ivprove.NewProver()
	y, proof := p.LocalSearch(noRoot{}, ivnum.New(-5, 5))
	if proof == ivscope.Feasible {
		t.Fatalf("proof = Feasible for a function with no root, result %v", y)
	}
}

type noRoot struct{}

func (noRoot) Eval(x ivnum.Interval) ivnum.Interval { return x.Mul(x).Add(ivnum.Singleton(1)) }
func (noRoot) Diff(x ivnum.Interval) ivnum.Interval  { return x.Mul(ivnum.Singleton(2)) }

func TestInflatorRejectsBadFactors(t *testing.T) {
	inf := ivprove.Inflator{Delta: 0.5, Chi: 1e-12}
	if _, err := inf.Inflate(ivnum.New(0, 1)); err == nil {
		t.Error("expected an error for delta <= 1")
	}
	inf = ivprove.Inflator{Delta: 1.5, Chi: -1}
	if _, err := inf.Inflate(ivnum.New(0, 1)); err == nil {
		t.Error("expected an error for chi < 0")
	}
}
