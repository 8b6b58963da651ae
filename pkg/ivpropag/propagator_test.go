package ivpropag_test

import (
	"math"
	"testing"

	"github.com/ivsolve/ivsolve/pkg/ivcontract"
	"github.com/ivsolve/ivsolve/pkg/ivdag"
	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivpropag"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
	"github.com/ivsolve/ivsolve/pkg/ivterm"
)

func realVar(name string, lo, hi float64) ivscope.Variable {
	tol, _ := ivscope.NewAbsTolerance(1e-8)
	return ivscope.NewVariable(name, ivnum.New(lo, hi), ivscope.Continuous, tol)
}

// f builds spec §8 Scenario A/B/C's F(x,y,z) = (x+y)^2 - 2z + 2.
func quadratic(x, y, z ivscope.Variable) ivterm.Term {
	xy := ivterm.Add(ivterm.Var(x), ivterm.Var(y))
	return ivterm.Add(ivterm.Sub(ivterm.Sqr(xy), ivterm.Mul(ivterm.Num(2), ivterm.Var(z))), ivterm.Num(2))
}

func TestScenarioA_HC4SingleFunctionContraction(t *testing.T) {
	x := realVar("x", -10, 15)
	y := realVar("y", -20, 5)
	z := realVar("z", -10, 5.5)

	d := ivdag.New()
	f := d.Compile(quadratic(x, y, z), ivnum.Zero())
	scope := ivscope.NewScope(x, y, z)
	box := ivscope.NewBoxFromDomains(scope)

	p := ivpropag.New([]ivcontract.Contractor{ivcontract.NewHC4(f)}, 1e-8, 200)
	proof := p.Contract(box)

	if proof != ivscope.Maybe {
		t.Fatalf("proof = %v, want Maybe", proof)
	}
	want := map[string]ivnum.Interval{"x": ivnum.New(-8, 15), "y": ivnum.New(-18, 5), "z": ivnum.New(1, 5.5)}
	for _, v := range []ivscope.Variable{x, y, z} {
		got := box.Get(v)
		w := want[v.Name()]
		if !closeEnough(got.Lo(), w.Lo()) || !closeEnough(got.Hi(), w.Hi()) {
			t.Errorf("%s = %v, want %v", v.Name(), got, w)
		}
	}
}

func TestScenarioB_InfeasibilityDetection(t *testing.T) {
	x := realVar("x", -10, 15)
	y := realVar("y", -20, 5)
	z := realVar("z", -10, 0)

	d := ivdag.New()
	f := d.Compile(quadratic(x, y, z), ivnum.Zero())
	scope := ivscope.NewScope(x, y, z)
	box := ivscope.NewBoxFromDomains(scope)

	p := ivpropag.New([]ivcontract.Contractor{ivcontract.NewHC4(f)}, 1e-8, 200)
	if proof := p.Contract(box); proof != ivscope.Empty {
		t.Fatalf("proof = %v, want Empty", proof)
	}
}

func TestScenarioC_InnerCertification(t *testing.T) {
	x := realVar("x", 2, 4)
	y := realVar("y", 3, 10)
	z := realVar("z", 0, 6)

	d := ivdag.New()
	f := d.Compile(quadratic(x, y, z), ivnum.MoreThan(0))
	scope := ivscope.NewScope(x, y, z)
	box := ivscope.NewBoxFromDomains(scope)
	before := box.Clone()

	p := ivpropag.New([]ivcontract.Contractor{ivcontract.NewHC4(f)}, 1e-8, 200)
	proof := p.Contract(box)
	if proof != ivscope.Inner {
		t.Fatalf("proof = %v, want Inner", proof)
	}
	for _, v := range []ivscope.Variable{x, y, z} {
		if !box.Get(v).IsSetEq(before.Get(v)) {
			t.Errorf("%s changed from %v to %v, Inner must not modify the box", v.Name(), before.Get(v), box.Get(v))
		}
	}
}

func TestPropagatorWithNoPoolReturnsInner(t *testing.T) {
	p := ivpropag.New(nil, 1e-8, 200)
	scope := ivscope.NewScope()
	box := ivscope.NewBoxFromDomains(scope)
	if proof := p.Contract(box); proof != ivscope.Inner {
		t.Fatalf("proof = %v, want Inner for an empty pool", proof)
	}
}

// TestConfluence checks spec §8's confluence property: running the same
// pool under two different initial pop orders yields boxes whose widths
// differ by at most the propagation tolerance.
func TestConfluence(t *testing.T) {
	x := realVar("x", -10, 15)
	y := realVar("y", -20, 5)
	z := realVar("z", -10, 5.5)
	scope := ivscope.NewScope(x, y, z)

	d1 := ivdag.New()
	f1 := d1.Compile(quadratic(x, y, z), ivnum.Zero())
	d2 := ivdag.New()
	f2 := d2.Compile(quadratic(x, y, z), ivnum.Zero())

	box1 := ivscope.NewBoxFromDomains(scope)
	box2 := ivscope.NewBoxFromDomains(scope)

	pool1 := []ivcontract.Contractor{ivcontract.NewHC4(f1), ivcontract.NewIntegrality(nil)}
	pool2 := []ivcontract.Contractor{ivcontract.NewIntegrality(nil), ivcontract.NewHC4(f2)}

	p1 := ivpropag.New(pool1, 1e-8, 200)
	p2 := ivpropag.New(pool2, 1e-8, 200)

	proof1 := p1.Contract(box1)
	proof2 := p2.Contract(box2)
	if proof1 != proof2 {
		t.Fatalf("proofs differ across pop order: %v vs %v", proof1, proof2)
	}
	for _, v := range []ivscope.Variable{x, y, z} {
		w1, w2 := box1.Get(v).Width(), box2.Get(v).Width()
		if math.Abs(w1-w2) > 1e-6 {
			t.Errorf("%s width differs across pop order: %v vs %v", v.Name(), w1, w2)
		}
	}
}

func closeEnough(a, b float64) bool { return math.Abs(a-b) < 1e-6 }
