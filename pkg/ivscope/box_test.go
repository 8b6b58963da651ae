package ivscope

import (
	"testing"

	"github.com/ivsolve/ivsolve/pkg/ivnum"
)

func TestBoxGetSetAndEmptiness(t *testing.T) {
	x := NewVariable("x", ivnum.New(-1, 1), Continuous, Tolerance{Abs: 1e-8})
	y := NewVariable("y", ivnum.New(0, 2), Continuous, Tolerance{Abs: 1e-8})
	s := NewScope(x, y)
	b := NewBoxFromDomains(s)

	if b.IsEmpty() {
		t.Fatalf("fresh box should not be empty")
	}
	if got := b.Get(x); !got.IsSetEq(ivnum.New(-1, 1)) {
		t.Errorf("Get(x) = %v, want [-1,1]", got)
	}

	b.Set(x, ivnum.Empty())
	if !b.IsEmpty() {
		t.Errorf("box with one empty component should report empty")
	}
}

func TestBoxIntersectAndHull(t *testing.T) {
	x := NewVariable("x", ivnum.New(0, 10), Continuous, Tolerance{Abs: 1e-8})
	s := NewScope(x)
	a := NewBox(s, ivnum.New(0, 5))
	b := NewBox(s, ivnum.New(3, 10))

	inter := a.Intersect(b)
	if got := inter.At(0); !got.IsSetEq(ivnum.New(3, 5)) {
		t.Errorf("Intersect = %v, want [3,5]", got)
	}

	hull := a.Hull(b)
	if got := hull.At(0); !got.IsSetEq(ivnum.New(0, 10)) {
		t.Errorf("Hull = %v, want [0,10]", got)
	}
}

func TestBoxContains(t *testing.T) {
	x := NewVariable("x", ivnum.New(0, 10), Continuous, Tolerance{Abs: 1e-8})
	s := NewScope(x)
	outer := NewBox(s, ivnum.New(0, 10))
	inner := NewBox(s, ivnum.New(2, 3))
	if !outer.Contains(inner) {
		t.Errorf("outer box should contain inner box")
	}
	if inner.Contains(outer) {
		t.Errorf("inner box should not contain outer box")
	}
}

func TestBoxWidthAndMidpoint(t *testing.T) {
	x := NewVariable("x", ivnum.New(0, 4), Continuous, Tolerance{Abs: 1e-8})
	y := NewVariable("y", ivnum.New(-1, 1), Continuous, Tolerance{Abs: 1e-8})
	s := NewScope(x, y)
	b := NewBoxFromDomains(s)

	if w := b.Width(); w != 4 {
		t.Errorf("Width() = %v, want 4", w)
	}
	mid := b.Midpoint()
	if got := mid.At(0); got.Midpoint() != 2 {
		t.Errorf("midpoint of x component = %v, want 2", got)
	}
}

func TestBoxCorner(t *testing.T) {
	x := NewVariable("x", ivnum.New(0, 1), Continuous, Tolerance{Abs: 1e-8})
	y := NewVariable("y", ivnum.New(-1, 1), Continuous, Tolerance{Abs: 1e-8})
	s := NewScope(x, y)
	b := NewBoxFromDomains(s)

	c := b.Corner([]bool{true, false})
	if c.At(0).Midpoint() != 0 || c.At(1).Midpoint() != 1 {
		t.Errorf("Corner = %v, want (0,1)", c)
	}
}

func TestBoxRestrict(t *testing.T) {
	x := NewVariable("x", ivnum.New(0, 1), Continuous, Tolerance{Abs: 1e-8})
	y := NewVariable("y", ivnum.New(0, 2), Continuous, Tolerance{Abs: 1e-8})
	full := NewScope(x, y)
	b := NewBoxFromDomains(full)

	sub := NewScope(y)
	r := b.Restrict(sub)
	if r.Size() != 1 || !r.At(0).IsSetEq(ivnum.New(0, 2)) {
		t.Errorf("Restrict(y) = %v, want [0,2]", r)
	}
}

func TestBoxCloneIndependence(t *testing.T) {
	x := NewVariable("x", ivnum.New(0, 1), Continuous, Tolerance{Abs: 1e-8})
	s := NewScope(x)
	a := NewBoxFromDomains(s)
	c := a.Clone()
	c.SetAt(0, ivnum.Empty())
	if a.IsEmpty() {
		t.Errorf("mutating clone's component affected original box")
	}
}
