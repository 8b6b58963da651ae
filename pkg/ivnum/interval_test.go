package ivnum

import (
	"math"
	"testing"
)

func TestNewAndEmpty(t *testing.T) {
	tests := []struct {
		name     string
		lo, hi   float64
		wantNull bool
	}{
		{"normal", 1, 2, false},
		{"singleton", 3, 3, false},
		{"inverted is empty", 5, 1, true},
		{"nan is empty", math.NaN(), 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := New(tt.lo, tt.hi)
			if x.IsEmpty() != tt.wantNull {
				t.Errorf("New(%v,%v).IsEmpty() = %v, want %v", tt.lo, tt.hi, x.IsEmpty(), tt.wantNull)
			}
		})
	}
}

// closeTo reports whether x and y agree to within eps on both bounds —
// outward-rounded results are only guaranteed to enclose, not to
// reproduce, the unrounded mathematical bound exactly.
func closeTo(x, y Interval, eps float64) bool {
	if x.IsEmpty() || y.IsEmpty() {
		return x.IsEmpty() == y.IsEmpty()
	}
	return math.Abs(x.lo-y.lo) <= eps && math.Abs(x.hi-y.hi) <= eps
}

func TestIdentities(t *testing.T) {
	x := New(-2, 5)
	if got := x.Add(Zero()); !closeTo(got, x, 1e-12) {
		t.Errorf("X + 0 = %v, want %v", got, x)
	}
	if got := x.Mul(One()); !closeTo(got, x, 1e-12) {
		t.Errorf("X * 1 = %v, want %v", got, x)
	}
	if got := x.Hull(Empty()); !got.IsSetEq(x) {
		t.Errorf("X | empty = %v, want %v", got, x)
	}
	if got := x.Intersect(Universe()); !got.IsSetEq(x) {
		t.Errorf("X & universe = %v, want %v", got, x)
	}
}

func TestAddInversionLaws(t *testing.T) {
	x, y := New(1, 3), New(-2, 2)
	z := x.Add(y)
	px := AddPX(x, y, z)
	if !px.ContainsInterval(x.Intersect(z.Sub(y))) {
		t.Errorf("addPX not consistent")
	}
	if !px.ContainsInterval(px) {
		t.Errorf("addPX degenerate")
	}
	pz := AddPZ(x, y, z)
	if !z.ContainsInterval(pz) {
		t.Errorf("addPZ should not widen z")
	}
}

func TestSetMinusRoundTrip(t *testing.T) {
	x := New(0, 1)
	y := New(5, 6)
	a, b := SetMinus(x, y)
	if !a.IsSetEq(x) || !b.IsEmpty() {
		t.Errorf("setminus(disjoint) = (%v,%v), want (%v, empty)", a, b, x)
	}
}

func TestExtDivStraddlingZero(t *testing.T) {
	x := New(1, 1)
	y := New(-1, 1)
	a, b := ExtDiv(x, y)
	if a.IsEmpty() {
		t.Fatalf("expected at least one nonempty component")
	}
	if !b.IsEmpty() {
		if !a.IsDisjoint(b) {
			t.Errorf("extDiv components should be disjoint when two are returned: %v, %v", a, b)
		}
	}
}

func TestDivSign(t *testing.T) {
	got := New(1, 2).Div(New(2, 4))
	want := New(0.25, 1)
	if !closeTo(got, want, 1e-12) {
		t.Errorf("Div = %v, want %v", got, want)
	}
}

func TestSqrtClipsNegative(t *testing.T) {
	got := New(-4, 9).Sqrt()
	want := New(0, 3)
	if !closeTo(got, want, 1e-12) {
		t.Errorf("Sqrt = %v, want %v", got, want)
	}
}

func TestInflateRejectsBadFactors(t *testing.T) {
	x := New(0, 1)
	if _, err := x.Inflate(1.0, 1e-10); err == nil {
		t.Errorf("expected error for delta <= 1")
	}
	if _, err := x.Inflate(1.1, -1); err == nil {
		t.Errorf("expected error for chi < 0")
	}
	if _, err := x.Inflate(1.1, 0.01); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRoundToIntegralBounds(t *testing.T) {
	got := Round(New(1.5, 4.3))
	want := New(2, 4)
	if !got.IsSetEq(want) {
		t.Errorf("Round = %v, want %v", got, want)
	}
	if got := Round(New(1.5, 1.8)); !got.IsEmpty() {
		t.Errorf("Round(1.5,1.8) = %v, want empty", got)
	}
}

func TestComplement(t *testing.T) {
	a, b := Complement(New(1, 3))
	if !a.IsSetEq(LessThan(1)) || !b.IsSetEq(MoreThan(3)) {
		t.Errorf("Complement([1,3]) = (%v,%v)", a, b)
	}
}

func TestOutwardRoundingContainsNearbyFloats(t *testing.T) {
	// 0.1 + 0.2 is not exactly representable; verify the rounded
	// interval still contains the round-to-nearest float64 sum.
	x := Singleton(0.1)
	y := Singleton(0.2)
	z := x.Add(y)
	exact := 0.1 + 0.2
	if !z.Contains(exact) {
		t.Errorf("outward-rounded sum %v does not contain exact sum %v", z, exact)
	}
}
