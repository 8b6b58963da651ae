// Package ivnum implements sound, outward-rounded interval arithmetic
// over the extended reals, following spec §3/§4.1 and grounded directly
// in realpaver's Interval class
// (_examples/original_source/src/realpaver/interval.{hpp,cpp}).
//
// An Interval is a closed connected subset of the extended reals [l, r]
// with l <= r, or the empty set. Every forward operation must enclose
// the true mathematical image of its inputs; every inverse projection
// must return the largest subset of its first argument consistent with
// the underlying relation. The empty set absorbs every operation.
package ivnum

import (
	"fmt"
	"math"
)

// Interval is a closed, possibly unbounded, possibly empty real interval.
// The zero value is NOT a valid interval; use Empty() or New.
type Interval struct {
	lo, hi float64
}

// Empty returns the canonical empty interval. By convention lo > hi
// (specifically +Inf > -Inf) represents emptiness; this keeps IsEmpty a
// single comparison and lets every forward primitive propagate emptiness
// just by doing ordinary float64 arithmetic on the sentinel bounds.
func Empty() Interval { return Interval{lo: math.Inf(1), hi: math.Inf(-1)} }

// New builds the interval [lo, hi]. If lo > hi the result is Empty().
func New(lo, hi float64) Interval {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return Empty()
	}
	return Interval{lo: lo, hi: hi}
}

// Singleton returns the degenerate interval [a, a].
func Singleton(a float64) Interval { return Interval{lo: a, hi: a} }

// LessThan returns (-inf, a].
func LessThan(a float64) Interval { return Interval{lo: math.Inf(-1), hi: a} }

// MoreThan returns [a, +inf).
func MoreThan(a float64) Interval { return Interval{lo: a, hi: math.Inf(1)} }

// Infinity returns +inf, the right bound of Universe().
func Infinity() float64 { return math.Inf(1) }

// Named constants, mirroring realpaver's static factory methods.
func Universe() Interval        { return Interval{lo: math.Inf(-1), hi: math.Inf(1)} }
func Positive() Interval        { return Interval{lo: 0, hi: math.Inf(1)} }
func Negative() Interval        { return Interval{lo: math.Inf(-1), hi: 0} }
func Zero() Interval            { return Interval{lo: 0, hi: 0} }
func One() Interval             { return Interval{lo: 1, hi: 1} }
func MinusOne() Interval        { return Interval{lo: -1, hi: -1} }
func MinusOnePlusOne() Interval { return Interval{lo: -1, hi: 1} }
func ZeroPlusOne() Interval     { return Interval{lo: 0, hi: 1} }
func MinusOneZero() Interval    { return Interval{lo: -1, hi: 0} }
func Pi() Interval              { return Interval{lo: roundDown(math.Pi), hi: roundUp(math.Pi)} }
func HalfPi() Interval {
	return Interval{lo: roundDown(math.Pi / 2), hi: roundUp(math.Pi / 2)}
}
func TwoPi() Interval {
	return Interval{lo: roundDown(2 * math.Pi), hi: roundUp(2 * math.Pi)}
}

// Lo returns the left bound.
func (x Interval) Lo() float64 { return x.lo }

// Hi returns the right bound.
func (x Interval) Hi() float64 { return x.hi }

// IsEmpty reports whether x is the empty set.
func (x Interval) IsEmpty() bool { return x.lo > x.hi }

// IsCanonical reports whether x cannot usefully be split further: empty,
// a single point, or (for floating bounds) already at the smallest
// representable width.
func (x Interval) IsCanonical() bool {
	if x.IsEmpty() {
		return true
	}
	if x.lo == x.hi {
		return true
	}
	return math.Nextafter(x.lo, math.Inf(1)) >= x.hi
}

// IsFinite reports whether both bounds are finite.
func (x Interval) IsFinite() bool {
	return !x.IsEmpty() && !math.IsInf(x.lo, 0) && !math.IsInf(x.hi, 0)
}

func (x Interval) IsInfLeft() bool  { return !x.IsEmpty() && math.IsInf(x.lo, -1) }
func (x Interval) IsInfRight() bool { return !x.IsEmpty() && math.IsInf(x.hi, 1) }
func (x Interval) IsInf() bool      { return x.IsInfLeft() || x.IsInfRight() }
func (x Interval) IsUniverse() bool { return x.IsInfLeft() && x.IsInfRight() }
func (x Interval) IsSingleton() bool {
	return !x.IsEmpty() && x.lo == x.hi
}
func (x Interval) IsZero() bool { return x.IsSingleton() && x.lo == 0 }

// Width returns hi - lo, or +Inf if unbounded, or 0 if empty.
func (x Interval) Width() float64 {
	if x.IsEmpty() {
		return 0
	}
	return roundUp(x.hi - x.lo)
}

// Radius returns half the width.
func (x Interval) Radius() float64 { return x.Width() / 2 }

// Midpoint returns the interval's midpoint; for a one-sided unbounded
// interval it returns the finite bound, and 0 for the full universe.
func (x Interval) Midpoint() float64 {
	switch {
	case x.IsEmpty():
		return math.NaN()
	case x.IsInfLeft() && x.IsInfRight():
		return 0
	case x.IsInfLeft():
		return x.hi
	case x.IsInfRight():
		return x.lo
	default:
		return x.lo + (x.hi-x.lo)/2
	}
}

// RelWidth returns the width relative to the magnitude of the interval,
// used by the propagator's fixed-point tolerance test.
func (x Interval) RelWidth() float64 {
	m := x.Mag()
	if m == 0 {
		return x.Width()
	}
	return x.Width() / m
}

// Mig returns the mignitude: the smallest absolute value in x.
func (x Interval) Mig() float64 {
	if x.IsEmpty() {
		return 0
	}
	if x.ContainsZero() {
		return 0
	}
	return math.Min(math.Abs(x.lo), math.Abs(x.hi))
}

// Mag returns the magnitude: the largest absolute value in x.
func (x Interval) Mag() float64 {
	if x.IsEmpty() {
		return 0
	}
	return math.Max(math.Abs(x.lo), math.Abs(x.hi))
}

// Contains reports whether a is a member of x.
func (x Interval) Contains(a float64) bool {
	return !x.IsEmpty() && x.lo <= a && a <= x.hi
}

// StrictlyContains reports whether a lies in the interior of x.
func (x Interval) StrictlyContains(a float64) bool {
	return !x.IsEmpty() && x.lo < a && a < x.hi
}

// ContainsInterval reports whether x is a superset of y (y may be empty).
func (x Interval) ContainsInterval(y Interval) bool {
	if y.IsEmpty() {
		return true
	}
	return !x.IsEmpty() && x.lo <= y.lo && y.hi <= x.hi
}

// StrictlyContainsInterval reports whether y lies in the interior of x.
func (x Interval) StrictlyContainsInterval(y Interval) bool {
	if y.IsEmpty() {
		return true
	}
	return !x.IsEmpty() && x.lo < y.lo && y.hi < x.hi
}

func (x Interval) ContainsZero() bool         { return x.Contains(0) }
func (x Interval) StrictlyContainsZero() bool { return x.StrictlyContains(0) }
func (x Interval) IsNegative() bool           { return !x.IsEmpty() && x.hi <= 0 }
func (x Interval) IsStrictlyNegative() bool    { return !x.IsEmpty() && x.hi < 0 }
func (x Interval) IsPositive() bool           { return !x.IsEmpty() && x.lo >= 0 }
func (x Interval) IsStrictlyPositive() bool    { return !x.IsEmpty() && x.lo > 0 }

// IsDisjoint reports whether x and y share no point.
func (x Interval) IsDisjoint(y Interval) bool {
	if x.IsEmpty() || y.IsEmpty() {
		return true
	}
	return x.hi < y.lo || y.hi < x.lo
}

// Overlaps reports whether x and y share at least one point.
func (x Interval) Overlaps(y Interval) bool { return !x.IsDisjoint(y) }

// IsSetEq reports bound-exact equality, including both empty.
func (x Interval) IsSetEq(y Interval) bool {
	if x.IsEmpty() || y.IsEmpty() {
		return x.IsEmpty() == y.IsEmpty()
	}
	return x.lo == y.lo && x.hi == y.hi
}
func (x Interval) IsSetNeq(y Interval) bool { return !x.IsSetEq(y) }

// Certainly/possibly comparators, spec §3: certainlyX holds for every
// pair of witnesses, possiblyX holds for some pair of witnesses.
func (x Interval) IsCertainlyLe(y Interval) bool { return !x.IsEmpty() && !y.IsEmpty() && x.hi <= y.lo }
func (x Interval) IsCertainlyLt(y Interval) bool { return !x.IsEmpty() && !y.IsEmpty() && x.hi < y.lo }
func (x Interval) IsCertainlyGe(y Interval) bool { return y.IsCertainlyLe(x) }
func (x Interval) IsCertainlyGt(y Interval) bool { return y.IsCertainlyLt(x) }
func (x Interval) IsCertainlyEq(y Interval) bool {
	return x.IsSingleton() && y.IsSingleton() && x.lo == y.lo
}
func (x Interval) IsCertainlyNeq(y Interval) bool { return x.IsDisjoint(y) }

func (x Interval) IsPossiblyLe(y Interval) bool { return !x.IsEmpty() && !y.IsEmpty() && x.lo <= y.hi }
func (x Interval) IsPossiblyLt(y Interval) bool { return !x.IsEmpty() && !y.IsEmpty() && x.lo < y.hi }
func (x Interval) IsPossiblyGe(y Interval) bool { return y.IsPossiblyLe(x) }
func (x Interval) IsPossiblyGt(y Interval) bool { return y.IsPossiblyLt(x) }
func (x Interval) IsPossiblyEq(y Interval) bool { return x.Overlaps(y) }
func (x Interval) IsPossiblyNeq(y Interval) bool {
	return x.IsEmpty() || y.IsEmpty() || !(x.IsSingleton() && y.IsSingleton() && x.lo == y.lo)
}

func (x Interval) IsCertainlyEqZero() bool { return x.IsCertainlyEq(Zero()) }
func (x Interval) IsCertainlyLeZero() bool { return x.IsCertainlyLe(Zero()) }
func (x Interval) IsCertainlyLtZero() bool { return x.IsCertainlyLt(Zero()) }
func (x Interval) IsCertainlyGeZero() bool { return x.IsCertainlyGe(Zero()) }
func (x Interval) IsCertainlyGtZero() bool { return x.IsCertainlyGt(Zero()) }
func (x Interval) IsPossiblyEqZero() bool  { return x.IsPossiblyEq(Zero()) }
func (x Interval) IsPossiblyLeZero() bool  { return x.IsPossiblyLe(Zero()) }
func (x Interval) IsPossiblyLtZero() bool  { return x.IsPossiblyLt(Zero()) }
func (x Interval) IsPossiblyGeZero() bool  { return x.IsPossiblyGe(Zero()) }
func (x Interval) IsPossiblyGtZero() bool  { return x.IsPossiblyGt(Zero()) }

// Distance returns the Hausdorff distance between two nonempty intervals.
func (x Interval) Distance(y Interval) float64 {
	if x.IsEmpty() || y.IsEmpty() {
		return math.Inf(1)
	}
	return math.Max(math.Abs(x.lo-y.lo), math.Abs(x.hi-y.hi))
}

// Intersect returns x ∩ y.
func (x Interval) Intersect(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	return New(math.Max(x.lo, y.lo), math.Min(x.hi, y.hi))
}

// Hull returns the least interval enclosing both x and y.
func (x Interval) Hull(y Interval) Interval {
	if x.IsEmpty() {
		return y
	}
	if y.IsEmpty() {
		return x
	}
	return Interval{lo: math.Min(x.lo, y.lo), hi: math.Max(x.hi, y.hi)}
}

// Complement returns the (up to two) components of the complement of x.
func Complement(x Interval) (Interval, Interval) {
	e := Empty()
	if x.IsEmpty() {
		return Universe(), e
	}
	infl, infr := x.IsInfLeft(), x.IsInfRight()
	switch {
	case infl && infr:
		return e, e
	case infl:
		return MoreThan(x.hi), e
	case infr:
		return LessThan(x.lo), e
	default:
		return LessThan(x.lo), MoreThan(x.hi)
	}
}

// SetMinus returns x \ y as (up to two) disjoint components.
func SetMinus(x, y Interval) (Interval, Interval) {
	e := Empty()
	if x.IsEmpty() || y.IsEmpty() {
		return x, e
	}
	if y.ContainsInterval(x) {
		return e, e
	}
	if x.ContainsInterval(y) {
		if y.IsSingleton() {
			return x, e
		}
		switch {
		case x.lo == y.lo:
			return New(y.hi, x.hi), e
		case x.hi == y.hi:
			return New(x.lo, y.lo), e
		default:
			return New(x.lo, y.lo), New(y.hi, x.hi)
		}
	}
	if y.Contains(x.lo) {
		return New(y.hi, x.hi), e
	}
	if y.Contains(x.hi) {
		return New(x.lo, y.lo), e
	}
	return x, e
}

// Round returns the largest integer-bounded interval inside x (ceil on
// the left, floor on the right; Empty if x holds no integer) — used to
// contract discrete domains (spec §4.4 Integrality contractor).
func Round(x Interval) Interval {
	if x.IsEmpty() {
		return x
	}
	lo, hi := x.lo, x.hi
	if !math.IsInf(lo, 0) {
		lo = math.Ceil(lo)
	}
	if !math.IsInf(hi, 0) {
		hi = math.Floor(hi)
	}
	return New(lo, hi)
}

// Inflate returns m(x) + delta*(x - m(x)) + chi*[-1, 1], used by the
// existence prover (spec §4.1, §4.8). Fails if delta <= 1 or chi < 0.
func (x Interval) Inflate(delta, chi float64) (Interval, error) {
	if delta <= 1.0 {
		return Empty(), fmt.Errorf("ivnum: bad inflation factor delta=%v, want > 1", delta)
	}
	if chi < 0.0 {
		return Empty(), fmt.Errorf("ivnum: bad inflation factor chi=%v, want >= 0", chi)
	}
	if x.IsEmpty() || x.IsInf() {
		return x, nil
	}
	m := Singleton(x.Midpoint())
	scaled := Singleton(delta).Mul(x.Sub(m))
	margin := Singleton(chi).Mul(MinusOnePlusOne())
	return m.Add(scaled).Add(margin), nil
}

func (x Interval) String() string {
	if x.IsEmpty() {
		return "[]"
	}
	if x.IsSingleton() {
		return fmt.Sprintf("[%g]", x.lo)
	}
	return fmt.Sprintf("[%g, %g]", x.lo, x.hi)
}

// HashCode mixes the bounds into a single code, used by the DAG's
// hash-consing table for constant leaves.
func (x Interval) HashCode() uint64 {
	if x.IsEmpty() {
		return 0x656d707479 // "empty" sentinel
	}
	h := math.Float64bits(x.lo)
	h = h*1099511628211 ^ math.Float64bits(x.hi)
	return h
}
