package ivnum

import "math"

// This file implements the elementary forward operations and their
// inverse projections (spec §3/§4.1): for z = f(x, y), PX(x, y, z),
// PY(x, y, z) and PZ(x, y, z) each return the largest subset of their
// first argument consistent with z = f(x, y). Grounded in realpaver's
// interval.cpp/interval_arithmetic.cpp (addPX/addPY/addPZ, mulPX, ...).

// Add returns x + y = [x.lo+y.lo, x.hi+y.hi], outward rounded.
func (x Interval) Add(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	return Interval{lo: roundDown(x.lo + y.lo), hi: roundUp(x.hi + y.hi)}
}

// AddPX projects z = x + y back onto x: x ∩ (z - y).
func AddPX(x, y, z Interval) Interval { return x.Intersect(z.Sub(y)) }

// AddPY projects z = x + y back onto y: y ∩ (z - x).
func AddPY(x, y, z Interval) Interval { return y.Intersect(z.Sub(x)) }

// AddPZ projects z = x + y back onto z: z ∩ (x + y).
func AddPZ(x, y, z Interval) Interval { return z.Intersect(x.Add(y)) }

// Sub returns x - y.
func (x Interval) Sub(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	return Interval{lo: roundDown(x.lo - y.hi), hi: roundUp(x.hi - y.lo)}
}

func SubPX(x, y, z Interval) Interval { return x.Intersect(z.Add(y)) }
func SubPY(x, y, z Interval) Interval { return y.Intersect(x.Sub(z)) }
func SubPZ(x, y, z Interval) Interval { return z.Intersect(x.Sub(y)) }

// Neg returns -x.
func (x Interval) Neg() Interval {
	if x.IsEmpty() {
		return Empty()
	}
	return Interval{lo: -x.hi, hi: -x.lo}
}

func USubPX(x, y Interval) Interval { return x.Intersect(y.Neg()) }

// Mul returns x * y, taking the hull over all four corner products.
func (x Interval) Mul(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	if x.IsZero() || y.IsZero() {
		return Zero()
	}
	a, b, c, d := x.lo, x.hi, y.lo, y.hi
	lo := math.Min(math.Min(a*c, a*d), math.Min(b*c, b*d))
	hi := math.Max(math.Max(a*c, a*d), math.Max(b*c, b*d))
	return Interval{lo: roundDown(lo), hi: roundUp(hi)}
}

// extDiv implements realpaver's extDiv: dividing by an interval that
// straddles zero splits into at most two disjoint pieces. Returns
// (first, second) with second == Empty() when a single piece suffices.
func extDiv(x, y Interval) (Interval, Interval) {
	if y.StrictlyContainsZero() {
		z1 := x.div1(y.Intersect(Negative()))
		z2 := x.div1(y.Intersect(Positive()))
		if z1.IsDisjoint(z2) {
			if z1.IsCertainlyLt(z2) {
				return z1, z2
			}
			return z2, z1
		}
		return z1.Hull(z2), Empty()
	}
	return x.div1(y), Empty()
}

// ExtDiv is the exported form of extDiv (spec §4.1 "extended-division operator").
func ExtDiv(x, y Interval) (Interval, Interval) { return extDiv(x, y) }

// div1 divides assuming y does not straddle zero (it may touch it at one endpoint).
func (x Interval) div1(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	if y.IsZero() {
		return Empty()
	}
	if x.IsZero() {
		return Zero()
	}
	a, b := x.lo, x.hi
	c, d := y.lo, y.hi
	// Endpoints touching zero are not clipped: a corner quotient with a
	// zero divisor comes out as +/-Inf under IEEE-754 division, and a
	// 0/0 corner (NaN) is skipped.
	candidates := [4]float64{a / c, a / d, b / c, b / d}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range candidates {
		if math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 1) && math.IsInf(hi, -1) {
		return Empty()
	}
	return Interval{lo: roundDown(lo), hi: roundUp(hi)}
}

// Div returns x / y using the extended-division rule of spec §4.1: if y
// straddles zero the result is the hull of the (at most two) pieces —
// callers needing the disjoint pieces separately should use ExtDiv.
func (x Interval) Div(y Interval) Interval {
	z1, z2 := extDiv(x, y)
	return z1.Hull(z2)
}

func MulPX(x, y, z Interval) Interval {
	if y.ContainsZero() && !y.IsZero() {
		if z.IsZero() {
			return x // no information: any x could produce z=0 when y can be 0
		}
	}
	return x.Intersect(z.Div(y))
}
func MulPY(x, y, z Interval) Interval { return MulPX(y, x, z) }
func MulPZ(x, y, z Interval) Interval { return z.Intersect(x.Mul(y)) }

func DivPX(x, y, z Interval) Interval { return x.Intersect(z.Mul(y)) }
func DivPY(x, y, z Interval) Interval {
	if x.ContainsZero() && z.IsZero() {
		return y
	}
	return y.Intersect(x.Div(z))
}
func DivPZ(x, y, z Interval) Interval { return z.Intersect(x.Div(y)) }

// Abs returns |x|.
func (x Interval) Abs() Interval {
	if x.IsEmpty() {
		return Empty()
	}
	if x.IsPositive() {
		return x
	}
	if x.IsNegative() {
		return x.Neg()
	}
	return New(0, math.Max(-x.lo, x.hi))
}

func AbsPX(x, z Interval) Interval {
	if z.IsEmpty() {
		return Empty()
	}
	pos := x.Intersect(z)
	neg := x.Intersect(z.Neg())
	return pos.Hull(neg)
}

// Sgn returns the interval image of the sign function (-1, 0, or 1 per
// component), as the hull of the signs attainable on x.
func (x Interval) Sgn() Interval {
	if x.IsEmpty() {
		return Empty()
	}
	lo, hi := 0.0, 0.0
	if x.lo < 0 {
		lo = -1
	} else if x.lo > 0 {
		lo = 1
	}
	if x.hi < 0 {
		hi = -1
	} else if x.hi > 0 {
		hi = 1
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if x.ContainsZero() {
		lo = math.Min(lo, 0)
		hi = math.Max(hi, 0)
	}
	return New(lo, hi)
}

func SgnPX(x, z Interval) Interval {
	if z.IsEmpty() {
		return Empty()
	}
	switch {
	case z.IsStrictlyPositive():
		return x.Intersect(Positive())
	case z.IsStrictlyNegative():
		return x.Intersect(Negative())
	case z.IsZero():
		return x.Intersect(Zero())
	default:
		return x
	}
}

// Sqr returns x^2.
func (x Interval) Sqr() Interval {
	if x.IsEmpty() {
		return Empty()
	}
	a := x.Abs()
	return Interval{lo: roundDown(a.lo * a.lo), hi: roundUp(a.hi * a.hi)}
}

func SqrPX(x, z Interval) Interval {
	if z.IsEmpty() || z.hi < 0 {
		return Empty()
	}
	lo := math.Max(0, z.lo)
	s := Interval{lo: roundDown(math.Sqrt(lo)), hi: roundUp(math.Sqrt(z.hi))}
	pos := x.Intersect(s)
	neg := x.Intersect(s.Neg())
	return pos.Hull(neg)
}

// Sqrt returns the (nonnegative) square root image of x. Undefined for
// the negative part, which is clipped away rather than returned as NaN.
func (x Interval) Sqrt() Interval {
	if x.IsEmpty() {
		return Empty()
	}
	y := x.Intersect(Positive())
	if y.IsEmpty() {
		return Empty()
	}
	return Interval{lo: roundDown(math.Sqrt(y.lo)), hi: roundUp(math.Sqrt(y.hi))}
}

func SqrtPX(x, z Interval) Interval {
	if z.IsEmpty() {
		return Empty()
	}
	return x.Intersect(z.Sqr())
}

// Pow returns x^n for an integer exponent n >= 0.
func (x Interval) Pow(n int) Interval {
	if x.IsEmpty() {
		return Empty()
	}
	switch n {
	case 0:
		return One()
	case 1:
		return x
	}
	if n%2 == 0 {
		a := x.Abs()
		lo := math.Pow(a.lo, float64(n))
		hi := math.Pow(a.hi, float64(n))
		return Interval{lo: roundDown(lo), hi: roundUp(hi)}
	}
	lo := math.Pow(x.lo, float64(n))
	hi := math.Pow(x.hi, float64(n))
	if x.lo < 0 {
		lo = -math.Pow(-x.lo, float64(n))
	}
	if x.hi < 0 {
		hi = -math.Pow(-x.hi, float64(n))
	}
	return Interval{lo: roundDown(lo), hi: roundUp(hi)}
}

// PowPX projects z = x^n back onto x (n >= 1).
func PowPX(x Interval, n int, z Interval) Interval {
	if z.IsEmpty() || n == 0 {
		return x
	}
	if n == 1 {
		return x.Intersect(z)
	}
	if n%2 == 0 {
		if z.hi < 0 {
			return Empty()
		}
		lo := math.Max(0, z.lo)
		root := Interval{lo: roundDown(math.Pow(lo, 1.0/float64(n))), hi: roundUp(math.Pow(z.hi, 1.0/float64(n)))}
		pos := x.Intersect(root)
		neg := x.Intersect(root.Neg())
		return pos.Hull(neg)
	}
	lo, hi := z.lo, z.hi
	var rl, rh float64
	if lo >= 0 {
		rl = math.Pow(lo, 1.0/float64(n))
	} else {
		rl = -math.Pow(-lo, 1.0/float64(n))
	}
	if hi >= 0 {
		rh = math.Pow(hi, 1.0/float64(n))
	} else {
		rh = -math.Pow(-hi, 1.0/float64(n))
	}
	return x.Intersect(Interval{lo: roundDown(rl), hi: roundUp(rh)})
}

// Exp returns e^x; exp is monotone so the image is just the endpoints.
func (x Interval) Exp() Interval {
	if x.IsEmpty() {
		return Empty()
	}
	lo := 0.0
	if !math.IsInf(x.lo, -1) {
		lo = math.Exp(x.lo)
	}
	hi := math.Inf(1)
	if !math.IsInf(x.hi, 1) {
		hi = math.Exp(x.hi)
	}
	return Interval{lo: roundDown(lo), hi: roundUp(hi)}
}

func ExpPX(x, z Interval) Interval { return x.Intersect(z.Log()) }

// Log returns ln(x), clipped to the positive domain.
func (x Interval) Log() Interval {
	if x.IsEmpty() {
		return Empty()
	}
	y := x.Intersect(Positive())
	if y.IsEmpty() || y.hi == 0 {
		return Empty()
	}
	lo := math.Inf(-1)
	if y.lo > 0 {
		lo = math.Log(y.lo)
	}
	hi := math.Inf(1)
	if !math.IsInf(y.hi, 1) {
		hi = math.Log(y.hi)
	}
	return Interval{lo: roundDown(lo), hi: roundUp(hi)}
}

func LogPX(x, z Interval) Interval { return x.Intersect(z.Exp()) }

// Min returns the interval image of min(x, y).
func (x Interval) Min(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	return Interval{lo: roundDown(math.Min(x.lo, y.lo)), hi: roundUp(math.Min(x.hi, y.hi))}
}

func MinPX(x, y, z Interval) Interval {
	// z = min(x, y) constrains x >= z, and if y's lower bound already
	// exceeds z's upper bound then x must realize it exactly from below.
	if y.lo > z.hi {
		return x.Intersect(z)
	}
	return x.Intersect(New(z.lo, math.Inf(1)))
}
func MinPY(x, y, z Interval) Interval { return MinPX(y, x, z) }

// Max returns the interval image of max(x, y).
func (x Interval) Max(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	return Interval{lo: roundDown(math.Max(x.lo, y.lo)), hi: roundUp(math.Max(x.hi, y.hi))}
}

func MaxPX(x, y, z Interval) Interval {
	return x.Intersect(New(math.Inf(-1), z.hi))
}
func MaxPY(x, y, z Interval) Interval { return MaxPX(y, x, z) }
