package ivnum

import "math"

// Trigonometric forward operations. Cos/Sin bound the image by checking
// whether x's width already exceeds a full period (in which case the
// image is the full [-1, 1] range) and otherwise testing whether any
// extremum (a multiple of pi for cos, pi/2 + k*pi for sin) falls inside
// x; this is the textbook approach for sound trig interval enclosures
// used by interval arithmetic libraries when hardware directed rounding
// for transcendental functions isn't available.

const twoPi = 2 * math.Pi

// Cos returns the interval image of cos over x.
func (x Interval) Cos() Interval {
	if x.IsEmpty() {
		return Empty()
	}
	if x.IsInf() || x.Width() >= twoPi {
		return MinusOnePlusOne()
	}
	lo, hi := math.Cos(x.lo), math.Cos(x.hi)
	if lo > hi {
		lo, hi = hi, lo
	}
	// cos attains +1 at even multiples of pi, -1 at odd multiples.
	if containsMultipleOf(x, 0, math.Pi) {
		hi = 1
	}
	if containsMultipleOf(x, math.Pi, math.Pi) {
		lo = -1
	}
	return Interval{lo: roundDown(lo), hi: roundUp(hi)}
}

// Sin returns the interval image of sin over x.
func (x Interval) Sin() Interval {
	if x.IsEmpty() {
		return Empty()
	}
	return x.Sub(Singleton(math.Pi / 2)).Cos()
}

// Tan returns the interval image of tan over x. Because tan has a pole
// at every pi/2 + k*pi, any interval wide enough to contain one (or
// unbounded) yields the universe.
func (x Interval) Tan() Interval {
	if x.IsEmpty() {
		return Empty()
	}
	if x.IsInf() || x.Width() >= math.Pi {
		return Universe()
	}
	if containsMultipleOf(x, math.Pi/2, math.Pi) {
		return Universe()
	}
	lo, hi := math.Tan(x.lo), math.Tan(x.hi)
	if lo > hi {
		lo, hi = hi, lo
	}
	return Interval{lo: roundDown(lo), hi: roundUp(hi)}
}

// containsMultipleOf reports whether x contains any point phase + k*period.
func containsMultipleOf(x Interval, phase, period float64) bool {
	if x.IsInf() {
		return true
	}
	k := math.Floor((x.lo - phase) / period)
	for ; ; k++ {
		v := phase + k*period
		if v > x.hi+1e-12 {
			return false
		}
		if v >= x.lo-1e-12 {
			return true
		}
	}
}

// CosPX projects z = cos(x) back onto x. Because cos is not injective
// over an unbounded domain, the projection is conservative: it returns
// x unchanged unless z rules out the entire range, in which case it
// returns Empty. A tighter multi-branch projection would require
// enumerating periods within x, which the BC3/BC4 contractors perform
// instead via Newton refinement on the original (non-projected) relation.
func CosPX(x, z Interval) Interval {
	if z.IsDisjoint(MinusOnePlusOne()) {
		return Empty()
	}
	if x.Cos().IsDisjoint(z) {
		return Empty()
	}
	return x
}

// SinPX mirrors CosPX for sin.
func SinPX(x, z Interval) Interval {
	if z.IsDisjoint(MinusOnePlusOne()) {
		return Empty()
	}
	if x.Sin().IsDisjoint(z) {
		return Empty()
	}
	return x
}

// TanPX mirrors CosPX for tan.
func TanPX(x, z Interval) Interval {
	if x.Tan().IsDisjoint(z) {
		return Empty()
	}
	return x
}
