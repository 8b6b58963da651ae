package ivterm

import "github.com/ivsolve/ivsolve/pkg/ivscope"

// Deriv returns the symbolic partial derivative of t with respect to v.
// Grounded in realpaver's TermDeriver visitor (term_deriver.cpp), which
// walks a Term tree applying the standard differentiation rules; min/max
// have no derivative at the crossover point, so Deriv returns
// (Term{}, false) for any subterm rooted at KindMin/KindMax that depends
// on v, mirroring spec §4's requirement that non-differentiable
// operators are flagged rather than silently approximated — callers
// (BC3/BC4's Newton step) fall back to a non-Newton contraction when
// differentiation fails.
func Deriv(t Term, v ivscope.Variable) (Term, bool) {
	if !t.DependsOn(v) {
		return Num(0), true
	}
	switch t.kind {
	case KindConst:
		return Num(0), true
	case KindVar:
		if t.v.Equal(v) {
			return Num(1), true
		}
		return Num(0), true
	case KindAdd:
		dl, ok1 := Deriv(t.args[0], v)
		dr, ok2 := Deriv(t.args[1], v)
		if !ok1 || !ok2 {
			return Term{}, false
		}
		return Add(dl, dr), true
	case KindSub:
		dl, ok1 := Deriv(t.args[0], v)
		dr, ok2 := Deriv(t.args[1], v)
		if !ok1 || !ok2 {
			return Term{}, false
		}
		return Sub(dl, dr), true
	case KindUsb:
		d, ok := Deriv(t.args[0], v)
		if !ok {
			return Term{}, false
		}
		return Neg(d), true
	case KindMul:
		l, r := t.args[0], t.args[1]
		dl, ok1 := Deriv(l, v)
		dr, ok2 := Deriv(r, v)
		if !ok1 || !ok2 {
			return Term{}, false
		}
		// (l*r)' = l'*r + l*r'
		return Add(Mul(dl, r), Mul(l, dr)), true
	case KindDiv:
		l, r := t.args[0], t.args[1]
		dl, ok1 := Deriv(l, v)
		dr, ok2 := Deriv(r, v)
		if !ok1 || !ok2 {
			return Term{}, false
		}
		// (l/r)' = (l'*r - l*r') / r^2
		return Div(Sub(Mul(dl, r), Mul(l, dr)), Sqr(r)), true
	case KindMin, KindMax:
		return Term{}, false
	case KindAbs:
		// d|u|/dx = sgn(u) * u', undefined exactly at u=0 but realpaver
		// accepts the same convention.
		d, ok := Deriv(t.args[0], v)
		if !ok {
			return Term{}, false
		}
		return Mul(Sgn(t.args[0]), d), true
	case KindSgn:
		return Term{}, false
	case KindSqr:
		d, ok := Deriv(t.args[0], v)
		if !ok {
			return Term{}, false
		}
		return Mul(Mul(Num(2), t.args[0]), d), true
	case KindSqrt:
		d, ok := Deriv(t.args[0], v)
		if !ok {
			return Term{}, false
		}
		return Div(d, Mul(Num(2), Sqrt(t.args[0]))), true
	case KindPow:
		d, ok := Deriv(t.args[0], v)
		if !ok {
			return Term{}, false
		}
		n := t.n
		return Mul(Mul(Num(float64(n)), Pow(t.args[0], n-1)), d), true
	case KindExp:
		d, ok := Deriv(t.args[0], v)
		if !ok {
			return Term{}, false
		}
		return Mul(Exp(t.args[0]), d), true
	case KindLog:
		d, ok := Deriv(t.args[0], v)
		if !ok {
			return Term{}, false
		}
		return Div(d, t.args[0]), true
	case KindCos:
		d, ok := Deriv(t.args[0], v)
		if !ok {
			return Term{}, false
		}
		return Mul(Neg(Sin(t.args[0])), d), true
	case KindSin:
		d, ok := Deriv(t.args[0], v)
		if !ok {
			return Term{}, false
		}
		return Mul(Cos(t.args[0]), d), true
	case KindTan:
		d, ok := Deriv(t.args[0], v)
		if !ok {
			return Term{}, false
		}
		// d(tan u)/dx = u' / cos(u)^2
		return Div(d, Sqr(Cos(t.args[0]))), true
	default:
		return Term{}, false
	}
}

// IsDifferentiable reports whether Deriv(t, v) would succeed.
func IsDifferentiable(t Term, v ivscope.Variable) bool {
	_, ok := Deriv(t, v)
	return ok
}
