package ivdag

import (
	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivterm"
)

// applyBinary computes the forward image of a two-argument operator.
func applyBinary(k ivterm.Kind, x, y ivnum.Interval) ivnum.Interval {
	switch k {
	case ivterm.KindAdd:
		return x.Add(y)
	case ivterm.KindSub:
		return x.Sub(y)
	case ivterm.KindMul:
		return x.Mul(y)
	case ivterm.KindDiv:
		return x.Div(y)
	case ivterm.KindMin:
		return x.Min(y)
	case ivterm.KindMax:
		return x.Max(y)
	default:
		return ivnum.Empty()
	}
}

// applyUnary computes the forward image of a one-argument operator. n is
// the integer exponent, meaningful only for KindPow.
func applyUnary(k ivterm.Kind, x ivnum.Interval, n int) ivnum.Interval {
	switch k {
	case ivterm.KindUsb:
		return x.Neg()
	case ivterm.KindAbs:
		return x.Abs()
	case ivterm.KindSgn:
		return x.Sgn()
	case ivterm.KindSqr:
		return x.Sqr()
	case ivterm.KindSqrt:
		return x.Sqrt()
	case ivterm.KindPow:
		return x.Pow(n)
	case ivterm.KindExp:
		return x.Exp()
	case ivterm.KindLog:
		return x.Log()
	case ivterm.KindCos:
		return x.Cos()
	case ivterm.KindSin:
		return x.Sin()
	case ivterm.KindTan:
		return x.Tan()
	default:
		return ivnum.Empty()
	}
}

// projectBinary narrows x and y (the forward operands) given z (the
// current backward target for the operator's result), returning the
// contracted (x, y). Grounded in realpaver's per-operator *PX/*PY
// projection functions (term.cpp), themselves wrapping pkg/ivnum's
// Newton-style inverse formulas.
func projectBinary(k ivterm.Kind, x, y, z ivnum.Interval) (ivnum.Interval, ivnum.Interval) {
	switch k {
	case ivterm.KindAdd:
		return ivnum.AddPX(x, y, z), ivnum.AddPY(x, y, z)
	case ivterm.KindSub:
		return ivnum.SubPX(x, y, z), ivnum.SubPY(x, y, z)
	case ivterm.KindMul:
		return ivnum.MulPX(x, y, z), ivnum.MulPY(x, y, z)
	case ivterm.KindDiv:
		return ivnum.DivPX(x, y, z), ivnum.DivPY(x, y, z)
	case ivterm.KindMin:
		return ivnum.MinPX(x, y, z), ivnum.MinPY(x, y, z)
	case ivterm.KindMax:
		return ivnum.MaxPX(x, y, z), ivnum.MaxPY(x, y, z)
	default:
		return x, y
	}
}

// projectUnary narrows x given z, the current backward target for the
// operator's result.
func projectUnary(k ivterm.Kind, x ivnum.Interval, n int, z ivnum.Interval) ivnum.Interval {
	switch k {
	case ivterm.KindUsb:
		return ivnum.USubPX(x, z)
	case ivterm.KindAbs:
		return ivnum.AbsPX(x, z)
	case ivterm.KindSgn:
		return ivnum.SgnPX(x, z)
	case ivterm.KindSqr:
		return ivnum.SqrPX(x, z)
	case ivterm.KindSqrt:
		return ivnum.SqrtPX(x, z)
	case ivterm.KindPow:
		return ivnum.PowPX(x, n, z)
	case ivterm.KindExp:
		return ivnum.ExpPX(x, z)
	case ivterm.KindLog:
		return ivnum.LogPX(x, z)
	case ivterm.KindCos:
		return ivnum.CosPX(x, z)
	case ivterm.KindSin:
		return ivnum.SinPX(x, z)
	case ivterm.KindTan:
		return ivnum.TanPX(x, z)
	default:
		return x
	}
}
