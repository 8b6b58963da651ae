// Package ivterm implements spec §3/§4's Term algebra: an expression
// built from constants, variables and a fixed operator set, with
// canonicalizing constructors, a structural hash code, constancy/
// linearity flags, a free-variable scope walker and symbolic
// differentiation. Grounded in realpaver's Term/TermRep class hierarchy
// (original_source/src/realpaver/term.hpp, term.cpp) and its visitor-based
// TermDeriver (term_deriver.hpp/cpp), translated from a shared_ptr class
// hierarchy plus visitor pattern into a single tagged-variant value type
// switched over by Kind, the idiomatic Go rendering of a closed operator
// set.
package ivterm

import (
	"fmt"

	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
)

// Kind tags a Term node's operator.
type Kind int

const (
	KindConst Kind = iota
	KindVar
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindMin
	KindMax
	KindUsb // unary minus
	KindAbs
	KindSgn
	KindSqr
	KindSqrt
	KindPow
	KindExp
	KindLog
	KindCos
	KindSin
	KindTan
)

func (k Kind) String() string {
	switch k {
	case KindConst:
		return "const"
	case KindVar:
		return "var"
	case KindAdd:
		return "+"
	case KindSub:
		return "-"
	case KindMul:
		return "*"
	case KindDiv:
		return "/"
	case KindMin:
		return "min"
	case KindMax:
		return "max"
	case KindUsb:
		return "-u"
	case KindAbs:
		return "abs"
	case KindSgn:
		return "sgn"
	case KindSqr:
		return "sqr"
	case KindSqrt:
		return "sqrt"
	case KindPow:
		return "pow"
	case KindExp:
		return "exp"
	case KindLog:
		return "log"
	case KindCos:
		return "cos"
	case KindSin:
		return "sin"
	case KindTan:
		return "tan"
	default:
		return "?"
	}
}

// Term is an immutable expression node. A Term with no children is a
// leaf (constant or variable); any other Kind carries 1 or 2 children in
// Args. Terms are plain Go values (not hash-consed among themselves —
// hash-consing happens when a Term is compiled into a pkg/ivdag.Dag);
// equal sub-Terms built by separate calls are simply equal values, not
// pointer-shared, matching realpaver's Term being a thin handle around a
// freshly allocated TermRep unless the caller explicitly reuses one.
type Term struct {
	kind  Kind
	value ivnum.Interval // only meaningful for KindConst
	v     ivscope.Variable // only meaningful for KindVar
	n     int              // integer exponent, only meaningful for KindPow
	args  []Term
}

// Const builds a constant term from an interval.
func Const(x ivnum.Interval) Term { return Term{kind: KindConst, value: x} }

// Num builds a constant term from a real number.
func Num(a float64) Term { return Const(ivnum.Singleton(a)) }

// Var builds a leaf term referencing a variable.
func Var(v ivscope.Variable) Term { return Term{kind: KindVar, v: v} }

// Kind returns the term's operator tag.
func (t Term) Kind() Kind { return t.kind }

// Args returns the term's children (nil for a leaf).
func (t Term) Args() []Term { return t.args }

// Value returns the constant interval of a KindConst term.
func (t Term) Value() ivnum.Interval { return t.value }

// Variable returns the referenced variable of a KindVar term.
func (t Term) Variable() ivscope.Variable { return t.v }

// Exponent returns the integer exponent of a KindPow term.
func (t Term) Exponent() int { return t.n }

func bin(k Kind, l, r Term) Term { return Term{kind: k, args: []Term{l, r}} }
func un(k Kind, a Term) Term     { return Term{kind: k, args: []Term{a}} }

// Add builds l + r, canonicalizing x+0 and 0+x.
func Add(l, r Term) Term {
	if l.IsZero() {
		return r
	}
	if r.IsZero() {
		return l
	}
	if l.kind == KindConst && r.kind == KindConst {
		return Const(l.value.Add(r.value))
	}
	return bin(KindAdd, l, r)
}

// Sub builds l - r, canonicalizing x-0. x-x is left unsimplified,
// matching realpaver, which does not fold x-x to 0.
func Sub(l, r Term) Term {
	if r.IsZero() {
		return l
	}
	if l.kind == KindConst && r.kind == KindConst {
		return Const(l.value.Sub(r.value))
	}
	return bin(KindSub, l, r)
}

// Mul builds l * r, canonicalizing multiplication by 0, 1 and -1.
func Mul(l, r Term) Term {
	if l.IsZero() || r.IsZero() {
		return Num(0)
	}
	if l.IsOne() {
		return r
	}
	if r.IsOne() {
		return l
	}
	if l.IsMinusOne() {
		return Neg(r)
	}
	if r.IsMinusOne() {
		return Neg(l)
	}
	if l.kind == KindConst && r.kind == KindConst {
		return Const(l.value.Mul(r.value))
	}
	return bin(KindMul, l, r)
}

// Div builds l / r, canonicalizing division by 1.
func Div(l, r Term) Term {
	if r.IsOne() {
		return l
	}
	if l.kind == KindConst && r.kind == KindConst {
		return Const(l.value.Div(r.value))
	}
	return bin(KindDiv, l, r)
}

// Min builds the binary minimum of l and r.
func Min(l, r Term) Term {
	if l.kind == KindConst && r.kind == KindConst {
		return Const(l.value.Min(r.value))
	}
	return bin(KindMin, l, r)
}

// Max builds the binary maximum of l and r.
func Max(l, r Term) Term {
	if l.kind == KindConst && r.kind == KindConst {
		return Const(l.value.Max(r.value))
	}
	return bin(KindMax, l, r)
}

// Neg builds -t.
func Neg(t Term) Term {
	if t.kind == KindConst {
		return Const(t.value.Neg())
	}
	if t.kind == KindUsb {
		return t.args[0]
	}
	return un(KindUsb, t)
}

// Abs builds |t|.
func Abs(t Term) Term {
	if t.kind == KindConst {
		return Const(t.value.Abs())
	}
	return un(KindAbs, t)
}

// Sgn builds sgn(t).
func Sgn(t Term) Term {
	if t.kind == KindConst {
		return Const(t.value.Sgn())
	}
	return un(KindSgn, t)
}

// Sqr builds t^2.
func Sqr(t Term) Term {
	if t.kind == KindConst {
		return Const(t.value.Sqr())
	}
	return un(KindSqr, t)
}

// Sqrt builds sqrt(t).
func Sqrt(t Term) Term {
	if t.kind == KindConst {
		return Const(t.value.Sqrt())
	}
	return un(KindSqrt, t)
}

// Pow builds t^n for an integer exponent n.
func Pow(t Term, n int) Term {
	if n == 1 {
		return t
	}
	if n == 2 {
		return Sqr(t)
	}
	if t.kind == KindConst {
		return Const(t.value.Pow(n))
	}
	return Term{kind: KindPow, args: []Term{t}, n: n}
}

// Exp builds exp(t).
func Exp(t Term) Term {
	if t.kind == KindConst {
		return Const(t.value.Exp())
	}
	return un(KindExp, t)
}

// Log builds log(t).
func Log(t Term) Term {
	if t.kind == KindConst {
		return Const(t.value.Log())
	}
	return un(KindLog, t)
}

// Cos builds cos(t).
func Cos(t Term) Term {
	if t.kind == KindConst {
		return Const(t.value.Cos())
	}
	return un(KindCos, t)
}

// Sin builds sin(t).
func Sin(t Term) Term {
	if t.kind == KindConst {
		return Const(t.value.Sin())
	}
	return un(KindSin, t)
}

// Tan builds tan(t).
func Tan(t Term) Term {
	if t.kind == KindConst {
		return Const(t.value.Tan())
	}
	return un(KindTan, t)
}

// IsConstant reports whether t's value does not depend on any variable.
func (t Term) IsConstant() bool {
	if t.kind == KindConst {
		return true
	}
	if t.kind == KindVar {
		return false
	}
	for _, a := range t.args {
		if !a.IsConstant() {
			return false
		}
	}
	return true
}

// IsZero reports whether t is the constant 0.
func (t Term) IsZero() bool { return t.kind == KindConst && t.value.IsZero() }

// IsOne reports whether t is the constant 1.
func (t Term) IsOne() bool {
	return t.kind == KindConst && t.value.IsSingleton() && t.value.Lo() == 1
}

// IsMinusOne reports whether t is the constant -1.
func (t Term) IsMinusOne() bool {
	return t.kind == KindConst && t.value.IsSingleton() && t.value.Lo() == -1
}

// IsLinear reports whether t is a linear combination of variables and
// constants — additive/subtractive combinations of linear terms, and
// constant-scaled multiplication/division, but not a product or
// quotient of two non-constant subterms, nor any transcendental or
// nonlinear operator.
func (t Term) IsLinear() bool {
	switch t.kind {
	case KindConst, KindVar:
		return true
	case KindAdd, KindSub:
		return t.args[0].IsLinear() && t.args[1].IsLinear()
	case KindUsb:
		return t.args[0].IsLinear()
	case KindMul:
		return (t.args[0].IsConstant() && t.args[1].IsLinear()) ||
			(t.args[1].IsConstant() && t.args[0].IsLinear())
	case KindDiv:
		return t.args[1].IsConstant() && t.args[0].IsLinear()
	default:
		return false
	}
}

// DependsOn reports whether t's evaluation reads variable v.
func (t Term) DependsOn(v ivscope.Variable) bool {
	switch t.kind {
	case KindConst:
		return false
	case KindVar:
		return t.v.Equal(v)
	default:
		for _, a := range t.args {
			if a.DependsOn(v) {
				return true
			}
		}
		return false
	}
}

// Scope walks t and returns the set of variables it depends on, with
// occurrence counts — the free-variable scope realpaver's
// Term::makeScope accumulates into a caller-supplied Scope.
func (t Term) Scope() *ivscope.Scope {
	s := ivscope.NewScope()
	t.collectScope(s)
	return s
}

func (t Term) collectScope(s *ivscope.Scope) {
	switch t.kind {
	case KindConst:
		return
	case KindVar:
		s.InsertVar(t.v)
	default:
		for _, a := range t.args {
			a.collectScope(s)
		}
	}
}

// Eval computes t's interval image directly over box B by a plain
// recursive forward pass — the reference evaluator used by tests and by
// callers that don't need a Dag's shared-subexpression or contraction
// machinery.
func (t Term) Eval(box ivscope.Box) ivnum.Interval {
	switch t.kind {
	case KindConst:
		return t.value
	case KindVar:
		return box.Get(t.v)
	case KindAdd:
		return t.args[0].Eval(box).Add(t.args[1].Eval(box))
	case KindSub:
		return t.args[0].Eval(box).Sub(t.args[1].Eval(box))
	case KindMul:
		return t.args[0].Eval(box).Mul(t.args[1].Eval(box))
	case KindDiv:
		return t.args[0].Eval(box).Div(t.args[1].Eval(box))
	case KindMin:
		return t.args[0].Eval(box).Min(t.args[1].Eval(box))
	case KindMax:
		return t.args[0].Eval(box).Max(t.args[1].Eval(box))
	case KindUsb:
		return t.args[0].Eval(box).Neg()
	case KindAbs:
		return t.args[0].Eval(box).Abs()
	case KindSgn:
		return t.args[0].Eval(box).Sgn()
	case KindSqr:
		return t.args[0].Eval(box).Sqr()
	case KindSqrt:
		return t.args[0].Eval(box).Sqrt()
	case KindPow:
		return t.args[0].Eval(box).Pow(t.n)
	case KindExp:
		return t.args[0].Eval(box).Exp()
	case KindLog:
		return t.args[0].Eval(box).Log()
	case KindCos:
		return t.args[0].Eval(box).Cos()
	case KindSin:
		return t.args[0].Eval(box).Sin()
	case KindTan:
		return t.args[0].Eval(box).Tan()
	default:
		return ivnum.Empty()
	}
}

// EvalConst evaluates t, which must be IsConstant, without a box.
func (t Term) EvalConst() ivnum.Interval { return t.Eval(ivscope.Box{}) }

// HashCode returns a structural hash, used by pkg/ivdag to recognize
// repeated subexpressions during compilation.
func (t Term) HashCode() uint64 {
	h := uint64(t.kind) * 1099511628211
	switch t.kind {
	case KindConst:
		h ^= t.value.HashCode()
	case KindVar:
		h ^= uint64(t.v.ID()+1) * 2654435761
	case KindPow:
		h = h*31 + t.args[0].HashCode()
		h = h*31 + uint64(t.n)
	default:
		for _, a := range t.args {
			h = h*31 + a.HashCode()
		}
	}
	return h
}

// String renders t using realpaver's print layout for priority-based
// parenthesization (TermRep::priority/Term::print).
func (t Term) String() string {
	switch t.kind {
	case KindConst:
		return t.value.String()
	case KindVar:
		return t.v.String()
	case KindAdd:
		return fmt.Sprintf("(%s + %s)", t.args[0], t.args[1])
	case KindSub:
		return fmt.Sprintf("(%s - %s)", t.args[0], t.args[1])
	case KindMul:
		return fmt.Sprintf("(%s * %s)", t.args[0], t.args[1])
	case KindDiv:
		return fmt.Sprintf("(%s / %s)", t.args[0], t.args[1])
	case KindMin:
		return fmt.Sprintf("min(%s, %s)", t.args[0], t.args[1])
	case KindMax:
		return fmt.Sprintf("max(%s, %s)", t.args[0], t.args[1])
	case KindUsb:
		return fmt.Sprintf("-%s", t.args[0])
	case KindPow:
		return fmt.Sprintf("%s^%d", t.args[0], t.n)
	default:
		return fmt.Sprintf("%s(%s)", t.kind, t.args[0])
	}
}
