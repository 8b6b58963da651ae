package ivscope

import (
	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivproblem"
)

// Tolerance bounds how much an interval may change before the change is
// considered meaningful (spec §4.5 step 3, §4.6 "splittable iff width
// exceeds the per-variable output tolerance"). A Tolerance can be
// absolute, relative, or both; two intervals are "close" when both
// bounds have moved by less than the tolerance.
type Tolerance struct {
	Rel float64
	Abs float64
}

// NewRelTolerance builds a purely relative tolerance. rel must be >= 0.
func NewRelTolerance(rel float64) (Tolerance, error) {
	if rel < 0 {
		return Tolerance{}, ivproblem.NewFaultError(ivproblem.FaultBadTolerance, "relative tolerance %v < 0", rel)
	}
	return Tolerance{Rel: rel}, nil
}

// NewAbsTolerance builds a purely absolute tolerance. abs must be >= 0.
func NewAbsTolerance(abs float64) (Tolerance, error) {
	if abs < 0 {
		return Tolerance{}, ivproblem.NewFaultError(ivproblem.FaultBadTolerance, "absolute tolerance %v < 0", abs)
	}
	return Tolerance{Abs: abs}, nil
}

// scale returns the allowed movement for an interval of the given
// magnitude: the relative component scaled by magnitude plus the
// absolute component.
func (t Tolerance) scale(mag float64) float64 {
	return t.Abs + t.Rel*mag
}

// AreClose reports whether curr is within tolerance of prev — used by
// the propagator to decide whether a contraction was "meaningful"
// enough to reactivate dependent contractors (spec §4.5).
func (t Tolerance) AreClose(prev, curr ivnum.Interval) bool {
	if prev.IsEmpty() || curr.IsEmpty() {
		return prev.IsEmpty() == curr.IsEmpty()
	}
	tol := t.scale(prev.Mag())
	return abs64(prev.Lo()-curr.Lo()) <= tol && abs64(prev.Hi()-curr.Hi()) <= tol
}

// HasTolerance reports whether x's width is already within tolerance —
// i.e. x is no longer usefully splittable (spec §4.6).
func (t Tolerance) HasTolerance(x ivnum.Interval) bool {
	if x.IsEmpty() || x.IsSingleton() {
		return true
	}
	return x.Width() <= t.scale(x.Mag())
}

func abs64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
