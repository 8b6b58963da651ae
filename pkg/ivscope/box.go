package ivscope

import (
	"fmt"
	"strings"

	"github.com/ivsolve/ivsolve/pkg/ivnum"
)

// Box is a mapping from a scope to one interval per variable (spec §3). A
// box is empty iff any of its components is empty. Components are
// indexed by the owning scope's compact 0..n-1 order, mirroring
// realpaver's Box, which stores a std::vector<Interval> parallel to its
// Scope.
type Box struct {
	scope *Scope
	dom   []ivnum.Interval
}

// NewBox builds a box over scope with every component set to dom.
func NewBox(scope *Scope, dom ivnum.Interval) Box {
	b := Box{scope: scope, dom: make([]ivnum.Interval, scope.Size())}
	for i := range b.dom {
		b.dom[i] = dom
	}
	return b
}

// NewBoxFromDomains builds a box reading each variable's initial domain
// from the scope itself.
func NewBoxFromDomains(scope *Scope) Box {
	b := Box{scope: scope, dom: make([]ivnum.Interval, scope.Size())}
	for i, v := range scope.Variables() {
		b.dom[i] = v.Domain()
	}
	return b
}

// Scope returns the box's owning scope.
func (b Box) Scope() *Scope { return b.scope }

// Size returns the number of components.
func (b Box) Size() int { return len(b.dom) }

// At returns the interval at compact index i.
func (b Box) At(i int) ivnum.Interval { return b.dom[i] }

// SetAt replaces the interval at compact index i.
func (b Box) SetAt(i int, x ivnum.Interval) { b.dom[i] = x }

// Get returns the interval bound to variable v, or Empty if v is not in
// the box's scope.
func (b Box) Get(v Variable) ivnum.Interval {
	i, ok := b.scope.IndexOf(v.ID())
	if !ok {
		return ivnum.Empty()
	}
	return b.dom[i]
}

// Set rebinds v's interval, a no-op if v is not in the box's scope.
func (b Box) Set(v Variable, x ivnum.Interval) {
	if i, ok := b.scope.IndexOf(v.ID()); ok {
		b.dom[i] = x
	}
}

// Clone returns an independent copy sharing the same (immutable) scope.
func (b Box) Clone() Box {
	return Box{scope: b.scope, dom: append([]ivnum.Interval(nil), b.dom...)}
}

// IsEmpty reports whether any component is empty.
func (b Box) IsEmpty() bool {
	for _, x := range b.dom {
		if x.IsEmpty() {
			return true
		}
	}
	return false
}

// Contains reports whether other is componentwise contained in b. other
// must share b's scope.
func (b Box) Contains(other Box) bool {
	for i := range b.dom {
		if !b.dom[i].ContainsInterval(other.dom[i]) {
			return false
		}
	}
	return true
}

// Intersect returns the componentwise intersection of b and other, which
// must share b's scope.
func (b Box) Intersect(other Box) Box {
	r := Box{scope: b.scope, dom: make([]ivnum.Interval, len(b.dom))}
	for i := range b.dom {
		r.dom[i] = b.dom[i].Intersect(other.dom[i])
	}
	return r
}

// Hull returns the componentwise hull of b and other, which must share
// b's scope.
func (b Box) Hull(other Box) Box {
	r := Box{scope: b.scope, dom: make([]ivnum.Interval, len(b.dom))}
	for i := range b.dom {
		r.dom[i] = b.dom[i].Hull(other.dom[i])
	}
	return r
}

// Width returns the largest component width — the box's diameter under
// the infinity norm, used by split selectors and termination tests.
func (b Box) Width() float64 {
	w := 0.0
	for _, x := range b.dom {
		if d := x.Width(); d > w {
			w = d
		}
	}
	return w
}

// Midpoint returns the box whose every component is the midpoint of the
// corresponding component of b.
func (b Box) Midpoint() Box {
	r := Box{scope: b.scope, dom: make([]ivnum.Interval, len(b.dom))}
	for i, x := range b.dom {
		r.dom[i] = ivnum.Singleton(x.Midpoint())
	}
	return r
}

// Corner returns the box picking, for each component, the lower bound if
// lowerBound[i] is true and the upper bound otherwise. Used to build
// the 2^n candidate corners realpaver's certification and BCO contractor
// enumerate.
func (b Box) Corner(lowerBound []bool) Box {
	r := Box{scope: b.scope, dom: make([]ivnum.Interval, len(b.dom))}
	for i, x := range b.dom {
		if i < len(lowerBound) && lowerBound[i] {
			r.dom[i] = ivnum.Singleton(x.Lo())
		} else {
			r.dom[i] = ivnum.Singleton(x.Hi())
		}
	}
	return r
}

// Restrict returns the sub-box of b holding only the components whose
// variables lie in sub, which must be a subset of b's scope.
func (b Box) Restrict(sub *Scope) Box {
	r := Box{scope: sub, dom: make([]ivnum.Interval, sub.Size())}
	for i, v := range sub.Variables() {
		r.dom[i] = b.Get(v)
	}
	return r
}

func (b Box) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range b.scope.Variables() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", v.String(), b.dom[i])
	}
	sb.WriteByte(')')
	return sb.String()
}
