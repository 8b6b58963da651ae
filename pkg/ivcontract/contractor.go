// Package ivcontract implements spec §4.4's polymorphic domain-reduction
// operators: HC4, BC3, BC4, Integrality, List, MaxCID, BCO, and Affine,
// the optional affine family named by §9's Open Questions (ACID has no
// type of its own here; MaxCID is the constructive-disjunction
// contractor). Every
// variant satisfies the same Contractor contract: a scope, a
// monotone-shrinking Contract(box) returning a Proof, and a DependsOn
// test the propagator's worklist uses to wire up reactivation. Grounded
// in realpaver's Contractor abstract base class (original_source/src/
// realpaver/contractor.hpp) and its closed set of subclasses
// (contractor_hc4.*, contractor_bc3.*, contractor_bc4.*,
// contractor_cid.*, contractor_int.*, contractor_list.*), translated
// from a virtual-dispatch class hierarchy into a small Go interface plus
// one concrete type per variant, per this module's design notes on
// dynamic dispatch (spec §9: "a tagged variant or an abstract interface
// with a small closed set of variants").
package ivcontract

import "github.com/ivsolve/ivsolve/pkg/ivscope"

// Contractor is spec §4.4's shared contract: a contractor C has a scope
// S_C, a Contract method that may only shrink or leave unchanged
// B[v] for v in S_C, and a DependsOn test enabling propagation.
type Contractor interface {
	// Scope returns the set of variables this contractor may narrow.
	Scope() *ivscope.Scope
	// Contract applies one reduction step to box in place, returning a
	// proof certificate. It must never widen any component of box.
	Contract(box ivscope.Box) ivscope.Proof
	// DependsOn reports whether this contractor's result can change if
	// v's domain changes — the propagator uses this to decide which
	// contractors to reactivate after v narrows.
	DependsOn(v ivscope.Variable) bool
}

// Printable is implemented by contractors that can render a short
// debugging label, mirroring realpaver's Contractor::print.
type Printable interface {
	String() string
}
