// Package ivscope implements spec §3's Variable, Scope and Box: the
// identity and domain-bookkeeping layer every other package builds on.
// Grounded in gokando's pkg/minikanren variable/scope bookkeeping
// (model.go, fd_domains.go) generalized from integer finite domains to
// real-valued interval domains, and in realpaver's Variable/Scope/Box
// classes named throughout original_source.
package ivscope

import (
	"fmt"
	"sync/atomic"

	"github.com/ivsolve/ivsolve/pkg/ivnum"
)

// Kind classifies a variable's domain as continuous real or discrete.
type Kind int

const (
	Continuous Kind = iota
	Integer
	Boolean
)

func (k Kind) String() string {
	switch k {
	case Continuous:
		return "continuous"
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	default:
		return "unknown"
	}
}

var nextVarID int64 = -1

// Variable is an immutable identity: a monotone integer id unique per
// problem, a display name, an initial domain, a kind, and an output
// tolerance. Two variables with equal Id are the same variable — Variable
// is a value type compared and hashed by Id alone, the way gokando's *Var
// is compared by pointer identity and realpaver's Variable wraps a shared
// VariableRep by reference.
type Variable struct {
	id     int
	name   string
	domain ivnum.Interval
	kind   Kind
	tol    Tolerance
}

// NewVariable allocates a fresh variable with a process-wide monotone id.
// Variable ids must be dense 0..N-1 within a single Problem (spec §3
// invariant); callers that build a Problem from scratch should prefer
// ivproblem.Builder, which renumbers ids compactly, rather than relying
// on this global counter directly across problems.
func NewVariable(name string, domain ivnum.Interval, kind Kind, tol Tolerance) Variable {
	id := atomic.AddInt64(&nextVarID, 1)
	return Variable{id: int(id), name: name, domain: domain, kind: kind, tol: tol}
}

// WithID returns a copy of v reassigned to id — used by ivproblem.Builder
// to give each variable its compact 0..N-1 id as it is declared.
func (v Variable) WithID(id int) Variable { v.id = id; return v }

func (v Variable) ID() int                { return v.id }
func (v Variable) Name() string           { return v.name }
func (v Variable) Domain() ivnum.Interval { return v.domain }
func (v Variable) Kind() Kind             { return v.kind }
func (v Variable) Tolerance() Tolerance   { return v.tol }
func (v Variable) IsDiscrete() bool       { return v.kind == Integer || v.kind == Boolean }

// Equal reports whether v and w are the same variable (by id).
func (v Variable) Equal(w Variable) bool { return v.id == w.id }

func (v Variable) String() string {
	if v.name != "" {
		return v.name
	}
	return fmt.Sprintf("_v%d", v.id)
}
