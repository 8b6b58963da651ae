// Package ivpropag implements spec §4.5's Propagator: an AC3-like
// worklist fixpoint over a pool of ivcontract.Contractor values sharing
// one ivscope.Box. Grounded in realpaver's Propagator/ContractorPool
// pairing (original_source/src/realpaver/propagator.{hpp,cpp} drives a
// Contractor pool via a bitset-backed worklist of "active" slots),
// translated here onto github.com/bits-and-blooms/bitset for the
// worklist's dedup set, matching the library's role elsewhere in the
// pack's gnark-adjacent modules as a compact membership set for a
// pool/worklist of indices.
package ivpropag

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/ivsolve/ivsolve/internal/ivlog"
	"github.com/ivsolve/ivsolve/pkg/ivcontract"
	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
)

// Propagator is spec §4.5's fixpoint driver. It is itself a Contractor
// (spec §4.5 "Composite property: a propagator is itself a contractor;
// propagators may be nested"), so a Propagator can be one element of
// another Propagator's Pool, or a child of ivcontract.List/MaxCID.
type Propagator struct {
	Pool []ivcontract.Contractor
	// RelTol is the fixed-point relative-width tolerance below which a
	// contraction step is not considered "meaningful" enough to
	// reactivate dependent contractors (PROPAGATION_REL_TOL, spec §6).
	RelTol float64
	// IterLimit bounds the number of contractor invocations in one
	// Contract call, a hard ceiling on worst-case work when reductions
	// stay below RelTol but nonzero (PROPAGATION_ITER_LIMIT, spec §6).
	IterLimit int

	scope *ivscope.Scope
}

// New builds a Propagator over pool with the given relative tolerance
// and iteration limit.
func New(pool []ivcontract.Contractor, relTol float64, iterLimit int) *Propagator {
	s := ivscope.NewScope()
	for _, c := range pool {
		s.Insert(c.Scope())
	}
	if iterLimit <= 0 {
		iterLimit = 200
	}
	return &Propagator{Pool: pool, RelTol: relTol, IterLimit: iterLimit, scope: s}
}

func (p *Propagator) Scope() *ivscope.Scope { return p.scope }

func (p *Propagator) DependsOn(v ivscope.Variable) bool {
	for _, c := range p.Pool {
		if c.DependsOn(v) {
			return true
		}
	}
	return false
}

func (p *Propagator) String() string { return fmt.Sprintf("Propagator(%d contractors)", len(p.Pool)) }

// Contract drives Pool to a fixed point on box (spec §4.5 "Algorithm"):
// a worklist of contractor indices, initially every index, is popped in
// FIFO order; each popped contractor is run; any of its scope variables
// that moved by more than RelTol reactivates every other contractor that
// DependsOn it, deduplicated via an active bitset so no index is queued
// twice concurrently. Terminates on the first Empty, on an empty
// worklist (a genuine fixed point), or when IterLimit contractor
// invocations have run.
func (p *Propagator) Contract(box ivscope.Box) ivscope.Proof {
	n := len(p.Pool)
	if n == 0 {
		return ivscope.Inner
	}

	active := bitset.New(uint(n))
	queue := make([]int, n)
	for i := range queue {
		queue[i] = i
		active.Set(uint(i))
	}

	tol := ivscope.Tolerance{Rel: p.RelTol}
	proof := ivscope.Inner
	steps := 0

	for len(queue) > 0 {
		if steps >= p.IterLimit {
			ivlog.Low("propagator iteration limit reached", "limit", p.IterLimit)
			break
		}
		j := queue[0]
		queue = queue[1:]
		active.Clear(uint(j))
		steps++

		c := p.Pool[j]
		vars := c.Scope().Variables()
		prev := make([]ivnum.Interval, len(vars))
		for i, v := range vars {
			prev[i] = box.Get(v)
		}

		pr := c.Contract(box)
		if pr == ivscope.Empty {
			return ivscope.Empty
		}
		proof = proof.Meet(pr)

		for i, v := range vars {
			curr := box.Get(v)
			if tol.AreClose(prev[i], curr) {
				continue
			}
			for k, ck := range p.Pool {
				if k == j || active.Test(uint(k)) {
					continue
				}
				if ck.DependsOn(v) {
					active.Set(uint(k))
					queue = append(queue, k)
				}
			}
		}
	}
	return proof
}
