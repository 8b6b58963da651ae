package ivdag

import "github.com/ivsolve/ivsolve/pkg/ivnum"

// Scratch is the caller-owned working storage for a single Dag
// evaluation or contraction: one interval per node for the forward pass
// and one for the backward pass. Callers needing repeated evaluation
// (the propagator's worklist, the search driver's per-node contraction)
// should reuse a Scratch across calls rather than allocate a fresh one,
// e.g. by pooling it with sync.Pool — pooling policy is the caller's
// concern, not the Dag's, per this package's doc comment.
type Scratch struct {
	Fwd []ivnum.Interval
	Bwd []ivnum.Interval
}

// NewScratch allocates a Scratch sized for d.
func NewScratch(d *Dag) *Scratch {
	n := d.NumNodes()
	return &Scratch{Fwd: make([]ivnum.Interval, n), Bwd: make([]ivnum.Interval, n)}
}

// Reset resizes s (growing if necessary) to fit d, without reallocating
// when the existing backing arrays are already large enough.
func (s *Scratch) Reset(d *Dag) {
	n := d.NumNodes()
	if cap(s.Fwd) < n {
		s.Fwd = make([]ivnum.Interval, n)
	} else {
		s.Fwd = s.Fwd[:n]
	}
	if cap(s.Bwd) < n {
		s.Bwd = make([]ivnum.Interval, n)
	} else {
		s.Bwd = s.Bwd[:n]
	}
}
