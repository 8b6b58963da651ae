package ivcontract

import (
	"fmt"

	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
)

// MaxCID is spec §4.4's Max-CID contractor ("constructive interior
// disjunction"): slices the domain of one selected variable into k
// pieces, contracts a clone of the box for each slice with an inner
// contractor, and outputs the hull of every surviving slice over the
// inner contractor's whole scope; returns Empty if every slice is
// infeasible. Grounded in realpaver's CidContractor::contract
// (original_source/src/realpaver/contractor_cid.cpp): apply the slicer
// to the chosen variable's domain, contract each slice independently
// against a clone of the box, and accumulate surviving slices via
// Box::setHull.
type MaxCID struct {
	Inner Contractor
	Var   ivscope.Variable
	K     int
}

// NewMaxCID builds a MaxCID contractor slicing v's domain into k
// equal-width pieces before handing each to inner.
func NewMaxCID(inner Contractor, v ivscope.Variable, k int) *MaxCID {
	if k < 2 {
		k = 2
	}
	return &MaxCID{Inner: inner, Var: v, K: k}
}

func (c *MaxCID) Scope() *ivscope.Scope             { return c.Inner.Scope() }
func (c *MaxCID) DependsOn(v ivscope.Variable) bool { return c.Inner.DependsOn(v) }
func (c *MaxCID) String() string                    { return fmt.Sprintf("MaxCID(%s, k=%d)", c.Var, c.K) }

func (c *MaxCID) Contract(box ivscope.Box) ivscope.Proof {
	x := box.Get(c.Var)
	if x.IsEmpty() {
		return ivscope.Empty
	}
	slices := ivnum.Partition(x, c.K)
	if len(slices) <= 1 {
		return c.Inner.Contract(box)
	}

	init := box.Clone()
	proof := ivscope.Empty
	var hull ivscope.Box
	first := true

	for _, s := range slices {
		slice := init.Clone()
		slice.Set(c.Var, s)
		p := c.Inner.Contract(slice)
		if p == ivscope.Empty {
			continue
		}
		if first {
			hull = slice
			proof = p
			first = false
		} else {
			hull = hull.Hull(slice)
			proof = proof.Meet(p)
		}
	}

	if first {
		return ivscope.Empty
	}
	for _, v := range c.Scope().Variables() {
		box.Set(v, hull.Get(v))
	}
	return proof
}
