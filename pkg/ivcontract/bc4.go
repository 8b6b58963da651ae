package ivcontract

import (
	"fmt"

	"github.com/ivsolve/ivsolve/pkg/ivdag"
	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
	"github.com/ivsolve/ivsolve/pkg/ivterm"
)

// BC4 is spec §4.4's BC4 contractor: HC4 first, then BC3 on every
// variable occurring more than once in F's syntactic tree (the
// occurrences HC4's shared-subexpression merge cannot fully exploit
// since it treats each occurrence's projected interval independently).
// Grounded in realpaver's Bc4Contractor::contract
// (original_source/src/realpaver/contractor_bc4.cpp), which runs its
// HC4 contractor then loops its BC3 children in sequence, stopping early
// on Empty.
type BC4 struct {
	Fn    ivterm.Term
	Image ivnum.Interval

	hc4 *HC4
	bc3 []*BC3
}

// NewBC4 builds a BC4 contractor for fn ∈ image, compiling fn onto a
// fresh private Dag for the HC4 pass and instantiating one BC3 child per
// multiply-occurring variable.
func NewBC4(fn ivterm.Term, image ivnum.Interval) *BC4 {
	dag := ivdag.New()
	f := dag.Compile(fn, image)
	c := &BC4{Fn: fn, Image: image, hc4: NewHC4(f)}

	scope := fn.Scope()
	for _, v := range scope.Variables() {
		if scope.Count(v) > 1 {
			c.bc3 = append(c.bc3, NewBC3(fn, image, v))
		}
	}
	return c
}

func (c *BC4) Scope() *ivscope.Scope         { return c.Fn.Scope() }
func (c *BC4) DependsOn(v ivscope.Variable) bool { return c.Fn.DependsOn(v) }
func (c *BC4) String() string                { return fmt.Sprintf("BC4(%s)", c.Fn) }

func (c *BC4) Contract(box ivscope.Box) ivscope.Proof {
	proof := c.hc4.Contract(box)
	if proof == ivscope.Empty {
		return proof
	}
	for _, child := range c.bc3 {
		p := child.Contract(box)
		if p == ivscope.Empty {
			return ivscope.Empty
		}
		proof = proof.Meet(p)
	}
	return proof
}
