package ivcontract

import (
	"fmt"

	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
)

// Integrality is spec §4.4's Integrality contractor: for a set of
// discrete variables, intersects each domain with the nearest
// integer-bound interval (ceil the left bound up, floor the right bound
// down — ivnum.Round), returning Empty if any domain becomes empty.
// Grounded in realpaver's IntContractor (contractor_int.*), which walks
// its discrete variables and rounds each one's interval in place.
type Integrality struct {
	Vars  []ivscope.Variable
	scope *ivscope.Scope
}

// NewIntegrality builds an Integrality contractor over vars, which
// should be the problem's discrete (integer/boolean) variables.
func NewIntegrality(vars []ivscope.Variable) *Integrality {
	s := ivscope.NewScope(vars...)
	return &Integrality{Vars: vars, scope: s}
}

func (c *Integrality) Scope() *ivscope.Scope { return c.scope }

func (c *Integrality) DependsOn(v ivscope.Variable) bool { return c.scope.Contains(v) }

func (c *Integrality) String() string { return fmt.Sprintf("Integrality(%d vars)", len(c.Vars)) }

func (c *Integrality) Contract(box ivscope.Box) ivscope.Proof {
	proof := ivscope.Inner
	for _, v := range c.Vars {
		x := box.Get(v)
		rounded := ivnum.Round(x)
		if rounded.IsEmpty() {
			box.Set(v, rounded)
			return ivscope.Empty
		}
		if !rounded.IsSetEq(x) {
			proof = ivscope.Maybe
		}
		box.Set(v, rounded)
	}
	return proof
}
