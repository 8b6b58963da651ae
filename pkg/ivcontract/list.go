package ivcontract

import (
	"strings"

	"github.com/ivsolve/ivsolve/pkg/ivscope"
)

// List is spec §4.4's List contractor: runs a sequence of child
// contractors in strict left-to-right order, short-circuiting on Empty,
// the one contractor family whose composite ordering is explicit rather
// than worklist-driven (spec §4.4 "Composite ordering"). Grounded in
// realpaver's ListContractor (contractor_list.*), a simple vector of
// child contractors applied in sequence.
type List struct {
	Children []Contractor
	scope    *ivscope.Scope
}

// NewList builds a List contractor over children, in the order given.
func NewList(children ...Contractor) *List {
	s := ivscope.NewScope()
	for _, c := range children {
		s.Insert(c.Scope())
	}
	return &List{Children: children, scope: s}
}

func (c *List) Scope() *ivscope.Scope { return c.scope }

func (c *List) DependsOn(v ivscope.Variable) bool {
	for _, child := range c.Children {
		if child.DependsOn(v) {
			return true
		}
	}
	return false
}

func (c *List) String() string {
	parts := make([]string, len(c.Children))
	for i, ch := range c.Children {
		if p, ok := ch.(Printable); ok {
			parts[i] = p.String()
		} else {
			parts[i] = "?"
		}
	}
	return "List(" + strings.Join(parts, "; ") + ")"
}

// Contract runs each child in order, returning Empty as soon as one
// does, otherwise the pointwise meet (weakest certificate) across all of
// them (spec §3 "composition is pointwise min over conjunctions").
func (c *List) Contract(box ivscope.Box) ivscope.Proof {
	proof := ivscope.Inner
	for _, child := range c.Children {
		p := child.Contract(box)
		if p == ivscope.Empty {
			return ivscope.Empty
		}
		proof = proof.Meet(p)
	}
	return proof
}
