package ivcontract

import (
	"fmt"

	"github.com/ivsolve/ivsolve/pkg/ivdag"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
)

// HC4 wraps a single compiled ivdag.Fun and invokes HC4-Revise on it
// (spec §4.4 "HC4 contractor"). It owns a private Scratch reused across
// calls; an HC4 value is not safe to Contract from two goroutines at
// once (the search driver's hot loop is single-threaded per spec §5),
// but is independent of every other contractor's Scratch, which is what
// lets pkg/ivsearch certify several solutions concurrently after the
// search ends.
type HC4 struct {
	Fun     *ivdag.Fun
	scratch *ivdag.Scratch
}

// NewHC4 builds an HC4 contractor for fun.
func NewHC4(fun *ivdag.Fun) *HC4 {
	return &HC4{Fun: fun, scratch: ivdag.NewScratch(fun.Dag())}
}

func (c *HC4) Scope() *ivscope.Scope { return c.Fun.Scope() }

func (c *HC4) Contract(box ivscope.Box) ivscope.Proof {
	return c.Fun.Dag().HC4Revise(c.Fun, c.scratch, box)
}

func (c *HC4) DependsOn(v ivscope.Variable) bool { return c.Fun.Scope().Contains(v) }

func (c *HC4) String() string { return fmt.Sprintf("HC4(fun@%d)", c.Fun.Root()) }
