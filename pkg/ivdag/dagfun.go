package ivdag

import (
	"sort"

	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
	"github.com/ivsolve/ivsolve/pkg/ivterm"
)

// Fun is a compiled root registered in a Dag: a node together with the
// image interval a constraint requires it to satisfy, and the subscope
// of variables it actually depends on — the unit HC4Revise contracts
// against. Grounded in realpaver's DagFun (a named root inside a Dag,
// carrying the constraint's relation operator as an image interval the
// way "e <= 0" becomes image = (-inf, 0]).
type Fun struct {
	dag   *Dag
	root  NodeID
	image ivnum.Interval
	scope *ivscope.Scope
	// sub lists every node reachable from root (root included) in
	// descending id order — f's subgraph, spec §4.3's "its subgraph in
	// topological order" read backward. HC4Revise walks exactly this
	// set so a wipeout or an empty forward value in an unrelated
	// function's part of the shared Dag can never leak into f's proof.
	sub []int
}

// Compile inserts t into the Dag, hash-consing shared subexpressions
// with every function compiled earlier on this Dag, and registers a Fun
// requiring the root's evaluated value to lie in image.
func (d *Dag) Compile(t ivterm.Term, image ivnum.Interval) *Fun {
	root := d.insert(t)
	scope := t.Scope()
	f := &Fun{dag: d, root: root, image: image, scope: scope, sub: d.subgraph(root)}
	d.funs = append(d.funs, f)
	return f
}

// subgraph returns every node id reachable from root by following
// operand edges, root included, in descending id order — root's own
// subgraph, not the whole shared Dag. Walks top-down from root with an
// explicit stack, deduplicating via a seen set so a node reachable
// through more than one parent (a shared subexpression) is only
// collected once.
func (d *Dag) subgraph(root NodeID) []int {
	seen := make(map[int]bool)
	stack := []int{int(root)}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[i] {
			continue
		}
		seen[i] = true
		for _, a := range d.nodes[i].args {
			stack = append(stack, a)
		}
	}
	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// Root returns the function's root node id.
func (f *Fun) Root() NodeID { return f.root }

// Image returns the interval the root's value must lie in for the
// underlying constraint to hold.
func (f *Fun) Image() ivnum.Interval { return f.image }

// Scope returns the variables the function's root depends on.
func (f *Fun) Scope() *ivscope.Scope { return f.scope }

// Dag returns the owning Dag.
func (f *Fun) Dag() *Dag { return f.dag }
