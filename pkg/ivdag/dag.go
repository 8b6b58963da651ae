// Package ivdag implements spec §4's expression DAG: a hash-consed
// compilation target for pkg/ivterm.Term trees where repeated
// subexpressions are merged into one shared node, plus HC4-Revise, the
// forward-evaluation/backward-projection contraction algorithm built
// on top of it. Grounded in realpaver's Dag/DagNode classes
// (original_source has no single dag.cpp; the closest analog is
// bco_dag.hpp/cpp, a DAG specialized for the BCO contractor) and in
// ContractorHC4Revise.cpp for the forward/backward pass itself, adapted
// here to a single general-purpose Dag serving every contractor family.
//
// A Dag owns no mutable per-node state: interval images live in a
// caller-supplied Scratch (scratch.go), so the same compiled Dag can be
// evaluated concurrently by independent goroutines holding independent
// Scratch buffers — the mechanism that makes the parallel certification
// pass in pkg/ivsearch safe.
package ivdag

import (
	"github.com/ivsolve/ivsolve/internal/ivassert"
	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
	"github.com/ivsolve/ivsolve/pkg/ivterm"
)

type node struct {
	kind  ivterm.Kind
	value ivnum.Interval
	v     ivscope.Variable
	n     int
	args  []int // indices of child nodes, always < this node's own index
}

// Dag is a hash-consed forest of compiled expressions. Node 0 is never a
// real node (reserved so a zero NodeID means "absent").
type Dag struct {
	nodes []node
	index map[uint64][]int // structural hash -> candidate node ids
	scope *ivscope.Scope    // union of every registered function's scope
	funs  []*Fun
}

// NodeID indexes a compiled node within a Dag.
type NodeID int

// New creates an empty Dag with the sentinel node 0 reserved.
func New() *Dag {
	return &Dag{
		nodes: []node{{kind: ivterm.KindConst, value: ivnum.Empty()}},
		index: map[uint64][]int{},
		scope: ivscope.NewScope(),
	}
}

// NumNodes returns the number of compiled nodes, including the reserved
// sentinel at index 0 — also the size a Scratch buffer must have.
func (d *Dag) NumNodes() int { return len(d.nodes) }

// Scope returns the union of every registered function's free variables.
func (d *Dag) Scope() *ivscope.Scope { return d.scope }

// Functions returns every function registered via Compile, in
// registration order.
func (d *Dag) Functions() []*Fun { return d.funs }

// insert hash-conses t into the Dag and returns its node id. Children are
// inserted first (bottom-up), so a parent's structural key — (kind,
// child ids, value/var/exponent) — can be compared against already-
// interned nodes without re-walking the Term, matching realpaver's
// DagNode hash table, which hashes on (symbol, child pointers) rather
// than a deep tree comparison.
func (d *Dag) insert(t ivterm.Term) NodeID {
	n := node{kind: t.Kind(), n: t.Exponent()}
	var h uint64
	switch t.Kind() {
	case ivterm.KindConst:
		n.value = t.Value()
		h = t.HashCode()
	case ivterm.KindVar:
		n.v = t.Variable()
		d.scope.InsertVar(n.v)
		h = t.HashCode()
	default:
		args := t.Args()
		n.args = make([]int, len(args))
		for i, a := range args {
			n.args[i] = int(d.insert(a))
		}
		h = hashNode(n)
	}

	for _, id := range d.index[h] {
		if d.nodes[id].equalKey(n) {
			return NodeID(id)
		}
	}
	id := len(d.nodes)
	for _, a := range n.args {
		ivassert.Check(a < id, "dag: child id %d >= new node id %d, breaks the forward/backward pass's id-ordering invariant", a, id)
	}
	d.nodes = append(d.nodes, n)
	d.index[h] = append(d.index[h], id)
	return NodeID(id)
}

func hashNode(n node) uint64 {
	h := uint64(n.kind) * 1099511628211
	h = h*31 + uint64(n.n)
	for _, a := range n.args {
		h = h*31 + uint64(a)
	}
	return h
}

func (n node) equalKey(other node) bool {
	if n.kind != other.kind || n.n != other.n || len(n.args) != len(other.args) {
		return false
	}
	switch n.kind {
	case ivterm.KindConst:
		return n.value.IsSetEq(other.value)
	case ivterm.KindVar:
		return n.v.Equal(other.v)
	default:
		for i := range n.args {
			if n.args[i] != other.args[i] {
				return false
			}
		}
		return true
	}
}
