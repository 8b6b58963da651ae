package ivsearch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ivsolve/ivsolve/pkg/ivnum"
	"github.com/ivsolve/ivsolve/pkg/ivscope"
)

func clusterVar(name string) ivscope.Variable {
	return ivscope.NewVariable(name, ivnum.Universe(), ivscope.Continuous, ivscope.Tolerance{Abs: 1e-8})
}

func clusterBox(scope *ivscope.Scope, lo, hi float64) ivscope.Box {
	b := ivscope.NewBoxFromDomains(scope)
	b.SetAt(0, ivnum.New(lo, hi))
	return b
}

// TestClusterMergesWithinGap checks that two solutions closer than gap
// are hulled into one node while a far-away third stays separate,
// mirroring the union-find merge/no-merge split in
// katalvlaran-lvlath's Kruskal tests.
func TestClusterMergesWithinGap(t *testing.T) {
	scope := ivscope.NewScope(clusterVar("x"))

	nodes := []Node{
		{Box: clusterBox(scope, 0, 0.01)},
		{Box: clusterBox(scope, 0.02, 0.03)},
		{Box: clusterBox(scope, 10, 10.01)},
	}

	out := Cluster(nodes, 0.05)
	require.Len(t, out, 2, "the two nearby boxes should merge, the far one should not")

	foundMerged, foundFar := false, false
	for _, n := range out {
		lo, hi := n.Box.At(0).Lo(), n.Box.At(0).Hi()
		if lo <= 1e-9 && hi >= 0.03-1e-9 {
			foundMerged = true
		}
		if lo >= 9.999 {
			foundFar = true
		}
	}
	require.True(t, foundMerged, "expected a hulled cluster spanning [0, 0.03]")
	require.True(t, foundFar, "expected the far box to survive unmerged")
}

// TestClusterNoGapIsIdentity checks that a non-positive gap disables
// clustering entirely, returning nodes unchanged.
func TestClusterNoGapIsIdentity(t *testing.T) {
	scope := ivscope.NewScope(clusterVar("x"))
	nodes := []Node{
		{Box: clusterBox(scope, 0, 0.01)},
		{Box: clusterBox(scope, 0.02, 0.03)},
	}

	out := Cluster(nodes, 0)
	require.Equal(t, nodes, out)
}
