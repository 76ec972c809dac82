package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOppositeIsInvolution(t *testing.T) {
	var b = NewBuilder(2, 1)
	var a = b.AddArc(0, 1)
	var g = b.Build()

	require.Equal(t, NodeIndex(0), g.Tail(a))
	require.Equal(t, NodeIndex(1), g.Head(a))

	var opp = g.Opposite(a)
	require.Less(t, int32(opp), int32(0))
	require.Equal(t, a, g.Opposite(opp))

	require.Equal(t, NodeIndex(1), g.Tail(opp))
	require.Equal(t, NodeIndex(0), g.Head(opp))
}

func TestLazyNodeGrowth(t *testing.T) {
	var b = NewBuilder(0, 0)
	require.EqualValues(t, 0, b.NumNodes())

	b.AddArc(3, 5)
	require.EqualValues(t, 6, b.NumNodes())

	var g = b.Build()
	require.EqualValues(t, 6, g.NumNodes())
	require.EqualValues(t, 1, g.NumArcs())
}

func TestArcsIncludesForwardAndReverse(t *testing.T) {
	var b = NewBuilder(3, 3)
	var a0 = b.AddArc(0, 1)
	var a1 = b.AddArc(1, 2)
	var a2 = b.AddArc(0, 2)
	var g = b.Build()

	var at = func(v NodeIndex) map[ArcIndex]bool {
		var m = map[ArcIndex]bool{}
		for _, a := range g.Arcs(v) {
			m[a] = true
		}
		return m
	}

	require.True(t, at(0)[a0])
	require.True(t, at(0)[a2])
	require.True(t, at(1)[a0.reciprocalFor(g)])
	require.True(t, at(1)[a1])
	require.True(t, at(2)[a1.reciprocalFor(g)])
	require.True(t, at(2)[a2.reciprocalFor(g)])
}

// reciprocalFor is a tiny test helper, not part of the public API.
func (a ArcIndex) reciprocalFor(g *Graph) ArcIndex { return g.Opposite(a) }
