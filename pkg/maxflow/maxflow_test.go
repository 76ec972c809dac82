package maxflow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LiveRamp/flowsolve/pkg/graph"
)

// TestWikipediaPushRelabelFixture reproduces the example graph from the
// Push-Relabel Wikipedia page, verifying only the maximum flow value since
// this solver has no priority bias to make it prefer one particular flow
// decomposition over another equally-valid one.
func TestWikipediaPushRelabelFixture(t *testing.T) {
	var b = graph.NewBuilder(6, 8)
	const (
		S = graph.NodeIndex(iota)
		A
		B
		C
		D
		T
	)
	var cap = map[graph.ArcIndex]int64{}
	add := func(from, to graph.NodeIndex, c int64) {
		cap[b.AddArc(from, to)] = c
	}
	add(S, A, 15)
	add(S, C, 4)
	add(A, B, 12)
	add(B, C, 3)
	add(B, T, 7)
	add(C, D, 10)
	add(D, A, 5)
	add(D, T, 10)

	var g = b.Build()
	var capacity = make([]int64, g.NumArcs())
	for a, c := range cap {
		capacity[a] = c
	}

	var s = New(g, capacity)
	var value = s.Solve(S, T)
	require.EqualValues(t, 14, value)

	// Flow conservation at every internal node.
	for _, v := range []graph.NodeIndex{A, B, C, D} {
		var in, out int64
		for a := int32(0); a < g.NumArcs(); a++ {
			if g.Head(graph.ArcIndex(a)) == v {
				in += s.Flow(graph.ArcIndex(a))
			}
			if g.Tail(graph.ArcIndex(a)) == v {
				out += s.Flow(graph.ArcIndex(a))
			}
		}
		require.Equal(t, in, out, "node %d", v)
	}
}

func TestNoPathMeansZeroFlow(t *testing.T) {
	var b = graph.NewBuilder(3, 1)
	var a = b.AddArc(0, 1)
	var g = b.Build()

	var s = New(g, []int64{10})
	require.EqualValues(t, 0, s.Solve(0, 2))
	require.EqualValues(t, 0, s.Flow(a))
}

func TestCapacityBound(t *testing.T) {
	var b = graph.NewBuilder(2, 2)
	var a1 = b.AddArc(0, 1)
	var a2 = b.AddArc(0, 1)
	var g = b.Build()

	var s = New(g, []int64{3, 5})
	require.EqualValues(t, 8, s.Solve(0, 1))
	require.LessOrEqual(t, s.Flow(a1), int64(3))
	require.LessOrEqual(t, s.Flow(a2), int64(5))
}
