package mincostflow

import (
	"testing"

	"github.com/LiveRamp/flowsolve/pkg/graph"
)

// BenchmarkAll dispatches to named sub-benchmarks: one top-level Benchmark
// function, real work done in helpers taking *testing.B directly.
func BenchmarkAll(b *testing.B) {
	b.Run("path-chain", func(b *testing.B) {
		benchmarkPathChain(b, 64)
	})
	b.Run("bipartite-assignment", func(b *testing.B) {
		benchmarkBipartiteAssignment(b, 32)
	})
}

// benchmarkPathChain solves a chain of n nodes with unit-capacity,
// increasing-cost arcs and a single unit of supply pushed end to end.
func benchmarkPathChain(b *testing.B, n int) {
	for i := 0; i < b.N; i++ {
		var builder = graph.NewBuilder(n, n-1)
		for v := 0; v < n-1; v++ {
			builder.AddArc(graph.NodeIndex(v), graph.NodeIndex(v+1))
		}
		var g = builder.Build()

		var capacity = make([]int64, n-1)
		for a := range capacity {
			capacity[a] = 1
		}
		var s = New(g, capacity)
		for a := int32(0); a < int32(n-1); a++ {
			s.SetArcUnitCost(graph.ArcIndex(a), int64(a)+1)
		}
		s.SetNodeSupply(0, 1)
		s.SetNodeSupply(graph.NodeIndex(n-1), -1)

		if status := s.Solve(); status != Optimal {
			b.Fatalf("unexpected status: %s", status)
		}
	}
}

// benchmarkBipartiteAssignment solves a complete bipartite transportation
// instance (n sources, n sinks, every source-sink pair connected) with unit
// supply per source, exercising a denser arc count per node than the chain.
func benchmarkBipartiteAssignment(b *testing.B, n int) {
	for i := 0; i < b.N; i++ {
		var numArcs = n * n
		var builder = graph.NewBuilder(2*n, numArcs)
		var arcs = make([]graph.ArcIndex, 0, numArcs)
		for src := 0; src < n; src++ {
			for dst := 0; dst < n; dst++ {
				arcs = append(arcs, builder.AddArc(graph.NodeIndex(src), graph.NodeIndex(n+dst)))
			}
		}
		var g = builder.Build()

		var capacity = make([]int64, numArcs)
		for a := range capacity {
			capacity[a] = 1
		}
		var s = New(g, capacity)
		for idx, a := range arcs {
			// A cheap deterministic cost spread, standing in for a real
			// assignment cost matrix.
			s.SetArcUnitCost(a, int64((idx*7+3)%11)+1)
		}
		for src := 0; src < n; src++ {
			s.SetNodeSupply(graph.NodeIndex(src), 1)
			s.SetNodeSupply(graph.NodeIndex(n+src), -1)
		}

		if status := s.Solve(); status != Optimal {
			b.Fatalf("unexpected status: %s", status)
		}
	}
}
