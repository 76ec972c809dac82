package mincostflow

import "github.com/LiveRamp/flowsolve/pkg/graph"

// checkResult verifies that every residual arc satisfies reducedCost >= -1,
// the strict-optimality bound guaranteed once epsilon has reached 1. Gated
// behind Solver.Debug since it is O(n+m).
func (s *Solver) checkResult() bool {
	for a := int32(0); a < 2*s.numArcs; a++ {
		var arc graph.ArcIndex
		if a < s.numArcs {
			arc = graph.ArcIndex(a)
		} else {
			arc = ^graph.ArcIndex(a - s.numArcs)
		}
		if s.residual[a] > 0 && s.reducedCost(arc) < -1 {
			return false
		}
	}
	for v := range s.excess {
		if s.excess[v] != 0 {
			return false
		}
	}
	return true
}

// checkRelabelPrecondition verifies that node is either active or has zero
// excess (the Push Look-Ahead relaxation), and that it has no admissible
// incident arc.
func (s *Solver) checkRelabelPrecondition(node graph.NodeIndex) bool {
	if s.excess[node] < 0 {
		return false
	}
	for _, a := range s.g.Arcs(node) {
		if s.isAdmissible(a) {
			return false
		}
	}
	return true
}
