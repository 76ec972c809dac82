package mincostflow

import (
	"math"

	"github.com/LiveRamp/flowsolve/pkg/graph"
)

// relabel lowers node's potential to the largest value that makes at least
// one outgoing residual arc admissible at the current epsilon. Precondition
// (checked only when Debug is set): node is active, or its excess is zero
// (the Push Look-Ahead relaxation), and node has no admissible incident arc.
func (s *Solver) relabel(node graph.NodeIndex) {
	if s.Debug && !s.checkRelabelPrecondition(node) {
		panic("mincostflow: relabel precondition violated")
	}

	var best = int64(math.MinInt64)
	var found bool
	for _, a := range s.g.Arcs(node) {
		if s.residualCapacity(a) <= 0 {
			continue
		}
		var candidate = s.potential[s.g.Head(a)] - s.scaledUnitCost[s.slot(a)] - s.epsilon
		if !found || candidate > best {
			best, found = candidate, true
		}
	}

	if !found {
		// Dead node: no outgoing residual capacity at all. Drop the
		// potential by a sentinel large enough that it can never again
		// participate in an admissible arc this phase, without overflowing.
		s.potential[node] -= deadNodePotentialDrop(s.epsilon, s.numNodes)
	} else {
		s.potential[node] = best
	}

	s.firstAdmissibleArc[node] = 0
	s.stats.relabels++
	relabelsTotal.Inc()
	s.relabelsSincePriceUp++
}

// deadNodePotentialDrop returns a delta large enough that lowering a node's
// potential by it can never make any arc (anywhere in the graph) spuriously
// admissible, yet stays well clear of int64 overflow for realistic n/epsilon.
func deadNodePotentialDrop(epsilon int64, n int32) int64 {
	var drop = epsilon * int64(n+1)
	if drop <= 0 {
		drop = int64(n) + 1
	}
	return drop
}

// lookAhead implements the Push Look-Ahead heuristic: before pushing flow on
// in_arc into node, verify node can either accept the flow outright (excess
// < 0), already has an admissible outgoing arc at its current potential, or
// can be relabeled such that in_arc remains admissible afterward. Returns
// false if none of these hold, in which case the caller should skip pushing
// on in_arc this pass.
func (s *Solver) lookAhead(inArc graph.ArcIndex, inTailPotential int64, node graph.NodeIndex) bool {
	if s.excess[node] < 0 {
		return true
	}
	for _, a := range s.g.Arcs(node) {
		if s.isAdmissible(a) {
			return true
		}
	}
	// Node would require a relabel. Perform it, then check whether in_arc
	// (reduced cost computed from the tail's unchanged potential) is still
	// admissible against the node's new potential as head.
	s.relabel(node)
	return s.scaledUnitCost[s.slot(inArc)]+inTailPotential-s.potential[node] < 0
}
