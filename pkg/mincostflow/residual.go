package mincostflow

import "github.com/LiveRamp/flowsolve/pkg/graph"

// slot maps an arc index (forward >= 0, or reverse via bitwise complement)
// to a physical offset into the 2m-length residualCapacity / scaledUnitCost
// arrays. Forward arcs occupy [0, m); reverse arcs occupy [m, 2m).
func (s *Solver) slot(a graph.ArcIndex) int32 {
	if a >= 0 {
		return int32(a)
	}
	return s.numArcs + int32(^a)
}

// residualCapacity returns the remaining capacity of arc a.
func (s *Solver) residualCapacity(a graph.ArcIndex) int64 {
	return s.residual[s.slot(a)]
}

// flow returns the flow on forward arc a, defined as the residual capacity
// of its reverse: flow is never stored separately.
func (s *Solver) flow(a graph.ArcIndex) int64 {
	return s.residualCapacity(s.g.Opposite(a))
}

// reducedCost returns scaledUnitCost[a] + potential[tail(a)] - potential[head(a)].
func (s *Solver) reducedCost(a graph.ArcIndex) int64 {
	return s.fastReducedCost(a, s.potential[s.g.Tail(a)])
}

// fastReducedCost accepts the tail's potential to avoid re-reading it in
// inner loops.
func (s *Solver) fastReducedCost(a graph.ArcIndex, tailPotential int64) int64 {
	return s.scaledUnitCost[s.slot(a)] + tailPotential - s.potential[s.g.Head(a)]
}

// isAdmissible reports whether arc a has positive residual capacity and
// strictly negative reduced cost.
func (s *Solver) isAdmissible(a graph.ArcIndex) bool {
	return s.residualCapacity(a) > 0 && s.reducedCost(a) < 0
}

func (s *Solver) fastIsAdmissible(a graph.ArcIndex, tailPotential int64) bool {
	return s.residualCapacity(a) > 0 && s.fastReducedCost(a, tailPotential) < 0
}

// pushFlow moves amount units of flow along arc a. Preconditions: amount > 0
// and amount <= residualCapacity(a).
func (s *Solver) pushFlow(amount int64, a graph.ArcIndex) {
	s.fastPushFlow(amount, a, s.g.Tail(a))
}

// fastPushFlow is pushFlow with the tail supplied by the caller, avoiding a
// redundant Tail(a) lookup in Discharge's inner loop.
func (s *Solver) fastPushFlow(amount int64, a graph.ArcIndex, tail graph.NodeIndex) {
	if amount <= 0 {
		panic("mincostflow: pushFlow requires amount > 0")
	}
	var as, os = s.slot(a), s.slot(s.g.Opposite(a))
	if amount > s.residual[as] {
		panic("mincostflow: pushFlow amount exceeds residual capacity")
	}
	s.residual[as] -= amount
	s.residual[os] += amount
	s.excess[tail] -= amount
	s.excess[s.g.Head(a)] += amount
}

// setArcFlow adjusts residuals so that Flow(arc) == newFlow, for warm-starting
// a solver before its first Optimize() call.
func (s *Solver) setArcFlow(a graph.ArcIndex, newFlow int64) {
	var delta = newFlow - s.flow(a)
	if delta > 0 {
		s.pushFlow(delta, a)
	} else if delta < 0 {
		s.pushFlow(-delta, s.g.Opposite(a))
	}
}
