package mincostflow

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/LiveRamp/flowsolve/pkg/graph"
)

// checkCostRange verifies that (n+1) * max|cost| * maxCapacity fits in
// int64. Called before scaling.
func (s *Solver) checkCostRange() bool {
	var maxAbsCost, maxCapacity int64
	for a := int32(0); a < s.numArcs; a++ {
		if c := abs64(s.unitCost[a]); c > maxAbsCost {
			maxAbsCost = c
		}
		if s.capacity[a] > maxCapacity {
			maxCapacity = s.capacity[a]
		}
	}
	if maxAbsCost == 0 || maxCapacity == 0 {
		return true
	}
	var n1 = int64(s.numNodes) + 1

	// Guard each multiplication individually against overflow rather than
	// multiplying first and checking after the fact.
	const maxInt64 = 1<<63 - 1
	if n1 != 0 && maxAbsCost > maxInt64/n1 {
		return false
	}
	var scaled = n1 * maxAbsCost
	if scaled != 0 && maxCapacity > maxInt64/scaled {
		return false
	}
	return true
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// scaleCosts multiplies every unit cost by (n+1).
func (s *Solver) scaleCosts() {
	if s.costsAreScaled {
		return
	}
	s.costScalingFactor = int64(s.numNodes) + 1
	for a := int32(0); a < s.numArcs; a++ {
		var scaled = s.unitCost[a] * s.costScalingFactor
		s.scaledUnitCost[a] = scaled
		s.scaledUnitCost[s.numArcs+a] = -scaled
	}
	s.costsAreScaled = true
}

// unscaleCosts divides scaled costs back down, for reporting parity. It does
// not touch unitCost, which was always kept unscaled.
func (s *Solver) unscaleCosts() {
	if !s.costsAreScaled {
		return
	}
	for a := int32(0); a < s.numArcs; a++ {
		s.scaledUnitCost[a] = s.unitCost[a]
		s.scaledUnitCost[s.numArcs+a] = -s.unitCost[a]
	}
	s.costsAreScaled = false
}

// optimize is the scaling driver. It assumes checkCostRange and
// checkInputConsistency have already passed, and that excess/potential have
// been reset for a fresh solve.
func (s *Solver) optimize() {
	var start = time.Now()

	s.scaleCosts()

	var maxAbsCost int64
	for a := int32(0); a < s.numArcs; a++ {
		if c := abs64(s.scaledUnitCost[a]); c > maxAbsCost {
			maxAbsCost = c
		}
	}
	s.epsilon = maxAbsCost
	if s.epsilon == 0 {
		s.epsilon = 1
	}

	for s.epsilon > 1 {
		s.epsilon /= s.alpha
		if s.epsilon < 1 {
			s.epsilon = 1
		}
		log.WithFields(log.Fields{"epsilon": s.epsilon}).Debug("mincostflow: refine")
		s.refine()
	}
	// A graph with maxAbsCost == 0 never enters the loop above; a single
	// refine at epsilon=1 is still required to drive out all excess.
	if maxAbsCost == 0 {
		s.refine()
	}

	s.totalFlowCost = 0
	for a := int32(0); a < s.numArcs; a++ {
		s.totalFlowCost += s.flow(graph.ArcIndex(a)) * s.unitCost[a]
	}

	// checkResult must run against scaled costs/potentials, since the
	// epsilon-optimality bound it verifies was only ever guaranteed in
	// scaled terms; unscaleCosts() below would otherwise make the check
	// meaningless.
	if s.Debug {
		s.resultOK = s.checkResult()
	}
	s.unscaleCosts()

	observeOptimizeDuration(time.Since(start))
	log.WithFields(log.Fields{
		"status":   Optimal,
		"cost":     s.totalFlowCost,
		"relabels": s.stats.relabels,
		"refines":  s.stats.refines,
		"pushes":   s.stats.pushes,
	}).Info("mincostflow: optimize complete")
}
