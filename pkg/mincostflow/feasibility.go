package mincostflow

import (
	"github.com/LiveRamp/flowsolve/pkg/graph"
	"github.com/LiveRamp/flowsolve/pkg/maxflow"
)

// CheckFeasibility builds a super-source/super-sink auxiliary max-flow
// instance and runs maxflow over it. If the computed max flow equals total
// supply, the instance is feasible and every node's
// FeasibleSupply equals its InitialSupply. Otherwise it populates the
// returned infeasible-supply/demand node lists, sets each node's
// FeasibleSupply to the value actually achievable, and returns false.
//
// CheckFeasibility may be called standalone, without ever calling Solve, to
// classify an instance up front.
func (s *Solver) CheckFeasibility() (ok bool, infeasibleSupply, infeasibleDemand []graph.NodeIndex) {
	var auxSource = graph.NodeIndex(s.numNodes)
	var auxSink = graph.NodeIndex(s.numNodes + 1)

	var b = graph.NewBuilder(int(s.numNodes)+2, int(s.numArcs)+int(s.numNodes))
	var capacity = make([]int64, 0, int(s.numArcs)+int(s.numNodes))

	for a := int32(0); a < s.numArcs; a++ {
		b.AddArc(s.g.Tail(graph.ArcIndex(a)), s.g.Head(graph.ArcIndex(a)))
		capacity = append(capacity, s.capacity[a])
	}

	var supplyArc = make(map[graph.NodeIndex]graph.ArcIndex)
	var demandArc = make(map[graph.NodeIndex]graph.ArcIndex)
	var totalSupply int64

	for v := graph.NodeIndex(0); v < graph.NodeIndex(s.numNodes); v++ {
		switch supply := s.initialSupply[v]; {
		case supply > 0:
			supplyArc[v] = b.AddArc(auxSource, v)
			capacity = append(capacity, supply)
			totalSupply += supply
		case supply < 0:
			demandArc[v] = b.AddArc(v, auxSink)
			capacity = append(capacity, -supply)
		}
	}

	var auxGraph = b.Build()
	var mf = maxflow.New(auxGraph, capacity)
	var achieved = mf.Solve(auxSource, auxSink)

	s.feasibilityChecked = true

	if achieved == totalSupply {
		copy(s.feasibleSupply, s.initialSupply)
		s.infeasibleSupplyNode = nil
		s.infeasibleDemandNode = nil
		return true, nil, nil
	}

	for v := graph.NodeIndex(0); v < graph.NodeIndex(s.numNodes); v++ {
		s.feasibleSupply[v] = 0
	}
	for v, a := range supplyArc {
		var got = mf.Flow(a)
		s.feasibleSupply[v] = got
		if got < s.initialSupply[v] {
			infeasibleSupply = append(infeasibleSupply, v)
		}
	}
	for v, a := range demandArc {
		var got = mf.Flow(a)
		s.feasibleSupply[v] = -got
		if got < -s.initialSupply[v] {
			infeasibleDemand = append(infeasibleDemand, v)
		}
	}

	s.infeasibleSupplyNode = infeasibleSupply
	s.infeasibleDemandNode = infeasibleDemand
	return false, infeasibleSupply, infeasibleDemand
}

// MakeFeasible overwrites each node's initial supply with the feasible
// supply determined by the last CheckFeasibility call, so that a subsequent
// Solve completes. Returns false if CheckFeasibility was never called.
func (s *Solver) MakeFeasible() bool {
	if !s.feasibilityChecked {
		return false
	}
	copy(s.initialSupply, s.feasibleSupply)
	s.status = NotSolved
	return true
}
