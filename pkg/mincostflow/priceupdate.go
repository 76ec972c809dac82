package mincostflow

import "github.com/LiveRamp/flowsolve/pkg/graph"

// updatePrices implements Goldberg's global price-update heuristic: a
// reverse BFS from every deficit node (excess < 0) over arcs that could
// become admissible, lowering each reached node's potential by
// epsilon * layer-distance. This collapses long chains of per-node relabels
// into a single sweep while preserving epsilon-optimality.
func (s *Solver) updatePrices() {
	const unreached = -1

	var dist = make([]int32, s.numNodes)
	for v := range dist {
		dist[v] = unreached
	}

	var queue = make([]graph.NodeIndex, 0, s.numNodes)
	for v := graph.NodeIndex(0); v < graph.NodeIndex(s.numNodes); v++ {
		if s.excess[v] < 0 {
			dist[v] = 0
			queue = append(queue, v)
		}
	}

	for head := 0; head < len(queue); head++ {
		var u = queue[head]
		for _, c := range s.g.Arcs(u) {
			// c has Tail(c) == u; its Opposite carries flow capability from
			// the predecessor v into u.
			var v = s.g.Head(c)
			if dist[v] != unreached {
				continue
			}
			var vu = s.g.Opposite(c)
			if s.residualCapacity(vu) <= 0 {
				continue
			}
			if s.reducedCost(vu) >= s.epsilon {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}

	for v := graph.NodeIndex(0); v < graph.NodeIndex(s.numNodes); v++ {
		if d := dist[v]; d > 0 {
			s.potential[v] -= s.epsilon * int64(d)
		}
	}

	s.relabelsSincePriceUp = 0
	s.stats.priceUpdates++
}
