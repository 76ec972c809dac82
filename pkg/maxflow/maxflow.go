// Package maxflow implements a highest-label push-relabel maximum-flow
// solver over plain int64 arc capacities. It is used standalone and as the
// engine behind mincostflow's feasibility preflight.
package maxflow

import (
	"container/heap"
	"math"

	"github.com/LiveRamp/flowsolve/pkg/graph"
)

// Solver computes maximum flow over a fixed graph.Graph.
type Solver struct {
	g        *graph.Graph
	numArcs  int32
	residual []int64 // len 2m, slot(a) = a>=0 ? a : m+^a, same scheme as mincostflow.
	excess   []int64
	height   []int32
	cursor   []int32 // per-node scan cursor into g.Arcs(v)
}

// New returns a Solver bound to g, with residual capacity initialized from
// capacity (one entry per forward arc index).
func New(g *graph.Graph, capacity []int64) *Solver {
	var m = g.NumArcs()
	var s = &Solver{
		g:        g,
		numArcs:  m,
		residual: make([]int64, 2*m),
		excess:   make([]int64, g.NumNodes()),
		height:   make([]int32, g.NumNodes()),
		cursor:   make([]int32, g.NumNodes()),
	}
	for a := int32(0); a < m; a++ {
		s.residual[a] = capacity[a]
	}
	return s
}

func (s *Solver) slot(a graph.ArcIndex) int32 {
	if a >= 0 {
		return int32(a)
	}
	return s.numArcs + int32(^a)
}

// Flow returns the flow on forward arc a.
func (s *Solver) Flow(a graph.ArcIndex) int64 {
	return s.residual[s.slot(s.g.Opposite(a))]
}

// Solve runs push-relabel from source to sink and returns the value of the
// maximum flow. Flow(a) is valid for every forward arc afterward.
func (s *Solver) Solve(source, sink graph.NodeIndex) int64 {
	for v := range s.height {
		s.height[v] = 0
		s.cursor[v] = 0
	}
	s.height[source] = int32(s.g.NumNodes())
	s.excess[source] = math.MaxInt64 / 2

	var active = &nodeHeap{heights: s.height}
	active.push(source)

	for !active.empty() {
		var node = active.pop()
		if s.excess[node] == 0 {
			continue
		}
		s.discharge(node, sink, active)
	}

	// sink is never pushed onto active (see discharge's wasZero guard), so
	// its excess only ever accumulates: it is exactly the flow delivered.
	return s.excess[sink]
}

func (s *Solver) discharge(node, sink graph.NodeIndex, active *nodeHeap) {
	var arcs = s.g.Arcs(node)

	for s.excess[node] > 0 {
		if int(s.cursor[node]) == len(arcs) {
			var minHeight = int32(math.MaxInt32)
			for _, a := range arcs {
				if s.residual[s.slot(a)] > 0 {
					if h := s.height[s.g.Head(a)]; h < minHeight {
						minHeight = h
					}
				}
			}
			if minHeight == math.MaxInt32 {
				return // No residual capacity anywhere: the remaining excess stays here.
			}
			s.height[node] = minHeight + 1
			s.cursor[node] = 0
			continue
		}

		var a = arcs[s.cursor[node]]
		var head = s.g.Head(a)
		var residual = s.residual[s.slot(a)]

		if residual > 0 && s.height[node] > s.height[head] {
			var delta = s.excess[node]
			if residual < delta {
				delta = residual
			}

			s.residual[s.slot(a)] -= delta
			s.residual[s.slot(s.g.Opposite(a))] += delta
			s.excess[node] -= delta
			var wasZero = s.excess[head] == 0
			s.excess[head] += delta

			if wasZero && head != sink && head != node {
				active.push(head)
			}
		}
		s.cursor[node]++
	}
}

// nodeHeap orders pending active nodes by descending height, matching the
// highest-label selection rule of the grounding implementation.
type nodeHeap struct {
	items   []graph.NodeIndex
	heights []int32
}

func (h *nodeHeap) push(v graph.NodeIndex) { heap.Push(h, v) }
func (h *nodeHeap) pop() graph.NodeIndex   { return heap.Pop(h).(graph.NodeIndex) }
func (h *nodeHeap) empty() bool            { return len(h.items) == 0 }

func (h *nodeHeap) Len() int { return len(h.items) }
func (h *nodeHeap) Less(i, j int) bool {
	return h.heights[h.items[i]] > h.heights[h.items[j]]
}
func (h *nodeHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *nodeHeap) Push(x interface{}) {
	h.items = append(h.items, x.(graph.NodeIndex))
}
func (h *nodeHeap) Pop() interface{} {
	var old, n = h.items, len(h.items)
	var v = old[n-1]
	h.items = old[:n-1]
	return v
}
