package mincostflow

import (
	"sort"

	"github.com/LiveRamp/flowsolve/pkg/graph"
)

// SimpleMinCostFlow is a thin facade over Solver: it accepts arcs and node
// references in any order, lazily growing its node space, and defers
// building the underlying graph.Graph until Solve is called.
type SimpleMinCostFlow struct {
	numNodes int32
	tail     []graph.NodeIndex
	head     []graph.NodeIndex
	capacity []int64
	unitCost []int64
	supply   map[graph.NodeIndex]int64

	// permutation[callerArc] = solver arc index, populated by Solve. Arcs are
	// permuted by tail for cache locality in the underlying static graph.
	permutation []graph.ArcIndex

	solver *Solver
	status Status
}

// NewSimple returns an empty SimpleMinCostFlow.
func NewSimple() *SimpleMinCostFlow {
	return &SimpleMinCostFlow{supply: make(map[graph.NodeIndex]int64)}
}

// AddArc adds a directed arc from tail to head with capacity 0 and unit cost
// 0 (set separately via SetArcCapacity/SetArcUnitCost), growing the node
// space to cover whichever of tail/head is larger. Returns a stable
// caller-facing arc index (always the old NumArcs()).
func (f *SimpleMinCostFlow) AddArc(tail, head graph.NodeIndex) graph.ArcIndex {
	f.growTo(tail)
	f.growTo(head)
	var a = graph.ArcIndex(len(f.tail))
	f.tail = append(f.tail, tail)
	f.head = append(f.head, head)
	f.capacity = append(f.capacity, 0)
	f.unitCost = append(f.unitCost, 0)
	f.status = NotSolved
	return a
}

func (f *SimpleMinCostFlow) growTo(v graph.NodeIndex) {
	if int32(v)+1 > f.numNodes {
		f.numNodes = int32(v) + 1
	}
}

// SetNodeSupply sets node's supply (a demand is a negative supply).
func (f *SimpleMinCostFlow) SetNodeSupply(node graph.NodeIndex, supply int64) {
	f.growTo(node)
	f.supply[node] = supply
	f.status = NotSolved
}

// SetArcUnitCost sets the unit cost of a previously-added arc.
func (f *SimpleMinCostFlow) SetArcUnitCost(arc graph.ArcIndex, unitCost int64) {
	f.unitCost[arc] = unitCost
	f.status = NotSolved
}

// SetArcCapacity sets the capacity of a previously-added arc.
func (f *SimpleMinCostFlow) SetArcCapacity(arc graph.ArcIndex, capacity int64) {
	if capacity < 0 {
		panic("mincostflow: negative capacity")
	}
	f.capacity[arc] = capacity
	f.status = NotSolved
}

// NumNodes returns the current (lazily grown) node count.
func (f *SimpleMinCostFlow) NumNodes() int32 { return f.numNodes }

// NumArcs returns the number of arcs added so far.
func (f *SimpleMinCostFlow) NumArcs() int32 { return int32(len(f.tail)) }

// Solve builds the underlying static graph (arcs permuted by tail for cache
// locality), runs the generic solver, and caches the result for readback.
func (f *SimpleMinCostFlow) Solve() Status {
	var m = len(f.tail)
	f.permutation = make([]graph.ArcIndex, m)
	var order = make([]int, m)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return f.tail[order[i]] < f.tail[order[j]]
	})

	var b = graph.NewBuilder(int(f.numNodes), m)
	var capacity = make([]int64, m)
	for _, callerIdx := range order {
		var a = b.AddArc(f.tail[callerIdx], f.head[callerIdx])
		capacity[a] = f.capacity[callerIdx]
		f.permutation[callerIdx] = a
	}

	var g = b.Build()
	f.solver = New(g, capacity)
	for callerIdx, solverIdx := range f.permutation {
		f.solver.SetArcUnitCost(solverIdx, f.unitCost[callerIdx])
	}
	for node, supply := range f.supply {
		f.solver.SetNodeSupply(node, supply)
	}

	f.status = f.solver.Solve()
	return f.status
}

// Status returns the outcome of the last Solve call.
func (f *SimpleMinCostFlow) Status() Status { return f.status }

// OptimalCost returns the total cost of the minimum-cost flow found.
func (f *SimpleMinCostFlow) OptimalCost() int64 { return f.solver.OptimalCost() }

// Flow returns the flow on arc, in caller (pre-permutation) coordinates.
func (f *SimpleMinCostFlow) Flow(arc graph.ArcIndex) int64 {
	return f.solver.Flow(f.permutation[arc])
}

// Capacity returns the capacity set for arc.
func (f *SimpleMinCostFlow) Capacity(arc graph.ArcIndex) int64 { return f.capacity[arc] }

// UnitCost returns the unit cost set for arc.
func (f *SimpleMinCostFlow) UnitCost(arc graph.ArcIndex) int64 { return f.unitCost[arc] }

// Supply returns the supply (or negative demand) configured for node.
func (f *SimpleMinCostFlow) Supply(node graph.NodeIndex) int64 { return f.supply[node] }

// Tail returns the tail node of arc, in caller coordinates.
func (f *SimpleMinCostFlow) Tail(arc graph.ArcIndex) graph.NodeIndex { return f.tail[arc] }

// Head returns the head node of arc, in caller coordinates.
func (f *SimpleMinCostFlow) Head(arc graph.ArcIndex) graph.NodeIndex { return f.head[arc] }
