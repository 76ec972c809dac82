// Package mincostflow implements a cost-scaling push-relabel minimum-cost
// flow solver (Goldberg-Tarjan successive approximation), following
// operations_research::GenericMinCostFlow in spirit: pseudo-flows are
// refined toward epsilon-optimality by repeated node discharge, with
// epsilon shrinking geometrically across outer iterations.
package mincostflow

import (
	"github.com/LiveRamp/flowsolve/pkg/graph"
	log "github.com/sirupsen/logrus"
)

const defaultAlpha = 5

// Solver is a generic min-cost flow solver over an arbitrary graph.Graph.
// It owns all per-node and per-arc arrays for its lifetime; New()
// allocates them once and subsequent setter calls mutate in place.
type Solver struct {
	g        *graph.Graph
	numNodes int32
	numArcs  int32

	excess             []int64 // len n
	potential          []int64 // len n
	firstAdmissibleArc []int32 // len n, cursor into g.Arcs(v)
	initialSupply      []int64 // len n
	feasibleSupply     []int64 // len n

	residual       []int64 // len 2m, see slot()
	scaledUnitCost []int64 // len 2m
	unitCost       []int64 // len m, original (unscaled) cost, forward arcs only
	capacity       []int64 // len m, original capacity, forward arcs only

	activeStack activeStack

	epsilon              int64
	alpha                int64
	costScalingFactor    int64
	costsAreScaled       bool
	totalFlowCost        int64
	status               Status
	useUpdatePrices      bool
	relabelsSincePriceUp int
	priceUpdateThreshold int

	infeasibleSupplyNode []graph.NodeIndex
	infeasibleDemandNode []graph.NodeIndex
	feasibilityChecked   bool

	// Debug enables the O(n+m) invariant checks (CheckResult,
	// CheckRelabelPrecondition). CheckInputConsistency and CheckCostRange are
	// always run, as they are O(n) / O(m).
	Debug bool

	resultOK bool
	stats    stats
}

// New returns a Solver bound to g, with zero supplies, zero costs, and
// capacities taken from capacity (one entry per forward arc, indexed by
// graph.ArcIndex).
func New(g *graph.Graph, capacity []int64) *Solver {
	var n, m = g.NumNodes(), g.NumArcs()
	var s = &Solver{
		g:                    g,
		numNodes:             n,
		numArcs:              m,
		excess:               make([]int64, n),
		potential:            make([]int64, n),
		firstAdmissibleArc:   make([]int32, n),
		initialSupply:        make([]int64, n),
		feasibleSupply:       make([]int64, n),
		residual:             make([]int64, 2*m),
		scaledUnitCost:       make([]int64, 2*m),
		unitCost:             make([]int64, m),
		capacity:             append([]int64(nil), capacity...),
		activeStack:          newActiveStack(int(n)),
		alpha:                defaultAlpha,
		useUpdatePrices:      true,
		priceUpdateThreshold: int(n),
		status:               NotSolved,
	}
	for a := int32(0); a < m; a++ {
		s.residual[a] = capacity[a]
	}
	return s
}

// SetNodeSupply sets node's supply (positive) or demand (negative, <0).
func (s *Solver) SetNodeSupply(node graph.NodeIndex, supply int64) {
	s.initialSupply[node] = supply
	s.status = NotSolved
}

// SetArcUnitCost sets the unit cost of arc (forward index).
func (s *Solver) SetArcUnitCost(arc graph.ArcIndex, unitCost int64) {
	s.unitCost[arc] = unitCost
	s.scaledUnitCost[arc] = unitCost
	s.scaledUnitCost[s.numArcs+int32(arc)] = -unitCost
	s.costsAreScaled = false
	s.status = NotSolved
}

// SetArcCapacity sets the capacity of arc (forward index). Any existing flow
// on the arc is preserved if it still fits; the caller is responsible for
// not shrinking capacity below current flow.
func (s *Solver) SetArcCapacity(arc graph.ArcIndex, capacity int64) {
	if capacity < 0 {
		panic("mincostflow: negative capacity")
	}
	var curFlow = s.flow(arc)
	s.capacity[arc] = capacity
	s.residual[arc] = capacity - curFlow
	s.status = NotSolved
}

// SetArcFlow warm-starts arc with an initial flow value, adjusting residuals
// (and the excess at both endpoints) accordingly. newFlow must not exceed
// the arc's capacity.
func (s *Solver) SetArcFlow(arc graph.ArcIndex, newFlow int64) {
	s.setArcFlow(arc, newFlow)
	s.status = NotSolved
}

// SetUseUpdatePrices toggles the global price-update heuristic.
func (s *Solver) SetUseUpdatePrices(v bool) { s.useUpdatePrices = v }

// SetAlpha overrides the cost-scaling factor applied between refine passes;
// the default is 5. alpha must be > 1.
func (s *Solver) SetAlpha(alpha int64) {
	if alpha <= 1 {
		panic("mincostflow: alpha must be > 1")
	}
	s.alpha = alpha
}

// SetPriceUpdateThreshold overrides the relabel count that triggers a global
// price update; the default is the node count.
func (s *Solver) SetPriceUpdateThreshold(n int) { s.priceUpdateThreshold = n }

// Status returns the outcome of the last Solve call.
func (s *Solver) Status() Status { return s.status }

// Flow returns the flow on forward arc a: residualCapacity(Opposite(a)).
func (s *Solver) Flow(a graph.ArcIndex) int64 { return s.flow(a) }

// Capacity returns the original capacity of forward arc a.
func (s *Solver) Capacity(a graph.ArcIndex) int64 { return s.capacity[a] }

// UnitCost returns the original (unscaled) unit cost of forward arc a.
func (s *Solver) UnitCost(a graph.ArcIndex) int64 { return s.unitCost[a] }

// Supply returns the node's current excess: supply not yet routed. It is zero
// for every node after an Optimal Solve; InitialSupply returns the set value.
func (s *Solver) Supply(v graph.NodeIndex) int64 { return s.excess[v] }

// InitialSupply returns the caller-provided supply for v.
func (s *Solver) InitialSupply(v graph.NodeIndex) int64 { return s.initialSupply[v] }

// FeasibleSupply returns the supply value CheckFeasibility determined v could
// actually be given, which may be smaller in magnitude than InitialSupply.
func (s *Solver) FeasibleSupply(v graph.NodeIndex) int64 { return s.feasibleSupply[v] }

// OptimalCost returns the total cost of the flow found by the last Solve.
func (s *Solver) OptimalCost() int64 { return s.totalFlowCost }

// Solve runs the feasibility preflight (unless disabled) and the cost-scaling
// optimization, returning the resulting Status.
func (s *Solver) Solve() Status {
	return s.solve(true)
}

// SolveWithoutFeasibilityCheck runs Optimize directly, skipping the preflight.
// Infeasible or pathological instances may then loop indefinitely; callers
// accept this risk explicitly by choosing this entry point.
func (s *Solver) SolveWithoutFeasibilityCheck() Status {
	return s.solve(false)
}

func (s *Solver) solve(checkFeasibility bool) Status {
	if !s.checkInputConsistency() {
		s.status = Unbalanced
		return s.status
	}
	if !s.checkCostRange() {
		s.status = BadCostRange
		return s.status
	}

	// Excess is the initial supply net of any flow already on the arcs (e.g.
	// set via SetArcFlow), so a warm start is kept rather than double-counted.
	copy(s.excess, s.initialSupply)
	for a := int32(0); a < s.numArcs; a++ {
		if f := s.flow(graph.ArcIndex(a)); f != 0 {
			s.excess[s.g.Tail(graph.ArcIndex(a))] -= f
			s.excess[s.g.Head(graph.ArcIndex(a))] += f
		}
	}
	for v := range s.potential {
		s.potential[v] = 0
	}
	s.costsAreScaled = false
	s.relabelsSincePriceUp = 0

	if checkFeasibility {
		var ok, _, _ = s.CheckFeasibility()
		if !ok {
			s.status = Infeasible
			return s.status
		}
	}

	s.optimize()

	if s.Debug && !s.resultOK {
		log.WithField("component", "mincostflow").Error("post-solve invariant violated")
		s.status = BadResult
		return s.status
	}

	s.status = Optimal
	return s.status
}

func (s *Solver) checkInputConsistency() bool {
	var sum int64
	for _, v := range s.initialSupply {
		sum += v
	}
	return sum == 0
}
