package mincostflow

import (
	gc "github.com/go-check/check"

	"github.com/LiveRamp/flowsolve/pkg/graph"
)

type SimpleSuite struct{}

var _ = gc.Suite(&SimpleSuite{})

func (suite *SimpleSuite) TestSimpleMinCostFlowSolvesOutOfOrderArcAdditions(c *gc.C) {
	var f = NewSimple()

	// Arcs are added tail-descending, exercising the by-tail permutation
	// Solve() applies before building the underlying static graph.
	var cheap = f.AddArc(1, 2)
	var expensive = f.AddArc(0, 1)

	f.SetArcCapacity(cheap, 4)
	f.SetArcUnitCost(cheap, 2)
	f.SetArcCapacity(expensive, 4)
	f.SetArcUnitCost(expensive, 5)

	f.SetNodeSupply(0, 4)
	f.SetNodeSupply(2, -4)

	c.Check(f.Solve(), gc.Equals, Optimal)
	c.Check(f.OptimalCost(), gc.Equals, int64(4*5+4*2))
	c.Check(f.Flow(cheap), gc.Equals, int64(4))
	c.Check(f.Flow(expensive), gc.Equals, int64(4))
}

func (suite *SimpleSuite) TestSimpleMinCostFlowGrowsNodeSpaceLazily(c *gc.C) {
	var f = NewSimple()
	c.Check(f.NumNodes(), gc.Equals, int32(0))

	f.AddArc(3, 7)
	c.Check(f.NumNodes(), gc.Equals, int32(8))
	c.Check(f.NumArcs(), gc.Equals, int32(1))
}

func (suite *SimpleSuite) TestSimpleMinCostFlowReadbackMatchesCallerCoordinates(c *gc.C) {
	var f = NewSimple()
	var a = f.AddArc(2, 5)
	f.SetArcCapacity(a, 9)
	f.SetArcUnitCost(a, 3)

	c.Check(f.Tail(a), gc.Equals, graph.NodeIndex(2))
	c.Check(f.Head(a), gc.Equals, graph.NodeIndex(5))
	c.Check(f.Capacity(a), gc.Equals, int64(9))
	c.Check(f.UnitCost(a), gc.Equals, int64(3))
}

func (suite *SimpleSuite) TestSimpleMinCostFlowReportsInfeasible(c *gc.C) {
	var f = NewSimple()
	f.SetNodeSupply(0, 1)
	f.SetNodeSupply(1, -1)

	c.Check(f.Solve(), gc.Equals, Infeasible)
}
