package mincostflow

import (
	gc "github.com/go-check/check"

	"github.com/LiveRamp/flowsolve/pkg/graph"
)

type PrimitivesSuite struct{}

var _ = gc.Suite(&PrimitivesSuite{})

// twoArcFixture builds a 3-node graph 0->1->2 with unit costs 1, ready for
// manual residual/potential manipulation ahead of optimize()'s own scaling.
func twoArcFixture() (*Solver, graph.ArcIndex, graph.ArcIndex) {
	var b = graph.NewBuilder(3, 2)
	var a0 = b.AddArc(0, 1)
	var a1 = b.AddArc(1, 2)
	var g = b.Build()

	var s = New(g, []int64{5, 5})
	s.SetArcUnitCost(a0, 1)
	s.SetArcUnitCost(a1, 1)
	s.scaleCosts()
	s.epsilon = 1
	return s, a0, a1
}

func (suite *PrimitivesSuite) TestRelabelLowersPotentialToMakeAnArcAdmissible(c *gc.C) {
	var s, a0, _ = twoArcFixture()

	c.Check(s.isAdmissible(a0), gc.Equals, false)
	s.relabel(graph.NodeIndex(0))
	c.Check(s.isAdmissible(a0), gc.Equals, true)
}

func (suite *PrimitivesSuite) TestRelabelOnDeadNodeDropsPotentialWithoutPanicking(c *gc.C) {
	var s, _, _ = twoArcFixture()
	// Node 2 has no outgoing residual arcs at all (it's the sink of the path).
	s.relabel(graph.NodeIndex(2))
	c.Check(s.potential[2] < 0, gc.Equals, true)
}

func (suite *PrimitivesSuite) TestLookAheadAcceptsDeficitNodeImmediately(c *gc.C) {
	var s, a0, _ = twoArcFixture()
	s.excess[1] = -1

	c.Check(s.lookAhead(a0, s.potential[0], graph.NodeIndex(1)), gc.Equals, true)
}

func (suite *PrimitivesSuite) TestLookAheadFindsExistingAdmissibleOutgoingArc(c *gc.C) {
	var s, _, a1 = twoArcFixture()
	s.relabel(graph.NodeIndex(1)) // makes a1 admissible from node 1

	c.Check(s.isAdmissible(a1), gc.Equals, true)
	c.Check(s.lookAhead(graph.ArcIndex(0), s.potential[0], graph.NodeIndex(1)), gc.Equals, true)
}

func (suite *PrimitivesSuite) TestLookAheadRelabelsWhenNoAdmissibleArcExists(c *gc.C) {
	var s, a0, _ = twoArcFixture()

	var before = s.potential[1]
	var ok = s.lookAhead(a0, s.potential[0], graph.NodeIndex(1))
	c.Check(s.potential[1] != before, gc.Equals, true)
	// Relabeling node 1 lowers its potential to admit an outgoing arc (1->2);
	// that same drop makes the incoming arc a0 (0->1) less admissible, not
	// more, so the in-arc recheck fails and lookAhead reports false here.
	c.Check(ok, gc.Equals, false)
}

func (suite *PrimitivesSuite) TestFastReducedCostMatchesReducedCost(c *gc.C) {
	var s, a0, _ = twoArcFixture()
	s.potential[0], s.potential[1] = 3, -2

	c.Check(s.fastReducedCost(a0, s.potential[0]), gc.Equals, s.reducedCost(a0))
}

func (suite *PrimitivesSuite) TestPushFlowUpdatesResidualsAndExcessSymmetrically(c *gc.C) {
	var s, a0, _ = twoArcFixture()

	s.pushFlow(3, a0)
	c.Check(s.flow(a0), gc.Equals, int64(3))
	c.Check(s.residualCapacity(a0), gc.Equals, int64(2))
	c.Check(s.excess[0], gc.Equals, int64(-3))
	c.Check(s.excess[1], gc.Equals, int64(3))
}

func (suite *PrimitivesSuite) TestPushFlowPanicsOnNonPositiveAmount(c *gc.C) {
	var s, a0, _ = twoArcFixture()
	c.Check(func() { s.pushFlow(0, a0) }, gc.PanicMatches, "mincostflow: pushFlow requires amount > 0")
}

func (suite *PrimitivesSuite) TestPushFlowPanicsWhenExceedingResidualCapacity(c *gc.C) {
	var s, a0, _ = twoArcFixture()
	c.Check(func() { s.pushFlow(6, a0) }, gc.PanicMatches, "mincostflow: pushFlow amount exceeds residual capacity")
}

func (suite *PrimitivesSuite) TestSetArcFlowThenFlowRoundTrips(c *gc.C) {
	var s, a0, _ = twoArcFixture()

	s.setArcFlow(a0, 4)
	c.Check(s.flow(a0), gc.Equals, int64(4))

	s.setArcFlow(a0, 1)
	c.Check(s.flow(a0), gc.Equals, int64(1))
	c.Check(s.residualCapacity(a0), gc.Equals, int64(4))
}
