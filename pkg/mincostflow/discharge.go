package mincostflow

import "github.com/LiveRamp/flowsolve/pkg/graph"

// activeStack is a bounded LIFO of active (excess > 0) nodes. A stack is
// used rather than a queue for discharge ordering; the algorithm's
// correctness does not depend on the choice.
type activeStack struct {
	data []graph.NodeIndex
}

func newActiveStack(capacity int) activeStack {
	return activeStack{data: make([]graph.NodeIndex, 0, capacity)}
}

func (st *activeStack) push(v graph.NodeIndex) { st.data = append(st.data, v) }

func (st *activeStack) pop() graph.NodeIndex {
	var n = len(st.data) - 1
	var v = st.data[n]
	st.data = st.data[:n]
	return v
}

func (st *activeStack) empty() bool { return len(st.data) == 0 }

func (st *activeStack) reset() { st.data = st.data[:0] }

// resetFirstAdmissibleArcs resets every node's scan cursor to the start of
// its incidence list.
func (s *Solver) resetFirstAdmissibleArcs() {
	for v := range s.firstAdmissibleArc {
		s.firstAdmissibleArc[v] = 0
	}
}

// saturateAdmissibleArcs pushes the full residual capacity of every arc with
// strictly negative reduced cost. This may drive some nodes into deficit;
// they are not pushed onto the active stack, but still participate in
// discharges of their neighbors via lookAhead.
func (s *Solver) saturateAdmissibleArcs() {
	for v := graph.NodeIndex(0); v < graph.NodeIndex(s.numNodes); v++ {
		var tailPotential = s.potential[v]
		for _, a := range s.g.Arcs(v) {
			if s.fastIsAdmissible(a, tailPotential) {
				s.fastPushFlow(s.residualCapacity(a), a, v)
			}
		}
	}
}

// initializeActiveNodeStack pushes every node with positive excess.
func (s *Solver) initializeActiveNodeStack() {
	s.activeStack.reset()
	for v := graph.NodeIndex(0); v < graph.NodeIndex(s.numNodes); v++ {
		if s.excess[v] > 0 {
			s.activeStack.push(v)
		}
	}
}

// discharge repeatedly pushes and relabels node until its excess reaches
// zero.
func (s *Solver) discharge(node graph.NodeIndex) {
	for s.excess[node] > 0 {
		var arcs = s.g.Arcs(node)
		var cursor = s.firstAdmissibleArc[node]

		if int(cursor) == len(arcs) {
			s.relabel(node)
			continue
		}

		var a = arcs[cursor]
		var tailPotential = s.potential[node]

		if s.fastIsAdmissible(a, tailPotential) {
			var head = s.g.Head(a)

			if s.lookAhead(a, tailPotential, head) {
				var amount = s.excess[node]
				if cap := s.residualCapacity(a); cap < amount {
					amount = cap
				}
				var wasNonPositive = s.excess[head] <= 0
				s.fastPushFlow(amount, a, node)
				s.stats.pushes++
				pushesTotal.Inc()

				if wasNonPositive && s.excess[head] > 0 && head != node {
					s.activeStack.push(head)
				}
				if s.excess[node] == 0 {
					return
				}
				continue
			}
		}

		s.firstAdmissibleArc[node]++
	}
}

// refine performs one epsilon-scaling iteration: reset cursors, saturate
// admissible arcs, initialize the active-node stack, optionally run the
// global price-update heuristic, then discharge until no node is active.
func (s *Solver) refine() {
	s.resetFirstAdmissibleArcs()
	s.saturateAdmissibleArcs()
	s.initializeActiveNodeStack()

	if s.useUpdatePrices && s.relabelsSincePriceUp > s.priceUpdateThreshold {
		s.updatePrices()
	}

	for !s.activeStack.empty() {
		var v = s.activeStack.pop()
		if s.excess[v] > 0 {
			s.discharge(v)
		}
	}
	s.stats.refines++
	refinesTotal.Inc()
}
